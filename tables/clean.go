package tables

import "strings"

// Clean normalizes a raw grid. It returns nil when no column has any
// content, which signals rejection.
func Clean(raw [][]string) [][]string {
	if len(raw) == 0 {
		return nil
	}

	maxCols := 0
	for _, row := range raw {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	grid := make([][]string, len(raw))
	for i, row := range raw {
		grid[i] = make([]string, maxCols)
		for j, cell := range row {
			grid[i][j] = strings.TrimSpace(cell)
		}
	}

	last := lastNonEmptyColumn(grid, maxCols)
	if last < 0 {
		return nil
	}
	for i := range grid {
		grid[i] = grid[i][:last+1]
	}

	return mergeSplitHeader(grid)
}

func lastNonEmptyColumn(grid [][]string, cols int) int {
	last := -1
	for c := 0; c < cols; c++ {
		for _, row := range grid {
			if row[c] != "" {
				last = c
				break
			}
		}
	}
	return last
}

// mergeSplitHeader folds rows 0 and 1 into one header row when row 0 has
// fewer non-empty cells than row 1
func mergeSplitHeader(grid [][]string) [][]string {
	if len(grid) < 2 || countNonEmpty(grid[0]) >= countNonEmpty(grid[1]) {
		return grid
	}

	top, bottom := grid[0], grid[1]
	merged := make([]string, len(bottom))
	for i := range bottom {
		a, b := top[i], bottom[i]
		switch {
		case a != "" && b != "" && a != b:
			merged[i] = strings.TrimSpace(a + " " + b)
		case a != "":
			merged[i] = a
		default:
			merged[i] = b
		}
	}

	return append([][]string{merged}, grid[2:]...)
}

func countNonEmpty(row []string) int {
	n := 0
	for _, cell := range row {
		if cell != "" {
			n++
		}
	}
	return n
}
