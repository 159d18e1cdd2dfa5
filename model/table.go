package model

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// Table is a cleaned grid of cell text. The first row is the header row.
// All rows have the same number of columns.
type Table struct {
	Data        [][]string
	Description string
	BBox        *BBox  // nil when the detecting backend reported no region
	Backend     string // name of the backend that proposed the grid
}

func (t *Table) Type() ItemType { return ItemTypeTable }
func (t *Table) sealed()        {}

// Bounds returns the table's region if one was reported
func (t *Table) Bounds() (BBox, bool) {
	if t.BBox == nil {
		return BBox{}, false
	}
	return *t.BBox, true
}

// RowCount returns the number of rows, including the header
func (t *Table) RowCount() int {
	return len(t.Data)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Data) == 0 {
		return 0
	}
	return len(t.Data[0])
}

// Header returns the header row, or nil for an empty table
func (t *Table) Header() []string {
	if len(t.Data) == 0 {
		return nil
	}
	return t.Data[0]
}

// GetText returns the table as tab-separated lines
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Data {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Data) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	header := t.Header()
	writeRow(header)
	for range header {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Data[1:] {
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format with the header row first
func (t *Table) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(t.Data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
