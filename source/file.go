package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tsawler/folio/model"
)

// dumpFile is the on-disk layout of a geometry dump: one entry per page
// with text runs, drawing rectangles and candidate grids. Grid cells may
// be null.
type dumpFile struct {
	Pages []dumpPage `json:"pages"`
}

type dumpPage struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Runs     []model.TextRun `json:"runs"`
	Drawings []model.Drawing `json:"drawings"`
	Grids    []dumpGrid      `json:"grids"`
}

type dumpGrid struct {
	Backend string      `json:"backend"`
	Rows    [][]*string `json:"rows"`
	BBox    *model.BBox `json:"bbox"`
}

// Open reads a JSON geometry dump from path. It returns an error wrapping
// ErrInputMissing when path does not exist.
func Open(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a JSON geometry dump from r
func Decode(r io.Reader) (*Memory, error) {
	var dump dumpFile
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("failed to decode geometry: %w", err)
	}

	pages := make([]*model.RawPage, len(dump.Pages))
	for i, dp := range dump.Pages {
		page := &model.RawPage{
			Number:   i + 1,
			Width:    dp.Width,
			Height:   dp.Height,
			Runs:     dp.Runs,
			Drawings: dp.Drawings,
		}
		for _, g := range dp.Grids {
			page.Grids = append(page.Grids, model.CandidateGrid{
				Backend: g.Backend,
				Rows:    flattenCells(g.Rows),
				BBox:    g.BBox,
			})
		}
		pages[i] = page
	}

	return &Memory{Pages: pages}, nil
}

// flattenCells replaces null cells with empty strings
func flattenCells(rows [][]*string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				out[i][j] = *cell
			}
		}
	}
	return out
}
