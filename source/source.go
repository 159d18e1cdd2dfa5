// Package source defines how page geometry reaches the structuring
// pipeline. A document decoder implements [Source]; this package provides
// an in-memory source and a reader for JSON geometry dumps.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsawler/folio/model"
)

// ErrInputMissing is returned when the input document cannot be resolved
var ErrInputMissing = errors.New("input document not found")

// Source yields the raw geometry of a document one page at a time.
// Page indexes are 0-based; the returned RawPage carries the 1-based number.
// Page may be called from several goroutines when pages are processed
// concurrently, and must not modify a page it has already returned.
type Source interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// Page returns the raw geometry of the page at index
	Page(ctx context.Context, index int) (*model.RawPage, error)

	// Close releases resources held by the source
	Close() error
}

// Memory is a Source backed by pages already in memory
type Memory struct {
	Pages []*model.RawPage
}

// NewMemory creates an in-memory source. Pages with a zero Number are
// numbered by position; the caller's pages are not modified.
func NewMemory(pages ...*model.RawPage) *Memory {
	owned := make([]*model.RawPage, len(pages))
	for i, p := range pages {
		page := *p
		if page.Number == 0 {
			page.Number = i + 1
		}
		owned[i] = &page
	}
	return &Memory{Pages: owned}
}

// PageCount returns the number of pages
func (m *Memory) PageCount() int {
	return len(m.Pages)
}

// Page returns the page at index
func (m *Memory) Page(ctx context.Context, index int) (*model.RawPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(m.Pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(m.Pages))
	}
	return m.Pages[index], nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
