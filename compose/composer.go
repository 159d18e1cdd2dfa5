// Package compose merges a page's tables, charts and paragraphs into the
// page's final content sequence.
//
// Tables are placed first, then charts, then paragraphs. A paragraph whose
// area is mostly covered by an already-placed table or chart is text that
// belongs to that item and is dropped; the table or chart is always kept.
package compose

import (
	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/model"
)

// Composer builds page content with overlap suppression
type Composer struct {
	threshold float64
}

// NewComposer creates a composer using cfg.OverlapThreshold
func NewComposer(cfg config.Config) *Composer {
	return &Composer{threshold: cfg.OverlapThreshold}
}

// Result is the composed content of a page
type Result struct {
	Items []model.Item

	// Suppressed counts paragraphs dropped because of overlap
	Suppressed int
}

// Compose returns tables, charts and surviving paragraphs in that order.
// Relative order within each group is preserved.
func (c *Composer) Compose(tables []*model.Table, charts []*model.Chart, paragraphs []*model.Paragraph) Result {
	items := make([]model.Item, 0, len(tables)+len(charts)+len(paragraphs))
	var placed []model.BBox

	for _, t := range tables {
		items = append(items, t)
		if b, ok := t.Bounds(); ok {
			placed = append(placed, b)
		}
	}
	for _, ch := range charts {
		items = append(items, ch)
		placed = append(placed, ch.BBox)
	}

	suppressed := 0
	for _, p := range paragraphs {
		if c.covered(p, placed) {
			suppressed++
			continue
		}
		items = append(items, p)
	}

	return Result{Items: items, Suppressed: suppressed}
}

// covered reports whether any placed region covers more than the
// threshold share of the paragraph's own area
func (c *Composer) covered(p *model.Paragraph, placed []model.BBox) bool {
	pb, ok := p.Bounds()
	if !ok {
		return false
	}
	for _, b := range placed {
		if pb.CoveredFraction(b) > c.threshold {
			return true
		}
	}
	return false
}
