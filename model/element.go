package model

import "github.com/tsawler/folio/numeric"

// ItemType represents the type of a content item
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeParagraph
	ItemTypeTable
	ItemTypeChart
)

// String returns the item type as it appears in serialized output
func (it ItemType) String() string {
	switch it {
	case ItemTypeParagraph:
		return "paragraph"
	case ItemTypeTable:
		return "table"
	case ItemTypeChart:
		return "chart"
	default:
		return "unknown"
	}
}

// Item is a single piece of composed page content. The set of
// implementations is closed: *Paragraph, *Table and *Chart.
type Item interface {
	Type() ItemType
	// Bounds returns the item's region and whether it has one
	Bounds() (BBox, bool)
	sealed()
}

// Paragraph is a block of text tagged with the section it belongs to.
// Section is empty before the first heading on a page.
type Paragraph struct {
	Section    string
	SubSection string
	Text       string
	BBox       *BBox
	FontSize   float64
	Heading    bool
}

func (p *Paragraph) Type() ItemType { return ItemTypeParagraph }
func (p *Paragraph) sealed()        {}

// Bounds returns the paragraph's source block region
func (p *Paragraph) Bounds() (BBox, bool) {
	if p.BBox == nil {
		return BBox{}, false
	}
	return *p.BBox, true
}

// Chart is a vector-drawing region confirmed by nearby text
type Chart struct {
	Description string
	BBox        BBox
	Legend      []string
	Data        *ChartData // nil when no label/value pairs were found
	Text        []string   // associated block text, in page order
}

func (c *Chart) Type() ItemType       { return ItemTypeChart }
func (c *Chart) Bounds() (BBox, bool) { return c.BBox, true }
func (c *Chart) sealed()              {}

// ChartData holds label/value pairs extracted from chart text
type ChartData struct {
	Header [2]string
	Points []DataPoint
}

// DataPoint is one label/value pair, for example ("FY23", 150)
type DataPoint struct {
	Label string
	Value numeric.Number
}

// Rows returns the data as a header row followed by one row per point
func (d *ChartData) Rows() [][]any {
	rows := make([][]any, 0, len(d.Points)+1)
	rows = append(rows, []any{d.Header[0], d.Header[1]})
	for _, p := range d.Points {
		rows = append(rows, []any{p.Label, p.Value})
	}
	return rows
}
