package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/folio/model"
)

// DefaultLineTolerance is the vertical gap below which a span joins the
// block above it
const DefaultLineTolerance = 4.0

// Block represents a contiguous run of spans merged by vertical proximity.
// Blocks are the unit classified as heading or body text.
type Block struct {
	// Text is the member span texts joined by a single space
	Text string

	// BBox is the union of the member span boxes
	BBox model.BBox

	// FontSize is the median member font size, or 0 when no span has one
	FontSize float64

	// Spans are the member spans in sorted order
	Spans []Span
}

// SpanCount returns the number of spans in the block
func (b *Block) SpanCount() int {
	return len(b.Spans)
}

// GroupBlocks walks spans in order and merges each span into the current
// block when span.top - block.bottom <= yTol. Spans must already be sorted
// by (top, left), as returned by NormalizeRuns.
func GroupBlocks(spans []Span, yTol float64) []Block {
	if len(spans) == 0 {
		return nil
	}

	var blocks []Block
	start := 0
	bbox := spans[0].BBox

	for i := 1; i < len(spans); i++ {
		sp := spans[i]
		if sp.BBox.Y0-bbox.Y1 <= yTol {
			bbox = bbox.Union(sp.BBox)
			continue
		}
		blocks = append(blocks, newBlock(spans[start:i], bbox))
		start = i
		bbox = sp.BBox
	}
	blocks = append(blocks, newBlock(spans[start:], bbox))

	return blocks
}

func newBlock(members []Span, bbox model.BBox) Block {
	texts := make([]string, 0, len(members))
	sizes := make([]float64, 0, len(members))
	for _, sp := range members {
		texts = append(texts, sp.Text)
		if sp.FontSize > 0 {
			sizes = append(sizes, sp.FontSize)
		}
	}

	return Block{
		Text:     strings.TrimSpace(strings.Join(texts, " ")),
		BBox:     bbox,
		FontSize: median(sizes),
		Spans:    append([]Span(nil), members...),
	}
}

// median returns the middle value of vals, averaging the two middle values
// for an even count. It returns 0 for an empty slice.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
