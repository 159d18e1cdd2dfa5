package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/folio/model"
)

// Span is a single normalized run of text
type Span struct {
	Text     string
	BBox     model.BBox
	FontSize float64
}

// NormalizeText collapses every run of whitespace, including non-breaking
// spaces, to a single ASCII space and trims both ends
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeRuns converts raw runs into spans sorted by (top, left).
// Runs that are empty after trimming are discarded.
func NormalizeRuns(runs []model.TextRun) []Span {
	spans := make([]Span, 0, len(runs))
	for _, run := range runs {
		txt := NormalizeText(run.Text)
		if txt == "" {
			continue
		}
		spans = append(spans, Span{
			Text:     txt,
			BBox:     run.BBox,
			FontSize: run.FontSize,
		})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].BBox.Y0 != spans[j].BBox.Y0 {
			return spans[i].BBox.Y0 < spans[j].BBox.Y0
		}
		return spans[i].BBox.X0 < spans[j].BBox.X0
	})

	return spans
}
