package charts

import (
	"regexp"
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeric"
)

var (
	tokenSplit = regexp.MustCompile(`[\s,;]+`)

	// yearLabel matches "23", "2023", "FY23", "FY-2024", "FY25E"
	yearLabel = regexp.MustCompile(`^(FY|FY-)?\d{2,4}E?$`)
)

// IsYearLabel reports whether token looks like a fiscal-year axis label
func IsYearLabel(token string) bool {
	return yearLabel.MatchString(strings.ToUpper(token))
}

// ExtractPairs returns every adjacent (label, number) token pair in text
// where label is a fiscal-year label, in first-seen order
func ExtractPairs(text string) []model.DataPoint {
	tokens := tokenSplit.Split(strings.TrimSpace(text), -1)

	var points []model.DataPoint
	for i := 0; i+1 < len(tokens); i++ {
		label, value := tokens[i], tokens[i+1]
		if !IsYearLabel(label) {
			continue
		}
		n, ok := numeric.Parse(value)
		if !ok {
			continue
		}
		points = append(points, model.DataPoint{Label: label, Value: n})
	}
	return points
}
