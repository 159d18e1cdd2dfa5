package layout

import (
	"testing"

	"github.com/tsawler/folio/model"
)

func makeRun(t string, x0, y0, x1, y1, size float64) model.TextRun {
	return model.TextRun{Text: t, BBox: model.NewBBox(x0, y0, x1, y1), FontSize: size}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Hello   World ", "Hello World"},
		{"Net Asset\tValue", "Net Asset Value"},
		{"line\nbreak", "line break"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRuns_DropsEmptyAndSorts(t *testing.T) {
	runs := []model.TextRun{
		makeRun("second line", 50, 30, 120, 40, 10),
		makeRun("   ", 0, 0, 10, 10, 10),
		makeRun("right", 80, 10, 120, 20, 10),
		makeRun("left", 10, 10, 40, 20, 10),
	}

	spans := NormalizeRuns(runs)
	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans, got %d", len(spans))
	}

	want := []string{"left", "right", "second line"}
	for i, w := range want {
		if spans[i].Text != w {
			t.Errorf("span %d: expected %q, got %q", i, w, spans[i].Text)
		}
	}
}

func TestNormalizeRuns_Empty(t *testing.T) {
	if spans := NormalizeRuns(nil); len(spans) != 0 {
		t.Errorf("Expected no spans, got %d", len(spans))
	}
}
