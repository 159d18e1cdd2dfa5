package tables

import (
	"reflect"
	"testing"

	"github.com/tsawler/folio/config"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]string
		want [][]string
	}{
		{
			name: "trims trailing empty column",
			raw:  [][]string{{"A", "B", ""}, {"1", "2", ""}},
			want: [][]string{{"A", "B"}, {"1", "2"}},
		},
		{
			name: "merges split header",
			raw:  [][]string{{"Fund", ""}, {"Name", "AUM"}, {"X", "100"}},
			want: [][]string{{"Fund Name", "AUM"}, {"X", "100"}},
		},
		{
			name: "pads jagged rows",
			raw:  [][]string{{"Year", "NAV", "Return"}, {"2023", "10.5"}},
			want: [][]string{{"Year", "NAV", "Return"}, {"2023", "10.5", ""}},
		},
		{
			name: "trims cell whitespace",
			raw:  [][]string{{"  A ", "B\n"}, {" 1", "2 "}},
			want: [][]string{{"A", "B"}, {"1", "2"}},
		},
		{
			name: "identical header cells are not duplicated",
			raw:  [][]string{{"AUM", ""}, {"AUM", "Cr"}, {"10", "20"}},
			want: [][]string{{"AUM", "Cr"}, {"10", "20"}},
		},
		{
			name: "full header row is kept",
			raw:  [][]string{{"A", "B"}, {"C", "D"}},
			want: [][]string{{"A", "B"}, {"C", "D"}},
		},
		{
			name: "interior empty column is kept",
			raw:  [][]string{{"A", "", "C"}, {"1", "", "3"}},
			want: [][]string{{"A", "", "C"}, {"1", "", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Clean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClean_Rejects(t *testing.T) {
	if got := Clean(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := Clean([][]string{{"", " "}, {"", ""}}); got != nil {
		t.Errorf("expected nil for blank grid, got %v", got)
	}
}

func TestClean_RowsHaveEqualLength(t *testing.T) {
	got := Clean([][]string{{"a"}, {"b", "c", "d"}, {}, {"e", "f"}})
	for i, row := range got {
		if len(row) != 3 {
			t.Errorf("row %d has %d columns, want 3", i, len(row))
		}
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator(config.Default())

	tests := []struct {
		name string
		grid [][]string
		want bool
	}{
		{"all text", [][]string{{"Risk", "Factor"}, {"High", "Low"}}, false},
		{"year values", [][]string{{"Year", "Value"}, {"FY23", "100"}, {"FY24", "150"}}, true},
		{"empty", nil, false},
		{"empty rows", [][]string{{}, {}}, false},
		{"sparse numbers", [][]string{{"a", "b", "c", "d"}, {"e", "f", "g", "1"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Valid(tt.grid); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidator_CustomThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.MinTableNumericFrac = 0.1
	grid := [][]string{{"a", "b", "c", "d"}, {"e", "f", "g", "1"}}
	if !NewValidator(cfg).Valid(grid) {
		t.Error("expected grid to pass a lower threshold")
	}
}
