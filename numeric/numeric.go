// Package numeric recognizes and parses the number formats found in
// factsheet tables and chart labels: thousands separators, percent signs
// and currency symbols are ignored.
package numeric

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Number is a parsed numeric value. Strings without a decimal point parse
// as integers; everything else, including integers beyond the int64 range,
// parses as a float.
type Number struct {
	Int     int64
	Float   float64
	Integer bool
}

// Value returns the number as a float64
func (n Number) Value() float64 {
	if n.Integer {
		return float64(n.Int)
	}
	return n.Float
}

// String formats the number the way it would appear in JSON
func (n Number) String() string {
	data, err := n.MarshalJSON()
	if err != nil {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return string(data)
}

// MarshalJSON writes integers without a fractional part and floats in
// their shortest form. A float with an integral value keeps a ".0"
// suffix so it still reads as a float.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.Integer {
		return []byte(strconv.FormatInt(n.Int, 10)), nil
	}
	data, err := json.Marshal(n.Float)
	if err != nil {
		return nil, err
	}
	if !bytes.ContainsAny(data, ".eE") {
		data = append(data, ".0"...)
	}
	return data, nil
}

// strip removes characters that decorate a number without changing it
func strip(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == '%' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)
}

func parseFloat(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// LooksLikeNumber reports whether s is numeric once separators, whitespace,
// percent signs and currency symbols are removed.
func LooksLikeNumber(s string) bool {
	_, ok := parseFloat(strip(s))
	return ok
}

// Parse parses s into a Number. The second return value is false when s is
// not numeric; callers should then keep the original string.
func Parse(s string) (Number, bool) {
	stripped := strip(s)
	f, ok := parseFloat(stripped)
	if !ok {
		return Number{}, false
	}
	if strings.Contains(stripped, ".") {
		return Number{Float: f}, true
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return Number{Float: f}, true
	}
	return Number{Int: int64(f), Integer: true}, true
}

// Density returns the fraction of cells in grid that look like numbers.
// An empty grid has density 0.
func Density(grid [][]string) float64 {
	total, numeric := 0, 0
	for _, row := range grid {
		for _, cell := range row {
			total++
			if LooksLikeNumber(cell) {
				numeric++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(numeric) / float64(total)
}
