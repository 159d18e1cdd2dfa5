package tables

import (
	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/numeric"
)

// Validator decides whether a cleaned grid is a real data table
type Validator struct {
	minNumericFrac float64
}

// NewValidator creates a validator using cfg.MinTableNumericFrac
func NewValidator(cfg config.Config) *Validator {
	return &Validator{minNumericFrac: cfg.MinTableNumericFrac}
}

// Valid reports whether grid is non-empty and numerically dense enough
func (v *Validator) Valid(grid [][]string) bool {
	if !hasNonEmptyRow(grid) {
		return false
	}
	return numeric.Density(grid) >= v.minNumericFrac
}

func hasNonEmptyRow(grid [][]string) bool {
	for _, row := range grid {
		if len(row) > 0 {
			return true
		}
	}
	return false
}
