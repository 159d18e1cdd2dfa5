package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// BBox represents a bounding box (rectangle) in device units.
// The origin is the top-left corner of the page, so Y0 <= Y1 for a
// normalized box.
type BBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewBBox creates a bounding box from corner coordinates
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Area returns the area of the bounding box. Inverted and degenerate
// boxes have zero area.
func (b BBox) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

// IntersectionArea returns the area shared by two boxes.
// Boxes that only touch along an edge share no area.
func (b BBox) IntersectionArea(other BBox) float64 {
	x0 := math.Max(b.X0, other.X0)
	y0 := math.Max(b.Y0, other.Y0)
	x1 := math.Min(b.X1, other.X1)
	y1 := math.Min(b.Y1, other.Y1)
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return (x1 - x0) * (y1 - y0)
}

// Intersects reports whether two boxes share a positive area
func (b BBox) Intersects(other BBox) bool {
	return b.IntersectionArea(other) > 0
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X0: b.X0 - margin,
		Y0: b.Y0 - margin,
		X1: b.X1 + margin,
		Y1: b.Y1 + margin,
	}
}

// CoveredFraction returns the share of b's own area covered by other.
// The denominator is floored at 1.0 so degenerate boxes never divide by zero.
func (b BBox) CoveredFraction(other BBox) float64 {
	return b.IntersectionArea(other) / math.Max(1.0, b.Area())
}

// MarshalJSON encodes the box as [x0, y0, x1, y1]
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.X0, b.Y0, b.X1, b.Y1})
}

// UnmarshalJSON decodes a box from [x0, y0, x1, y1]
func (b *BBox) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("bbox: %w", err)
	}
	if len(coords) != 4 {
		return fmt.Errorf("bbox: expected 4 coordinates, got %d", len(coords))
	}
	*b = BBox{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
	return nil
}
