// Package model provides the intermediate representation (IR) for structured
// page content recovered from low-level document geometry.
//
// # Inputs
//
// A geometry provider reports each page as a [RawPage]: positioned
// [TextRun] values, vector [Drawing] rectangles, zero or more
// [CandidateGrid] values from table detectors, and the page height.
//
// # Content Items
//
// Composed pages hold an ordered sequence of [Item] values. The union is
// closed; the concrete types are:
//
//   - [Paragraph] - a block of text tagged with its current section
//   - [Table] - a cleaned, validated grid whose first row is the header
//   - [Chart] - a vector-drawing region with optional label/value data
//
// # Geometry
//
// [BBox] uses device units with the origin in the top-left corner, so Y0 is
// the top edge and Y1 the bottom edge. Intersection and area helpers never
// return negative values.
//
// # Serialization
//
// [Document] marshals to the JSON shape
//
//	{"pages": [{"page_number": 1, "content": [{"type": "paragraph", ...}]}]}
//
// and [Table.ToCSV] renders a table for tabular export.
package model
