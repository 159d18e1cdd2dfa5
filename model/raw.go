package model

// TextRun is a positioned piece of text as reported by the page decoder
type TextRun struct {
	Text     string  `json:"text"`
	BBox     BBox    `json:"bbox"`
	FontSize float64 `json:"size"`
}

// Drawing is a vector-drawing rectangle as reported by the page decoder
type Drawing struct {
	Rect BBox `json:"rect"`
}

// CandidateGrid is a raw table grid proposed by a table-detection backend.
// Rows may be jagged. BBox is nil when the backend does not report a region.
type CandidateGrid struct {
	Backend string     `json:"backend,omitempty"`
	Rows    [][]string `json:"rows"`
	BBox    *BBox      `json:"bbox,omitempty"`
}

// RawPage holds everything the geometry provider knows about one page
type RawPage struct {
	Number   int     // 1-indexed page number
	Width    float64 // Page width in device units
	Height   float64 // Page height in device units
	Runs     []TextRun
	Drawings []Drawing
	Grids    []CandidateGrid
}
