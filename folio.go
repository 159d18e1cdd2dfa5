// Package folio provides a fluent API for turning rendered page geometry
// into a structured document of paragraphs, tables and charts.
//
// Basic usage:
//
//	doc, warnings, err := folio.Open("factsheet.json").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := folio.FromSource(src).
//	    Pages(1, 2).
//	    Workers(4).
//	    Backends(streamBackend, latticeBackend).
//	    DocumentContext(ctx)
//
// Each page is processed independently: text runs are grouped into blocks
// and classified into sectioned paragraphs, candidate grids are cleaned and
// validated into tables, drawing rectangles with nearby text become charts,
// and paragraphs covered by a table or chart are dropped. Page content is
// ordered tables, charts, then paragraphs.
//
// For lower-level control the layout, tables, charts and compose packages
// can be used directly.
package folio

import (
	"github.com/tsawler/folio/source"
)

// Open returns an Extractor for a JSON geometry dump or a scanned page
// image (PNG, JPEG, TIFF or BMP) on disk. Images are recognized with OCR,
// which requires the "ocr" build tag. A missing file is reported by the terminal operation as an error
// wrapping source.ErrInputMissing.
//
// Example:
//
//	doc, warnings, err := folio.Open("factsheet.json").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-opened source.
// The caller is responsible for closing the source.
//
// Example:
//
//	src := source.NewMemory(pages...)
//	doc, warnings, err := folio.FromSource(src).Document()
func FromSource(src source.Source) *Extractor {
	return &Extractor{
		src:        src,
		ownsSource: false,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	doc := folio.MustDocument(folio.Open("factsheet.json").Document())
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
