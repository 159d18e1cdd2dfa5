// Package tables cleans and validates candidate table grids proposed by
// table-detection backends.
//
// # Backends
//
// Candidate grids come from types implementing the [Backend] interface.
// Backends are tried in a fixed order by an [Extractor]; a backend that
// returns an error or panics contributes nothing for that page and the
// failure is reported, never propagated:
//
//	ext := tables.NewExtractor(cfg, logger, tables.ProviderBackend{})
//	result := ext.Extract(ctx, page)
//
// # Cleaning
//
// [Clean] trims every cell, pads jagged rows, drops all-empty trailing
// columns and merges a header split across the first two rows:
//
//	[["Fund", ""], ["Name", "AUM"], ["X", "100"]]
//	→ [["Fund Name", "AUM"], ["X", "100"]]
//
// Headers spanning more than two rows are not merged.
//
// # Validation
//
// A [Validator] accepts a cleaned grid only when at least
// MinTableNumericFrac of its cells are numeric. This filters running text
// mis-segmented as a grid.
package tables
