package folio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/ocr"
	"github.com/tsawler/folio/source"
	"github.com/tsawler/folio/tables"
)

// Extractor provides a fluent interface for structuring documents.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	src      source.Source

	// Lifecycle
	ownsSource bool // true if we opened the source and should close it

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		src:        e.src,
		ownsSource: e.ownsSource,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.src != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := openFile(e.filename, e.options)
	if err != nil {
		return err
	}
	e.src = src
	e.ownsSource = true
	return nil
}

// openFile picks a source for filename from its leading bytes or extension.
func openFile(filename string, opts ExtractOptions) (source.Source, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", source.ErrInputMissing, filename)
		}
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	switch f := format.Resolve(filename, data); {
	case f == format.Geometry:
		return source.Decode(bytes.NewReader(data))
	case f.IsImage():
		return ocr.NewTesseractSource(opts.ocrScale, opts.ocrLanguage, data)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filename)
	}
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.src != nil {
		err := e.src.Close()
		e.src = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := folio.Open("factsheet.json").Pages(1, 3).Document()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Config replaces the pipeline thresholds. An invalid configuration is
// reported by the terminal operation.
//
// Example:
//
//	cfg := config.Default()
//	cfg.OverlapThreshold = 0.8
//	doc, _, err := folio.Open("factsheet.json").Config(cfg).Document()
func (e *Extractor) Config(cfg config.Config) *Extractor {
	newExt := e.clone()
	if err := cfg.Validate(); err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.config = cfg.Clone()
	return newExt
}

// ConfigFile loads pipeline thresholds from a YAML file.
func (e *Extractor) ConfigFile(path string) *Extractor {
	newExt := e.clone()
	cfg, err := config.Load(path)
	if err != nil {
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	newExt.options.config = cfg
	return newExt
}

// Workers sets how many pages are processed concurrently.
// Values below 2 process pages sequentially. The setting takes precedence
// over the workers value of any Config or ConfigFile call, before or after.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	newExt.options.workersSet = true
	return newExt
}

// Backends replaces the ordered list of table backends. The default list
// holds only tables.ProviderBackend, which passes through grids attached
// to each page by the source.
func (e *Extractor) Backends(backends ...tables.Backend) *Extractor {
	newExt := e.clone()
	newExt.options.backends = append([]tables.Backend(nil), backends...)
	return newExt
}

// OCRScale sets the factor page images are enlarged by before recognition.
// Values of 1 or less leave images at their original size.
func (e *Extractor) OCRScale(scale float64) *Extractor {
	newExt := e.clone()
	newExt.options.ocrScale = scale
	return newExt
}

// OCRLanguage sets the Tesseract language used for page images, for
// example "eng" or "eng+fra". The default is the engine's own.
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// Logger sets the logger used for backend failures and page summaries.
func (e *Extractor) Logger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// Metrics sets the counters updated for every processed page.
func (e *Extractor) Metrics(m *Metrics) *Extractor {
	newExt := e.clone()
	newExt.options.metrics = m
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the source.
// This is a terminal operation that closes a source opened by Open.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer e.Close()

	return e.src.PageCount(), nil
}

// Document structures the configured pages using a background context.
// See DocumentContext.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	return e.DocumentContext(context.Background())
}

// DocumentContext structures the configured pages and returns them in page
// order. This is a terminal operation that closes a source opened by Open.
//
// Failures confined to a page (the source cannot produce it, or a table
// backend fails) are returned as warnings and the page keeps whatever
// content survived. Only an unresolvable input, an invalid configuration or
// cancellation of ctx produce an error, and then no document is returned.
//
// Example:
//
//	doc, warnings, err := folio.Open("factsheet.json").DocumentContext(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
func (e *Extractor) DocumentContext(ctx context.Context) (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageIndices, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	p := newPipeline(e.options)
	pages := make([]*model.Page, len(pageIndices))
	warnings := make([][]Warning, len(pageIndices))

	run := func(ctx context.Context, slot int) {
		pages[slot], warnings[slot] = e.processPage(ctx, p, pageIndices[slot])
	}

	if workers := e.options.workerCount(); workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for slot := range pageIndices {
			if gctx.Err() != nil {
				break
			}
			slot := slot
			g.Go(func() error {
				run(gctx, slot)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for slot := range pageIndices {
			if ctx.Err() != nil {
				break
			}
			run(ctx, slot)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	var all []Warning
	for slot, page := range pages {
		doc.AddPage(page)
		all = append(all, warnings[slot]...)
	}

	return doc, all, nil
}

// processPage loads and structures one page. A page the source cannot
// produce is returned empty with a warning.
func (e *Extractor) processPage(ctx context.Context, p *pipeline, index int) (*model.Page, []Warning) {
	raw, err := e.src.Page(ctx, index)
	if err != nil {
		e.options.logger.Warn("page unavailable",
			zap.Int("page", index+1),
			zap.Error(err))
		return model.NewPage(index + 1), []Warning{{
			Kind: WarningPageUnavailable,
			Page: index + 1,
			Err:  err,
		}}
	}
	if raw.Number == 0 {
		numbered := *raw
		numbered.Number = index + 1
		raw = &numbered
	}

	page, warnings, stats := p.process(ctx, raw)
	e.options.metrics.observePage(stats)
	return page, warnings
}

// resolvePages converts the 1-indexed page selection into sorted,
// de-duplicated 0-indexed page indices.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.src.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	sort.Ints(pageIndices)
	return pageIndices, nil
}
