package tables

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/model"
)

// ErrBackendPanic wraps a panic recovered from a backend
var ErrBackendPanic = errors.New("table backend panicked")

// Backend proposes raw candidate grids for a page
type Backend interface {
	// Name returns the backend name used in logs and warnings
	Name() string

	// Detect returns the candidate grids found on page
	Detect(ctx context.Context, page *model.RawPage) ([]model.CandidateGrid, error)
}

// ProviderBackend passes through grids the geometry provider already
// attached to the page. Grids tagged with a backend name are reported
// under that name.
type ProviderBackend struct{}

// Name returns the backend name
func (ProviderBackend) Name() string { return "provider" }

// Detect returns the page's precomputed grids
func (ProviderBackend) Detect(_ context.Context, page *model.RawPage) ([]model.CandidateGrid, error) {
	return page.Grids, nil
}

// BackendFunc adapts a function to the Backend interface
type BackendFunc struct {
	BackendName string
	Fn          func(ctx context.Context, page *model.RawPage) ([]model.CandidateGrid, error)
}

// Name returns the backend name
func (f BackendFunc) Name() string { return f.BackendName }

// Detect calls the wrapped function
func (f BackendFunc) Detect(ctx context.Context, page *model.RawPage) ([]model.CandidateGrid, error) {
	return f.Fn(ctx, page)
}

// Failure records a backend that could not produce grids for a page
type Failure struct {
	Backend string
	Page    int
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("page %d: backend %s: %v", f.Page, f.Backend, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result holds the outcome of running every backend on one page
type Result struct {
	Tables   []*model.Table
	Rejected int
	Failures []Failure
}

// Extractor runs backends in order and keeps every grid that survives
// cleaning and validation
type Extractor struct {
	backends  []Backend
	validator *Validator
	logger    *zap.Logger
}

// NewExtractor creates an extractor for the given ordered backends.
// A nil logger disables logging.
func NewExtractor(cfg config.Config, logger *zap.Logger, backends ...Backend) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		backends:  append([]Backend(nil), backends...),
		validator: NewValidator(cfg),
		logger:    logger,
	}
}

// Backends returns the backend names in the order they are tried
func (e *Extractor) Backends() []string {
	names := make([]string, len(e.backends))
	for i, b := range e.backends {
		names[i] = b.Name()
	}
	return names
}

// Extract runs every backend on page. Tables are returned in backend order,
// then in the order each backend proposed them.
func (e *Extractor) Extract(ctx context.Context, page *model.RawPage) Result {
	var res Result
	for _, backend := range e.backends {
		grids, err := detect(ctx, backend, page)
		if err != nil {
			e.logger.Warn("table backend failed",
				zap.Int("page", page.Number),
				zap.String("backend", backend.Name()),
				zap.Error(err))
			res.Failures = append(res.Failures, Failure{Backend: backend.Name(), Page: page.Number, Err: err})
			continue
		}

		for _, g := range grids {
			cleaned := Clean(g.Rows)
			if !e.validator.Valid(cleaned) {
				res.Rejected++
				e.logger.Debug("candidate grid rejected",
					zap.Int("page", page.Number),
					zap.String("backend", backend.Name()),
					zap.Int("rows", len(g.Rows)))
				continue
			}
			name := g.Backend
			if name == "" {
				name = backend.Name()
			}
			res.Tables = append(res.Tables, &model.Table{
				Data:        cleaned,
				Description: "Table",
				BBox:        g.BBox,
				Backend:     name,
			})
		}
	}
	return res
}

// detect calls backend.Detect, converting a panic into an error
func detect(ctx context.Context, backend Backend, page *model.RawPage) (grids []model.CandidateGrid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grids = nil
			err = fmt.Errorf("%w: %v", ErrBackendPanic, r)
		}
	}()
	return backend.Detect(ctx, page)
}
