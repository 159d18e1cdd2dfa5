package folio

import (
	"go.uber.org/zap"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/tables"
)

// ExtractOptions holds configuration for document extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Thresholds for every pipeline stage
	config config.Config

	// Page concurrency set by Workers; overrides config.Workers when set
	workers    int
	workersSet bool

	// Table backends, tried in order
	backends []tables.Backend

	// Upscale factor and language for page images sent to OCR
	ocrScale    float64
	ocrLanguage string

	// Observability
	logger  *zap.Logger
	metrics *Metrics
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:    nil, // nil means all pages
		config:   config.Default(),
		backends: []tables.Backend{tables.ProviderBackend{}},
		ocrScale: 2.0,
		logger:   zap.NewNop(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		config:      o.config.Clone(),
		workers:     o.workers,
		workersSet:  o.workersSet,
		ocrScale:    o.ocrScale,
		ocrLanguage: o.ocrLanguage,
		logger:      o.logger,
		metrics:     o.metrics,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.backends != nil {
		newOpts.backends = make([]tables.Backend, len(o.backends))
		copy(newOpts.backends, o.backends)
	}

	return newOpts
}

// workerCount returns the page concurrency: the Workers setting if one was
// made, otherwise the value from the configuration.
func (o ExtractOptions) workerCount() int {
	if o.workersSet {
		return o.workers
	}
	return o.config.Workers
}
