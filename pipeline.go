package folio

import (
	"context"

	"go.uber.org/zap"

	"github.com/tsawler/folio/charts"
	"github.com/tsawler/folio/compose"
	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/tables"
)

// pipeline holds the per-document stage instances. It has no mutable
// state, so one pipeline serves every page concurrently.
type pipeline struct {
	config   config.Config
	tables   *tables.Extractor
	charts   *charts.Detector
	composer *compose.Composer
	logger   *zap.Logger
}

// pageStats summarizes what happened on one page
type pageStats struct {
	tables         int
	charts         int
	rejected       int
	suppressed     int
	failedBackends []string
}

func newPipeline(opts ExtractOptions) *pipeline {
	return &pipeline{
		config:   opts.config,
		tables:   tables.NewExtractor(opts.config, opts.logger, opts.backends...),
		charts:   charts.NewDetector(opts.config),
		composer: compose.NewComposer(opts.config),
		logger:   opts.logger,
	}
}

// process runs every stage on one page in dependency order:
// spans, blocks, paragraphs, tables, charts, composition
func (p *pipeline) process(ctx context.Context, raw *model.RawPage) (*model.Page, []Warning, pageStats) {
	spans := layout.NormalizeRuns(raw.Runs)
	blocks := layout.GroupBlocks(spans, p.config.LineTolerance)
	paragraphs := layout.ClassifyBlocks(p.config, blocks)

	tableResult := p.tables.Extract(ctx, raw)
	chartItems := p.charts.Detect(raw.Drawings, raw.Height, blocks)

	composed := p.composer.Compose(tableResult.Tables, chartItems, paragraphs)

	page := model.NewPage(raw.Number)
	page.Content = composed.Items

	stats := pageStats{
		tables:     len(tableResult.Tables),
		charts:     len(chartItems),
		rejected:   tableResult.Rejected,
		suppressed: composed.Suppressed,
	}

	var warnings []Warning
	for _, f := range tableResult.Failures {
		stats.failedBackends = append(stats.failedBackends, f.Backend)
		warnings = append(warnings, Warning{
			Kind:    WarningBackendFailed,
			Page:    raw.Number,
			Backend: f.Backend,
			Err:     f.Err,
		})
	}

	p.logger.Debug("page composed",
		zap.Int("page", raw.Number),
		zap.Int("spans", len(spans)),
		zap.Int("blocks", len(blocks)),
		zap.Int("tables", stats.tables),
		zap.Int("charts", stats.charts),
		zap.Int("paragraphs", len(paragraphs)-stats.suppressed),
		zap.Int("suppressed", stats.suppressed))

	return page, warnings, stats
}
