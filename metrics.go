package folio

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline outcomes. A nil *Metrics records nothing.
type Metrics struct {
	pages                prometheus.Counter
	tables               prometheus.Counter
	charts               prometheus.Counter
	gridsRejected        prometheus.Counter
	paragraphsSuppressed prometheus.Counter
	backendFailures      *prometheus.CounterVec
}

// NewMetrics creates the pipeline counters and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "pages_processed_total",
			Help:      "Pages run through the structuring pipeline.",
		}),
		tables: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "tables_emitted_total",
			Help:      "Tables that passed cleaning and validation.",
		}),
		charts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "charts_emitted_total",
			Help:      "Drawing regions emitted as charts.",
		}),
		gridsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "grids_rejected_total",
			Help:      "Candidate grids dropped by cleaning or numeric-density validation.",
		}),
		paragraphsSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "paragraphs_suppressed_total",
			Help:      "Paragraphs dropped because a table or chart covered them.",
		}),
		backendFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "backend_failures_total",
			Help:      "Table backend failures, by backend.",
		}, []string{"backend"}),
	}

	for _, c := range []prometheus.Collector{
		m.pages, m.tables, m.charts, m.gridsRejected, m.paragraphsSuppressed, m.backendFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observePage(s pageStats) {
	if m == nil {
		return
	}
	m.pages.Inc()
	m.tables.Add(float64(s.tables))
	m.charts.Add(float64(s.charts))
	m.gridsRejected.Add(float64(s.rejected))
	m.paragraphsSuppressed.Add(float64(s.suppressed))
	for _, b := range s.failedBackends {
		m.backendFailures.WithLabelValues(b).Inc()
	}
}
