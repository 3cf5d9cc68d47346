package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts generation calls by document kind and outcome.
type Metrics struct {
	generated *prometheus.CounterVec
}

// NewMetrics registers the generation counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_generated_total",
				Help: "Document generation calls by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}
	if err := reg.Register(m.generated); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(kind string, f *Failure) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(kind, outcome(f)).Inc()
}
