package metrics

import (
	"net/http"

	"github.com/drakos74/free-som/internal/som"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks the training of a map.
type Metrics struct {
	prometheus Prometheus
}

// New creates a new set of metrics and registers them to the given registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	p := NewPrometheusMetrics()
	for _, c := range p.collectors() {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return &Metrics{prometheus: p}, nil
}

// Observe records a single training iteration.
func (m *Metrics) Observe(step som.Step) {
	m.prometheus.Iterations.Inc()
	m.prometheus.Radius.Set(float64(step.Radius))
	m.prometheus.Rate.Set(step.Rate)
	m.prometheus.Updated.Observe(float64(step.Updated))
}

// Quality records the quality of the trained map.
func (m *Metrics) Quality(q som.Quality) {
	m.prometheus.QuantizationError.Set(q.QuantizationError)
	m.prometheus.Hits.Set(float64(q.Hits))
}

// Handler exposes the metrics of the given gatherer over http.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
