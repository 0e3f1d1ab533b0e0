package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "som"

type Prometheus struct {
	Iterations        prometheus.Counter
	Radius            prometheus.Gauge
	Rate              prometheus.Gauge
	Updated           prometheus.Histogram
	QuantizationError prometheus.Gauge
	Hits              prometheus.Gauge
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Number of training iterations.",
		}),
		Radius: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "radius",
			Help:      "Current neighbourhood radius.",
		}),
		Rate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "learning_rate",
			Help:      "Current learning rate.",
		}),
		Updated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "updated_cells",
			Help:      "Number of cells updated per iteration.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		QuantizationError: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quantization_error",
			Help:      "Mean distance of the samples to their best matching unit.",
		}),
		Hits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hit_cells",
			Help:      "Number of cells with at least one sample.",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.Iterations,
		p.Radius,
		p.Rate,
		p.Updated,
		p.QuantizationError,
		p.Hits,
	}
}
