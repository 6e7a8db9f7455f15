package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "graphsim"

// Metrics groups the collectors updated by a comparison run.
type Metrics struct {
	// Comparisons counts finished runs by outcome ("ok" or "error").
	Comparisons *prometheus.CounterVec

	// StageSeconds observes the wall time of each pipeline stage.
	StageSeconds *prometheus.HistogramVec

	MatchingWeight prometheus.Gauge
	PathDistance   prometheus.Gauge
	PathIterations prometheus.Histogram

	// SpectraSimilar is 1 when the last comparison found both spectra equal.
	SpectraSimilar prometheus.Gauge

	// MaxFlow holds the last endpoint max flow per graph ("a" or "b").
	MaxFlow *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total number of graph comparisons by outcome.",
		}, []string{"outcome"}),
		StageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each comparison stage.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		MatchingWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matching_weight",
			Help:      "Total weight of the last maximum-weight matching.",
		}),
		PathDistance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_distance",
			Help:      "Last shortest-path distance estimate.",
		}),
		PathIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_iterations",
			Help:      "Paths drained per distance estimate.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		SpectraSimilar: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "spectra_similar",
			Help:      "1 if the last HITS comparison matched, else 0.",
		}),
		MaxFlow: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_flow",
			Help:      "Last max flow between the path endpoints.",
		}, []string{"graph"}),
	}

	for _, c := range []prometheus.Collector{
		m.Comparisons, m.StageSeconds, m.MatchingWeight,
		m.PathDistance, m.PathIterations, m.SpectraSimilar, m.MaxFlow,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("telemetry: register metric: %w", err)
		}
	}

	return m, nil
}

// WriteTextfile dumps every metric gathered from g to path in the
// node_exporter textfile format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: write metrics textfile: %w", err)
	}

	return nil
}
