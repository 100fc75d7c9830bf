package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/busybeaver/analyze"
)

// Metrics are the prometheus instruments updated by Run.
type Metrics struct {
	// Machines counts analyzed machines by outcome kind.
	Machines *prometheus.CounterVec

	// Chunks counts finished chunks.
	Chunks prometheus.Counter

	// Busy is the number of workers currently analyzing a chunk.
	Busy prometheus.Gauge
}

// NewMetrics registers the search metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		Machines: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bbgame_machines_total",
			Help: "Analyzed Turing machines by outcome",
		}, []string{"outcome"}),
		Chunks: factory.NewCounter(prometheus.CounterOpts{
			Name: "bbgame_chunks_total",
			Help: "Finished index chunks",
		}),
		Busy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bbgame_busy_workers",
			Help: "Workers analyzing a chunk",
		}),
	}

	// export every outcome from the start, zeros included
	for _, k := range analyze.Kinds() {
		m.Machines.WithLabelValues(k.String())
	}

	return m
}

// observe flushes per-kind chunk tallies. m may be nil.
func (m *Metrics) observe(kinds *[analyze.NumKinds]uint64) {
	if m == nil {
		return
	}
	for k, c := range kinds {
		if c > 0 {
			m.Machines.WithLabelValues(analyze.Kind(k).String()).Add(float64(c))
		}
	}
	m.Chunks.Inc()
}

func (m *Metrics) busy(delta float64) {
	if m != nil {
		m.Busy.Add(delta)
	}
}
