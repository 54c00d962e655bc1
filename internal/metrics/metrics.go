// Package metrics counts simulator activity with Prometheus collectors.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aditya-r-m/twisty-tesseract"
)

// Collector holds the simulator metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	movesEnqueued  prometheus.Counter
	movesRejected  prometheus.Counter
	movesCommitted *prometheus.CounterVec
	ticks          prometheus.Counter
	frames         prometheus.Counter
	visible        prometheus.Histogram
}

// New creates a collector with a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		registry: reg,

		// movesEnqueued counts tokens accepted into the queue
		movesEnqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "tesseract_moves_enqueued_total",
			Help: "Total moves accepted into the animation queue",
		}),

		// movesRejected counts malformed tokens
		movesRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "tesseract_moves_rejected_total",
			Help: "Total move tokens dropped as malformed",
		}),

		// movesCommitted counts committed moves by layer selector
		movesCommitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tesseract_moves_committed_total",
			Help: "Total moves applied to the puzzle state by layer",
		}, []string{"layer"}),

		ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "tesseract_ticks_total",
			Help: "Total animation ticks",
		}),

		frames: f.NewCounter(prometheus.CounterOpts{
			Name: "tesseract_frames_projected_total",
			Help: "Total drawing lists projected",
		}),

		visible: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tesseract_frame_visible_facelets",
			Help:    "Number of facelets in each projected drawing list",
			Buckets: prometheus.LinearBuckets(64, 64, 8),
		}),
	}
}

// Attach registers the collector's callbacks on sim.
func (c *Collector) Attach(sim *tesseract.Simulator) {
	sim.OnEnqueue(func(tesseract.Move) { c.movesEnqueued.Inc() })
	sim.OnReject(func(string) { c.movesRejected.Inc() })
	sim.OnCommit(func(m tesseract.Move) {
		c.movesCommitted.WithLabelValues(fmt.Sprint(int(m.Layer))).Inc()
	})
}

// Tick records one animation tick.
func (c *Collector) Tick() {
	c.ticks.Inc()
}

// Frame records one projected drawing list with n entries.
func (c *Collector) Frame(n int) {
	c.frames.Inc()
	c.visible.Observe(float64(n))
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteFile writes the current values in the Prometheus text format.
func (c *Collector) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
