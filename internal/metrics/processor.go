package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processorBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glyphindexer",
		Subsystem: "processor",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"status"})

	processorBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glyphindexer",
		Subsystem: "processor",
		Name:      "block_duration_seconds",
		Help:      "Duration of processing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	processorOutputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glyphindexer",
		Subsystem: "processor",
		Name:      "outputs_total",
		Help:      "Count of recognized outputs by contract type.",
	}, []string{"contract_type"})

	processorGlyphsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glyphindexer",
		Subsystem: "processor",
		Name:      "glyph_events_total",
		Help:      "Count of glyph lifecycle events.",
	}, []string{"event"})
)

// Processor tracks metrics for block processing.
type Processor struct{}

// NewProcessor constructs a Processor collector.
func NewProcessor() *Processor {
	return &Processor{}
}

// ObserveBlock records a processed block.
func (m Processor) ObserveBlock(err error, started time.Time) {
	status := statusOf(err)
	processorBlockTotal.WithLabelValues(status).Inc()
	processorBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// IncOutput counts a recognized output.
func (m Processor) IncOutput(contractType string) {
	processorOutputsTotal.WithLabelValues(contractType).Inc()
}

// IncGlyphEvent counts a glyph lifecycle event.
func (m Processor) IncGlyphEvent(event string) {
	processorGlyphsTotal.WithLabelValues(event).Inc()
}
