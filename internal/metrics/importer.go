package metrics

import (
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glyphindexer",
		Subsystem: "importer",
		Name:      "batch_total",
		Help:      "Count of import batches.",
	}, []string{"network", "status"})

	importerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glyphindexer",
		Subsystem: "importer",
		Name:      "batch_duration_seconds",
		Help:      "Duration of an import batch.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
	}, []string{"network", "status"})

	importerBatchBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glyphindexer",
		Subsystem: "importer",
		Name:      "batch_blocks",
		Help:      "Number of blocks committed per import batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	importerLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "glyphindexer",
		Subsystem: "importer",
		Name:      "last_block_height",
		Help:      "Height of the last committed block.",
	}, []string{"network"})

	importerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "glyphindexer",
		Subsystem: "importer",
		Name:      "chain_block_height",
		Help:      "Best chain height reported by the node.",
	}, []string{"network"})
)

// Importer tracks metrics for the import loop.
type Importer struct {
	network model.Network
}

// NewImporter constructs an Importer collector.
func NewImporter(network model.Network) *Importer {
	if network == "" {
		network = "unknown"
	}
	return &Importer{network: network}
}

// ObserveBatch records a batch outcome and the number of committed blocks.
func (m Importer) ObserveBatch(err error, blocks int, started time.Time) {
	status := statusOf(err)
	importerBatchTotal.WithLabelValues(string(m.network), status).Inc()
	importerBatchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	importerBatchBlocks.WithLabelValues(string(m.network)).
		Observe(float64(blocks))
}

// SetHeights records the committed and chain heights.
func (m Importer) SetHeights(last, chain int64) {
	importerLastHeight.WithLabelValues(string(m.network)).Set(float64(last))
	importerChainHeight.WithLabelValues(string(m.network)).Set(float64(chain))
}
