package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glyphindexer",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"store", "operation", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glyphindexer",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"store", "operation", "status"})
)

// Repository tracks metrics for one backing store.
type Repository struct {
	store string
}

// NewMongoRepository creates a collector for the MongoDB repository.
func NewMongoRepository() *Repository {
	return &Repository{store: "mongo"}
}

// NewClickhouseRepository creates a collector for the ClickHouse repository.
func NewClickhouseRepository() *Repository {
	return &Repository{store: "clickhouse"}
}

// NewRedisCache creates a collector for the Redis stats cache.
func NewRedisCache() *Repository {
	return &Repository{store: "redis"}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryRequestsTotal.WithLabelValues(m.store, operation, status).Inc()
	repositoryRequestDuration.WithLabelValues(m.store, operation, status).Observe(time.Since(started).Seconds())
}
