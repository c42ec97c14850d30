package importer

import "time"

const (
	DefaultBatchSize = 50
	AdminBatchSize   = 10

	quickDelay     = 5 * time.Second
	pollInterval   = 5 * time.Minute
	retryDelay     = 1 * time.Minute
	releaseTimeout = 10 * time.Second
)
