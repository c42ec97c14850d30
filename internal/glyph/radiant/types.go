//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package radiant

import (
	"context"
	"encoding/json"
	"time"
)

type (
	// RawCaller performs a single JSON-RPC request. It must abandon the
	// request when ctx is done.
	RawCaller interface {
		RawRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
