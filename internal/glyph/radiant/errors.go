package radiant

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// ErrTimeout is returned when a call does not finish within the client timeout.
var ErrTimeout = errors.New("rpc call timed out")

// RPCError is an error envelope returned by the node.
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s: code %d: %s", e.Method, e.Code, e.Message)
}

// TransportError is any other failure talking to the node, including
// non-2xx responses without an error envelope.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyError maps caller failures onto the package error types.
func classifyError(method string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return &RPCError{Method: method, Code: int(rpcErr.Code), Message: rpcErr.Message}
	}
	return &TransportError{Method: method, Err: err}
}
