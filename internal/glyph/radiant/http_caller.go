package radiant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/ybbus/jsonrpc/v3"
)

// HTTPCaller posts JSON-RPC requests to a node. Every request is bound to the
// call context, so an abandoned call releases its connection instead of
// holding up the next one.
type HTTPCaller struct {
	client jsonrpc.RPCClient
}

// NewHTTPCaller builds an HTTPCaller for an http:// endpoint. httpClient may
// be nil.
func NewHTTPCaller(endpoint, user, password string, httpClient *http.Client) (*HTTPCaller, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	opts := &jsonrpc.RPCClientOpts{
		HTTPClient:         httpClient,
		AllowUnknownFields: true,
	}
	if user != "" || password != "" {
		opts.CustomHeaders = map[string]string{
			"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password)),
		}
	}
	return &HTTPCaller{client: jsonrpc.NewClientWithOpts(endpoint, opts)}, nil
}

// RawRequest sends one request. Node error envelopes, including those sent
// with a non-2xx status, are returned as *btcjson.RPCError.
func (c *HTTPCaller) RawRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	resp, err := c.client.CallRaw(ctx, &jsonrpc.RPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if resp != nil && resp.Error != nil {
		return nil, &btcjson.RPCError{Code: btcjson.RPCErrorCode(resp.Error.Code), Message: resp.Error.Message}
	}
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("empty rpc response")
	}

	raw, err := json.Marshal(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("encode rpc result: %w", err)
	}
	return raw, nil
}
