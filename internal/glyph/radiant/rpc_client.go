// Package radiant is a JSON-RPC client for a Radiant node.
package radiant

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

// DefaultTimeout bounds a single RPC call.
const DefaultTimeout = 30 * time.Second

// Block verbosity levels accepted by getblock.
const (
	VerbosityRaw    = 0
	VerbosityHeader = 1
	VerbosityTx     = 2
)

// ChainInfo is the subset of getblockchaininfo the importer uses.
type ChainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	ChainWork            string  `json:"chainwork"`
	Pruned               bool    `json:"pruned"`
}

// Client issues RPC calls with a per-call timeout and records metrics.
type Client struct {
	caller  RawCaller
	metrics RPCMetrics
	timeout time.Duration
}

// NewClient constructs a Client. A non-positive timeout selects DefaultTimeout.
func NewClient(caller RawCaller, metrics RPCMetrics, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{caller: caller, metrics: metrics, timeout: timeout}
}

type callResult struct {
	res json.RawMessage
	err error
}

// ExecuteCommand sends method with params and returns the raw result. The
// request runs under the client timeout and fails with ErrTimeout once it
// elapses.
func (c *Client) ExecuteCommand(ctx context.Context, method string, params ...any) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	raw := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		b, mErr := json.Marshal(p)
		if mErr != nil {
			return nil, fmt.Errorf("rpc %s: marshal param %d: %w", method, i, mErr)
		}
		raw = append(raw, b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		r, callErr := c.caller.RawRequest(ctx, method, raw)
		done <- callResult{res: r, err: callErr}
	}()

	select {
	case <-ctx.Done():
		return nil, c.contextError(ctx, method)
	case r := <-done:
		if r.err != nil {
			if ctx.Err() != nil {
				return nil, c.contextError(ctx, method)
			}
			return nil, classifyError(method, r.err)
		}
		return r.res, nil
	}
}

func (c *Client) contextError(ctx context.Context, method string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("rpc %s: %w after %s", method, ErrTimeout, c.timeout)
	}
	return ctx.Err()
}

func (c *Client) call(ctx context.Context, out any, method string, params ...any) error {
	res, err := c.ExecuteCommand(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res, out); err != nil {
		return fmt.Errorf("rpc %s: decode result: %w", method, err)
	}
	return nil
}

// GetBlockCount returns the height of the best chain.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.call(ctx, &count, "getblockcount")
	return count, err
}

// GetBlockHash returns the hash of the block at height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	err := c.call(ctx, &hash, "getblockhash", height)
	return hash, err
}

// GetBlock returns getblock output for hash at the given verbosity.
func (c *Client) GetBlock(ctx context.Context, hash string, verbosity int) (json.RawMessage, error) {
	return c.ExecuteCommand(ctx, "getblock", hash, verbosity)
}

// GetBlockByHeight resolves height to a hash first.
func (c *Client) GetBlockByHeight(ctx context.Context, height int64, verbosity int) (json.RawMessage, error) {
	hash, err := c.GetBlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	return c.GetBlock(ctx, hash, verbosity)
}

// GetBlockRaw returns the serialized block bytes.
func (c *Client) GetBlockRaw(ctx context.Context, hash string) ([]byte, error) {
	var encoded string
	if err := c.call(ctx, &encoded, "getblock", hash, VerbosityRaw); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("rpc getblock: decode raw block %s: %w", hash, err)
	}
	return b, nil
}

// GetBlockVerbose returns the parsed block with transaction detail.
func (c *Client) GetBlockVerbose(ctx context.Context, hash string) (model.Block, error) {
	var res btcjson.GetBlockVerboseTxResult
	if err := c.call(ctx, &res, "getblock", hash, VerbosityTx); err != nil {
		return model.Block{}, err
	}
	return BuildBlock(&res)
}

// GetRawTransaction returns getrawtransaction output: the serialized hex
// string, or the decoded object when verbose is set.
func (c *Client) GetRawTransaction(ctx context.Context, txid string, verbose bool) (json.RawMessage, error) {
	return c.ExecuteCommand(ctx, "getrawtransaction", txid, verbose)
}

// GetTransaction returns the decoded transaction for txid.
func (c *Client) GetTransaction(ctx context.Context, txid string) (model.Transaction, error) {
	var res btcjson.TxRawResult
	if err := c.call(ctx, &res, "getrawtransaction", txid, true); err != nil {
		return model.Transaction{}, err
	}
	return BuildTransaction(&res)
}

// DecodeRawTransaction decodes a serialized transaction.
func (c *Client) DecodeRawTransaction(ctx context.Context, rawHex string) (model.Transaction, error) {
	var res btcjson.TxRawResult
	if err := c.call(ctx, &res, "decoderawtransaction", rawHex); err != nil {
		return model.Transaction{}, err
	}
	return BuildTransaction(&res)
}

// GetBlockchainInfo returns the node's chain summary.
func (c *Client) GetBlockchainInfo(ctx context.Context) (ChainInfo, error) {
	var info ChainInfo
	err := c.call(ctx, &info, "getblockchaininfo")
	return info, err
}
