package radiant

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/pkg/safe"
)

// ErrMalformed is returned when node output does not have the expected shape.
var ErrMalformed = errors.New("malformed node response")

// BuildBlock validates a verbose block and converts it to the model view.
func BuildBlock(res *btcjson.GetBlockVerboseTxResult) (model.Block, error) {
	if res == nil {
		return model.Block{}, fmt.Errorf("%w: nil block", ErrMalformed)
	}
	if !isHash(res.Hash) {
		return model.Block{}, fmt.Errorf("%w: block hash %q", ErrMalformed, res.Hash)
	}
	if res.Height < 0 {
		return model.Block{}, fmt.Errorf("%w: block %s height %d", ErrMalformed, res.Hash, res.Height)
	}

	block := model.Block{
		Hash:         res.Hash,
		Height:       res.Height,
		PreviousHash: res.PreviousHash,
		Time:         time.Unix(res.Time, 0).UTC(),
		Transactions: make([]model.Transaction, 0, len(res.Tx)),
	}
	for i := range res.Tx {
		tx, err := BuildTransaction(&res.Tx[i])
		if err != nil {
			return model.Block{}, fmt.Errorf("block %s tx %d: %w", res.Hash, i, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}
	return block, nil
}

// BuildTransaction validates a verbose transaction.
func BuildTransaction(res *btcjson.TxRawResult) (model.Transaction, error) {
	if res == nil {
		return model.Transaction{}, fmt.Errorf("%w: nil transaction", ErrMalformed)
	}
	if !isHash(res.Txid) {
		return model.Transaction{}, fmt.Errorf("%w: txid %q", ErrMalformed, res.Txid)
	}

	tx := model.Transaction{
		TxID:    res.Txid,
		Inputs:  make([]model.Input, 0, len(res.Vin)),
		Outputs: make([]model.Output, 0, len(res.Vout)),
	}
	for i, vin := range res.Vin {
		if vin.IsCoinBase() {
			tx.Inputs = append(tx.Inputs, model.Input{Index: i, Coinbase: true})
			continue
		}
		if !isHash(vin.Txid) {
			return model.Transaction{}, fmt.Errorf("%w: tx %s input %d prev txid %q", ErrMalformed, res.Txid, i, vin.Txid)
		}
		if vin.ScriptSig == nil {
			return model.Transaction{}, fmt.Errorf("%w: tx %s input %d has no scriptSig", ErrMalformed, res.Txid, i)
		}
		tx.Inputs = append(tx.Inputs, model.Input{
			Index:     i,
			PrevTxID:  vin.Txid,
			PrevVout:  vin.Vout,
			ScriptHex: vin.ScriptSig.Hex,
		})
	}
	for i, vout := range res.Vout {
		n, err := safe.Uint32(i)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d: %w", res.Txid, i, err)
		}
		if vout.N != n {
			return model.Transaction{}, fmt.Errorf("%w: tx %s output %d reports n=%d", ErrMalformed, res.Txid, i, vout.N)
		}
		amount, err := btcutil.NewAmount(vout.Value)
		if err != nil || amount < 0 {
			return model.Transaction{}, fmt.Errorf("%w: tx %s output %d value %v", ErrMalformed, res.Txid, i, vout.Value)
		}
		tx.Outputs = append(tx.Outputs, model.Output{
			N:         vout.N,
			Value:     int64(amount),
			ScriptHex: vout.ScriptPubKey.Hex,
			ScriptAsm: vout.ScriptPubKey.Asm,
		})
	}
	return tx, nil
}

// HeaderBytes returns the serialized 80-byte header at the start of a raw block.
func HeaderBytes(rawBlock []byte) ([]byte, error) {
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(rawBlock)); err != nil {
		return nil, fmt.Errorf("%w: block header: %v", ErrMalformed, err)
	}
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	if err := header.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize block header: %w", err)
	}
	return buf.Bytes(), nil
}

func isHash(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
