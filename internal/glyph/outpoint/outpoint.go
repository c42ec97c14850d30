// Package outpoint converts between transaction outpoints and the 36-byte
// references that Glyph records use as foreign keys.
//
// A reference in big-endian (display) orientation is the txid exactly as the
// node prints it followed by the vout as a big-endian uint32. The
// little-endian orientation is how the same outpoint is serialized inside
// scripts: txid in internal byte order followed by a little-endian vout.
package outpoint

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// TxIDSize is the byte length of a transaction id.
	TxIDSize = chainhash.HashSize
	// RefSize is the byte length of a reference.
	RefSize = TxIDSize + 4
)

// ErrInvalid is returned for malformed outpoints and references.
var ErrInvalid = errors.New("invalid outpoint")

// Outpoint identifies a transaction output.
type Outpoint struct {
	Hash chainhash.Hash
	Vout uint32
}

// New builds an outpoint from a display-order txid.
func New(txid string, vout uint32) (Outpoint, error) {
	if len(txid) != TxIDSize*2 {
		return Outpoint{}, fmt.Errorf("%w: txid %q must be %d hex chars", ErrInvalid, txid, TxIDSize*2)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return Outpoint{}, fmt.Errorf("%w: txid %q: %v", ErrInvalid, txid, err)
	}
	return Outpoint{Hash: *hash, Vout: vout}, nil
}

// Parse reads the "<txid>:<vout>" form.
func Parse(s string) (Outpoint, error) {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return Outpoint{}, fmt.Errorf("%w: %q has no vout separator", ErrInvalid, s)
	}
	vout, err := strconv.ParseUint(s[idx+1:], 10, 32)
	if err != nil {
		return Outpoint{}, fmt.Errorf("%w: vout in %q: %v", ErrInvalid, s, err)
	}
	return New(strings.ToLower(s[:idx]), uint32(vout))
}

// TxID returns the display-order transaction id.
func (o Outpoint) TxID() string {
	return o.Hash.String()
}

// String formats the outpoint as "<txid>:<vout>".
func (o Outpoint) String() string {
	return o.TxID() + ":" + strconv.FormatUint(uint64(o.Vout), 10)
}

// Ref returns the big-endian reference for the outpoint.
func (o Outpoint) Ref() Ref {
	var r Ref
	txid := o.Hash
	for i := 0; i < TxIDSize; i++ {
		r[i] = txid[TxIDSize-1-i]
	}
	binary.BigEndian.PutUint32(r[TxIDSize:], o.Vout)
	return r
}

// Ref is a 36-byte outpoint reference. Its orientation depends on where it
// came from; see the package documentation.
type Ref [RefSize]byte

// FromUTXO builds the big-endian reference for txid and vout.
func FromUTXO(txid string, vout uint32) (Ref, error) {
	o, err := New(txid, vout)
	if err != nil {
		return Ref{}, err
	}
	return o.Ref(), nil
}

// ParseRef reads the 72-hex-character reference form.
func ParseRef(s string) (Ref, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: ref %q: %v", ErrInvalid, s, err)
	}
	return RefFromBytes(b)
}

// RefFromBytes copies a 36-byte reference.
func RefFromBytes(b []byte) (Ref, error) {
	var r Ref
	if len(b) != RefSize {
		return r, fmt.Errorf("%w: ref has %d bytes, want %d", ErrInvalid, len(b), RefSize)
	}
	copy(r[:], b)
	return r, nil
}

// Hex returns the reference as lowercase hex.
func (r Ref) Hex() string {
	return hex.EncodeToString(r[:])
}

func (r Ref) String() string {
	return r.Hex()
}

// Bytes returns a copy of the reference bytes.
func (r Ref) Bytes() []byte {
	return r[:]
}

// Reverse flips the byte order of the txid and of the vout independently,
// turning an in-script reference into its display form and back.
func (r Ref) Reverse() Ref {
	var out Ref
	for i := 0; i < TxIDSize; i++ {
		out[i] = r[TxIDSize-1-i]
	}
	for i := 0; i < 4; i++ {
		out[TxIDSize+i] = r[RefSize-1-i]
	}
	return out
}

// TxID returns the first 32 bytes as hex, unchanged.
func (r Ref) TxID() string {
	return hex.EncodeToString(r[:TxIDSize])
}

// Vout reads the last four bytes as a big-endian index.
func (r Ref) Vout() uint32 {
	return binary.BigEndian.Uint32(r[TxIDSize:])
}

// Outpoint interprets a big-endian reference as an outpoint.
func (r Ref) Outpoint() Outpoint {
	var o Outpoint
	for i := 0; i < TxIDSize; i++ {
		o.Hash[i] = r[TxIDSize-1-i]
	}
	o.Vout = r.Vout()
	return o
}

// IsZero reports whether every byte is zero.
func (r Ref) IsZero() bool {
	return r == Ref{}
}
