// Package payload decodes Glyph reveal payloads: a "gly" marker push
// followed by a CBOR map pushed in the same input script.
package payload

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/fxamacker/cbor/v2"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/script"
)

// Glyph protocol identifiers carried in the p list.
const (
	ProtocolFT    int64 = 1
	ProtocolNFT   int64 = 2
	ProtocolDAT   int64 = 3
	ProtocolDMINT int64 = 4
	ProtocolMUT   int64 = 5
)

var protocolNames = map[int64][]string{
	ProtocolFT:    {"ft"},
	ProtocolNFT:   {"nft"},
	ProtocolDAT:   {"dat"},
	ProtocolDMINT: {"dmint"},
	ProtocolMUT:   {"mut", "mutable"},
}

// cborTagUint8Array is the RFC 8746 tag for a typed uint8 array.
const cborTagUint8Array = 64

var decMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// ErrNotMap is returned when the CBOR document is not a map.
var ErrNotMap = errors.New("payload is not a map")

// Protocol is one entry of the p list: a numeric id or a name.
type Protocol struct {
	ID     int64
	Name   string
	Number bool
}

// Value returns the protocol as it was encoded.
func (p Protocol) Value() any {
	if p.Number {
		return p.ID
	}
	return p.Name
}

// Is reports whether the entry names the protocol id.
func (p Protocol) Is(id int64) bool {
	if p.Number {
		return p.ID == id
	}
	for _, name := range protocolNames[id] {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// EmbeddedFile is a file carried inline.
type EmbeddedFile struct {
	Type string
	Data []byte
}

// RemoteFile references a file by URL.
type RemoteFile struct {
	Type    string
	URL     string
	Hash    []byte
	HashSig []byte
}

// Payload is a decoded reveal payload split into protocols, attributes,
// files and remaining metadata.
type Payload struct {
	Protocols []Protocol
	Attrs     map[string]any
	Meta      map[string]any
	Embedded  map[string]EmbeddedFile
	Remote    map[string]RemoteFile

	hasProtocols bool
	hasAttrs     bool
}

// Decode finds the marker push in chunks and decodes the push that follows.
// It reports false for anything that is not a well-formed payload.
func Decode(chunks []script.Chunk) (*Payload, bool) {
	for i, c := range chunks {
		if c.Opcode != txscript.OP_DATA_3 || !bytes.Equal(c.Data, script.GlyphMagic) {
			continue
		}
		if i+1 >= len(chunks) || !chunks[i+1].IsPush() {
			continue
		}
		p, err := Unmarshal(chunks[i+1].Data)
		if err != nil {
			return nil, false
		}
		return p, true
	}
	return nil, false
}

// DecodeScript parses a raw input script and decodes its payload.
func DecodeScript(b []byte) (*Payload, bool) {
	chunks, err := script.Parse(b)
	if err != nil {
		return nil, false
	}
	return Decode(chunks)
}

// Unmarshal decodes a CBOR map into a Payload.
func Unmarshal(data []byte) (*Payload, error) {
	var raw map[string]any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	if raw == nil {
		return nil, ErrNotMap
	}
	return FromMap(raw), nil
}

// FromMap partitions a decoded map.
func FromMap(raw map[string]any) *Payload {
	p := &Payload{
		Attrs:    map[string]any{},
		Meta:     map[string]any{},
		Embedded: map[string]EmbeddedFile{},
		Remote:   map[string]RemoteFile{},
	}
	for k, v := range raw {
		p.set(k, normalize(v))
	}
	return p
}

func (p *Payload) set(k string, v any) {
	switch k {
	case "p":
		p.hasProtocols = true
		p.Protocols = protocols(v)
		return
	case "attrs":
		p.hasAttrs = true
		if m, ok := v.(map[string]any); ok {
			p.Attrs = m
		} else {
			p.Attrs = map[string]any{}
		}
		return
	}
	if f, ok := embeddedFile(v); ok {
		p.Embedded[k] = f
		return
	}
	if f, ok := remoteFile(v); ok {
		p.Remote[k] = f
		return
	}
	p.Meta[k] = v
}

// Merge overlays every key present in linked on top of p.
func (p *Payload) Merge(linked *Payload) {
	if linked == nil {
		return
	}
	if linked.hasProtocols {
		p.hasProtocols = true
		p.Protocols = append([]Protocol(nil), linked.Protocols...)
	}
	if linked.hasAttrs {
		p.hasAttrs = true
		p.Attrs = maps.Clone(linked.Attrs)
	}
	overlay := func(k string) {
		delete(p.Meta, k)
		delete(p.Embedded, k)
		delete(p.Remote, k)
	}
	for k, v := range linked.Meta {
		overlay(k)
		p.Meta[k] = v
	}
	for k, v := range linked.Embedded {
		overlay(k)
		p.Embedded[k] = v
	}
	for k, v := range linked.Remote {
		overlay(k)
		p.Remote[k] = v
	}
}

// HasProtocol reports whether the p list contains id.
func (p *Payload) HasProtocol(id int64) bool {
	for _, proto := range p.Protocols {
		if proto.Is(id) {
			return true
		}
	}
	return false
}

// Immutable is false only for NFTs implementing the mutable contract.
func (p *Payload) Immutable() bool {
	return !(p.HasProtocol(ProtocolNFT) && p.HasProtocol(ProtocolMUT))
}

// Family is the contract family implied by the protocol list: "ft", "nft",
// "dat" or "" when none applies.
func (p *Payload) Family() string {
	switch {
	case p.HasProtocol(ProtocolFT):
		return "ft"
	case p.HasProtocol(ProtocolNFT):
		return "nft"
	case p.HasProtocol(ProtocolDAT):
		return "dat"
	default:
		return ""
	}
}

// Text reads a string metadata entry.
func (p *Payload) Text(key string) (string, bool) {
	s, ok := p.Meta[key].(string)
	return s, ok
}

func (p *Payload) Name() (string, bool)   { return p.Text("name") }
func (p *Payload) Desc() (string, bool)   { return p.Text("desc") }
func (p *Payload) Type() (string, bool)   { return p.Text("type") }
func (p *Payload) Ticker() (string, bool) { return p.Text("ticker") }

// Loc returns the location indirection output index.
func (p *Payload) Loc() (uint32, bool) {
	switch v := p.Meta["loc"].(type) {
	case uint64:
		if v <= math.MaxUint32 {
			return uint32(v), true
		}
	case int64:
		if v >= 0 && v <= math.MaxUint32 {
			return uint32(v), true
		}
	}
	return 0, false
}

// In returns the first container reference bytes, if any.
func (p *Payload) In() ([]byte, bool) {
	return firstBytes(p.Meta["in"])
}

// By returns the first author reference bytes, if any.
func (p *Payload) By() ([]byte, bool) {
	return firstBytes(p.Meta["by"])
}

// ProtocolValues returns the p list as encoded values.
func (p *Payload) ProtocolValues() []any {
	out := make([]any, 0, len(p.Protocols))
	for _, proto := range p.Protocols {
		out = append(out, proto.Value())
	}
	return out
}

func firstBytes(v any) ([]byte, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	b, ok := list[0].([]byte)
	return b, ok
}

func protocols(v any) []Protocol {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Protocol, 0, len(list))
	for _, item := range list {
		switch x := item.(type) {
		case string:
			out = append(out, Protocol{Name: x})
		case uint64:
			if x <= math.MaxInt64 {
				out = append(out, Protocol{ID: int64(x), Number: true})
			}
		case int64:
			out = append(out, Protocol{ID: x, Number: true})
		case float64:
			if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
				out = append(out, Protocol{ID: int64(x), Number: true})
			}
		}
	}
	return out
}

func embeddedFile(v any) (EmbeddedFile, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return EmbeddedFile{}, false
	}
	t, okT := m["t"].(string)
	b, okB := m["b"].([]byte)
	if !okT || !okB {
		return EmbeddedFile{}, false
	}
	return EmbeddedFile{Type: t, Data: b}, true
}

func remoteFile(v any) (RemoteFile, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return RemoteFile{}, false
	}
	u, ok := m["u"].(string)
	if !ok {
		return RemoteFile{}, false
	}
	f := RemoteFile{URL: u}
	if h, present := m["h"]; present {
		if f.Hash, ok = h.([]byte); !ok {
			return RemoteFile{}, false
		}
	}
	if hs, present := m["hs"]; present {
		if f.HashSig, ok = hs.([]byte); !ok {
			return RemoteFile{}, false
		}
	}
	f.Type, _ = m["t"].(string)
	return f, true
}

// normalize unwraps typed-array tags so byte strings compare uniformly.
func normalize(v any) any {
	switch x := v.(type) {
	case cbor.Tag:
		if b, ok := x.Content.([]byte); ok && x.Number == cborTagUint8Array {
			return b
		}
		return x
	case map[string]any:
		for k, item := range x {
			x[k] = normalize(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalize(item)
		}
		return x
	default:
		return v
	}
}
