package script

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/outpoint"
)

// GlyphMagic marks a Glyph reveal payload and appears in the mutable contract.
var GlyphMagic = []byte("gly")

// Kind is the recognized shape of an output script.
type Kind int

const (
	KindUnknown Kind = iota
	KindP2PKH
	KindNFT
	KindFT
	KindMutableNFT
	KindDelegateBurn
	KindContractBurn
	KindDelegateToken
)

func (k Kind) String() string {
	switch k {
	case KindP2PKH:
		return "p2pkh"
	case KindNFT:
		return "nft"
	case KindFT:
		return "ft"
	case KindMutableNFT:
		return "mutable_nft"
	case KindDelegateBurn:
		return "delegate_burn"
	case KindContractBurn:
		return "contract_burn"
	case KindDelegateToken:
		return "delegate_token"
	default:
		return "unknown"
	}
}

// Match is the result of classifying a script. Refs are in-script
// (little-endian) orientation.
type Match struct {
	Kind       Kind
	PubKeyHash []byte
	Refs       []outpoint.Ref
	CommitHash []byte
}

// ContractType maps the script kind onto the persisted contract type.
func (m Match) ContractType() model.ContractType {
	switch m.Kind {
	case KindP2PKH:
		return model.ContractRXD
	case KindNFT, KindMutableNFT:
		return model.ContractNFT
	case KindFT:
		return model.ContractFT
	case KindDelegateBurn, KindContractBurn:
		return model.ContractDelegateBurn
	case KindDelegateToken:
		return model.ContractDelegateToken
	default:
		return ""
	}
}

// Ref returns the first reference in display orientation.
func (m Match) Ref() (outpoint.Ref, bool) {
	if len(m.Refs) == 0 {
		return outpoint.Ref{}, false
	}
	return m.Refs[0].Reverse(), true
}

// Address encodes the owner public key hash, if the script has one.
func (m Match) Address(params *chaincfg.Params) (string, error) {
	if len(m.PubKeyHash) == 0 {
		return "", nil
	}
	addr, err := btcutil.NewAddressPubKeyHash(m.PubKeyHash, params)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// segment is either literal bytes or a captured field of fixed width.
type segment struct {
	lit   []byte
	field int
}

func lit(h string) segment {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(fmt.Sprintf("script template literal %q: %v", h, err))
	}
	return segment{lit: b}
}

func litBytes(b []byte) segment {
	return segment{lit: b}
}

func field(n int) segment {
	return segment{field: n}
}

type template []segment

func (t template) size() int {
	n := 0
	for _, s := range t {
		if s.lit != nil {
			n += len(s.lit)
		} else {
			n += s.field
		}
	}
	return n
}

// match returns the captured fields in order.
func (t template) match(b []byte) ([][]byte, bool) {
	if len(b) != t.size() {
		return nil, false
	}
	var fields [][]byte
	pos := 0
	for _, s := range t {
		if s.lit != nil {
			if !bytes.Equal(b[pos:pos+len(s.lit)], s.lit) {
				return nil, false
			}
			pos += len(s.lit)
			continue
		}
		fields = append(fields, b[pos:pos+s.field])
		pos += s.field
	}
	return fields, true
}

var (
	p2pkhTemplate = template{lit("76a914"), field(20), lit("88ac")}

	nftTemplate = template{
		lit("d8"), field(outpoint.RefSize), lit("75"),
		lit("76a914"), field(20), lit("88ac"),
	}

	ftTemplate = template{
		lit("76a914"), field(20), lit("88ac"),
		lit("bdd0"), field(outpoint.RefSize), lit("dec0e9aa76e378e4a269e69d"),
	}

	mutableTemplate = template{
		lit("20"), field(32), lit("75bdd8"), field(outpoint.RefSize),
		lit("7601207f818c54807e5279e2547a0124957f7701247f75887cec7b7f7701457f757801207ec0caa87e885279036d6f64876378eac0e98878ec01205579aa7e01757e8867527902736c8878cd01d852797e016a7e8778da009c9b6968547a03"),
		litBytes(GlyphMagic),
		lit("886d6d51"),
	}

	delegateBurnTemplate = template{lit("d1"), field(outpoint.RefSize), lit("6a0364656c")}
	contractBurnTemplate = template{lit("d1"), field(outpoint.RefSize), lit("6a03636f6e")}
)

const (
	delegateTokenSize = 63
	delegateUnitSize  = 1 + outpoint.RefSize + 1
)

type rule struct {
	size  int
	match func([]byte) (Match, bool)
}

// rules are evaluated in order; the first rule whose size and pattern match wins.
var rules = []rule{
	{size: p2pkhTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := p2pkhTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindP2PKH, PubKeyHash: f[0]}, true
	}},
	{size: nftTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := nftTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindNFT, Refs: refs(f[0]), PubKeyHash: f[1]}, true
	}},
	{size: delegateTokenSize, match: matchDelegateToken},
	{size: ftTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := ftTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindFT, PubKeyHash: f[0], Refs: refs(f[1])}, true
	}},
	{size: mutableTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := mutableTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindMutableNFT, CommitHash: f[0], Refs: refs(f[1])}, true
	}},
	{size: delegateBurnTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := delegateBurnTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindDelegateBurn, Refs: refs(f[0])}, true
	}},
	{size: contractBurnTemplate.size(), match: func(b []byte) (Match, bool) {
		f, ok := contractBurnTemplate.match(b)
		if !ok {
			return Match{}, false
		}
		return Match{Kind: KindContractBurn, Refs: refs(f[0])}, true
	}},
}

// matchDelegateToken accepts one or more OP_REQUIREINPUTREF <ref> OP_DROP
// units at the start of the script; the remainder is not inspected.
func matchDelegateToken(b []byte) (Match, bool) {
	var out []outpoint.Ref
	pos := 0
	for len(b)-pos >= delegateUnitSize &&
		b[pos] == OpRequireInputRef &&
		b[pos+delegateUnitSize-1] == 0x75 {
		out = append(out, refs(b[pos+1:pos+1+outpoint.RefSize])...)
		pos += delegateUnitSize
	}
	if len(out) == 0 {
		return Match{}, false
	}
	return Match{Kind: KindDelegateToken, Refs: out}, true
}

func refs(b []byte) []outpoint.Ref {
	r, err := outpoint.RefFromBytes(b)
	if err != nil {
		return nil
	}
	return []outpoint.Ref{r}
}

// Classify matches a script against the known contract shapes.
func Classify(script []byte) (Match, bool) {
	for _, r := range rules {
		if len(script) != r.size {
			continue
		}
		if m, ok := r.match(script); ok {
			return m, true
		}
	}
	return Match{}, false
}

// ClassifyHex is Classify for hex-encoded scripts. Invalid hex never matches.
func ClassifyHex(s string) (Match, bool) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Match{}, false
	}
	return Classify(b)
}
