package payload

import (
	"encoding/hex"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/outpoint"
)

// Reveal is a payload together with the input that carried it.
type Reveal struct {
	Payload    *Payload
	InputIndex int
}

// FromInputs finds the input spending ref (display orientation) and decodes
// its script. It reports false when no input spends ref or the script
// carries no payload.
func FromInputs(ref outpoint.Ref, inputs []model.Input) (Reveal, bool) {
	txid := ref.TxID()
	vout := ref.Vout()
	for i, in := range inputs {
		if in.Coinbase || in.PrevTxID != txid || in.PrevVout != vout {
			continue
		}
		b, err := hex.DecodeString(in.ScriptHex)
		if err != nil {
			return Reveal{}, false
		}
		p, ok := DecodeScript(b)
		if !ok {
			return Reveal{}, false
		}
		return Reveal{Payload: p, InputIndex: i}, true
	}
	return Reveal{}, false
}
