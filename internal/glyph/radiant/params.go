package radiant

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

// Params returns address parameters for a network. Radiant reuses the
// Bitcoin P2PKH version bytes.
func Params(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", string(network))
	}
}
