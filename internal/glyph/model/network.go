package model

import (
	"fmt"
)

// Network is a Radiant network name.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// mainnetGenesisHeight is the first height that can carry Glyph reveals.
const mainnetGenesisHeight = 315114

// GenesisHeight is the height an empty import state starts from.
func (n Network) GenesisHeight() int64 {
	if n == Mainnet {
		return mainnetGenesisHeight
	}
	return 0
}

// Validate rejects unknown network names.
func (n Network) Validate() error {
	switch n {
	case Mainnet, Testnet, Regtest:
		return nil
	default:
		return fmt.Errorf("unknown network %q", string(n))
	}
}
