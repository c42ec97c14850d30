package model

import (
	"strings"
	"time"
)

// ZeroHash is the hash stored with a fresh import state.
var ZeroHash = strings.Repeat("0", 64)

// ImportState is the singleton progress record of the importer.
type ImportState struct {
	LastBlockHeight int64     `bson:"lastBlockHeight" json:"lastBlockHeight"`
	LastBlockHash   string    `bson:"lastBlockHash" json:"lastBlockHash"`
	LastUpdated     time.Time `bson:"lastUpdated" json:"lastUpdated"`
	IsImporting     bool      `bson:"isImporting" json:"isImporting"`
}
