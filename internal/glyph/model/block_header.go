package model

import "time"

// BlockHeader is stored once per block on first sight.
type BlockHeader struct {
	Hash      string    `bson:"hash" json:"hash"`
	Height    int64     `bson:"height" json:"height"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Buffer    []byte    `bson:"buffer" json:"-"`
	Reorg     bool      `bson:"reorg" json:"reorg"`
}
