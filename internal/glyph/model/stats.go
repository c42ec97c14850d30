package model

import "time"

// Stats is the denormalized roll-up of collection counts.
type Stats struct {
	Glyphs      GlyphStats `bson:"glyphs" json:"glyphs"`
	TxOs        TxOStats   `bson:"txos" json:"txos"`
	Blocks      BlockStats `bson:"blocks" json:"blocks"`
	LastUpdated time.Time  `bson:"lastUpdated" json:"lastUpdated"`
}

type GlyphStats struct {
	Total          int64 `bson:"total" json:"total"`
	NFT            int64 `bson:"nft" json:"nft"`
	FT             int64 `bson:"ft" json:"ft"`
	DAT            int64 `bson:"dat" json:"dat"`
	Containers     int64 `bson:"containers" json:"containers"`
	ContainedItems int64 `bson:"containedItems" json:"containedItems"`
	Users          int64 `bson:"users" json:"users"`
}

type TxOStats struct {
	Total int64 `bson:"total" json:"total"`
	RXD   int64 `bson:"rxd" json:"rxd"`
	NFT   int64 `bson:"nft" json:"nft"`
	FT    int64 `bson:"ft" json:"ft"`
}

type BlockStats struct {
	Count  int64        `bson:"count" json:"count"`
	Latest *LatestBlock `bson:"latest" json:"latest"`
}

type LatestBlock struct {
	Hash      string    `bson:"hash" json:"hash"`
	Height    int64     `bson:"height" json:"height"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
