package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownRef fills author and container when the payload does not name one.
const UnknownRef = "Unknown"

const (
	DefaultGlyphName        = "Unnamed Glyph"
	DefaultGlyphDescription = "Imported from blockchain"
	DefaultGlyphType        = "object"
)

// Embed is a file stored inline in the reveal payload.
type Embed struct {
	Type string `bson:"t" json:"t"`
	Data []byte `bson:"b" json:"b"`
}

// Remote is a file referenced by URL from the reveal payload.
type Remote struct {
	Type    string `bson:"t" json:"t"`
	URL     string `bson:"u" json:"u"`
	Hash    []byte `bson:"h,omitempty" json:"h,omitempty"`
	HashSig []byte `bson:"hs,omitempty" json:"hs,omitempty"`
}

// Glyph is a token entity keyed by the reference of its minting outpoint.
type Glyph struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Ref            string             `bson:"ref" json:"ref"`
	TokenType      TokenType          `bson:"tokenType" json:"tokenType"`
	Protocols      []any              `bson:"p" json:"p"`
	Type           string             `bson:"type" json:"type"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Author         string             `bson:"author" json:"author"`
	Container      string             `bson:"container" json:"container"`
	IsContainer    bool               `bson:"isContainer" json:"isContainer"`
	ContainerItems []string           `bson:"containerItems,omitempty" json:"containerItems,omitempty"`
	Attrs          map[string]string  `bson:"attrs" json:"attrs"`
	Embed          *Embed             `bson:"embed,omitempty" json:"embed,omitempty"`
	Remote         *Remote            `bson:"remote,omitempty" json:"remote,omitempty"`
	Ticker         string             `bson:"ticker,omitempty" json:"ticker,omitempty"`
	Immutable      bool               `bson:"immutable" json:"immutable"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	RevealOutpoint string             `bson:"revealOutpoint" json:"revealOutpoint"`
	LastTxoID      primitive.ObjectID `bson:"lastTxoId,omitempty" json:"lastTxoId"`
	Height         int64              `bson:"height" json:"height"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	Spent          int                `bson:"spent" json:"spent"`
	Fresh          int                `bson:"fresh" json:"fresh"`
}

// HasContainer reports whether the glyph names a parent other than itself.
func (g Glyph) HasContainer() bool {
	return g.Container != "" && g.Container != UnknownRef && g.Container != g.Ref
}

// GlyphUpdate carries the fields rewritten when a glyph moves or is re-revealed.
// Metadata is nil for plain transfers.
type GlyphUpdate struct {
	RevealOutpoint string
	LastTxoID      primitive.ObjectID
	Height         int64
	Timestamp      time.Time
	Metadata       *Glyph
}

// GlyphFilter narrows glyph queries. Zero values are ignored. Contained
// selects glyphs that name any container.
type GlyphFilter struct {
	TokenType   TokenType
	Container   string
	Contained   bool
	IsContainer *bool
	Spent       *int
	Text        string
}
