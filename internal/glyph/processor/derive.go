package processor

import (
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/outpoint"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/payload"
)

const (
	maxTickerLength    = 20
	maxAttrValueLength = 100

	mainFile = "main"

	typeUser      = "user"
	typeContainer = "container"
)

// buildGlyph derives the stored glyph metadata from a decoded payload. It
// reports false when the protocol list names no token family.
func buildGlyph(ref outpoint.Ref, p *payload.Payload) (model.Glyph, bool) {
	var tokenType model.TokenType
	switch p.Family() {
	case "ft":
		tokenType = model.TokenFT
	case "nft":
		tokenType = model.TokenNFT
	case "dat":
		tokenType = model.TokenDAT
	default:
		return model.Glyph{}, false
	}

	typ := model.DefaultGlyphType
	if t, ok := p.Type(); ok && t != "" {
		typ = t
	}
	switch typ {
	case typeUser:
		tokenType = model.TokenUser
	case typeContainer:
		tokenType = model.TokenContainer
	}

	g := model.Glyph{
		Ref:         ref.Hex(),
		TokenType:   tokenType,
		Protocols:   p.ProtocolValues(),
		Type:        typ,
		Name:        textOr(p.Name, model.DefaultGlyphName),
		Description: textOr(p.Desc, model.DefaultGlyphDescription),
		Author:      refOr(p.By),
		Container:   refOr(p.In),
		IsContainer: typ == typeContainer,
		Attrs:       attrs(p.Attrs),
		Immutable:   p.Immutable(),
	}
	if ticker, ok := p.Ticker(); ok {
		g.Ticker = truncate(ticker, maxTickerLength)
	}
	if f, ok := p.Embedded[mainFile]; ok {
		g.Embed = &model.Embed{Type: f.Type, Data: f.Data}
	}
	if f, ok := p.Remote[mainFile]; ok {
		g.Remote = &model.Remote{Type: f.Type, URL: f.URL, Hash: f.Hash, HashSig: f.HashSig}
	}
	return g, true
}

func textOr(get func() (string, bool), fallback string) string {
	if s, ok := get(); ok && s != "" {
		return s
	}
	return fallback
}

// refOr converts an in-script reference to display orientation.
func refOr(get func() ([]byte, bool)) string {
	b, ok := get()
	if !ok {
		return model.UnknownRef
	}
	r, err := outpoint.RefFromBytes(b)
	if err != nil {
		return model.UnknownRef
	}
	return r.Reverse().Hex()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// attrs keeps scalar attribute values short enough to index.
func attrs(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		var s string
		switch x := v.(type) {
		case string:
			s = x
		case bool:
			s = strconv.FormatBool(x)
		case int64:
			s = strconv.FormatInt(x, 10)
		case uint64:
			s = strconv.FormatUint(x, 10)
		case float64:
			s = strconv.FormatFloat(x, 'f', -1, 64)
		case float32:
			s = strconv.FormatFloat(float64(x), 'f', -1, 32)
		default:
			continue
		}
		if len(s) >= maxAttrValueLength {
			continue
		}
		out[k] = s
	}
	return out
}

func outpointString(txid string, vout uint32) string {
	return fmt.Sprintf("%s:%d", txid, vout)
}
