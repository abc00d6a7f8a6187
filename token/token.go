// Package token implements the tokenizer of the normalization pipeline:
// turning a decoded codepoint sequence into a Token stream by repeatedly
// trying the emoji matcher, then falling back to static-table
// classification of a single codepoint.
package token

import (
	"errors"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/emoji"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/nfc"
	"github.com/nameforge/ensnorm/tables"
)

// Kind discriminates the two Token cases. An enumerated discriminant
// keeps the label validator's case analysis over tokens total instead
// of relying on a type switch with no compile-time exhaustiveness check.
type Kind uint8

const (
	KindText Kind = iota
	KindEmoji
)

// Token is the sum type the tokenizer emits: either Text or Emoji.
type Token interface {
	Kind() Kind
}

// Text is a run of codepoints that passed through Valid/Mapped/Ignored
// classification and been normalized to NFC.
type Text struct {
	CPs []codepoint.Codepoint
}

func (Text) Kind() Kind { return KindText }

// Emoji is one matched emoji sequence, carrying both its canonical
// fully-qualified form (used by beautify) and its FE0F-stripped form
// (used by normalize).
type Emoji struct {
	FullyQualified []codepoint.Codepoint
	NoFE0F         []codepoint.Codepoint
}

func (Emoji) Kind() Kind { return KindEmoji }

// Tokenizer turns decoded codepoint sequences into Token streams. One
// Tokenizer is built once per Tables/emoji.Trie pair and reused across
// every label in a name; it holds no per-call mutable state itself.
type Tokenizer struct {
	data  *tables.Tables
	trie  *emoji.Trie
	nfceng *nfc.Engine
}

// New builds a Tokenizer bound to data. The emoji trie and NFC engine
// are built once here rather than per Tokenize call.
func New(data *tables.Tables) *Tokenizer {
	return &Tokenizer{
		data:   data,
		trie:   emoji.Build(data.EmojiSequences),
		nfceng: nfc.New(&data.NFC),
	}
}

// Tokenize runs the per-label algorithm over s: decode to codepoints,
// then loop matching the emoji trie before falling back to single-
// codepoint classification, flushing the pending text buffer (through
// NFC) whenever an emoji is matched or the input ends. An empty
// resulting stream fails as nerror.EmptyLabel.
func (tk *Tokenizer) Tokenize(s string) ([]Token, error) {
	cps, err := codepoint.Decode(s)
	if err != nil {
		pos := -1
		var decodeErr *codepoint.DecodeError
		if errors.As(err, &decodeErr) {
			pos = decodeErr.Offset
		}
		return nil, &nerror.DisallowedCharacter{Position: pos}
	}
	return tk.TokenizeCodepoints(cps)
}

// TokenizeCodepoints is Tokenize's entry point for callers that already
// hold a decoded codepoint sequence for one label. Tokenize calls it
// after decoding; the driver itself splits the name string on U+002E
// and calls Tokenize once per label.
func (tk *Tokenizer) TokenizeCodepoints(cps []codepoint.Codepoint) ([]Token, error) {
	var tokens []Token
	var buf []codepoint.Codepoint

	flush := func() {
		if len(buf) == 0 {
			return
		}
		tokens = append(tokens, Text{CPs: tk.nfceng.NFC(buf)})
		buf = nil
	}

	pos := 0
	for pos < len(cps) {
		if m, ok := tk.trie.TryMatch(cps, pos); ok {
			flush()
			tokens = append(tokens, Emoji{
				FullyQualified: m.FullyQualified,
				NoFE0F:         m.NoFE0F,
			})
			pos += m.Consumed
			continue
		}

		c := cps[pos]
		switch tk.classify(c) {
		case tables.Valid:
			buf = append(buf, c)
		case tables.Mapped:
			buf = append(buf, tk.data.Mapped[c]...)
		case tables.Ignored:
			// discard
		default: // Disallowed, EmojiComponent outside a match
			return nil, &nerror.DisallowedCharacter{CP: rune(c), Position: pos}
		}
		pos++
	}
	flush()

	if len(tokens) == 0 {
		return nil, &nerror.EmptyLabel{}
	}
	return tokens, nil
}

// classify assigns c to exactly one CharClass using the static tables,
// per the classification order the tokenizer depends on: an explicit
// Mapped or Ignored entry wins, then emoji-component membership, then
// valid-union membership, and anything left over is Disallowed.
func (tk *Tokenizer) classify(c codepoint.Codepoint) tables.CharClass {
	if _, ok := tk.data.Mapped[c]; ok {
		return tables.Mapped
	}
	if tk.data.Ignored[c] {
		return tables.Ignored
	}
	if tk.data.EmojiComponents[c] {
		return tables.EmojiComponent
	}
	if tk.data.ValidUnion[c] {
		return tables.Valid
	}
	return tables.Disallowed
}
