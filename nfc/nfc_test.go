package nfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/tables"
)

func engine(t *testing.T) *Engine {
	t.Helper()
	return New(&tables.Default().NFC)
}

func TestNFC_ComposesBaseAndCombiningMark(t *testing.T) {
	e := engine(t)
	in := []codepoint.Codepoint{'e', 0x0303} // e + combining tilde -> U+1EBD
	got := e.NFC(in)
	assert.Equal(t, []codepoint.Codepoint{0x1EBD}, got)
}

func TestNFC_IsIdempotent(t *testing.T) {
	e := engine(t)
	in := []codepoint.Codepoint{'c', 0x0327, 'a', 'f', 'e', 0x0301}
	once := e.NFC(in)
	twice := e.NFC(once)
	assert.Equal(t, once, twice)
}

func TestNFC_DoesNotReorderMarksAcrossStarter(t *testing.T) {
	e := engine(t)
	// Two combining marks of the same class (230), each after its own
	// starter: canonical ordering must not move a mark across the
	// intervening starter, so each mark stays with (or composes into)
	// its own base.
	in := []codepoint.Codepoint{'a', 0x0300, 'b', 0x0301}
	got := e.NFC(in)
	assert.Equal(t, []codepoint.Codepoint{0x00E0, 'b', 0x0301}, got)
}

func TestNFC_HangulDecomposeCompose(t *testing.T) {
	e := engine(t)
	// U+AC00 = L(first leading jamo) + V(first vowel jamo); round-trips
	// through decompose+compose.
	syllable := codepoint.Codepoint(0xAC00)
	decomposed := e.Decompose([]codepoint.Codepoint{syllable})
	require.Len(t, decomposed, 2)
	got := e.NFC(decomposed)
	assert.Equal(t, []codepoint.Codepoint{syllable}, got)
}

func TestNFC_AgreesWithXText_ForASCII(t *testing.T) {
	e := engine(t)
	for _, s := range []string{"hello", "world-1", "a_b"} {
		cps, err := codepoint.Decode(s)
		require.NoError(t, err)
		got := codepoint.Encode(e.NFC(cps))
		assert.Equal(t, norm.NFC.String(s), got)
	}
}

func TestNFC_AgreesWithXText_ForAccentedLatin(t *testing.T) {
	e := engine(t)
	decomposedForm := codepoint.Encode([]codepoint.Codepoint{'e', 0x0301}) // e + combining acute
	cps, err := codepoint.Decode(decomposedForm)
	require.NoError(t, err)
	got := codepoint.Encode(e.NFC(cps))
	assert.Equal(t, norm.NFC.String(decomposedForm), got)
	assert.Equal(t, codepoint.Encode([]codepoint.Codepoint{0x00E9}), got)
}

func TestNFC_NoOpOnAlreadyComposedText(t *testing.T) {
	e := engine(t)
	in := []codepoint.Codepoint{'h', 'e', 'l', 'l', 'o'}
	assert.Equal(t, in, e.NFC(in))
}
