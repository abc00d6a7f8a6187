package ensnorm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/nerror"
)

func cps(c ...codepoint.Codepoint) string { return codepoint.Encode(c) }

func TestNormalize_ASCIIUnderscoreDollarUppercase(t *testing.T) {
	e := New()
	got, err := e.Normalize("_$A")
	require.NoError(t, err)
	assert.Equal(t, "_$a", got)
}

func TestNormalize_IgnoredVariationSelectorComposesAccent(t *testing.T) {
	e := New()
	in := cps('E', 0xFE0E, 0x0303)
	got, err := e.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, cps(0x1EBD), got)
}

func TestNormalize_EgyptianHieroglyphPlusFrogRoundTrips(t *testing.T) {
	e := New()
	in := cps(0x13197, 0x1F438)
	got, err := e.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	proc, err := e.Process(in)
	require.NoError(t, err)
	require.Len(t, proc.LabelTypes(), 1)
	assert.Equal(t, "Restricted[Egyp]", string(proc.LabelTypes()[0]))
}

func TestNormalize_DotlessIIsDisallowed(t *testing.T) {
	e := New()
	_, err := e.Normalize(cps('n', 0x0131, 0x0307, 'c', 'k'))
	require.Error(t, err)
	var disallowed *nerror.DisallowedCharacter
	assert.True(t, errors.As(err, &disallowed))
}

func TestNormalizeBeautify_XiKeycapRoundTrip(t *testing.T) {
	e := New()
	normalized, err := e.Normalize(cps('-', 0x039E, '1', 0xFE0F, 0x20E3))
	require.NoError(t, err)
	assert.Equal(t, cps('-', 0x03BE, '1', 0x20E3), normalized)

	beautified, err := e.Beautify(cps('-', 0x03BE, '1', 0x20E3))
	require.NoError(t, err)
	assert.Equal(t, cps('-', 0x039E, '1', 0xFE0F, 0x20E3), beautified)
}

func TestNormalize_TrademarkSignMapsAndDropsStrayFE0F(t *testing.T) {
	e := New()
	got, err := e.Normalize(cps('a', 0x2122, 0xFE0F))
	require.NoError(t, err)
	assert.Equal(t, "atm", got)
}

func TestNormalize_AdjacentFencedCharactersRejected(t *testing.T) {
	e := New()
	_, err := e.Normalize(cps('a', 0x30FB, 0x30FB, 'a'))
	require.Error(t, err)
	var fenced *nerror.FencedAdjacent
	assert.True(t, errors.As(err, &fenced))
}

func TestNormalize_LeadingFencedCharacterRejected(t *testing.T) {
	e := New()
	_, err := e.Normalize(cps(0x30FB, 'a'))
	require.Error(t, err)
	var fenced *nerror.FencedLeading
	assert.True(t, errors.As(err, &fenced))
}

func TestNormalize_ASCIIHyphenAtPositions34(t *testing.T) {
	e := New()
	_, err := e.Normalize("xn--")
	require.Error(t, err)
	var hyphen *nerror.HyphenAtPositions34
	assert.True(t, errors.As(err, &hyphen))
}

func TestNormalize_ASCIITrailingUnderscoreMisplaced(t *testing.T) {
	e := New()
	_, err := e.Normalize("abc__")
	require.Error(t, err)
	var misplaced *nerror.UnderscoreMisplaced
	assert.True(t, errors.As(err, &misplaced))
}

func TestNormalize_DigitZeroPlusCyrillicKhaIsWholeScriptConfusable(t *testing.T) {
	e := New()
	_, err := e.Normalize(cps('0', 0x0445))
	require.Error(t, err)
	var wsc *nerror.WholeScriptConfusable
	require.True(t, errors.As(err, &wsc))
	assert.Equal(t, "Latn", wsc.TargetGroup)
}

func TestNormalize_PlainCyrillicIsAccepted(t *testing.T) {
	e := New()
	got, err := e.Normalize(cps(0x0442, 0x04D5))
	require.NoError(t, err)
	assert.Equal(t, cps(0x0442, 0x04D5), got)
}

func TestNormalize_FamilyZWJSequenceIsEmojiLabel(t *testing.T) {
	e := New()
	in := cps(0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467, 0x200D, 0x1F466)
	proc, err := e.Process(in)
	require.NoError(t, err)
	assert.Equal(t, "Emoji", string(proc.LabelTypes()[0]))
	assert.Equal(t, in, proc.Normalize())
}

func TestNormalize_BareZWJAloneIsDisallowed(t *testing.T) {
	e := New()
	_, err := e.Normalize(cps(0x200D))
	require.Error(t, err)
	var disallowed *nerror.DisallowedCharacter
	assert.True(t, errors.As(err, &disallowed))
}

func TestNormalize_EmptyNameFails(t *testing.T) {
	e := New()
	_, err := e.Normalize("")
	require.Error(t, err)
	var empty *nerror.EmptyName
	assert.True(t, errors.As(err, &empty))
}

func TestNormalize_LabelLocality(t *testing.T) {
	e := New()
	a, err := e.Normalize("Abc")
	require.NoError(t, err)
	b, err := e.Normalize("Def")
	require.NoError(t, err)
	combined, err := e.Normalize("Abc.Def")
	require.NoError(t, err)
	assert.Equal(t, a+"."+b, combined)
}

func TestNormalize_FailingLabelReportsItsIndex(t *testing.T) {
	e := New()
	_, err := e.Normalize("abc." + cps(0x200D))
	require.Error(t, err)
	var indexer nerror.LabelIndexer
	require.True(t, errors.As(err, &indexer))
	assert.Equal(t, 1, indexer.Index())
}

func TestNormalize_IsIdempotent(t *testing.T) {
	e := New()
	in := cps('E', 0xFE0E, 0x0303)
	once, err := e.Normalize(in)
	require.NoError(t, err)
	twice, err := e.Normalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestTokenize_ReturnsRawStreamWithoutValidating(t *testing.T) {
	e := New()
	out, err := e.Tokenize("_$A")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Label)
}
