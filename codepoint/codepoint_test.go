package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		cp    Codepoint
		valid bool
	}{
		{"ascii a", Codepoint('a'), true},
		{"max codepoint", Codepoint(MaxCodepoint), true},
		{"above max", Codepoint(MaxCodepoint + 1), false},
		{"negative", Codepoint(-1), false},
		{"surrogate low", Codepoint(0xD800), false},
		{"surrogate high", Codepoint(0xDFFF), false},
		{"just below surrogate", Codepoint(0xD7FF), true},
		{"just above surrogate", Codepoint(0xE000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.cp.Valid())
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	in := "a_$🐸é"
	cps, err := Decode(in)
	require.NoError(t, err)
	assert.Equal(t, in, Encode(cps))
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode(string([]byte{'a', 0xff, 'b'}))
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 1, decodeErr.Offset)
}

func TestCategory_IsMark(t *testing.T) {
	assert.True(t, CategoryMn.IsMark())
	assert.True(t, CategoryMc.IsMark())
	assert.True(t, CategoryMe.IsMark())
	assert.False(t, CategoryOther.IsMark())
}

func TestCategory_IsNonSpacingMark(t *testing.T) {
	assert.True(t, CategoryMn.IsNonSpacingMark())
	assert.True(t, CategoryMe.IsNonSpacingMark())
	assert.False(t, CategoryMc.IsNonSpacingMark())
}

func TestCodepoint_Category(t *testing.T) {
	assert.Equal(t, CategoryMn, Codepoint(0x0300).Category()) // COMBINING GRAVE ACCENT
	assert.Equal(t, CategoryMc, Codepoint(0x0903).Category()) // DEVANAGARI SIGN VISARGA
	assert.Equal(t, CategoryMe, Codepoint(0x0488).Category()) // COMBINING CYRILLIC HUNDRED THOUSANDS SIGN
	assert.Equal(t, CategoryOther, Codepoint('a').Category())
	assert.True(t, Codepoint(0x0300).Category().IsMark())
	assert.True(t, Codepoint(0x0300).Category().IsNonSpacingMark())
	assert.False(t, Codepoint(0x0903).Category().IsNonSpacingMark())
}
