package wholes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/tables"
)

func TestCheck_DigitPlusConfusableCyrillicKhaIsRejected(t *testing.T) {
	tb := tables.Default()
	// digit zero + Cyrillic kha (х), the classic 0x vs х lookalike.
	err := Check(tb, []codepoint.Codepoint{'0', 0x0445})
	require.Error(t, err)
	var wsc *nerror.WholeScriptConfusable
	require.True(t, errors.As(err, &wsc))
	assert.Equal(t, "Latn", wsc.TargetGroup)
}

func TestCheck_PlainCyrillicLettersAreAccepted(t *testing.T) {
	tb := tables.Default()
	// т (U+0442) and ӕ (U+04D5): neither is a confusable entry, so the
	// label is accepted as soon as a unique codepoint is encountered.
	err := Check(tb, []codepoint.Codepoint{0x0442, 0x04D5})
	assert.NoError(t, err)
}

func TestCheck_PureLatinTextIsAccepted(t *testing.T) {
	tb := tables.Default()
	err := Check(tb, []codepoint.Codepoint{'h', 'e', 'l', 'l', 'o'})
	assert.NoError(t, err)
}

func TestCheck_NoConfusedCodepointsAlwaysAccepts(t *testing.T) {
	tb := tables.Default()
	err := Check(tb, []codepoint.Codepoint{'-', '_', '0'})
	assert.NoError(t, err)
}
