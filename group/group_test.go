package group

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/tables"
)

func TestSelect_PureLatinChoosesLatn(t *testing.T) {
	tb := tables.Default()
	g, err := Select(tb, []codepoint.Codepoint{'a', 'b', 'c'})
	require.NoError(t, err)
	assert.Equal(t, "Latn", g.Name)
}

func TestSelect_PureCyrillicChoosesCyrl(t *testing.T) {
	tb := tables.Default()
	// т and ӕ are both in the Cyrillic primary range.
	g, err := Select(tb, []codepoint.Codepoint{0x0442, 0x04D5})
	require.NoError(t, err)
	assert.Equal(t, "Cyrl", g.Name)
}

func TestSelect_DigitSharedAcrossGroupsNarrowsToUniqueLetter(t *testing.T) {
	tb := tables.Default()
	// '0' is shared by Latn/Grek/Cyrl; the Cyrillic kha narrows to Cyrl
	// without an IllegalMixture error (the wholes check rejects this
	// combination separately).
	g, err := Select(tb, []codepoint.Codepoint{'0', 0x0445})
	require.NoError(t, err)
	assert.Equal(t, "Cyrl", g.Name)
}

func TestSelect_EgyptianHieroglyphChoosesRestrictedEgyp(t *testing.T) {
	tb := tables.Default()
	g, err := Select(tb, []codepoint.Codepoint{0x13197})
	require.NoError(t, err)
	assert.Equal(t, "Egyp", g.Name)
	assert.True(t, g.Restricted)
}

func TestSelect_MixedScriptsFailsIllegalMixture(t *testing.T) {
	tb := tables.Default()
	_, err := Select(tb, []codepoint.Codepoint{'a', 0x0430}) // Latin a + Cyrillic а
	require.Error(t, err)
	var mixture *nerror.IllegalMixture
	require.True(t, errors.As(err, &mixture))
	assert.Equal(t, rune(0x0430), mixture.CP)
	assert.Contains(t, mixture.PriorGroups, "Latn")
}
