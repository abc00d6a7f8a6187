package testvectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameforge/ensnorm"
)

func TestCases_MatchEngine(t *testing.T) {
	e := ensnorm.New()
	for _, c := range Cases {
		t.Run(c.Name, func(t *testing.T) {
			proc, err := e.Process(c.Input)
			if c.ExpectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.Normalized, proc.Normalize())
			require.Len(t, proc.LabelTypes(), 1)
			assert.Equal(t, c.LabelType, string(proc.LabelTypes()[0]))
		})
	}
}
