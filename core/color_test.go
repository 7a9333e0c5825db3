package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/core"
)

func TestDisplayColorInvertsToLogical(t *testing.T) {
	for _, c := range []core.Color{core.Neutral, core.Red, core.Blue} {
		for _, selected := range []bool{false, true} {
			d := c.Display(selected)
			assert.Equal(t, c, d.Logical(), "%s selected=%v", c, selected)
			assert.Equal(t, selected, d.Selected(), "%s selected=%v", c, selected)
		}
	}
}

func TestDisplayColorNames(t *testing.T) {
	assert.Equal(t, "grey", core.Neutral.Display(true).String())
	assert.Equal(t, "black", core.Neutral.Display(false).String())
	assert.Equal(t, "pink", core.Red.Display(true).String())
	assert.Equal(t, "cyan", core.Blue.Display(true).String())
}

func TestParseColor(t *testing.T) {
	cases := map[string]core.Color{"r": core.Red, "Blue": core.Blue, " red ": core.Red, "n": core.Neutral}
	for in, want := range cases {
		got, err := core.ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := core.ParseColor("green")
	assert.ErrorIs(t, err, core.ErrInvalidColor)
}

func TestColorPredicates(t *testing.T) {
	assert.True(t, core.Red.Paint())
	assert.True(t, core.Blue.Paint())
	assert.False(t, core.Neutral.Paint())
	assert.False(t, core.Color(7).Valid())
}
