package turn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/turn"
)

func TestNew(t *testing.T) {
	s := turn.New()
	assert.Equal(t, turn.BuilderTurn, s.Phase)
	assert.Equal(t, 1, s.Counter)
	assert.Zero(t, s.CompletedTurns())
}

func TestForwardCycle(t *testing.T) {
	s := turn.New()
	require.NoError(t, s.EdgeCreated())
	assert.Equal(t, turn.PainterTurn, s.Phase)
	assert.Equal(t, 1, s.Counter)

	require.NoError(t, s.EdgeColored())
	assert.Equal(t, turn.BuilderTurn, s.Phase)
	assert.Equal(t, 2, s.Counter)
	assert.Equal(t, 1, s.CompletedTurns())
}

func TestWrongPhase(t *testing.T) {
	s := turn.New()
	assert.ErrorIs(t, s.EdgeColored(), turn.ErrWrongPhase)
	assert.ErrorIs(t, s.RevertEdgeCreated(), turn.ErrWrongPhase)
	require.NoError(t, s.EdgeCreated())
	assert.ErrorIs(t, s.EdgeCreated(), turn.ErrWrongPhase)
	assert.ErrorIs(t, s.RevertEdgeColored(), turn.ErrWrongPhase)
	assert.Equal(t, turn.State{Phase: turn.PainterTurn, Counter: 1}, s, "failed transitions leave state alone")
}

func TestRevertsAreInverse(t *testing.T) {
	s := turn.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.EdgeCreated())
		require.NoError(t, s.EdgeColored())
	}
	assert.Equal(t, 4, s.Counter)

	require.NoError(t, s.RevertEdgeColored())
	assert.Equal(t, turn.State{Phase: turn.PainterTurn, Counter: 3}, s)
	require.NoError(t, s.RevertEdgeCreated())
	assert.Equal(t, turn.State{Phase: turn.BuilderTurn, Counter: 3}, s)
}

func TestRevertEdgeColoredClampsAtOne(t *testing.T) {
	s := turn.New()
	require.NoError(t, s.RevertEdgeColored())
	assert.Equal(t, turn.State{Phase: turn.PainterTurn, Counter: 1}, s)
}

func TestRestore(t *testing.T) {
	s, err := turn.Restore(turn.PainterTurn, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, s.CompletedTurns())

	_, err = turn.Restore(turn.Phase(7), 2)
	assert.ErrorIs(t, err, turn.ErrInvalidState)
	_, err = turn.Restore(turn.BuilderTurn, 0)
	assert.ErrorIs(t, err, turn.ErrInvalidState)
}

func TestPhaseStrings(t *testing.T) {
	for _, p := range []turn.Phase{turn.BuilderTurn, turn.PainterTurn} {
		back, err := turn.ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
	_, err := turn.ParsePhase("referee")
	assert.ErrorIs(t, err, turn.ErrInvalidState)
	assert.Equal(t, "phase(9)", turn.Phase(9).String())
}
