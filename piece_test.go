package draughts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionalStepsFromCorner(t *testing.T) {
	b := NewBoard(Standard)
	mover := b.PieceAt(31)
	steps := mover.PositionalSteps(b)
	require.Len(t, steps, 1, "square 31 has a single forward diagonal neighbor")
	require.Equal(t, Square(26), steps[0].to())
}

func TestSingleCaptureChain(t *testing.T) {
	b, _, err := BoardFromDenseFEN(Standard, "W"+denseFENBody(map[Square]byte{
		19: 'w',
		24: 'b',
	}))
	require.NoError(t, err)
	mover := b.PieceAt(19)
	chains := mover.CaptureChains(b)
	require.Len(t, chains, 1)
	require.Equal(t, Square(28), chains[0].to())
	require.Equal(t, []*Piece{b.PieceAt(24)}, chains[0].captures())
}

func TestMultiCaptureChainIsMaximal(t *testing.T) {
	b, _, err := BoardFromDenseFEN(Standard, "W"+denseFENBody(map[Square]byte{
		19: 'w',
		24: 'b',
		33: 'b',
	}))
	require.NoError(t, err)
	captured24, captured33 := b.PieceAt(24), b.PieceAt(33)
	mover := b.PieceAt(19)
	chains := mover.CaptureChains(b)
	require.Len(t, chains, 1, "the only legal chain must take both available captures")
	require.Len(t, chains[0], 2)
	require.Equal(t, Square(37), chains[0].to())
	require.ElementsMatch(t, []*Piece{captured24, captured33}, chains[0].captures())
}

func TestManCannotCaptureBackwardsInEnglish(t *testing.T) {
	traits := English.Traits()
	diag, ortho := manCaptureDirs(traits, White)
	require.Empty(t, ortho)
	for _, d := range diag {
		require.Equal(t, -1, d[0], "English men may only capture forward")
	}
}

func TestFlyingKingStopsAtFirstBlocker(t *testing.T) {
	b, _, err := BoardFromDenseFEN(Standard, "W"+denseFENBody(map[Square]byte{
		50: 'W',
		17: 'b',
	}))
	require.NoError(t, err)
	king := b.PieceAt(50)
	require.True(t, king.King)
	chains := king.CaptureChains(b)
	require.NotEmpty(t, chains, "flying king must find the capture along its ray")
	for _, c := range chains {
		require.Len(t, c.captures(), 1)
	}
}
