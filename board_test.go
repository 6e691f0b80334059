package draughts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewBoardPlacesStartingPieces(t *testing.T) {
	b := NewBoard(Standard)
	require.Equal(t, 20, b.CountByColor(White))
	require.Equal(t, 20, b.CountByColor(Black))
	require.NotNil(t, b.PieceAt(31))
	require.True(t, b.PieceAt(31).Color == White)
	require.NotNil(t, b.PieceAt(1))
	require.True(t, b.PieceAt(1).Color == Black)
	require.Nil(t, b.PieceAt(25))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(Standard)
	clone := b.Clone()

	mover := clone.PieceAt(31)
	clone.ApplyChain(mover, Chain{{From: 31, To: 26}})

	require.NotNil(t, b.PieceAt(31), "original board must be unaffected by clone mutation")
	require.Nil(t, clone.PieceAt(31))
	require.NotNil(t, clone.PieceAt(26))

	if diff := cmp.Diff(b.DenseFEN(White), NewBoard(Standard).DenseFEN(White)); diff != "" {
		t.Errorf("fresh board should equal another fresh board: %s", diff)
	}
}

func TestApplyChainHandlesCapture(t *testing.T) {
	b, _, err := BoardFromDenseFEN(Standard, "W"+denseFENBody(map[Square]byte{
		19: 'w',
		24: 'b',
	}))
	require.NoError(t, err)
	mover := b.PieceAt(19)
	require.NotNil(t, mover)
	captured := b.PieceAt(24)
	require.NotNil(t, captured)

	b.ApplyChain(mover, Chain{{From: 19, To: 28, Over: captured}})
	require.Equal(t, Square(28), mover.Position)
	require.Equal(t, NoSquare, captured.Position)
	require.Nil(t, b.PieceAt(24))
}

func TestApplyChainPromotesOnHomeRow(t *testing.T) {
	b, _, err := BoardFromDenseFEN(Standard, "W"+denseFENBody(map[Square]byte{
		6: 'w',
	}))
	require.NoError(t, err)
	mover := b.PieceAt(6)
	require.NotNil(t, mover)
	require.False(t, mover.King)

	b.ApplyChain(mover, Chain{{From: 6, To: 1}})
	require.Equal(t, Square(1), mover.Position)
	require.True(t, mover.King, "man reaching the enemy home row must crown")
}

// denseFENBody builds a 50-square dense FEN body (everything but the
// leading side character) with the given squares set, defaulting every
// other square to empty.
func denseFENBody(pieces map[Square]byte) string {
	buf := make([]byte, 50)
	for i := range buf {
		buf[i] = 'e'
	}
	for sq, ch := range pieces {
		buf[int(sq)-1] = ch
	}
	return string(buf)
}
