package draughts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// playRandomGame pushes up to maxPlies legal moves chosen deterministically
// by rng, stopping early if the game ends, and returns the number of plies
// actually played. It is used below to exercise invariants that must hold
// at every reachable position, not just the starting one.
func playRandomGame(t *testing.T, g *Game, rng *rand.Rand, maxPlies int) int {
	t.Helper()
	for ply := 0; ply < maxPlies; ply++ {
		if g.IsOver() {
			return ply
		}
		moves := g.LegalMoves()
		require.NotEmpty(t, moves, "a non-terminal position must have a legal move")
		choice := moves[rng.Intn(len(moves))]
		require.NoError(t, g.Push(choice))
	}
	return maxPlies
}

func TestPieceCountNeverIncreases(t *testing.T) {
	for _, v := range []string{"standard", "english", "italian", "russian", "turkish", "frisian", "frysk!"} {
		g, err := NewGame(v)
		require.NoError(t, err, v)
		before := g.Board.CountByColor(White) + g.Board.CountByColor(Black)
		rng := rand.New(rand.NewSource(1))
		playRandomGame(t, g, rng, 40)
		after := g.Board.CountByColor(White) + g.Board.CountByColor(Black)
		require.LessOrEqual(t, after, before, v)
	}
}

func TestDenseFENLengthIsStableAcrossPlay(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	playRandomGame(t, g, rng, 30)
	require.Len(t, g.Board.DenseFEN(g.ToMove), g.Board.Traits.TotalSquares+1)
}

func TestEveryLegalMoveBelongsToSideToMove(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	for ply := 0; ply < 20 && !g.IsOver(); ply++ {
		toMove := g.ToMove
		for _, m := range g.LegalMoves() {
			p := g.Board.PieceAt(m.from())
			require.NotNil(t, p)
			require.Equal(t, toMove, p.Color)
		}
		moves := g.LegalMoves()
		require.NoError(t, g.Push(moves[rng.Intn(len(moves))]))
	}
}

func TestCapturesAreAlwaysForced(t *testing.T) {
	g, err := NewGameFromFEN("standard", "W:W19,41:B24")
	require.NoError(t, err)
	for _, m := range g.LegalMoves() {
		require.True(t, m.isCapture(), "a capture-available position must offer only captures")
	}
}

func TestReversibleMoveCounterResetsOnCaptureOrManMove(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	require.NoError(t, g.Push(moves[0])) // a man move from the start position
	require.Equal(t, 0, g.ReversibleMoveCount())
}

// TestPushPopRoundTripsToIdenticalPosition checks spec §8's push/pop
// invariant: push(P, m); pop() leaves the game exactly where it was
// before push, including the reversible-move and moves-since-capture
// counters that a dense FEN alone cannot recover.
func TestPushPopRoundTripsToIdenticalPosition(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))
	for ply := 0; ply < 15 && !g.IsOver(); ply++ {
		beforeFEN := g.Board.DenseFEN(g.ToMove)
		beforeReversible := g.reversibleMoves
		beforeSinceCapture := g.movesSinceCapture
		beforeStackLen := len(g.MoveStack)

		moves := g.LegalMoves()
		require.NotEmpty(t, moves)
		choice := moves[rng.Intn(len(moves))]
		require.NoError(t, g.Push(choice))
		require.NoError(t, g.Pop())

		require.Equal(t, beforeFEN, g.Board.DenseFEN(g.ToMove))
		require.Equal(t, beforeReversible, g.reversibleMoves)
		require.Equal(t, beforeSinceCapture, g.movesSinceCapture)
		require.Len(t, g.MoveStack, beforeStackLen)

		require.NoError(t, g.Push(choice)) // replay for real, to explore deeper plies
	}
}

// TestPopRejectsEmptyHistory checks Pop's error case: nothing to undo at
// the start of a game.
func TestPopRejectsEmptyHistory(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	require.ErrorIs(t, g.Pop(), ErrIllegalMove)
}

// TestNullSwitchesSideWithoutTouchingCounters checks Game.Null's contract
// (spec §4.5 null()): the side to move flips, a null-move chain is
// recorded, and neither reversible counter changes.
func TestNullSwitchesSideWithoutTouchingCounters(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)
	reversible, sinceCapture := g.reversibleMoves, g.movesSinceCapture
	g.Null()
	require.Equal(t, Black, g.ToMove)
	require.True(t, g.MoveStack[len(g.MoveStack)-1].isNull())
	require.Equal(t, reversible, g.reversibleMoves)
	require.Equal(t, sinceCapture, g.movesSinceCapture)

	require.NoError(t, g.Pop())
	require.Equal(t, White, g.ToMove)
}

// TestSortCapturesIsIdempotentAndOrderIndependent checks spec §3.5's
// sort_captures: it reduces any permutation of a square set to the same
// ascending order, and is a no-op on an already-sorted slice.
func TestSortCapturesIsIdempotentAndOrderIndependent(t *testing.T) {
	base := []Square{3, 17, 1, 42, 9, 9, 25}
	sorted := sortCaptures(base)
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]Square(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, sorted, sortCaptures(shuffled))
	}
	require.Equal(t, sorted, sortCaptures(sorted), "sorting an already-sorted slice is a no-op")
}

func TestNoTwoPiecesShareASquareAfterRandomPlay(t *testing.T) {
	for _, v := range []string{"standard", "turkish"} {
		g, err := NewGame(v)
		require.NoError(t, err, v)
		rng := rand.New(rand.NewSource(4))
		playRandomGame(t, g, rng, 40)
		seen := map[Square]bool{}
		for _, p := range g.Board.Pieces {
			if p.captured() {
				continue
			}
			require.False(t, seen[p.Position], "duplicate occupancy at %s in %s", p.Position, v)
			seen[p.Position] = true
		}
	}
}
