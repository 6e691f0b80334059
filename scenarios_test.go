package draughts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarioOpeningMoveAndNotationRoundTrip plays the first move of a
// fresh standard game via its PDN notation and checks the board and side
// to move both update correctly.
func TestScenarioOpeningMoveAndNotationRoundTrip(t *testing.T) {
	g, err := NewGame("standard")
	require.NoError(t, err)

	chain, err := g.ParsePDN("31-26")
	require.NoError(t, err)
	require.NoError(t, g.Push(chain))

	require.Equal(t, Black, g.ToMove)
	require.Nil(t, g.Board.PieceAt(31))
	require.NotNil(t, g.Board.PieceAt(26))
}

// TestScenarioForcedMultiCaptureViaNotation builds a position with a
// two-jump capture available, resolves it from its endpoint-only PDN
// ("19x37"), and checks both captured pieces are removed after Push.
func TestScenarioForcedMultiCaptureViaNotation(t *testing.T) {
	g, err := NewGameFromFEN("standard", "W:W19:B24,33")
	require.NoError(t, err)

	chain, err := g.ParsePDN("19x37")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	require.NoError(t, g.Push(chain))

	require.Nil(t, g.Board.PieceAt(24))
	require.Nil(t, g.Board.PieceAt(33))
	require.NotNil(t, g.Board.PieceAt(37))
	require.Equal(t, 1, g.Board.CountByColor(White))
	require.Equal(t, 0, g.Board.CountByColor(Black))
	require.True(t, g.IsOver(), "black has no pieces left")
	winner, ok := g.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)
}

// TestScenarioAntidraughtsInvertsTheNoMovesOutcome shows the same
// "side to move has no legal move" shape deciding the game in opposite
// directions for Standard and Antidraughts.
func TestScenarioAntidraughtsInvertsTheNoMovesOutcome(t *testing.T) {
	standard, err := NewGameFromFEN("standard", "W:W:B1")
	require.NoError(t, err)
	winner, ok := standard.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner, "in standard draughts the side with no moves loses")

	anti, err := NewGameFromFEN("antidraughts", "W:W:B1")
	require.NoError(t, err)
	winner, ok = anti.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner, "in antidraughts the side with no moves wins")
}

// TestScenarioBreakthroughEndsOnPromotion checks that crowning a man ends
// a Breakthrough game immediately in favor of the crowning side, rather
// than play continuing until one side has no pieces or moves.
func TestScenarioBreakthroughEndsOnPromotion(t *testing.T) {
	g, err := NewGameFromFEN("breakthrough", "W:W6:B50")
	require.NoError(t, err)
	require.False(t, g.IsOver())

	chain, err := g.ParsePDN("6-1")
	require.NoError(t, err)
	require.NoError(t, g.Push(chain))

	require.True(t, g.IsOver())
	winner, ok := g.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)
}

// TestScenarioBreakthroughWinIsStatelessKingCensus builds a position that
// already contains a white king directly from FEN, with no push at all,
// and checks the game is already over: Breakthrough's win condition is a
// census of the current board, not a function of the move that produced
// it.
func TestScenarioBreakthroughWinIsStatelessKingCensus(t *testing.T) {
	g, err := NewGameFromFEN("breakthrough",
		"B:WK4,31,35,36,38,40,43,44,45,46,47,48,49,50:B1,2,3,6,7,8,9,11,13,16")
	require.NoError(t, err)
	require.True(t, g.IsOver())
	winner, ok := g.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)
}

// TestScenarioPDNDisambiguatesClosestLandingSquare reproduces the spec's
// worked example of PDN's closest-to-enemy intermediate rewrite: a flying
// king's real first landing square (33) sits further along its ray than
// the square conventionally written in PDN (38), while every later hop's
// written square already matches its actual landing.
func TestScenarioPDNDisambiguatesClosestLandingSquare(t *testing.T) {
	g, err := NewGameFromFEN("standard", "W:WK47:B14,19,29,31,42")
	require.NoError(t, err)

	var chosen Chain
	for _, c := range g.LegalMoves() {
		if len(c) == 4 && c[0].To == 33 && c[1].To == 24 && c[2].To == 13 && c[3].To == 36 {
			chosen = c
			break
		}
	}
	require.NotNil(t, chosen, "expected the four-hop capture landing on 33,24,13,36")
	require.Equal(t, "47x38x24x13x36", g.PDN(chosen))
}

// TestScenarioRussianAmbiguousCaptureSharesEndpoints reproduces the
// Russian-ambiguity shape of spec §8 scenario 2: four distinct capture
// paths end on two squares, two paths per (from, to) pair, so
// endpoint-only notation cannot resolve one of them without
// ErrAmbiguousNotation.
func TestScenarioRussianAmbiguousCaptureSharesEndpoints(t *testing.T) {
	g, err := NewGameFromFEN("russian", "W:WKd2:Bf6,c5,e5,e3")
	require.NoError(t, err)

	moves := g.LegalMoves()
	require.Len(t, moves, 4, "four distinct capture paths should be available")
	from, length := moves[0].from(), len(moves[0])
	seen := map[string]bool{}
	endpoints := map[[2]Square]int{}
	for _, m := range moves {
		require.Equal(t, from, m.from())
		require.Len(t, m, length)
		seen[g.Hub(m)] = true
		endpoints[[2]Square{m.from(), m.to()}]++
	}
	require.Len(t, seen, 4, "every path must be a genuinely distinct hop sequence")
	require.Len(t, endpoints, 2, "the paths end on two distinct squares")
	for pair, n := range endpoints {
		require.Equal(t, 2, n, "paths sharing endpoints %v", pair)
	}

	_, err = g.ParseHub(fmt.Sprintf("%dx%d", from, moves[0].to()))
	require.ErrorIs(t, err, ErrAmbiguousNotation)
}

// TestScenarioItalianForcedMaxAndKingPriority reproduces spec §8 scenario
// 4: Italian's capture filter first keeps only the longest chains, then
// prefers a king mover over a man mover, leaving exactly one legal move.
func TestScenarioItalianForcedMaxAndKingPriority(t *testing.T) {
	g, err := NewGameFromFEN("italian", "W:W31,32,K25:B12,20,21,28,5,K13,K14,K7")
	require.NoError(t, err)

	moves := g.LegalMoves()
	require.Len(t, moves, 1)
	c := moves[0]
	require.Equal(t, Square(25), c.from())
	require.Len(t, c, 3)
	require.Equal(t, Square(18), c[0].To)
	require.Equal(t, Square(11), c[1].To)
	require.Equal(t, Square(4), c.to())
}

// TestScenarioRepeatedKingShuffleEventuallyDraws reproduces spec §8
// scenario 5: from "W:WK28:BK1", the four-move cycle 28-33, 1-7, 33-28,
// 7-1 repeated without any capture must eventually draw the game (the
// spec names the no-progress rule specifically; since the cycle also
// revisits the same dense FEN, repetition may fire first in any
// implementation that checks both rules every ply, so this test accepts
// either draw reason rather than over-specifying the internal mechanism).
func TestScenarioRepeatedKingShuffleEventuallyDraws(t *testing.T) {
	g, err := NewGameFromFEN("standard", "W:WK28:BK1")
	require.NoError(t, err)

	moves := []string{"28-33", "1-7", "33-28", "7-1"}
	drawn := false
	for i := 0; i < 25 && !drawn; i++ {
		chain, err := g.ParsePDN(moves[i%len(moves)])
		require.NoError(t, err, moves[i%len(moves)])
		require.NoError(t, g.Push(chain))
		drawn = g.IsOver()
	}
	require.True(t, drawn, "a repeated non-capture king shuffle must eventually draw")
	term := g.Termination()
	require.True(t, term == DrawNoProgress || term == DrawRepetition, "expected a draw, got %s", term)
}

// TestScenarioEnglishStartsWithBlackAndSevenMoves reproduces spec §8
// scenario 6: English is the one variant where Black opens, and its
// starting position offers exactly seven positional moves.
func TestScenarioEnglishStartsWithBlackAndSevenMoves(t *testing.T) {
	g, err := NewGame("english")
	require.NoError(t, err)
	require.Equal(t, Black, g.ToMove)
	require.False(t, g.IsOver())
	require.Len(t, g.LegalMoves(), 7)
}
