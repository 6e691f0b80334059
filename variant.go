package draughts

import "strings"

// Variant names one of the supported rule sets (spec §4.2).
type Variant string

const (
	Standard     Variant = "standard"
	English      Variant = "english"
	Italian      Variant = "italian"
	Russian      Variant = "russian"
	Brazilian    Variant = "brazilian"
	Turkish      Variant = "turkish"
	Frisian      Variant = "frisian"
	Frysk        Variant = "frysk!"
	Antidraughts Variant = "antidraughts"
	Breakthrough Variant = "breakthrough"
)

// NormalizeVariant resolves the historical aliases pydraughts accepts
// before matching against a known variant, grounded on
// original_source/draughts/core/game.py Game.__init__.
func NormalizeVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "from position", "":
		n = string(Standard)
	case "american":
		n = string(English)
	case "frysk":
		n = string(Frysk)
	}
	v := Variant(n)
	if _, ok := traitsTable[v]; !ok {
		return "", wrap(ErrUnknownVariant, name)
	}
	return v, nil
}

// VariantTraits is the full geometry + rule-trait bundle for one variant
// (spec §4.1 square geometry table and §4.2 variant trait table). Piece,
// Board and Game operations take a VariantTraits value (or a *Board that
// embeds one) rather than consulting a global table at call time.
type VariantTraits struct {
	Variant Variant

	// Geometry (spec §4.1).
	TotalSquares        int
	CellsPerRow         int // playable cells per row, in compressed column space
	CellsPerCol         int // = board height in ranks
	HalfSquaresPlayable bool
	BottomLeftPlayable bool

	// Movement/capture traits (spec §4.2).
	DiagonalMoves                 bool
	OrthogonalMoves               bool
	ManCanCaptureBackwards         bool
	ManCanCaptureKing              bool
	KingsFly                       bool
	MenPromoteAndStopCapturing     bool
	MenPromoteAndContinueCapturing bool

	// Legality-filter family (spec §4.5): one of "none", "russian",
	// "italian", "frisian", "max-length".
	CaptureFilter string
}

var traitsTable = map[Variant]VariantTraits{
	Standard: {
		Variant: Standard, TotalSquares: 50, CellsPerRow: 5, CellsPerCol: 10,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "max-length",
	},
	English: {
		Variant: English, TotalSquares: 32, CellsPerRow: 4, CellsPerCol: 8,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: false, ManCanCaptureKing: true, KingsFly: false,
		MenPromoteAndStopCapturing: true,
		CaptureFilter:              "none",
	},
	Italian: {
		Variant: Italian, TotalSquares: 32, CellsPerRow: 4, CellsPerCol: 8,
		HalfSquaresPlayable: true, BottomLeftPlayable: true,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: false, ManCanCaptureKing: false, KingsFly: false,
		MenPromoteAndStopCapturing: true,
		CaptureFilter:              "italian",
	},
	Russian: {
		Variant: Russian, TotalSquares: 32, CellsPerRow: 4, CellsPerCol: 8,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		MenPromoteAndContinueCapturing: true,
		CaptureFilter:                  "russian",
	},
	Brazilian: {
		Variant: Brazilian, TotalSquares: 32, CellsPerRow: 4, CellsPerCol: 8,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "russian",
	},
	Turkish: {
		Variant: Turkish, TotalSquares: 64, CellsPerRow: 8, CellsPerCol: 8,
		HalfSquaresPlayable: false, BottomLeftPlayable: false,
		DiagonalMoves: false, OrthogonalMoves: true,
		ManCanCaptureBackwards: false, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "max-length",
	},
	Frisian: {
		Variant: Frisian, TotalSquares: 50, CellsPerRow: 5, CellsPerCol: 10,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: true,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "frisian",
	},
	Frysk: {
		Variant: Frysk, TotalSquares: 50, CellsPerRow: 5, CellsPerCol: 10,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: true,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "frisian",
	},
	Antidraughts: {
		Variant: Antidraughts, TotalSquares: 50, CellsPerRow: 5, CellsPerCol: 10,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "max-length",
	},
	Breakthrough: {
		Variant: Breakthrough, TotalSquares: 50, CellsPerRow: 5, CellsPerCol: 10,
		HalfSquaresPlayable: true, BottomLeftPlayable: false,
		DiagonalMoves: true, OrthogonalMoves: false,
		ManCanCaptureBackwards: true, ManCanCaptureKing: true, KingsFly: true,
		CaptureFilter: "max-length",
	},
}

// Traits looks up the trait bundle for v. v must already be normalized.
func (v Variant) Traits() VariantTraits {
	t, ok := traitsTable[v]
	if !ok {
		panic("draughts: Traits called with unnormalized variant " + string(v))
	}
	return t
}

// antiGoal reports whether this variant inverts the usual "opponent has
// no moves" winning condition: in Antidraughts the side that runs out of
// moves, or is reduced to no pieces, WINS rather than loses.
func (v Variant) antiGoal() bool { return v == Antidraughts }

// startingSquares returns the Black/White starting squares for v in
// internal (unrotated, Black-at-top) numbering, per spec §6.1.
func (v Variant) startingSquares() (white, black []Square) {
	switch v {
	case Frysk:
		return squareRange(46, 50), squareRange(1, 5)
	case Turkish:
		return squareRange(41, 56), squareRange(9, 24)
	case English, Italian, Russian, Brazilian:
		return squareRange(21, 32), squareRange(1, 12)
	default:
		return squareRange(31, 50), squareRange(1, 20)
	}
}

// startingToMove returns the side that moves first from v's starting
// position. English is the one variant where Black, not White, opens
// (spec §8 scenario 6; grounded on the same "because in english black
// starts" rule fen.go's renderExternalFEN applies to its external FEN).
func (v Variant) startingToMove() Color {
	if v == English {
		return Black
	}
	return White
}

func squareRange(lo, hi int) []Square {
	out := make([]Square, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, Square(i))
	}
	return out
}
