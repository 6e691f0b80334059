package draughts

import (
	"strconv"
	"strings"
)

// Square identifies a playable board square with the internal numbering:
// dense, 1-based, row-major from the top of the board, numbering only
// playable cells. Black's starting rows sit at the low end of the range
// (spec §3.1, "internal numeric, Black at the top"); square 0 is reserved
// as the "no square" sentinel for captured pieces.
type Square int

// NoSquare marks the absence of a square (spec §3.2, Piece.Position of a
// captured piece).
const NoSquare Square = 0

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return strconv.Itoa(int(s))
}

// rowColumn returns the 0-based dense (row, column) of sq under t's
// geometry. Column is in the compressed playable-cell space described by
// t.CellsPerRow, not the visual board column.
func (t VariantTraits) rowColumn(sq Square) (row, col int) {
	row = (int(sq) - 1) / t.CellsPerRow
	col = (int(sq) - 1) % t.CellsPerRow
	return
}

// squareAt is the inverse of rowColumn; it reports ok=false if the
// coordinates fall outside the board.
func (t VariantTraits) squareAt(row, col int) (Square, bool) {
	if row < 0 || row >= t.CellsPerCol || col < 0 || col >= t.CellsPerRow {
		return NoSquare, false
	}
	return Square(row*t.CellsPerRow + col + 1), true
}

// visualParity reports the column offset (0 or 1) added when converting
// between the dense playable-cell column and the visual board column for
// the given dense row. It alternates every row, with the starting phase
// set by BottomLeftPlayable (spec §4.1's "parity(row)").
func (t VariantTraits) visualParity(row int) int {
	if (row%2 == 1) != t.BottomLeftPlayable {
		return 1
	}
	return 0
}

// visualColumn converts a dense (row, col) to the visual board column
// (0-based, full-width) used by algebraic notation. Only meaningful when
// HalfSquaresPlayable is true; for full boards (Turkish) column IS the
// visual column.
func (t VariantTraits) visualColumn(row, col int) int {
	if !t.HalfSquaresPlayable {
		return col
	}
	return 2*col + t.visualParity(row)
}

// squareFromVisual is the inverse of visualColumn combined with rowColumn:
// given a dense row and a visual column, find the playable square there,
// or ok=false if no playable cell exists at that (row, visualCol).
func (t VariantTraits) squareFromVisual(row, visualCol int) (Square, bool) {
	if row < 0 || row >= t.CellsPerCol {
		return NoSquare, false
	}
	if !t.HalfSquaresPlayable {
		return t.squareAt(row, visualCol)
	}
	diff := visualCol - t.visualParity(row)
	if diff < 0 || diff%2 != 0 {
		return NoSquare, false
	}
	return t.squareAt(row, diff/2)
}

// diagonalNeighbor walks from sq by (dr, dc) ranks and files in real board
// coordinates; dr and dc have equal magnitude (1 for a single step, more
// for a jump or a longer hop along the same diagonal). It is the building
// block for both man diagonal moves and king diagonal rays.
func (t VariantTraits) diagonalNeighbor(sq Square, dr, dc int) (Square, bool) {
	row, col := t.rowColumn(sq)
	vcol := t.visualColumn(row, col)
	return t.squareFromVisual(row+dr, vcol+dc)
}

// orthogonalNeighbor walks from sq by dRow rows or dCol columns (one of
// them zero, either sign, any magnitude); each vertical unit moves two
// dense rows on half-squares-playable
// boards (the intervening rank has no playable square at the same file)
// and one dense row at a time on full boards (Turkish); horizontal steps
// always move one dense column.
func (t VariantTraits) orthogonalNeighbor(sq Square, dRow, dCol int) (Square, bool) {
	row, col := t.rowColumn(sq)
	if dRow != 0 {
		step := dRow
		if t.HalfSquaresPlayable {
			step *= 2
		}
		return t.squareAt(row+step, col)
	}
	return t.squareAt(row, col+dCol)
}

// algebraicToSquare converts one algebraic square token ("a1", "h8", ...)
// to its internal Square, grounded on
// original_source/draughts/convert.py:_algebraic_to_numeric_square.
func (t VariantTraits) algebraicToSquare(tok string) (Square, error) {
	tok = strings.ToLower(tok)
	if len(tok) < 2 || tok[0] < 'a' || tok[0] > 'z' {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return NoSquare, wrap(ErrUnparseableNotation, tok)
		}
		return Square(n), nil
	}
	rank, err := strconv.Atoi(tok[1:])
	if err != nil || rank < 1 {
		return NoSquare, wrap(ErrUnparseableNotation, tok)
	}
	letterIdx := int(tok[0] - 'a')
	col := letterIdx
	if t.HalfSquaresPlayable {
		col = letterIdx / 2
	}
	row := rank - 1
	sq, ok := t.squareAt(row, col)
	if !ok {
		return NoSquare, wrap(ErrUnparseableNotation, tok)
	}
	return sq, nil
}

// squareToAlgebraic is the inverse of algebraicToSquare, grounded on
// original_source/draughts/convert.py:_numeric_to_algebraic_square.
func (t VariantTraits) squareToAlgebraic(sq Square) string {
	row, col := t.rowColumn(sq)
	visual := col
	if t.HalfSquaresPlayable {
		visual = 2*col + t.visualParity(row)
	}
	return string(rune('a'+visual)) + strconv.Itoa(row+1)
}

// rotateSquare applies one of the four board symmetries used to convert
// between internal (Black-at-top) numbering and a variant's own numbering,
// grounded on original_source/draughts/convert.py:_rotate_move.
//
// mode 0 = reverse row order, 1 = mirror (rotate 180deg), 2 = identity,
// 3 = reverse column order.
func (t VariantTraits) rotateSquare(sq Square, mode int) Square {
	switch mode {
	case 0:
		return t.reverseColumn(t.reverseRowAndColumn(sq))
	case 1:
		return t.reverseRowAndColumn(sq)
	case 3:
		return t.reverseColumn(sq)
	default:
		return sq
	}
}

func (t VariantTraits) reverseColumn(sq Square) Square {
	n := int(sq)
	perRow := t.CellsPerRow
	squareInRow := n % perRow
	if squareInRow == 0 {
		squareInRow += perRow
	}
	return Square(((n-1)/perRow)*perRow + (perRow - (squareInRow - 1)))
}

func (t VariantTraits) reverseRowAndColumn(sq Square) Square {
	return Square(t.TotalSquares + 1 - int(sq))
}

// closestLandingBeyond returns the square immediately behind over (the
// captured piece) in travel direction dir, i.e. the smallest-magnitude
// landing a flying king could have taken to complete that capture. Used to
// rewrite PDN intermediates to the closest-to-enemy convention (spec §4.6
// step 2), since a flying king's actual chosen landing square during play
// may sit further along the same ray.
func (t VariantTraits) closestLandingBeyond(over Square, dir [2]int) (Square, bool) {
	if dir[0] != 0 && dir[1] != 0 {
		return t.diagonalNeighbor(over, dir[0], dir[1])
	}
	return t.orthogonalNeighbor(over, dir[0], dir[1])
}

// onLongDiagonal reports whether sq sits on the board's main diagonal
// (visual row == visual column), the "long diagonal" russian/brazilian's
// material-census draw clause (spec §4.5) is defined against.
func (t VariantTraits) onLongDiagonal(sq Square) bool {
	row, col := t.rowColumn(sq)
	return row == t.visualColumn(row, col)
}

// rotationMode returns this variant's fixed external-notation transform
// (spec §6.2).
func (t VariantTraits) rotationMode() int {
	switch t.Variant {
	case English:
		return 1
	case Russian, Brazilian, Turkish:
		return 0
	default:
		return 2
	}
}
