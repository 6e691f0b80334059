package draughts

// Searcher holds the derived indices over a Board's piece arena: a
// position -> piece lookup and per-color piece lists. It is rebuilt
// whenever the arena's piece set changes (a piece is captured, a move is
// applied), mirroring original_source/draughts/core/board_searcher.py's
// BoardSearcher, which the Python Board rebuilds from its __setattr__
// hook every time `pieces` is reassigned.
type Searcher struct {
	byPosition map[Square]*Piece
	byColor    map[Color][]*Piece
}

func newSearcher() *Searcher {
	return &Searcher{
		byPosition: make(map[Square]*Piece),
		byColor:    make(map[Color][]*Piece),
	}
}

// Rebuild recomputes every derived index from pieces. Captured pieces
// (Position == NoSquare) are dropped from both indices.
func (s *Searcher) Rebuild(pieces []*Piece) {
	s.byPosition = make(map[Square]*Piece, len(pieces))
	s.byColor = map[Color][]*Piece{White: nil, Black: nil}
	for _, p := range pieces {
		if p.captured() {
			continue
		}
		if existing, dup := s.byPosition[p.Position]; dup {
			panic("draughts: two pieces occupy the same square: " + existing.Position.String())
		}
		s.byPosition[p.Position] = p
		s.byColor[p.Color] = append(s.byColor[p.Color], p)
	}
}

// PieceAt returns the piece occupying sq, or nil if it is empty.
func (s *Searcher) PieceAt(sq Square) *Piece { return s.byPosition[sq] }

// PiecesByColor returns the live pieces of the given color. The slice is
// shared with the Searcher's internal state and must not be mutated.
func (s *Searcher) PiecesByColor(c Color) []*Piece { return s.byColor[c] }

// PiecesInPlay returns the pieces that may currently move: normally every
// live piece of the given color, but if mid is non-nil (a multi-capture
// in progress), only that single piece may continue moving, per
// board_searcher.py get_pieces_in_play's handling of
// piece_requiring_further_capture_moves.
func (s *Searcher) PiecesInPlay(c Color, mid *Piece) []*Piece {
	if mid != nil {
		return []*Piece{mid}
	}
	return s.PiecesByColor(c)
}
