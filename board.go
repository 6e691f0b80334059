package draughts

// Board is the piece arena and its derived indices (spec §3.3). It knows
// nothing about move history, termination, or notation; Game layers those
// on top. Pieces never reference their Board; Board methods and Piece
// methods that need board state take a *Board argument instead (spec §9).
type Board struct {
	Traits VariantTraits
	Pieces []*Piece // stable arena; captured pieces stay with Position == NoSquare
	Searcher *Searcher

	// PendingCapturePiece is non-nil while a multi-capture is mid-chain:
	// only this piece may move until the chain finishes (spec §3.4,
	// board_searcher.py piece_requiring_further_capture_moves).
	PendingCapturePiece *Piece
}

// NewBoard builds the starting position for v.
func NewBoard(v Variant) *Board {
	t := v.Traits()
	whiteSq, blackSq := v.startingSquares()
	b := &Board{Traits: t}
	for _, sq := range whiteSq {
		b.Pieces = append(b.Pieces, &Piece{Color: White, Position: sq})
	}
	for _, sq := range blackSq {
		b.Pieces = append(b.Pieces, &Piece{Color: Black, Position: sq})
	}
	b.Searcher = newSearcher()
	b.Searcher.Rebuild(b.Pieces)
	return b
}

// Clone deep-copies the arena (new *Piece values) and rebuilds the
// Searcher over the copies, so mutating the clone never affects the
// original (spec §5's full-copy semantics).
func (b *Board) Clone() *Board {
	nb := &Board{Traits: b.Traits}
	nb.Pieces = make([]*Piece, len(b.Pieces))
	old2new := make(map[*Piece]*Piece, len(b.Pieces))
	for i, p := range b.Pieces {
		cp := *p
		nb.Pieces[i] = &cp
		old2new[p] = &cp
	}
	nb.Searcher = newSearcher()
	nb.Searcher.Rebuild(nb.Pieces)
	if b.PendingCapturePiece != nil {
		nb.PendingCapturePiece = old2new[b.PendingCapturePiece]
	}
	return nb
}

// PieceAt returns the piece at sq, or nil if empty.
func (b *Board) PieceAt(sq Square) *Piece { return b.Searcher.PieceAt(sq) }

// PiecesInPlay returns the pieces of c eligible to move right now,
// honoring an in-progress multi-capture.
func (b *Board) PiecesInPlay(c Color) []*Piece {
	return b.Searcher.PiecesInPlay(c, b.pendingFor(c))
}

func (b *Board) pendingFor(c Color) *Piece {
	if b.PendingCapturePiece != nil && b.PendingCapturePiece.Color == c {
		return b.PendingCapturePiece
	}
	return nil
}

// CountByColor returns the number of live pieces of c.
func (b *Board) CountByColor(c Color) int { return len(b.Searcher.PiecesByColor(c)) }

// hasKing reports whether c has any king on the board, the stateless
// census Breakthrough's win condition is defined against (spec §4.5).
func (b *Board) hasKing(c Color) bool {
	for _, p := range b.Searcher.PiecesByColor(c) {
		if p.King {
			return true
		}
	}
	return false
}

// ApplyChain performs every hop of chain on the board: moves the piece,
// marks every captured piece captured (Position = NoSquare; it stays in
// the arena), crowns it on whichever hop
// generation marked as Promotes (spec §4.3 — this may be an intermediate
// hop for pieces_promote_and_stop_capturing/pieces_promote_and_continue_
// capturing variants, or only the final hop for every other variant, per
// piece.go's advance), and rebuilds the Searcher. Hand-built chains (no
// hop marked Promotes) fall back to crowning on a man's final landing
// square reaching home row, so direct Board-level tests need not set the
// flag explicitly. It does not read or change PendingCapturePiece;
// Game.Push always applies whole chains and clears it afterwards.
func (b *Board) ApplyChain(p *Piece, chain Chain) {
	t := b.Traits
	anyPromotes := false
	for _, h := range chain {
		if h.Promotes {
			anyPromotes = true
			break
		}
	}
	for i, h := range chain {
		p.Position = h.To
		if h.Over != nil {
			h.Over.Position = NoSquare
		}
		if h.Promotes {
			p.King = true
		} else if !anyPromotes && !p.King && i == len(chain)-1 && isHomeRow(t, p.Color, h.To) {
			p.King = true
		}
	}
	b.Searcher.Rebuild(b.Pieces)
}
