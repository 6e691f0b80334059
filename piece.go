package draughts

// Color is one of the two sides (spec §3.2).
type Color int

const (
	White Color = 1
	Black Color = 2
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is one man or king living in a Board's arena. Per spec §9's
// re-architecture guidance, Piece carries no back-reference to its Board;
// every method that needs board state takes a *Board explicitly.
type Piece struct {
	Color    Color
	King     bool
	Position Square // NoSquare once captured
}

func (p *Piece) captured() bool { return p.Position == NoSquare }

// Hop is a single leg of a move: a positional slide (Over == nil) or one
// jump of a capture chain (Over names the captured piece).
type Hop struct {
	From, To Square
	Over     *Piece

	// OverSquare is the captured piece's square at the moment of this hop.
	// Over.Position is cleared to NoSquare once the chain is applied to a
	// real Board, so OverSquare is kept separately: it is what PDN
	// disambiguation rewrites intermediates against (spec §4.6 step 2).
	OverSquare Square

	// Dir is the unit travel direction of this hop (diagonal: both
	// components nonzero; orthogonal: exactly one is), recorded so PDN
	// disambiguation can find the square immediately behind OverSquare
	// without re-deriving direction from the (possibly distant, for a
	// flying king) From/To pair.
	Dir [2]int

	// Promotes records whether this hop is the one that crowns the mover,
	// per the variant's promotion-continuation rule (spec §4.3): the hop
	// reaching home row for pieces_promote_and_stop_capturing/
	// pieces_promote_and_continue_capturing variants, or the final hop of
	// a chain that reached home row without a further man continuation
	// for every other variant.
	Promotes bool
}

// Chain is a full move as a sequence of hops: length 1 for a positional
// move or a single capture, length N>1 for a multi-jump.
type Chain []Hop

func (c Chain) from() Square { return c[0].From }
func (c Chain) to() Square   { return c[len(c)-1].To }

func (c Chain) captures() []*Piece {
	var out []*Piece
	for _, h := range c {
		if h.Over != nil {
			out = append(out, h.Over)
		}
	}
	return out
}

func (c Chain) isCapture() bool { return len(c) > 0 && c[0].Over != nil }

// NullChain is the internal representation of the null move (spec §3.5,
// §4.5 null()): a single hop from NoSquare to NoSquare, i.e. "[[0,0]]".
func NullChain() Chain { return Chain{{From: NoSquare, To: NoSquare}} }

// isNull reports whether c is the null-move sentinel.
func (c Chain) isNull() bool {
	return len(c) == 1 && c[0].From == NoSquare && c[0].To == NoSquare && c[0].Over == nil
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func forwardRow(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// chainSearch tracks the state of an in-progress capture search: the
// moving piece's simulated position/rank, and the set of pieces already
// captured earlier in the chain, which keep occupying their square (and
// so keep blocking further jumps) until the whole move is applied to the
// board, per international draughts convention.
type chainSearch struct {
	mover    *Piece
	pos      Square
	king     bool
	captured map[*Piece]bool
	hops     Chain
}

func (b *Board) pieceAt(sq Square, cs *chainSearch) *Piece {
	p := b.Searcher.byPosition[sq]
	if p == nil {
		return nil
	}
	if cs != nil && p == cs.mover {
		// The moving piece is simulated away from its real arena square for
		// the rest of the chain search, so it never blocks its own ray even
		// when a flying king crosses back over its own starting square.
		return nil
	}
	return p
}

func (b *Board) empty(sq Square, cs *chainSearch) bool {
	return b.pieceAt(sq, cs) == nil
}

// PositionalSteps returns every non-capturing move available to p,
// ignoring whether a capture is mandatory elsewhere on the board (the
// forced-capture rule is applied by Game, not Piece).
func (p *Piece) PositionalSteps(b *Board) []Chain {
	t := b.Traits
	var out []Chain
	add := func(to Square) {
		out = append(out, Chain{{From: p.Position, To: to, Promotes: !p.King && isHomeRow(t, p.Color, to)}})
	}
	if p.King {
		for _, d := range p.kingDirections(t) {
			p.walkEmptyRay(b, d, t, add)
		}
		return out
	}
	if t.DiagonalMoves {
		fr := forwardRow(p.Color)
		for _, d := range diagonalDirs {
			if d[0] != fr {
				continue
			}
			if sq, ok := t.diagonalNeighbor(p.Position, d[0], d[1]); ok && b.empty(sq, nil) {
				add(sq)
			}
		}
	}
	if t.OrthogonalMoves && !t.DiagonalMoves {
		fr := forwardRow(p.Color)
		steps := [][2]int{{fr, 0}, {0, -1}, {0, 1}}
		for _, d := range steps {
			if sq, ok := t.orthogonalNeighbor(p.Position, d[0], d[1]); ok && b.empty(sq, nil) {
				add(sq)
			}
		}
	}
	return out
}

func (p *Piece) kingDirections(t VariantTraits) [][2]int {
	var dirs [][2]int
	if t.DiagonalMoves {
		dirs = append(dirs, diagonalDirs[:]...)
	}
	if t.OrthogonalMoves {
		dirs = append(dirs, orthogonalDirs[:]...)
	}
	return dirs
}

// walkEmptyRay calls add(sq) for each empty square reachable from p's
// position in direction d, stopping at (and excluding) the first occupied
// square. For a non-flying king it visits at most one square.
func (p *Piece) walkEmptyRay(b *Board, d [2]int, t VariantTraits, add func(Square)) {
	cur := p.Position
	for {
		next, ok := p.step(t, cur, d, 1)
		if !ok || !b.empty(next, nil) {
			return
		}
		add(next)
		cur = next
		if !t.KingsFly {
			return
		}
	}
}

// step advances one geometric hop of magnitude m in direction d from sq,
// dispatching to diagonal or orthogonal geometry.
func (p *Piece) step(t VariantTraits, sq Square, d [2]int, m int) (Square, bool) {
	if d[0] != 0 && d[1] != 0 {
		return t.diagonalNeighbor(sq, d[0]*m, d[1]*m)
	}
	return t.orthogonalNeighbor(sq, d[0]*m, d[1]*m)
}

// manCaptureDirs returns the directions along which a man may capture.
func manCaptureDirs(t VariantTraits, c Color) (diag, ortho [][2]int) {
	fr := forwardRow(c)
	if t.DiagonalMoves {
		for _, d := range diagonalDirs {
			if d[0] == fr || t.ManCanCaptureBackwards {
				diag = append(diag, d)
			}
		}
	}
	if t.OrthogonalMoves {
		for _, d := range orthogonalDirs {
			if d[0] != -fr || t.ManCanCaptureBackwards {
				ortho = append(ortho, d)
			}
		}
	}
	return
}

// CaptureChains returns every maximal capture sequence available to p
// (ignoring cross-piece, whole-board forced-capture comparisons, which
// Game applies across all of a side's pieces).
func (p *Piece) CaptureChains(b *Board) []Chain {
	cs := &chainSearch{mover: p, pos: p.Position, king: p.King, captured: map[*Piece]bool{}}
	return extendChain(b, p, cs)
}

func extendChain(b *Board, p *Piece, cs *chainSearch) []Chain {
	t := b.Traits
	var next []Chain
	if cs.king {
		next = kingChainExtensions(b, p, cs, t)
	} else {
		next = manChainExtensions(b, p, cs, t)
	}
	if len(next) == 0 {
		if len(cs.hops) == 0 {
			return nil
		}
		return []Chain{append(Chain{}, cs.hops...)}
	}
	return next
}

func manChainExtensions(b *Board, p *Piece, cs *chainSearch, t VariantTraits) []Chain {
	diag, ortho := manCaptureDirs(t, p.Color)
	var out []Chain
	tryDir := func(d [2]int) {
		mid, ok := p.step(t, cs.pos, d, 1)
		if !ok {
			return
		}
		enemy := b.pieceAt(mid, cs)
		if enemy == nil || enemy.Color == p.Color || cs.captured[enemy] {
			return
		}
		if !t.ManCanCaptureKing && enemy.King {
			return
		}
		land, ok := p.step(t, cs.pos, d, 2)
		if !ok || !b.empty(land, cs) {
			return
		}
		out = append(out, advance(b, p, cs, t, cs.pos, land, mid, enemy, d)...)
	}
	for _, d := range diag {
		tryDir(d)
	}
	for _, d := range ortho {
		tryDir(d)
	}
	return out
}

func kingChainExtensions(b *Board, p *Piece, cs *chainSearch, t VariantTraits) []Chain {
	var out []Chain
	for _, d := range p.kingDirections(t) {
		out = append(out, kingRayExtensions(b, p, cs, t, d)...)
	}
	return out
}

// kingRayExtensions walks a single ray, finds the first piece encountered
// (skipping re-crossable already-captured pieces per variant rule), and
// if it is a capturable enemy, enumerates every empty landing square
// beyond it up to the next blocker.
func kingRayExtensions(b *Board, p *Piece, cs *chainSearch, t VariantTraits, d [2]int) []Chain {
	cur := cs.pos
	for m := 1; ; m++ {
		sq, ok := p.step(t, cur, d, m)
		if !ok {
			return nil
		}
		blocker := b.pieceAt(sq, cs)
		if blocker == nil {
			continue
		}
		if cs.captured[blocker] {
			if canRecross(t, cs, blocker) {
				continue
			}
			return nil
		}
		if blocker.Color == p.Color {
			return nil
		}
		// Unlike a man, a king may always capture an enemy king: the
		// ManCanCaptureKing restriction (spec §4.2) only constrains men.
		// blocker is a fresh enemy: enumerate landing squares beyond it.
		var out []Chain
		for lm := m + 1; ; lm++ {
			land, ok := p.step(t, cur, d, lm)
			if !ok || !b.empty(land, cs) {
				break
			}
			out = append(out, advance(b, p, cs, t, cs.pos, land, sq, blocker, d)...)
		}
		return out
	}
}

// canRecross implements the Turkish "last capture only" exception
// (spec open question, see DESIGN.md): Turkish kings may fly back over a
// piece captured earlier in the chain as long as it is not the single
// most recently captured one; Frisian/Frysk! (the only other variant with
// orthogonal king rays) never allow re-crossing.
func canRecross(t VariantTraits, cs *chainSearch, blocker *Piece) bool {
	if t.Variant != Turkish {
		return false
	}
	if len(cs.hops) == 0 {
		return false
	}
	return cs.hops[len(cs.hops)-1].Over != blocker
}

// advance simulates taking one hop (from -> to, over capturing overSq) and
// recurses to find further captures. Promotion-on-continuation follows
// spec §4.3: pieces_promote_and_stop_capturing variants end the chain the
// instant a man reaches home row; pieces_promote_and_continue_capturing
// (Russian) crowns it immediately and lets it fly on as a king; every
// other variant probes the newly-crowned square as a man first, and only
// applies the crown if no man continuation exists there — a man that keeps
// capturing past home row is not crowned until the chain actually ends.
func advance(b *Board, p *Piece, cs *chainSearch, t VariantTraits, from, to, overSq Square, over *Piece, dir [2]int) []Chain {
	captured := copyCaptured(cs.captured)
	captured[over] = true
	hop := Hop{From: from, To: to, Over: over, OverSquare: overSq, Dir: dir}
	hops := appendHop(cs.hops, hop)

	if cs.king || !isHomeRow(t, p.Color, to) {
		child := &chainSearch{mover: cs.mover, pos: to, king: cs.king, captured: captured, hops: hops}
		return extendChain(b, p, child)
	}

	switch {
	case t.MenPromoteAndStopCapturing:
		hops[len(hops)-1].Promotes = true
		return []Chain{hops}
	case t.MenPromoteAndContinueCapturing:
		hops[len(hops)-1].Promotes = true
		child := &chainSearch{mover: cs.mover, pos: to, king: true, captured: captured, hops: hops}
		return extendChain(b, p, child)
	default:
		asMan := &chainSearch{mover: cs.mover, pos: to, king: false, captured: captured, hops: hops}
		if manNext := manChainExtensions(b, p, asMan, t); len(manNext) > 0 {
			return manNext
		}
		hops[len(hops)-1].Promotes = true
		return []Chain{hops}
	}
}

// appendHop returns a new Chain with h appended, never aliasing hops'
// backing array with any other in-flight chainSearch branch.
func appendHop(hops Chain, h Hop) Chain {
	out := make(Chain, len(hops)+1)
	copy(out, hops)
	out[len(hops)] = h
	return out
}

func copyCaptured(in map[*Piece]bool) map[*Piece]bool {
	out := make(map[*Piece]bool, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// isHomeRow reports whether sq is c's promotion row (the opponent's
// back rank), per original_source/draughts/core/piece.py is_on_enemy_home_row.
func isHomeRow(t VariantTraits, c Color, sq Square) bool {
	row, _ := t.rowColumn(sq)
	if c == White {
		return row == 0
	}
	return row == t.CellsPerCol-1
}
