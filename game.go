package draughts

// Termination is a bitmask describing why a Game has ended, mirroring the
// teacher's types.go Termination pattern (a small bitmask with a String
// method) rather than a single enum, so callers can test for a specific
// reason with a bitwise AND.
type Termination uint8

const (
	NotTerminated  Termination = 0
	WhiteWins      Termination = 1 << 0
	BlackWins      Termination = 1 << 1
	DrawNoProgress Termination = 1 << 2
	DrawRepetition Termination = 1 << 3
)

func (t Termination) String() string {
	switch {
	case t&WhiteWins != 0:
		return "white wins"
	case t&BlackWins != 0:
		return "black wins"
	case t&DrawNoProgress != 0:
		return "draw (no progress)"
	case t&DrawRepetition != 0:
		return "draw (repetition)"
	default:
		return "in progress"
	}
}

// IsOver reports whether t names any terminal reason.
func (t Termination) IsOver() bool { return t != NotTerminated }

// Consecutive-non-capture-king-move draw thresholds, one per variant
// family with a flat (material-independent) limit (spec §4.5). Variants
// whose draw rule depends on material census instead (russian/brazilian's
// other clauses, frisian/frysk!, turkish) are handled in their own
// *MaterialDraw helpers below.
const (
	reversibleMoveLimit       = 25 // standard
	russianReversibleMoveLimit = 15 // russian, brazilian
	englishReversibleMoveLimit = 40 // english, italian
)

// Game layers move history, termination, and notation plumbing on top of
// a Board (spec §3.4). It owns the Board's lifetime: every push/pop goes
// through Game, never directly through Board.
type Game struct {
	Variant Variant
	Board   *Board
	ToMove  Color

	MoveStack  []Chain  // every applied chain, oldest first
	FenHistory []string // dense FEN after each applied chain, for repetition
	repetitions map[string]int

	reversibleMoves   int // half-moves since the last capture or man move
	movesSinceCapture int // half-moves since the last capture, of any kind

	// reversibleHistory/sinceCaptureHistory parallel FenHistory: the
	// counter values in effect at each recorded position, so Pop can
	// restore them without recomputing from move history (spec §4.5 push/
	// pop "pushes counter snapshots onto history stacks so pop() can
	// restore them").
	reversibleHistory   []int
	sinceCaptureHistory []int

	// hubToPDNPseudolegal mirrors core/variant.py's constructor flag: when
	// set, Move notation built without consulting the legal-move list is
	// allowed to approximate a PDN move from a Hub from/to pair alone.
	hubToPDNPseudolegal bool
}

// GameOption configures a new Game (spec's SUPPLEMENTED FEATURES).
type GameOption func(*Game)

// WithHubToPDNPseudolegal enables the fast, non-board-consulting Hub to
// PDN approximation used by engine-bridge callers (spec §4.6,
// core/game.py Game.move hub_to_pdn_pseudolegal).
func WithHubToPDNPseudolegal() GameOption {
	return func(g *Game) { g.hubToPDNPseudolegal = true }
}

// NewGame starts a fresh game in v's starting position.
func NewGame(name string, opts ...GameOption) (*Game, error) {
	v, err := NormalizeVariant(name)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Variant:     v,
		Board:       NewBoard(v),
		ToMove:      v.startingToMove(),
		repetitions: make(map[string]int),
	}
	for _, o := range opts {
		o(g)
	}
	g.recordPosition()
	return g, nil
}

func (g *Game) recordPosition() {
	fen := g.Board.DenseFEN(g.ToMove)
	g.FenHistory = append(g.FenHistory, fen)
	g.repetitions[fen]++
	g.reversibleHistory = append(g.reversibleHistory, g.reversibleMoves)
	g.sinceCaptureHistory = append(g.sinceCaptureHistory, g.movesSinceCapture)
}

// ReversibleMoveCount returns the number of consecutive half-moves played
// since the last capture or man move (spec §3.4 reversible_moves).
func (g *Game) ReversibleMoveCount() int { return g.reversibleMoves }

// Clone performs a full deep copy: new Board/Piece values, copied history
// slices (spec §5).
func (g *Game) Clone() *Game {
	ng := &Game{
		Variant:             g.Variant,
		Board:               g.Board.Clone(),
		ToMove:              g.ToMove,
		MoveStack:           append([]Chain(nil), g.MoveStack...),
		FenHistory:          append([]string(nil), g.FenHistory...),
		repetitions:         make(map[string]int, len(g.repetitions)),
		reversibleMoves:     g.reversibleMoves,
		movesSinceCapture:   g.movesSinceCapture,
		reversibleHistory:   append([]int(nil), g.reversibleHistory...),
		sinceCaptureHistory: append([]int(nil), g.sinceCaptureHistory...),
		hubToPDNPseudolegal: g.hubToPDNPseudolegal,
	}
	for k, v := range g.repetitions {
		ng.repetitions[k] = v
	}
	return ng
}

// FastClone re-derives a new Game from the current dense FEN, losing any
// mid-chain PendingCapturePiece state and move-stack-dependent history
// (spec §5's cheaper, lossy copy).
func (g *Game) FastClone() (*Game, error) {
	b, toMove, err := BoardFromDenseFEN(g.Variant, g.Board.DenseFEN(g.ToMove))
	if err != nil {
		return nil, err
	}
	ng := &Game{Variant: g.Variant, Board: b, ToMove: toMove, repetitions: make(map[string]int)}
	ng.recordPosition()
	return ng, nil
}

// LegalMoves returns every legal move in the current position, after
// forced-capture and per-variant filtering (spec §4.5).
func (g *Game) LegalMoves() []Chain {
	pieces := g.Board.PiecesInPlay(g.ToMove)
	var captures []Chain
	for _, p := range pieces {
		captures = append(captures, p.CaptureChains(g.Board)...)
	}
	if len(captures) > 0 {
		return g.filterCaptures(captures)
	}
	if g.Board.PendingCapturePiece != nil {
		// Mid-chain and nothing further to capture: the chain is complete
		// and should have already been pushed; no positional moves exist
		// for a piece mid-capture.
		return nil
	}
	var moves []Chain
	for _, p := range pieces {
		moves = append(moves, p.PositionalSteps(g.Board)...)
	}
	return moves
}

func (g *Game) filterCaptures(chains []Chain) []Chain {
	switch g.Board.Traits.CaptureFilter {
	case "none":
		return chains
	case "russian":
		// Drop every chain whose captures are a proper prefix of a longer
		// chain from the same origin: a capture that can continue must.
		var out []Chain
	next:
		for _, c := range chains {
			for _, o := range chains {
				prefix := len(o) > len(c) && o.from() == c.from()
				for i := 0; prefix && i < len(c); i++ {
					prefix = c[i].Over == o[i].Over
				}
				if prefix {
					continue next
				}
			}
			out = append(out, c)
		}
		return out
	case "italian":
		return g.filterItalian(chains)
	case "frisian":
		return g.filterFrisian(chains)
	default: // "max-length"
		return filterMaxLength(chains)
	}
}

func filterMaxLength(chains []Chain) []Chain {
	best := 0
	for _, c := range chains {
		if len(c) > best {
			best = len(c)
		}
	}
	var out []Chain
	for _, c := range chains {
		if len(c) == best {
			out = append(out, c)
		}
	}
	return out
}

// filterItalian applies max-length, then king-priority (a chain started
// by a king beats one started by a man), then max-kings-captured, then
// earliest-king-captured-first, per spec §4.5 / core/game.py legal_moves.
func (g *Game) filterItalian(chains []Chain) []Chain {
	chains = filterMaxLength(chains)
	byKingMover := partitionChains(chains, func(c Chain) bool {
		return g.moverIsKing(c)
	})
	if len(byKingMover) > 0 {
		chains = byKingMover
	}
	maxKings := 0
	kingsCaptured := func(c Chain) int {
		n := 0
		for _, p := range c.captures() {
			if p.King {
				n++
			}
		}
		return n
	}
	for _, c := range chains {
		if n := kingsCaptured(c); n > maxKings {
			maxKings = n
		}
	}
	var byMaxKings []Chain
	for _, c := range chains {
		if kingsCaptured(c) == maxKings {
			byMaxKings = append(byMaxKings, c)
		}
	}
	if maxKings == 0 {
		return byMaxKings
	}
	earliest := -1
	for _, c := range byMaxKings {
		for i, h := range c {
			if h.Over != nil && h.Over.King {
				if earliest == -1 || i < earliest {
					earliest = i
				}
				break
			}
		}
	}
	var out []Chain
	for _, c := range byMaxKings {
		for i, h := range c {
			if h.Over != nil && h.Over.King {
				if i == earliest {
					out = append(out, c)
				}
				break
			}
		}
	}
	return out
}

func (g *Game) moverIsKing(c Chain) bool {
	p := g.Board.PieceAt(c.from())
	return p != nil && p.King
}

func partitionChains(chains []Chain, pred func(Chain) bool) []Chain {
	var out []Chain
	for _, c := range chains {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// filterFrisian applies Frisian/Frysk!'s value-weighted maximum (king
// captures count 1.5x, men 1x) and the three-consecutive-moves-of-the-
// same-king ban, per spec §4.5.
func (g *Game) filterFrisian(chains []Chain) []Chain {
	value := func(c Chain) float64 {
		v := 0.0
		for _, p := range c.captures() {
			if p.King {
				v += 1.5
			} else {
				v++
			}
		}
		return v
	}
	best := 0.0
	for _, c := range chains {
		if v := value(c); v > best {
			best = v
		}
	}
	var out []Chain
	for _, c := range chains {
		if value(c) == best {
			out = append(out, c)
		}
	}
	return g.applyFrisianThreeMoveBan(out)
}

// applyFrisianThreeMoveBan drops non-capturing king moves that would be
// the fourth consecutive move of the same king (spec §9 open question 1):
// with fewer than 6 prior half-moves on the stack, or a capture among the
// last three, the rule does not apply.
func (g *Game) applyFrisianThreeMoveBan(chains []Chain) []Chain {
	if len(g.MoveStack) < 6 {
		return chains
	}
	last3 := g.MoveStack[len(g.MoveStack)-3:]
	var sameKingSquare Square = NoSquare
	samePiece := true
	var pieceIdentity *Piece
	for i, c := range last3 {
		if c.isCapture() || c.isNull() {
			samePiece = false
			break
		}
		p := g.Board.PieceAt(c.to())
		if p == nil || !p.King {
			samePiece = false
			break
		}
		if i == 0 {
			pieceIdentity = p
			sameKingSquare = c.from()
		} else if p != pieceIdentity {
			samePiece = false
		}
	}
	_ = sameKingSquare
	if !samePiece || pieceIdentity == nil {
		return chains
	}
	var out []Chain
	for _, c := range chains {
		if c.isCapture() {
			out = append(out, c)
			continue
		}
		if mover := g.Board.PieceAt(c.from()); mover == pieceIdentity {
			continue // would be the fourth consecutive move of this king
		}
		out = append(out, c)
	}
	return out
}

// Push applies chain (which must be an element of LegalMoves(), or the
// null-move sentinel) to the game: mutates the Board, updates history/
// repetition/counter bookkeeping, and switches the side to move.
func (g *Game) Push(chain Chain) error {
	if chain.isNull() {
		g.Null()
		return nil
	}
	legal := g.LegalMoves()
	var match Chain
	for _, c := range legal {
		if chainsEqual(c, chain) {
			match = c
			break
		}
	}
	if match == nil {
		return wrap(ErrIllegalMove, renderChainSquares(chain))
	}
	// Apply the board's own legal chain, whose Over pointers name this
	// Board's pieces even if chain was built before a Pop rebuilt them.
	chain = match
	mover := g.Board.PieceAt(chain.from())
	wasKing := mover.King
	g.Board.ApplyChain(mover, chain)

	if chain.isCapture() || !wasKing {
		g.reversibleMoves = 0
	} else {
		g.reversibleMoves++
	}
	if chain.isCapture() {
		g.movesSinceCapture = 0
	} else {
		g.movesSinceCapture++
	}

	g.MoveStack = append(g.MoveStack, chain)
	g.ToMove = g.ToMove.Opponent()
	g.Board.PendingCapturePiece = nil
	g.recordPosition()
	return nil
}

// Null switches the side to move without moving any piece, recording a
// null-move chain (spec §4.5 null(), §3.5 is_null sentinel [[0,0]]).
// Reversible-move counters are left untouched; it exists for analysis
// tools that need to probe a position from the opponent's perspective.
func (g *Game) Null() {
	g.MoveStack = append(g.MoveStack, NullChain())
	g.ToMove = g.ToMove.Opponent()
	g.recordPosition()
}

// Pop reverses exactly one completed turn (spec §4.5 pop()): it rebuilds
// the Board from fen_history[-2], restores the reversible-move and
// moves-since-capture counters from their history snapshots, discards
// the most recent MoveStack/FenHistory entries, and reverts the
// repetition count of the position being undone. It is an error to pop
// with no move on the stack.
func (g *Game) Pop() error {
	if len(g.MoveStack) == 0 {
		return wrap(ErrIllegalMove, "pop: no move to undo")
	}
	undone := g.FenHistory[len(g.FenHistory)-1]
	g.repetitions[undone]--
	if g.repetitions[undone] <= 0 {
		delete(g.repetitions, undone)
	}
	g.FenHistory = g.FenHistory[:len(g.FenHistory)-1]
	g.reversibleHistory = g.reversibleHistory[:len(g.reversibleHistory)-1]
	g.sinceCaptureHistory = g.sinceCaptureHistory[:len(g.sinceCaptureHistory)-1]
	g.MoveStack = g.MoveStack[:len(g.MoveStack)-1]

	restoreFen := g.FenHistory[len(g.FenHistory)-1]
	board, toMove, err := BoardFromDenseFEN(g.Variant, restoreFen)
	if err != nil {
		return err
	}
	g.Board = board
	g.ToMove = toMove
	g.reversibleMoves = g.reversibleHistory[len(g.reversibleHistory)-1]
	g.movesSinceCapture = g.sinceCaptureHistory[len(g.sinceCaptureHistory)-1]
	return nil
}

func chainsEqual(a, b Chain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].From != b[i].From || a[i].To != b[i].To || (a[i].Over == nil) != (b[i].Over == nil) || a[i].OverSquare != b[i].OverSquare {
			return false
		}
	}
	return true
}

// IsOver reports whether the game has reached a terminal state.
func (g *Game) IsOver() bool { return g.Termination().IsOver() }

// Termination computes the current termination bitmask (spec §4.5).
func (g *Game) Termination() Termination {
	if g.Variant == Breakthrough {
		// Breakthrough's win condition is a stateless census of the
		// current board, not a function of how the position was reached
		// (spec §4.5 has_winner: "color wins iff it has any king on the
		// board"); it never draws.
		if g.Board.hasKing(White) {
			return WhiteWins
		}
		if g.Board.hasKing(Black) {
			return BlackWins
		}
		return NotTerminated
	}
	if len(g.LegalMoves()) == 0 {
		loser := g.ToMove
		winner := loser.Opponent()
		if g.Variant.antiGoal() {
			winner, loser = loser, winner
		}
		if winner == White {
			return WhiteWins
		}
		return BlackWins
	}
	if g.Board.CountByColor(g.ToMove.Opponent()) == 0 {
		if g.ToMove == White {
			return WhiteWins
		}
		return BlackWins
	}
	if g.isVariantDraw() {
		return DrawNoProgress
	}
	if g.allowsThreefold() && g.isThreefoldRepetition() {
		return DrawRepetition
	}
	return NotTerminated
}

func (g *Game) isThreefoldRepetition() bool {
	return g.repetitions[g.FenHistory[len(g.FenHistory)-1]] >= 3
}

// allowsThreefold reports whether this variant's draw table includes
// threefold repetition at all (spec §4.5): every variant does except
// Frisian/Frysk! (whose table names only the two material-census clauses)
// and Breakthrough (which never draws).
func (g *Game) allowsThreefold() bool {
	return g.Variant != Frisian && g.Variant != Frysk && g.Variant != Breakthrough
}

// isVariantDraw dispatches to the per-variant draw table of spec §4.5.
// Breakthrough never reaches here (handled entirely in Termination).
func (g *Game) isVariantDraw() bool {
	switch g.Variant {
	case Standard:
		return g.reversibleMoves >= reversibleMoveLimit || g.standardMaterialDraw()
	case Russian, Brazilian:
		return g.reversibleMoves >= russianReversibleMoveLimit || g.russianMaterialDraw()
	case Frisian, Frysk:
		return g.frisianMaterialDraw()
	case English, Italian:
		return g.reversibleMoves >= englishReversibleMoveLimit
	case Turkish:
		return g.turkishMaterialDraw()
	default: // Antidraughts: threefold only, no material-census clause
		return false
	}
}

// materialCensus reports c's total live piece count and how many of them
// are kings.
func (g *Game) materialCensus(c Color) (total, kings int) {
	for _, p := range g.Board.Searcher.PiecesByColor(c) {
		total++
		if p.King {
			kings++
		}
	}
	return
}

// loneKing returns c's single piece's square if c has exactly one piece
// and it is a king.
func (g *Game) loneKing(c Color) (Square, bool) {
	pieces := g.Board.Searcher.PiecesByColor(c)
	if len(pieces) != 1 || !pieces[0].King {
		return NoSquare, false
	}
	return pieces[0].Position, true
}

// standardMaterialDraw implements spec §4.5's standard rows beyond the
// flat 25-move limit: a lone king against a three-piece force including a
// king draws after 16 moves since the last capture, and a lone king
// against at most two pieces draws after 5.
func (g *Game) standardMaterialDraw() bool {
	m := g.movesSinceCapture
	check := func(loneColor, forceColor Color) bool {
		if _, ok := g.loneKing(loneColor); !ok {
			return false
		}
		total, kings := g.materialCensus(forceColor)
		if total == 3 && kings >= 1 && m >= 16 {
			return true
		}
		return total <= 2 && m >= 5
	}
	return check(White, Black) || check(Black, White)
}

// russianMaterialDraw implements spec §4.5's russian/brazilian rows
// beyond the flat 15-move limit. The long-diagonal clause (three pieces
// including a king against a lone king whose square is on the main
// diagonal) is resolved against
// VariantTraits.onLongDiagonal; see DESIGN.md for the adopted reading of
// that clause.
func (g *Game) russianMaterialDraw() bool {
	t := g.Board.Traits
	m := g.movesSinceCapture
	wTotal, wKings := g.materialCensus(White)
	bTotal, bKings := g.materialCensus(Black)

	threeKingsVsOne := func(forceKings, loneTotal, loneKings int) bool {
		return forceKings >= 3 && loneTotal == 1 && loneKings == 1 && m >= 15
	}
	if threeKingsVsOne(wKings, bTotal, bKings) || threeKingsVsOne(bKings, wTotal, wKings) {
		return true
	}

	equalForce := wKings == bKings && wTotal == bTotal
	if equalForce && (wTotal == 4 || wTotal == 5) && m >= 30 {
		return true
	}
	if equalForce && (wTotal == 6 || wTotal == 7) && m >= 60 {
		return true
	}

	diagonalDraw := func(attackerTotal, attackerKings int, defender Color) bool {
		sq, ok := g.loneKing(defender)
		if !ok || attackerTotal != 3 || attackerKings < 1 {
			return false
		}
		return t.onLongDiagonal(sq) && m >= 5 // defender's king sits on the diagonal
	}
	if diagonalDraw(wTotal, wKings, Black) || diagonalDraw(bTotal, bKings, White) {
		return true
	}

	twoVsOne := func(attackerTotal, attackerKings, loneTotal, loneKings int) bool {
		return attackerTotal == 2 && attackerKings >= 1 && loneTotal == 1 && loneKings == 1 && m >= 5
	}
	if twoVsOne(wTotal, wKings, bTotal, bKings) || twoVsOne(bTotal, bKings, wTotal, wKings) {
		return true
	}
	return false
}

// frisianMaterialDraw implements spec §4.5's frisian/frysk! row: it has
// no threefold clause at all, only these two material-census ones.
func (g *Game) frisianMaterialDraw() bool {
	m := g.movesSinceCapture
	wTotal, wKings := g.materialCensus(White)
	bTotal, bKings := g.materialCensus(Black)

	twoKingsVsOne := func(forceTotal, forceKings, loneTotal, loneKings int) bool {
		return forceTotal == 2 && forceKings == 2 && loneTotal == 1 && loneKings == 1 && m >= 7
	}
	if twoKingsVsOne(wTotal, wKings, bTotal, bKings) || twoKingsVsOne(bTotal, bKings, wTotal, wKings) {
		return true
	}
	return wTotal == 1 && wKings == 1 && bTotal == 1 && bKings == 1 && m >= 2
}

// turkishMaterialDraw implements spec §4.5's turkish row: a lone piece
// against a lone piece (king or man, either side) draws after two
// non-capture moves.
func (g *Game) turkishMaterialDraw() bool {
	wTotal, _ := g.materialCensus(White)
	bTotal, _ := g.materialCensus(Black)
	return wTotal == 1 && bTotal == 1 && g.movesSinceCapture >= 2
}

// Winner returns the winning color, or ok=false if the game is not over
// or drawn.
func (g *Game) Winner() (Color, bool) {
	t := g.Termination()
	switch {
	case t&WhiteWins != 0:
		return White, true
	case t&BlackWins != 0:
		return Black, true
	default:
		return 0, false
	}
}

func renderChainSquares(c Chain) string {
	if c.isNull() {
		return "0-0"
	}
	if len(c) == 0 {
		return "-"
	}
	out := c[0].From.String()
	for _, h := range c {
		out += "-" + h.To.String()
	}
	return out
}
