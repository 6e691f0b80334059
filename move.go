package draughts

import (
	"sort"
	"strconv"
	"strings"
)

// PDN renders chain in the variant's own notation (spec §4.6, §6.3):
// squares rotated into the variant's numbering, rendered algebraically
// for Russian/Brazilian/Turkish, joined with 'x' for a capture chain or
// '-' for a positional move. Intermediate landing squares of a capture
// chain are rewritten to the closest square beyond the captured piece
// (spec §4.6 step 2's "closest-to-enemy" convention) rather than the
// actual square a flying king chose to land on mid-chain; only the final
// landing square is always the real one, since that is what the
// resulting position depends on.
func (g *Game) PDN(chain Chain) string {
	if chain.isNull() {
		return "0-0"
	}
	return g.render(chain, true)
}

// Hub renders chain in internal, unrotated numeric notation (spec §6.4),
// the form used by Hub-protocol engine adapters. Unlike PDN, Hub renders
// the actual simulated landing squares verbatim: it is the engine's own
// bookkeeping format, not a human notation convention.
func (g *Game) Hub(chain Chain) string {
	if chain.isNull() {
		return "0000"
	}
	return g.render(chain, false)
}

func (g *Game) render(chain Chain, variantNotation bool) string {
	t := g.Board.Traits
	sep := "-"
	if chain.isCapture() {
		sep = "x"
	}
	squareText := func(sq Square) string {
		if !variantNotation {
			return sq.String()
		}
		rotated := t.rotateSquare(sq, t.rotationMode())
		if t.Variant == Russian || t.Variant == Brazilian || t.Variant == Turkish {
			return t.squareToAlgebraic(rotated)
		}
		return rotated.String()
	}
	parts := make([]string, 0, len(chain)+1)
	parts = append(parts, squareText(chain.from()))
	for i, h := range chain {
		land := h.To
		if variantNotation && h.Over != nil && i != len(chain)-1 {
			if closest, ok := t.closestLandingBeyond(h.OverSquare, h.Dir); ok {
				land = closest
			}
		}
		parts = append(parts, squareText(land))
	}
	return strings.Join(parts, sep)
}

// ParsePDN parses a move in the variant's own notation and resolves it
// against the current legal-move list, grounded on
// original_source/draughts/core/variant.py Move._from_board /
// convert.py move_from_variant. Endpoint-only input ("34x18") is resolved
// against every legal chain sharing that (from, to) pair; if more than
// one remains, ErrAmbiguousNotation is returned rather than guessing. A
// full intermediate path is matched against the closest-to-enemy
// rewritten squares PDN() emits, not just the actual simulated landing
// squares, so a move round-trips even when a flying king's real path
// differs from the conventional notation.
func (g *Game) ParsePDN(notation string) (Chain, error) {
	if notation == "0-0" || notation == "0000" {
		return NullChain(), nil
	}
	t := g.Board.Traits
	squares, err := tokenizeMove(notation, func(tok string) (Square, error) {
		sq, err := t.algebraicToSquare(tok)
		if err != nil {
			return 0, err
		}
		mode := t.rotationMode()
		return t.rotateSquare(sq, inverseRotation(mode)), nil
	})
	if err != nil {
		return nil, err
	}
	return g.resolveSquares(squares, func(c Chain, sq []Square) bool {
		return chainMatchesPDNSquares(t, c, sq)
	})
}

// ParseHub parses a move already in internal, unrotated numeric notation.
func (g *Game) ParseHub(notation string) (Chain, error) {
	if notation == "0000" || notation == "0-0" {
		return NullChain(), nil
	}
	squares, err := tokenizeMove(notation, func(tok string) (Square, error) {
		return g.Board.Traits.algebraicToSquare(tok)
	})
	if err != nil {
		return nil, err
	}
	return g.resolveSquares(squares, chainMatchesSquares)
}

// HubToPDN converts a move already given in internal Hub notation into the
// variant's own PDN notation (spec §4.6, core/game.py Game.move
// hub_to_pdn_pseudolegal). When the Game was built WithHubToPDNPseudolegal,
// the squares are rotated and rendered directly without consulting
// LegalMoves, matching a pseudolegal engine bridge that trusts its own move
// generator; otherwise the move is resolved against LegalMoves first, so an
// illegal Hub string is rejected rather than silently rendered.
func (g *Game) HubToPDN(hub string) (string, error) {
	squares, err := tokenizeMove(hub, func(tok string) (Square, error) {
		return g.Board.Traits.algebraicToSquare(tok)
	})
	if err != nil {
		return "", err
	}
	if g.hubToPDNPseudolegal {
		return g.renderVariantSquares(squares), nil
	}
	chain, err := g.resolveSquares(squares, chainMatchesSquares)
	if err != nil {
		return "", err
	}
	return g.PDN(chain), nil
}

// renderVariantSquares renders a raw Hub square sequence in the variant's
// own rotated/algebraic notation without checking it against LegalMoves.
func (g *Game) renderVariantSquares(squares []Square) string {
	t := g.Board.Traits
	// A pseudolegal caller supplies only endpoints, with no Over
	// information, so capture chains render with '-' like positional
	// moves rather than guessing at 'x' (spec §6.4).
	sep := "-"
	parts := make([]string, len(squares))
	for i, sq := range squares {
		rotated := t.rotateSquare(sq, t.rotationMode())
		if t.Variant == Russian || t.Variant == Brazilian || t.Variant == Turkish {
			parts[i] = t.squareToAlgebraic(rotated)
		} else {
			parts[i] = rotated.String()
		}
	}
	return strings.Join(parts, sep)
}

// inverseRotation returns the mode that undoes mode; modes 0 and 2 are
// involutions on themselves within their orbit (reverse-row and identity
// are each their own inverse given the fixed TotalSquares/CellsPerRow),
// as is mode 1 (mirror) and mode 3 (reverse-column).
func inverseRotation(mode int) int { return mode }

func tokenizeMove(notation string, parse func(string) (Square, error)) ([]Square, error) {
	notation = strings.TrimSpace(notation)
	sep := "-"
	if strings.Contains(notation, "x") {
		sep = "x"
	}
	toks := strings.Split(notation, sep)
	if len(toks) < 2 {
		return nil, wrap(ErrUnparseableNotation, notation)
	}
	squares := make([]Square, 0, len(toks))
	for _, tok := range toks {
		sq, err := parse(tok)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	return squares, nil
}

// resolveSquares matches a parsed square sequence against LegalMoves.
// full is the matcher used once endpoint-only resolution doesn't apply
// (more than two squares were given): ParseHub and ParsePDN use different
// matchers because PDN's intermediate squares may be the closest-to-enemy
// rewrite rather than the actual simulated path.
func (g *Game) resolveSquares(squares []Square, full func(Chain, []Square) bool) (Chain, error) {
	legal := g.LegalMoves()
	if len(squares) == 2 {
		var matches []Chain
		for _, c := range legal {
			if c.from() == squares[0] && c.to() == squares[1] {
				matches = append(matches, c)
			}
		}
		switch len(matches) {
		case 0:
			return nil, wrap(ErrIllegalMove, renderSquares(squares))
		case 1:
			return matches[0], nil
		default:
			return nil, wrap(ErrAmbiguousNotation, renderSquares(squares))
		}
	}
	for _, c := range legal {
		if full(c, squares) {
			return c, nil
		}
	}
	return nil, wrap(ErrIllegalMove, renderSquares(squares))
}

func chainMatchesSquares(c Chain, squares []Square) bool {
	if len(c)+1 != len(squares) {
		return false
	}
	if c.from() != squares[0] {
		return false
	}
	for i, h := range c {
		if h.To != squares[i+1] {
			return false
		}
	}
	return true
}

// chainMatchesPDNSquares is chainMatchesSquares's PDN counterpart: every
// non-final hop accepts either its actual landing square or the
// closest-to-enemy rewritten one (PDN() emits the latter; a caller may
// supply either, so parsing is tolerant of both). The final hop must
// match the real landing square, since that is what the resulting
// position depends on.
func chainMatchesPDNSquares(t VariantTraits, c Chain, squares []Square) bool {
	if len(c)+1 != len(squares) {
		return false
	}
	if c.from() != squares[0] {
		return false
	}
	for i, h := range c {
		want := squares[i+1]
		if h.To == want {
			continue
		}
		if i == len(c)-1 || h.Over == nil {
			return false
		}
		closest, ok := t.closestLandingBeyond(h.OverSquare, h.Dir)
		if !ok || closest != want {
			return false
		}
	}
	return true
}

func renderSquares(squares []Square) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, "-")
}

// pad2 zero-pads n to two digits, the square encoding used by the
// position-move and li_* notations below (spec §3.5).
func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// sortCaptures returns squares sorted ascending, the canonical order
// spec §3.5's sort_captures defines for rendering a chain's captured
// squares in position-move notation.
func sortCaptures(squares []Square) []Square {
	out := append([]Square(nil), squares...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Move is a single move expressed simultaneously in every notation the
// package understands (spec §3.5): it is built once, against a Game and
// a resolved Chain (or, via NewMoveFromStepsNoBoard, from bare squares
// with no board to consult), and every field is filled in at construction
// time rather than recomputed on access.
type Move struct {
	Chain Chain

	IsNull      bool
	HasCaptures bool
	Ambiguous   bool

	Captures []Square // sorted ascending (sort_captures)

	Hub         string // internal numeric notation, actual landing squares
	HubPosition string // from||to||sorted-captures, zero-padded, unrotated
	PDN         string // variant notation, closest-to-enemy intermediates
	PDNPosition string // from||to||sorted-captures, zero-padded, rotated
	LiAPIMove   string // concatenation of per-hop "FFTT", unrotated
	LiOneMove   string // concatenation of waypoint squares, unrotated
}

// NewMoveFromChain builds every notation of a Chain already known to be
// legal in g (a LegalMoves() element, or one already pushed).
func NewMoveFromChain(g *Game, c Chain) Move {
	if c.isNull() {
		return Move{Chain: c, IsNull: true, Hub: "0000", PDN: "0-0", HubPosition: "0000", PDNPosition: "0-0", LiAPIMove: "0000", LiOneMove: "0000"}
	}
	t := g.Board.Traits
	captures := sortCaptures(overSquaresOf(c))

	positionOf := func(rotate bool) string {
		from, to := c.from(), c.to()
		if rotate {
			mode := t.rotationMode()
			from = t.rotateSquare(from, mode)
			to = t.rotateSquare(to, mode)
		}
		s := pad2(int(from)) + pad2(int(to))
		for _, sq := range captures {
			if rotate {
				sq = t.rotateSquare(sq, t.rotationMode())
			}
			s += pad2(int(sq))
		}
		return s
	}

	liAPI := strings.Builder{}
	liOne := strings.Builder{}
	liOne.WriteString(pad2(int(c.from())))
	for _, h := range c {
		liAPI.WriteString(pad2(int(h.From)) + pad2(int(h.To)))
		liOne.WriteString(pad2(int(h.To)))
	}

	return Move{
		Chain:       c,
		HasCaptures: c.isCapture(),
		Captures:    captures,
		Hub:         g.Hub(c),
		HubPosition: positionOf(false),
		PDN:         g.PDN(c),
		PDNPosition: positionOf(true),
		LiAPIMove:   liAPI.String(),
		LiOneMove:   liOne.String(),
	}
}

// NewMoveFromHub parses hub in internal notation, resolves it against g's
// legal moves, and builds the resulting Move.
func NewMoveFromHub(g *Game, hub string) (Move, error) {
	c, err := g.ParseHub(hub)
	if err != nil {
		return Move{}, err
	}
	return NewMoveFromChain(g, c), nil
}

// NewMoveFromPDN parses pdn in the variant's own notation, resolves it
// against g's legal moves, and builds the resulting Move.
func NewMoveFromPDN(g *Game, pdn string) (Move, error) {
	c, err := g.ParsePDN(pdn)
	if err != nil {
		return Move{}, err
	}
	return NewMoveFromChain(g, c), nil
}

// NewMoveFromLiAPI parses a li_api_move string (a concatenation of
// zero-padded "FFTT" hops in internal numbering) and resolves it against
// g's legal moves.
func NewMoveFromLiAPI(g *Game, li string) (Move, error) {
	if len(li)%4 != 0 || len(li) == 0 {
		return Move{}, wrap(ErrUnparseableNotation, li)
	}
	squares := make([]Square, 0, len(li)/4+1)
	for i := 0; i < len(li); i += 4 {
		from, err1 := strconv.Atoi(li[i : i+2])
		to, err2 := strconv.Atoi(li[i+2 : i+4])
		if err1 != nil || err2 != nil {
			return Move{}, wrap(ErrUnparseableNotation, li)
		}
		if i == 0 {
			squares = append(squares, Square(from))
		}
		squares = append(squares, Square(to))
	}
	c, err := g.resolveSquares(squares, chainMatchesSquares)
	if err != nil {
		return Move{}, err
	}
	return NewMoveFromChain(g, c), nil
}

// NewMoveFromStepsNoBoard builds a Move from a bare, unresolved square
// sequence with no Game to consult: no notation beyond Hub/li forms can
// be produced (PDN rendering needs a VariantTraits to rotate/algebrize
// squares), and the move is Ambiguous whenever only the two endpoints are
// known, since an endpoint pair alone cannot distinguish a positional
// move from the unresolved path of a multi-jump capture (spec §3.5).
func NewMoveFromStepsNoBoard(steps []Square) Move {
	if len(steps) == 1 && steps[0] == NoSquare {
		return Move{Chain: NullChain(), IsNull: true, Hub: "0000", HubPosition: "0000", LiAPIMove: "0000", LiOneMove: "0000"}
	}
	liOne := strings.Builder{}
	for _, sq := range steps {
		liOne.WriteString(pad2(int(sq)))
	}
	hub := renderSquares(steps)
	if len(steps) > 2 {
		hub = strings.ReplaceAll(hub, "-", "x")
	}
	return Move{
		HasCaptures: len(steps) > 2,
		Ambiguous:   len(steps) == 2,
		Hub:         hub,
		HubPosition: pad2(int(steps[0])) + pad2(int(steps[len(steps)-1])),
		LiOneMove:   liOne.String(),
	}
}

// overSquaresOf returns the square each hop's captured piece occupied at
// the moment of capture (Hop.OverSquare), which stays valid even after
// the chain has been applied to a real Board and Over.Position has been
// cleared to NoSquare.
func overSquaresOf(c Chain) []Square {
	var out []Square
	for _, h := range c {
		if h.Over != nil {
			out = append(out, h.OverSquare)
		}
	}
	return out
}
