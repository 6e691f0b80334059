package draughts

import (
	"strconv"
	"strings"
)

// DenseFEN renders the board as the internal, unrotated dense string used
// for repetition hashing and FastClone: "<side><cell>*", one character per
// square from 1..TotalSquares, 'e' empty, 'w'/'b' man, 'W'/'B' king.
// Grounded on original_source/draughts/core/game.py get_fen (the internal,
// pre-rotation rendering it builds before handing off to convert.py).
func (b *Board) DenseFEN(toMove Color) string {
	var sb strings.Builder
	if toMove == White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	for sq := 1; sq <= b.Traits.TotalSquares; sq++ {
		p := b.PieceAt(Square(sq))
		switch {
		case p == nil:
			sb.WriteByte('e')
		case p.Color == White && !p.King:
			sb.WriteByte('w')
		case p.Color == White && p.King:
			sb.WriteByte('W')
		case p.Color == Black && !p.King:
			sb.WriteByte('b')
		default:
			sb.WriteByte('B')
		}
	}
	return sb.String()
}

// BoardFromDenseFEN parses a dense internal FEN into a fresh Board and the
// side to move.
func BoardFromDenseFEN(v Variant, fen string) (*Board, Color, error) {
	t := v.Traits()
	if len(fen) != t.TotalSquares+1 {
		return nil, 0, wrap(ErrMalformedFEN, fen)
	}
	var toMove Color
	switch fen[0] {
	case 'W':
		toMove = White
	case 'B':
		toMove = Black
	default:
		return nil, 0, wrap(ErrMalformedFEN, fen)
	}
	b := &Board{Traits: t}
	for i, ch := range fen[1:] {
		sq := Square(i + 1)
		switch ch {
		case 'e':
			continue
		case 'w':
			b.Pieces = append(b.Pieces, &Piece{Color: White, Position: sq})
		case 'W':
			b.Pieces = append(b.Pieces, &Piece{Color: White, King: true, Position: sq})
		case 'b':
			b.Pieces = append(b.Pieces, &Piece{Color: Black, Position: sq})
		case 'B':
			b.Pieces = append(b.Pieces, &Piece{Color: Black, King: true, Position: sq})
		default:
			return nil, 0, wrap(ErrMalformedFEN, fen)
		}
	}
	b.Searcher = newSearcher()
	b.Searcher.Rebuild(b.Pieces)
	return b, toMove, nil
}

// NewGameFromFEN builds a Game from an external, variant-notation FEN of
// the form "<side>:W<pieces>:B<pieces>", squares either numeric or
// algebraic, kings prefixed with 'K', ranges written "a-b" (spec §6.1).
func NewGameFromFEN(name, fen string, opts ...GameOption) (*Game, error) {
	v, err := NormalizeVariant(name)
	if err != nil {
		return nil, err
	}
	t := v.Traits()
	toMove, whiteSquares, whiteKings, blackSquares, blackKings, err := parseExternalFEN(t, fen)
	if err != nil {
		return nil, err
	}
	b := &Board{Traits: t}
	for _, sq := range whiteSquares {
		b.Pieces = append(b.Pieces, &Piece{Color: White, King: whiteKings[sq], Position: sq})
	}
	for _, sq := range blackSquares {
		b.Pieces = append(b.Pieces, &Piece{Color: Black, King: blackKings[sq], Position: sq})
	}
	b.Searcher = newSearcher()
	b.Searcher.Rebuild(b.Pieces)

	g := &Game{
		Variant:     v,
		Board:       b,
		ToMove:      toMove,
		repetitions: make(map[string]int),
	}
	for _, o := range opts {
		o(g)
	}
	g.recordPosition()
	return g, nil
}

func parseExternalFEN(t VariantTraits, fen string) (toMove Color, white, black []Square, whiteKings, blackKings map[Square]bool, err error) {
	parts := strings.Split(fen, ":")
	if len(parts) != 3 || len(parts[0]) == 0 {
		return 0, nil, nil, nil, nil, wrap(ErrMalformedFEN, fen)
	}
	switch strings.ToUpper(parts[0]) {
	case "W":
		toMove = White
	case "B":
		toMove = Black
	default:
		return 0, nil, nil, nil, nil, wrap(ErrMalformedFEN, fen)
	}
	whiteKings = map[Square]bool{}
	blackKings = map[Square]bool{}
	for _, part := range parts[1:] {
		if len(part) == 0 {
			continue
		}
		side := part[0]
		squares, kings, perr := parsePieceList(t, part[1:])
		if perr != nil {
			return 0, nil, nil, nil, nil, perr
		}
		switch side {
		case 'W', 'w':
			white = squares
			for _, sq := range squares {
				if kings[sq] {
					whiteKings[sq] = true
				}
			}
		case 'B', 'b':
			black = squares
			for _, sq := range squares {
				if kings[sq] {
					blackKings[sq] = true
				}
			}
		default:
			return 0, nil, nil, nil, nil, wrap(ErrMalformedFEN, fen)
		}
	}
	return toMove, white, black, whiteKings, blackKings, nil
}

// parsePieceList parses a comma-separated piece list such as
// "5,9,K23,31-35" into its squares, tracking which are kings.
func parsePieceList(t VariantTraits, list string) ([]Square, map[Square]bool, error) {
	if list == "" {
		return nil, map[Square]bool{}, nil
	}
	kings := map[Square]bool{}
	var out []Square
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		isKing := false
		if tok[0] == 'K' || tok[0] == 'k' {
			isKing = true
			tok = tok[1:]
		}
		if strings.Contains(tok, "-") {
			bounds := strings.SplitN(tok, "-", 2)
			if len(bounds) != 2 {
				return nil, nil, wrap(ErrMalformedFEN, tok)
			}
			lo, err1 := t.algebraicToSquare(bounds[0])
			hi, err2 := t.algebraicToSquare(bounds[1])
			if err1 != nil || err2 != nil {
				return nil, nil, wrap(ErrMalformedFEN, tok)
			}
			for sq := lo; sq <= hi; sq++ {
				out = append(out, sq)
				if isKing {
					kings[sq] = true
				}
			}
			continue
		}
		sq, err := t.algebraicToSquare(tok)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, sq)
		if isKing {
			kings[sq] = true
		}
	}
	return out, kings, nil
}

// FEN renders the game's position as an external, variant-notation FEN
// (spec §6.1), applying the variant's square rotation and, for
// Russian/Brazilian/Turkish, algebraic square rendering.
func (g *Game) FEN() string {
	return renderExternalFEN(g.Board, g.ToMove, false)
}

func renderExternalFEN(b *Board, toMove Color, toAlgebraic bool) string {
	t := b.Traits
	mode := t.rotationMode()
	render := func(c Color) string {
		var parts []string
		for _, p := range b.Searcher.PiecesByColor(c) {
			sq := t.rotateSquare(p.Position, mode)
			tok := ""
			if p.King {
				tok = "K"
			}
			if toAlgebraic || t.Variant == Russian || t.Variant == Brazilian || t.Variant == Turkish {
				tok += t.squareToAlgebraic(sq)
			} else {
				tok += strconv.Itoa(int(sq))
			}
			parts = append(parts, tok)
		}
		return strings.Join(parts, ",")
	}
	side := "W"
	white, black := render(White), render(Black)
	if toMove == Black {
		side = "B"
	}
	// English starts from Black's perspective in its own external FEN
	// (core/convert.py's "because in english black starts" swap).
	if t.Variant == English {
		white, black = black, white
		if side == "W" {
			side = "B"
		} else {
			side = "W"
		}
	}
	return side + ":W" + white + ":B" + black
}
