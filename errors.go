package draughts

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Use errors.Is to test for a
// particular kind; the wrapped error carries the offending FEN, move, or
// notation string as context.
var (
	// ErrIllegalMove is returned when a move is well-formed but not present
	// in the current legal-move list (wrong piece, wrong direction, a
	// capture left on the board, etc).
	ErrIllegalMove = errors.New("draughts: illegal move")

	// ErrUnparseableNotation is returned when a notation string cannot be
	// tokenized at all (bad separator, non-numeric square, truncated move).
	ErrUnparseableNotation = errors.New("draughts: unparseable notation")

	// ErrAmbiguousNotation is returned when a PDN or Hub from/to pair
	// matches more than one legal capture chain and disambiguation did
	// not narrow it to exactly one candidate.
	ErrAmbiguousNotation = errors.New("draughts: ambiguous notation")

	// ErrUnknownVariant is returned when a variant name, after alias
	// normalization, does not name a supported variant.
	ErrUnknownVariant = errors.New("draughts: unknown variant")

	// ErrMalformedFEN is returned when a FEN string does not match the
	// "<side>:W<pieces>:B<pieces>" external grammar or its dense internal
	// counterpart.
	ErrMalformedFEN = errors.New("draughts: malformed FEN")
)

// wrap attaches context to one of the sentinels above while keeping it
// discoverable via errors.Is/errors.Cause.
func wrap(sentinel error, context string) error {
	return errors.Wrapf(sentinel, "%s", context)
}
