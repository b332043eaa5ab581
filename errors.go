package rubik

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rubik package.
var (
	// Move errors
	ErrUnknownMove = errors.New("rubik: unknown move token")

	// Facelet errors
	ErrInvalidCoord = errors.New("rubik: facelet coordinate out of range")
	ErrInvalidColor = errors.New("rubik: invalid color")
	ErrFixedCenter  = errors.New("rubik: center facelets are fixed")

	// Piece errors
	ErrInvalidPieceKind = errors.New("rubik: piece kind must be edge or corner")
)

// MoveError reports a token that could not be applied. It is never fatal:
// sequence application skips the token and continues.
type MoveError struct {
	Token string // Offending token as written
	Index int    // Position of the token in its sequence
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrUnknownMove, e.Token, e.Index)
}

// Unwrap lets errors.Is match ErrUnknownMove.
func (e *MoveError) Unwrap() error {
	return ErrUnknownMove
}
