package rubik

import (
	"errors"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// quarters returns the number of clockwise quarter turns this turn is worth.
func (t Turn) quarters() int {
	switch t {
	case CW:
		return 1
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 0
	}
}

// Move is one of the 18 generator moves: a face and a turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// Valid reports whether m is one of the 18 generator moves.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.quarters() != 0
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single token of the form [UDLRFB](2|')?.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 || len(s) > 2 {
		return Move{}, ErrUnknownMove
	}

	var face Face
	switch s[0] {
	case 'D':
		face = Down
	case 'U':
		face = Up
	case 'F':
		face = Front
	case 'B':
		face = Back
	case 'R':
		face = Right
	case 'L':
		face = Left
	default:
		return Move{}, ErrUnknownMove
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		default:
			return Move{}, ErrUnknownMove
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Every unknown token is reported as a *MoveError in the joined error; the
// returned slice holds the valid moves in order.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	var errs []error
	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			errs = append(errs, &MoveError{Token: part, Index: i})
			continue
		}
		moves = append(moves, move)
	}

	return moves, errors.Join(errs...)
}

// MustParseMoves is like ParseMoves but panics on any unknown token.
// Intended for algorithm tables defined in code.
func MustParseMoves(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
