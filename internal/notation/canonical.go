// Package notation provides move sequence utilities on top of the rubik
// move grammar.
package notation

import (
	"errors"
	"strings"

	"github.com/SeamusWaldron/rubik"
)

// Invert returns the sequence that undoes moves: reversed order, each move
// inverted.
func Invert(moves []rubik.Move) []rubik.Move {
	out := make([]rubik.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// InvertString parses s, inverts it and formats the result.
// Unknown tokens are dropped and reported in the returned error.
func InvertString(s string) (string, error) {
	moves, err := rubik.ParseMoves(s)
	return rubik.FormatMoves(Invert(moves)), err
}

// Simplify merges consecutive turns of the same face and drops turns that
// cancel out. The result has the same effect on any cube.
func Simplify(moves []rubik.Move) []rubik.Move {
	out := make([]rubik.Move, 0, len(moves))
	for _, m := range moves {
		if !m.Valid() {
			continue
		}
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}

		turn, ok := NormalizeTurn(int(out[n-1].Turn) + int(m.Turn))
		if !ok {
			out = out[:n-1]
			continue
		}
		out[n-1].Turn = turn
	}
	return out
}

// NormalizeTurn normalizes a quarter-turn count to a Turn.
// -3 -> CW, -2 -> Double, -1 -> CCW, 1 -> CW, 2 -> Double, 3 -> CCW.
// ok is false when the count is a multiple of four.
func NormalizeTurn(turn int) (rubik.Turn, bool) {
	turn = ((turn % 4) + 4) % 4
	switch turn {
	case 1:
		return rubik.CW, true
	case 2:
		return rubik.Double, true
	case 3:
		return rubik.CCW, true
	default:
		return 0, false
	}
}

// Validate reports every token of s that is not a move. The returned slice
// holds one *rubik.MoveError per bad token, in order.
func Validate(s string) []*rubik.MoveError {
	var bad []*rubik.MoveError
	for i, token := range strings.Fields(s) {
		if _, err := rubik.ParseMove(token); err != nil {
			bad = append(bad, &rubik.MoveError{Token: token, Index: i})
		}
	}
	return bad
}

// Errors converts Validate output into a single joined error, or nil.
func Errors(bad []*rubik.MoveError) error {
	errs := make([]error, len(bad))
	for i, e := range bad {
		errs[i] = e
	}
	return errors.Join(errs...)
}
