package notation

import (
	"strings"

	"github.com/SeamusWaldron/rubik"
)

// Spoken converts a move to a plain-language description.
// Reference frame: White on the bottom, Red in front, facing the cube.
//
// Mapping:
//
//	R  -> "right up"              R' -> "right down"
//	L  -> "left down"             L' -> "left up"
//	U  -> "top rotate left"       U' -> "top rotate right"
//	D  -> "bottom rotate right"   D' -> "bottom rotate left"
//	F  -> "front clockwise"       F' -> "front anti-clockwise"
//	B  -> "back clockwise"        B' -> "back anti-clockwise"
//
// Double turns append " x 2" to the clockwise description.
func Spoken(m rubik.Move) string {
	var cw, ccw string
	switch m.Face {
	case rubik.Right:
		cw, ccw = "right up", "right down"
	case rubik.Left:
		cw, ccw = "left down", "left up"
	case rubik.Up:
		cw, ccw = "top rotate left", "top rotate right"
	case rubik.Down:
		cw, ccw = "bottom rotate right", "bottom rotate left"
	case rubik.Front:
		cw, ccw = "front clockwise", "front anti-clockwise"
	case rubik.Back:
		cw, ccw = "back clockwise", "back anti-clockwise"
	default:
		return m.Notation()
	}

	switch m.Turn {
	case rubik.CW:
		return cw
	case rubik.CCW:
		return ccw
	case rubik.Double:
		return cw + " x 2"
	}
	return m.Notation() // Fallback to standard notation
}

// SpokenSequence formats moves as a comma-separated spoken string.
func SpokenSequence(moves []rubik.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Spoken(m)
	}
	return strings.Join(parts, ", ")
}
