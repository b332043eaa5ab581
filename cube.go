package rubik

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Color represents a facelet color. Each face owns the color with the same
// index when the cube is solved.
type Color byte

const (
	White  Color = 0 // Down face when solved
	Yellow Color = 1 // Up face when solved
	Red    Color = 2 // Front face when solved
	Orange Color = 3 // Back face when solved
	Blue   Color = 4 // Right face when solved
	Green  Color = 5 // Left face when solved
)

// NumColors is the size of the palette.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// ParseColor parses a single color letter (W, Y, R, O, B, G).
func ParseColor(r rune) (Color, bool) {
	switch r {
	case 'W', 'w':
		return White, true
	case 'Y', 'y':
		return Yellow, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	case 'B', 'b':
		return Blue, true
	case 'G', 'g':
		return Green, true
	default:
		return 0, false
	}
}

// ParseColors parses a color code such as "WRB" into its colors.
func ParseColors(code string) ([]Color, error) {
	colors := make([]Color, 0, len(code))
	for _, r := range code {
		c, ok := ParseColor(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidColor, r, code)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Face identifies one of the six fixed reference planes of the cube.
type Face byte

const (
	Down  Face = 0 // White
	Up    Face = 1 // Yellow
	Front Face = 2 // Red
	Back  Face = 3 // Orange
	Right Face = 4 // Blue
	Left  Face = 5 // Green
)

// NumFaces is the number of cube faces.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case Down:
		return "D"
	case Up:
		return "U"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Name returns the full face name.
func (f Face) Name() string {
	switch f {
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// SolvedColor returns the color a face holds when the cube is solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < NumFaces
}

// sideFaces lists the four faces around the Down/Up axis.
var sideFaces = [4]Face{Front, Right, Back, Left}

// Cube is a 3x3x3 cube stored as facelets. Each face is viewed from outside
// the cube and indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Side faces have row 0 along Up; Up has row 0 along Back; Down has row 0
// along Front. The center (index 4) never moves.
//
// A Cube is not safe for concurrent mutation. Clone it per goroutine.
type Cube struct {
	// facelets[face][row*3+col] = color
	facelets [NumFaces][9]Color
	log      logrus.FieldLogger
}

// NewCube creates a solved cube where every face holds its own color.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{log: cfg.logger}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for face := Face(0); face < NumFaces; face++ {
		color := face.SolvedColor()
		for i := 0; i < 9; i++ {
			c.facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the cube. The copy shares only the logger.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.facelets == other.facelets
}

// IsSolved returns true if every face is a single color.
// It does not check that the state is reachable by legal moves.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < NumFaces; face++ {
		first := c.facelets[face][0]
		for i := 1; i < 9; i++ {
			if c.facelets[face][i] != first {
				return false
			}
		}
	}
	return true
}

// Facelet returns the color at (face, row, col). It panics on out of range
// coordinates, like an array index.
func (c *Cube) Facelet(face Face, row, col int) Color {
	return c.facelets[face][row*3+col]
}

// Center returns the center color of a face.
func (c *Cube) Center(face Face) Color {
	return c.facelets[face][4]
}

// SetFacelet overwrites a single facelet.
//
// This bypasses the move engine and can produce states that no sequence of
// moves reaches. It exists for building demo and test fixtures; solvers should
// only mutate a cube through moves. Centers cannot be overwritten.
func (c *Cube) SetFacelet(face Face, row, col int, color Color) error {
	if !face.Valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCoord, face, row, col)
	}
	if color >= NumColors {
		return fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}
	if row == 1 && col == 1 {
		return fmt.Errorf("%w: %s", ErrFixedCenter, face.Name())
	}
	c.facelets[face][row*3+col] = color
	return nil
}

// ColorCounts returns how many facelets hold each color.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for face := 0; face < NumFaces; face++ {
		for i := 0; i < 9; i++ {
			if col := c.facelets[face][i]; col < NumColors {
				counts[col]++
			}
		}
	}
	return counts
}

// String returns a text net of the cube: Up on top, then Left Front Right
// Back side by side, then Down. For human inspection only.
func (c *Cube) String() string {
	var sb strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(c.facelets[face][row*3+col].String())
			sb.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(Up, row)
		sb.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(face, row)
		}
		sb.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		writeRow(Down, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v", c.IsSolved())
}

// Coord addresses one facelet.
type Coord struct {
	Face Face
	Row  int
	Col  int
}

func (p Coord) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Face, p.Row, p.Col)
}

// index returns the flat facelet index in [0, 54).
func (p Coord) index() int {
	return int(p.Face)*9 + p.Row*3 + p.Col
}

// Valid reports whether the coordinate lies on the cube.
func (p Coord) Valid() bool {
	return p.Face.Valid() && p.Row >= 0 && p.Row < 3 && p.Col >= 0 && p.Col < 3
}

// At returns the color at a coordinate.
func (c *Cube) At(p Coord) Color {
	return c.facelets[p.Face][p.Row*3+p.Col]
}
