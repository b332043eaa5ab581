package rubik

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPartitionsNonCenterFacelets(t *testing.T) {
	r := DefaultRegistry()

	seen := map[Coord]string{}
	for _, kind := range []PieceKind{Edge, Corner} {
		for _, p := range r.Pieces(kind) {
			require.Len(t, p.Coords, kind.Size(), p.Code)
			for _, c := range p.Coords {
				owner, dup := seen[c]
				require.False(t, dup, "%v used by %s and %s", c, owner, p.Code)
				seen[c] = p.Code
			}
		}
	}

	assert.Len(t, seen, 48)
	for face := Face(0); face < NumFaces; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				_, ok := seen[Coord{face, row, col}]
				assert.Equal(t, !(row == 1 && col == 1), ok, "%v(%d,%d)", face, row, col)
			}
		}
	}
}

func TestRegistryCodesMatchSolvedCube(t *testing.T) {
	r := DefaultRegistry()
	c := NewCube()
	for _, kind := range []PieceKind{Edge, Corner} {
		for _, p := range r.Pieces(kind) {
			assert.Equal(t, p.Colors, liveColors(c, p.Coords), p.Code)
		}
	}
	assert.Len(t, r.Pieces(Edge), 12)
	assert.Len(t, r.Pieces(Corner), 8)
}

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	coords, ok := r.Lookup(Edge, "WR")
	require.True(t, ok)
	assert.Equal(t, []Coord{{Down, 0, 1}, {Front, 2, 1}}, coords)

	coords, ok = r.Lookup(Corner, "YBR")
	require.True(t, ok)
	assert.Equal(t, []Coord{{Up, 2, 2}, {Right, 0, 0}, {Front, 0, 2}}, coords)

	_, ok = r.Lookup(Edge, "WRB")
	assert.False(t, ok)
	_, ok = r.Lookup(Corner, "RW")
	assert.False(t, ok)
}

func TestRegistryIsImmutable(t *testing.T) {
	r := DefaultRegistry()

	coords, _ := r.Lookup(Edge, "WR")
	coords[0] = Coord{Up, 0, 0}

	pieces := r.Pieces(Corner)
	pieces[0].Colors[0] = Green
	pieces[0].Coords[0] = Coord{Up, 0, 0}

	again, _ := r.Lookup(Edge, "WR")
	assert.Equal(t, Coord{Down, 0, 1}, again[0])
	assert.Equal(t, White, r.Pieces(Corner)[0].Colors[0])
	assert.Equal(t, Coord{Down, 0, 2}, r.Pieces(Corner)[0].Coords[0])
}

func TestRegistryInvalidKindPanics(t *testing.T) {
	r := DefaultRegistry()
	assert.PanicsWithError(t, "rubik: piece kind must be edge or corner: got PieceKind(7)", func() {
		r.Lookup(PieceKind(7), "WR")
	})
	assert.Panics(t, func() { r.Pieces(PieceKind(0)) })
}

func TestParsePieceKind(t *testing.T) {
	k, err := ParsePieceKind("corner")
	require.NoError(t, err)
	assert.Equal(t, Corner, k)

	_, err = ParsePieceKind("center")
	assert.True(t, errors.Is(err, ErrInvalidPieceKind))
}

func TestCornerSlotsShareHandedness(t *testing.T) {
	// For every state reached by moves, corner twists sum to 0 mod 3. This
	// only holds if all slots list their facelets with the same handedness.
	a := NewAnalyzer()
	for seed := int64(0); seed < 40; seed++ {
		c, _ := scrambled(seed, 5+int(seed))
		sum := 0
		for _, p := range a.Registry().Pieces(Corner) {
			loc, ok := a.FindPiece(c, Corner, p.Colors...)
			require.True(t, ok, p.Code)
			sum += int(loc.Orientation)
		}
		assert.Zero(t, sum%3, "seed %d", seed)
	}
}
