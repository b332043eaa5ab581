package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPieceOnSolvedCube(t *testing.T) {
	a := NewAnalyzer()
	c := NewCube()

	loc, ok := a.FindPiece(c, Edge, White, Red)
	require.True(t, ok)
	assert.True(t, loc.CorrectlyOriented)
	assert.Equal(t, Bottom, loc.Location)
	assert.Equal(t, "bottom", loc.Location.String())
	assert.Equal(t, "WR", loc.Slot)
	assert.Equal(t, "WR", loc.Piece)
	assert.Equal(t, []Color{White, Red}, loc.Colors)
	assert.Equal(t, []Coord{{Down, 0, 1}, {Front, 2, 1}}, loc.Coords)

	// Query order does not matter.
	loc, ok = a.FindPiece(c, Edge, Red, White)
	require.True(t, ok)
	assert.Equal(t, "WR", loc.Slot)
	assert.True(t, loc.CorrectlyOriented)

	loc, ok = a.FindPiece(c, Corner, Blue, Yellow, Orange)
	require.True(t, ok)
	assert.Equal(t, "YOB", loc.Slot)
	assert.Equal(t, Top, loc.Location)
	assert.Equal(t, Aligned, loc.Orientation)
	assert.True(t, loc.CorrectlyOriented)

	loc, ok = a.FindPiece(c, Edge, Orange, Green)
	require.True(t, ok)
	assert.Equal(t, Middle, loc.Location)
}

func TestFindPieceAfterMoves(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name        string
		moves       string
		kind        PieceKind
		colors      []Color
		slot        string
		live        []Color
		oriented    bool
		location    Location
		orientation Orientation
	}{
		{"R moves YB edge to middle", "R", Edge, []Color{Yellow, Blue}, "OB", []Color{Yellow, Blue}, false, Middle, Aligned},
		{"R twists WRB corner up", "R", Corner, []Color{White, Red, Blue}, "YBR", []Color{Red, Blue, White}, false, Top, RotatedTwoSteps},
		{"R twists YBR corner", "R", Corner, []Color{Yellow, Blue, Red}, "YOB", []Color{Red, Yellow, Blue}, false, Top, RotatedOneStep},
		{"F moves WR edge to middle", "F", Edge, []Color{White, Red}, "RG", []Color{Red, White}, false, Middle, Aligned},
		{"R U carries WRB corner", "R U", Corner, []Color{White, Red, Blue}, "YRG", []Color{Red, Blue, White}, false, Top, RotatedTwoSteps},
		{"sexy move keeps YR edge", "R U R' U'", Edge, []Color{Yellow, Red}, "YR", []Color{Yellow, Red}, true, Top, Aligned},
		{"WGR corner returns aligned", "F R U' R' F' R U R'", Corner, []Color{White, Green, Red}, "WRB", []Color{White, Green, Red}, false, Bottom, Aligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			require.NoError(t, c.ApplyNotation(tt.moves))

			loc, ok := a.FindPiece(c, tt.kind, tt.colors...)
			require.True(t, ok)
			assert.Equal(t, tt.slot, loc.Slot)
			assert.Equal(t, tt.live, loc.Colors)
			assert.Equal(t, tt.oriented, loc.CorrectlyOriented)
			assert.Equal(t, tt.location, loc.Location)
			assert.Equal(t, tt.orientation, loc.Orientation)
		})
	}
}

func TestFindPieceNotFound(t *testing.T) {
	a := NewAnalyzer()
	c := NewCube()

	// Opposite colors never share a piece.
	_, ok := a.FindPiece(c, Edge, White, Yellow)
	assert.False(t, ok)

	_, ok = a.FindPiece(c, Corner, White, Red)
	assert.False(t, ok, "wrong number of colors")

	// An injected state can hide a real piece.
	require.NoError(t, c.SetFacelet(Down, 0, 1, Blue))
	_, ok = a.FindPiece(c, Edge, White, Red)
	assert.False(t, ok)
}

func TestFindPieceByCode(t *testing.T) {
	a := NewAnalyzer()
	c := NewCube()

	loc, ok, err := a.FindPieceByCode(c, Corner, "wgr")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "WGR", loc.Slot)

	_, _, err = a.FindPieceByCode(c, Edge, "WZ")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestFindPieceInvalidKindPanics(t *testing.T) {
	a := NewAnalyzer()
	assert.Panics(t, func() {
		a.FindPiece(NewCube(), PieceKind(0), White, Red)
	})
}

func TestAnalyzeSolvedCube(t *testing.T) {
	s := NewAnalyzer().Analyze(NewCube())

	assert.True(t, s.Solved)
	assert.Equal(t, 100.0, s.Progress)
	assert.Equal(t, Layers{White: true, Middle: true, Yellow: true}, s.Layers)
	assert.Equal(t, Crosses{White: true, Yellow: true}, s.Crosses)
	assert.Equal(t, 12, s.OrientedEdges())
	assert.Equal(t, 8, s.OrientedCorners())
	assert.Equal(t, PhaseSolved, s.Phase)
	for _, st := range append(s.Edges, s.Corners...) {
		assert.True(t, st.InPosition, st.Code)
		assert.Equal(t, st.Expected, st.Current, st.Code)
	}
}

func TestAnalyzeAfterMoves(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		moves    string
		progress float64
		layers   Layers
		crosses  Crosses
	}{
		{"R", 60, Layers{}, Crosses{}},
		{"U", 60, Layers{White: true, Middle: true}, Crosses{White: true}},
		{"D", 60, Layers{Middle: true, Yellow: true}, Crosses{Yellow: true}},
		{"R U R' U'", 65, Layers{}, Crosses{White: true}},
		{"F R U' R' F' R U R'", 55, Layers{}, Crosses{White: true}},
	}

	for _, tt := range tests {
		t.Run(tt.moves, func(t *testing.T) {
			c := NewCube()
			require.NoError(t, c.ApplyNotation(tt.moves))

			s := a.Analyze(c)
			assert.False(t, s.Solved)
			assert.InDelta(t, tt.progress, s.Progress, 1e-9)
			assert.Equal(t, tt.layers, s.Layers)
			assert.Equal(t, tt.crosses, s.Crosses)
		})
	}
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	c, _ := scrambled(3, 25)
	before := c.Clone()

	a := NewAnalyzer()
	a.Analyze(c)
	for _, p := range a.Registry().Pieces(Edge) {
		a.FindPiece(c, Edge, p.Colors...)
	}
	assert.True(t, c.Equal(before))
}

func TestAnalyzeReflectsLaterMutation(t *testing.T) {
	a := NewAnalyzer()
	c := NewCube()

	first := a.Analyze(c)
	c.ApplyMove(R)
	second := a.Analyze(c)

	assert.True(t, first.Solved)
	assert.False(t, second.Solved)
}

func TestEveryPieceFoundAfterScramble(t *testing.T) {
	a := NewAnalyzer()
	for seed := int64(0); seed < 20; seed++ {
		c, _ := scrambled(seed, 30)
		slots := map[string]bool{}
		for _, kind := range []PieceKind{Edge, Corner} {
			for _, p := range a.Registry().Pieces(kind) {
				loc, ok := a.FindPiece(c, kind, p.Colors...)
				require.True(t, ok, "%s seed %d", p.Code, seed)
				assert.Equal(t, p.Code, loc.Piece)
				assert.False(t, slots[loc.Slot], "slot %s claimed twice", loc.Slot)
				slots[loc.Slot] = true
			}
		}
		assert.Len(t, slots, 20)
	}
}
