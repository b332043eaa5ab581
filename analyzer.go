package rubik

// Analyzer answers read-only questions about a cube using a piece registry.
// It holds no cube state; every call reads the cube it is given.
type Analyzer struct {
	registry *Registry
}

// NewAnalyzer returns an analyzer backed by the default registry.
func NewAnalyzer() *Analyzer {
	return &Analyzer{registry: DefaultRegistry()}
}

// Registry returns the registry the analyzer reads.
func (a *Analyzer) Registry() *Registry {
	return a.registry
}

// PieceLocation describes where a piece currently sits.
type PieceLocation struct {
	Kind PieceKind

	// Piece is the canonical code of the piece that was found, or "" if the
	// query does not name a real piece.
	Piece string

	// Slot is the code of the registry slot holding the piece.
	Slot string

	Coords []Coord // slot coordinates, in slot order
	Colors []Color // live colors at Coords

	// CorrectlyOriented is true when the live colors equal the slot's
	// canonical colors, in order.
	CorrectlyOriented bool

	Location Location

	// Orientation is set for corners only; edges always report Aligned.
	Orientation Orientation
}

// FindPiece returns the first slot of the given kind whose live colors match
// colors as a multiset. The bool is false when no slot matches, which only
// happens for queries that name no real piece or for cubes edited with
// SetFacelet.
//
// It panics if kind is not Edge or Corner.
func (a *Analyzer) FindPiece(c *Cube, kind PieceKind, colors ...Color) (PieceLocation, bool) {
	kind.mustValidate()

	for _, slot := range a.registry.slots(kind) {
		live := liveColors(c, slot.Coords)
		if !sameColors(live, colors) {
			continue
		}

		loc := PieceLocation{
			Kind:              kind,
			Slot:              slot.Code,
			Coords:            append([]Coord(nil), slot.Coords...),
			Colors:            live,
			CorrectlyOriented: equalColors(live, slot.Colors),
			Location:          locationOf(slot.Coords[0]),
		}

		if piece, ok := a.pieceWithColors(kind, colors); ok {
			loc.Piece = piece.Code
			if kind == Corner {
				loc.Orientation = cornerOrientation(live, piece.Colors)
			}
		}

		return loc, true
	}

	return PieceLocation{}, false
}

// FindPieceByCode is FindPiece with the colors given as a code such as "WRB".
func (a *Analyzer) FindPieceByCode(c *Cube, kind PieceKind, code string) (PieceLocation, bool, error) {
	colors, err := ParseColors(code)
	if err != nil {
		return PieceLocation{}, false, err
	}
	loc, ok := a.FindPiece(c, kind, colors...)
	return loc, ok, nil
}

// pieceWithColors returns the registry piece whose colors match as a multiset.
func (a *Analyzer) pieceWithColors(kind PieceKind, colors []Color) (Piece, bool) {
	for _, p := range a.registry.slots(kind) {
		if sameColors(p.Colors, colors) {
			return p, true
		}
	}
	return Piece{}, false
}

// cornerOrientation returns where the canonical first color sits in live.
func cornerOrientation(live, canonical []Color) Orientation {
	for i, col := range live {
		if col == canonical[0] {
			return Orientation(i)
		}
	}
	return Aligned
}

// PieceState is the per-slot part of an Analysis.
type PieceState struct {
	Kind              PieceKind
	Code              string
	InPosition        bool // slot holds its own piece, any orientation
	CorrectlyOriented bool // slot holds its own piece, canonical orientation
	Current           []Color
	Expected          []Color
}

// Layers reports which layers are complete.
type Layers struct {
	White  bool // Down face and bottom rows of the side faces
	Middle bool // middle rows of the side faces
	Yellow bool // Up face and top rows of the side faces
}

// Crosses reports which crosses are complete.
type Crosses struct {
	White bool
	Yellow bool
}

// Analysis is a snapshot summary of a cube. It is derived on demand and never
// cached.
type Analysis struct {
	Solved   bool
	Layers   Layers
	Crosses  Crosses
	Edges    []PieceState
	Corners  []PieceState
	Progress float64 // percent of the 20 pieces correctly oriented
	Phase    Phase
}

// OrientedEdges counts edges in their home slot with canonical orientation.
func (s Analysis) OrientedEdges() int {
	return countOriented(s.Edges)
}

// OrientedCorners counts corners in their home slot with canonical orientation.
func (s Analysis) OrientedCorners() int {
	return countOriented(s.Corners)
}

// Analyze computes an Analysis from the live cube.
func (a *Analyzer) Analyze(c *Cube) Analysis {
	s := Analysis{
		Solved: c.IsSolved(),
		Layers: Layers{
			White:  c.IsWhiteLayerComplete(),
			Middle: c.IsMiddleLayerComplete(),
			Yellow: c.IsYellowLayerComplete(),
		},
		Crosses: Crosses{
			White:  c.IsWhiteCrossComplete(),
			Yellow: c.IsYellowCrossComplete(),
		},
		Edges:   a.pieceStates(c, Edge),
		Corners: a.pieceStates(c, Corner),
		Phase:   c.DetectPhase(),
	}

	total := len(s.Edges) + len(s.Corners)
	if total > 0 {
		s.Progress = float64(s.OrientedEdges()+s.OrientedCorners()) / float64(total) * 100
	}

	return s
}

func (a *Analyzer) pieceStates(c *Cube, kind PieceKind) []PieceState {
	slots := a.registry.slots(kind)
	states := make([]PieceState, len(slots))
	for i, slot := range slots {
		live := liveColors(c, slot.Coords)
		states[i] = PieceState{
			Kind:              kind,
			Code:              slot.Code,
			InPosition:        sameColors(live, slot.Colors),
			CorrectlyOriented: equalColors(live, slot.Colors),
			Current:           live,
			Expected:          append([]Color(nil), slot.Colors...),
		}
	}
	return states
}

func countOriented(states []PieceState) int {
	n := 0
	for _, st := range states {
		if st.CorrectlyOriented {
			n++
		}
	}
	return n
}

func liveColors(c *Cube, coords []Coord) []Color {
	colors := make([]Color, len(coords))
	for i, p := range coords {
		colors[i] = c.At(p)
	}
	return colors
}

func equalColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameColors checks if two color slices contain the same colors (in any order).
func sameColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}

	var count [256]int
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		count[c]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}
