package rubik

import (
	"fmt"
)

// PieceKind selects edges or corners. Centers are not pieces.
type PieceKind int

const (
	Edge   PieceKind = iota + 1 // two facelets
	Corner                      // three facelets
)

func (k PieceKind) String() string {
	switch k {
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
}

// Size returns the number of facelets a piece of this kind carries.
func (k PieceKind) Size() int {
	switch k {
	case Edge:
		return 2
	case Corner:
		return 3
	default:
		return 0
	}
}

// ParsePieceKind parses "edge" or "corner".
func ParsePieceKind(s string) (PieceKind, error) {
	switch s {
	case "edge", "edges":
		return Edge, nil
	case "corner", "corners":
		return Corner, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPieceKind, s)
	}
}

// mustValidate panics on a kind outside {Edge, Corner}.
func (k PieceKind) mustValidate() {
	if k != Edge && k != Corner {
		panic(fmt.Errorf("%w: got %v", ErrInvalidPieceKind, k))
	}
}

// Piece is one registry slot: a canonical color code and the coordinates the
// piece occupies when the cube is solved, in code order.
type Piece struct {
	Kind   PieceKind
	Code   string
	Coords []Coord
	Colors []Color
}

// Registry maps piece codes to their solved coordinates. It is immutable after
// construction; accessors return copies.
type Registry struct {
	edges   []Piece
	corners []Piece
	byCode  map[PieceKind]map[string]int
}

// pieceTable is the solved layout. Edges on the Down/Up rings list the Down/Up
// facelet first; middle edges list Front/Back first. Corners list Down/Up
// first and then the other two clockwise as seen from outside the corner.
var pieceTable = []struct {
	kind   PieceKind
	code   string
	coords []Coord
}{
	{Edge, "WR", []Coord{{Down, 0, 1}, {Front, 2, 1}}},
	{Edge, "WB", []Coord{{Down, 1, 2}, {Right, 2, 1}}},
	{Edge, "WO", []Coord{{Down, 2, 1}, {Back, 2, 1}}},
	{Edge, "WG", []Coord{{Down, 1, 0}, {Left, 2, 1}}},
	{Edge, "YR", []Coord{{Up, 2, 1}, {Front, 0, 1}}},
	{Edge, "YB", []Coord{{Up, 1, 2}, {Right, 0, 1}}},
	{Edge, "YO", []Coord{{Up, 0, 1}, {Back, 0, 1}}},
	{Edge, "YG", []Coord{{Up, 1, 0}, {Left, 0, 1}}},
	{Edge, "RB", []Coord{{Front, 1, 2}, {Right, 1, 0}}},
	{Edge, "RG", []Coord{{Front, 1, 0}, {Left, 1, 2}}},
	{Edge, "OB", []Coord{{Back, 1, 0}, {Right, 1, 2}}},
	{Edge, "OG", []Coord{{Back, 1, 2}, {Left, 1, 0}}},

	{Corner, "WRB", []Coord{{Down, 0, 2}, {Front, 2, 2}, {Right, 2, 0}}},
	{Corner, "WBO", []Coord{{Down, 2, 2}, {Right, 2, 2}, {Back, 2, 0}}},
	{Corner, "WOG", []Coord{{Down, 2, 0}, {Back, 2, 2}, {Left, 2, 0}}},
	{Corner, "WGR", []Coord{{Down, 0, 0}, {Left, 2, 2}, {Front, 2, 0}}},
	{Corner, "YRG", []Coord{{Up, 2, 0}, {Front, 0, 0}, {Left, 0, 2}}},
	{Corner, "YBR", []Coord{{Up, 2, 2}, {Right, 0, 0}, {Front, 0, 2}}},
	{Corner, "YOB", []Coord{{Up, 0, 2}, {Back, 0, 0}, {Right, 0, 2}}},
	{Corner, "YGO", []Coord{{Up, 0, 0}, {Left, 0, 0}, {Back, 0, 2}}},
}

var defaultRegistry = mustBuildRegistry()

// DefaultRegistry returns the process-wide registry built at init.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func mustBuildRegistry() *Registry {
	r, err := buildRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// buildRegistry builds the registry from pieceTable and checks that edges and
// corners together cover every non-center facelet exactly once.
func buildRegistry() (*Registry, error) {
	r := &Registry{
		byCode: map[PieceKind]map[string]int{
			Edge:   {},
			Corner: {},
		},
	}

	seen := make(map[Coord]string, 48)
	for _, entry := range pieceTable {
		if len(entry.coords) != entry.kind.Size() || len(entry.code) != entry.kind.Size() {
			return nil, fmt.Errorf("rubik: piece %s has wrong size for %v", entry.code, entry.kind)
		}

		colors, err := ParseColors(entry.code)
		if err != nil {
			return nil, err
		}

		coords := make([]Coord, len(entry.coords))
		for i, p := range entry.coords {
			if !p.Valid() || (p.Row == 1 && p.Col == 1) {
				return nil, fmt.Errorf("rubik: piece %s uses invalid coordinate %v", entry.code, p)
			}
			if owner, dup := seen[p]; dup {
				return nil, fmt.Errorf("rubik: coordinate %v shared by %s and %s", p, owner, entry.code)
			}
			if p.Face.SolvedColor() != colors[i] {
				return nil, fmt.Errorf("rubik: piece %s expects %v at %v", entry.code, colors[i], p)
			}
			seen[p] = entry.code
			coords[i] = p
		}

		piece := Piece{Kind: entry.kind, Code: entry.code, Coords: coords, Colors: colors}
		switch entry.kind {
		case Edge:
			r.byCode[Edge][entry.code] = len(r.edges)
			r.edges = append(r.edges, piece)
		case Corner:
			r.byCode[Corner][entry.code] = len(r.corners)
			r.corners = append(r.corners, piece)
		}
	}

	if len(r.edges) != 12 || len(r.corners) != 8 || len(seen) != 48 {
		return nil, fmt.Errorf("rubik: registry covers %d facelets with %d edges and %d corners",
			len(seen), len(r.edges), len(r.corners))
	}

	return r, nil
}

// Lookup returns the solved coordinates of a piece, in code order.
// It panics if kind is not Edge or Corner.
func (r *Registry) Lookup(kind PieceKind, code string) ([]Coord, bool) {
	kind.mustValidate()
	i, ok := r.byCode[kind][code]
	if !ok {
		return nil, false
	}
	return append([]Coord(nil), r.slots(kind)[i].Coords...), true
}

// Pieces returns copies of every piece of a kind, in registry order.
// It panics if kind is not Edge or Corner.
func (r *Registry) Pieces(kind PieceKind) []Piece {
	kind.mustValidate()
	src := r.slots(kind)
	out := make([]Piece, len(src))
	for i, p := range src {
		out[i] = p.clone()
	}
	return out
}

// slots returns the internal slice for a validated kind. Callers must not
// modify it.
func (r *Registry) slots(kind PieceKind) []Piece {
	if kind == Edge {
		return r.edges
	}
	return r.corners
}

func (p Piece) clone() Piece {
	p.Coords = append([]Coord(nil), p.Coords...)
	p.Colors = append([]Color(nil), p.Colors...)
	return p
}
