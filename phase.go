package rubik

// Phase is a layer-by-layer solving stage with white on Down and yellow on
// Up. Phases progress from Scrambled (0) to Solved, so they can be compared
// with < and >.
type Phase int

const (
	// PhaseScrambled indicates no stage is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the four white edges sit on Down with their
	// side colors matching the side centers.
	PhaseWhiteCross

	// PhaseWhiteLayer indicates the whole white layer is complete.
	PhaseWhiteLayer

	// PhaseMiddleLayer indicates the middle layer edges are in place.
	PhaseMiddleLayer

	// PhaseYellowCross indicates the four Up edges show yellow on Up.
	// Their side colors may still be cycled.
	PhaseYellowCross

	// PhaseYellowCornersPositioned indicates every Up corner holds the right
	// three colors, possibly twisted.
	PhaseYellowCornersPositioned

	// PhaseYellowCornersOriented indicates every Up corner is twisted correctly.
	PhaseYellowCornersOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseWhiteLayer:
		return "white_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCornersPositioned:
		return "yellow_corners_positioned"
	case PhaseYellowCornersOriented:
		return "yellow_corners_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseWhiteLayer:
		return "White Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCornersPositioned:
		return "Yellow Corners Positioned"
	case PhaseYellowCornersOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// PhaseProgress reports which stages are complete. Each stage includes the
// stages before it.
type PhaseProgress struct {
	WhiteCross              bool
	WhiteLayer              bool
	MiddleLayer             bool
	YellowCross             bool
	YellowCornersPositioned bool
	YellowCornersOriented   bool
	Solved                  bool
}
