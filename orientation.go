package rubik

// Orientation is how far a corner's live colors are rotated from its
// canonical order.
type Orientation int

const (
	Aligned         Orientation = iota // canonical first color on the Down/Up facelet
	RotatedOneStep                     // canonical first color one step clockwise
	RotatedTwoSteps                    // canonical first color two steps clockwise
)

func (o Orientation) String() string {
	switch o {
	case Aligned:
		return "aligned"
	case RotatedOneStep:
		return "rotated_one_step"
	case RotatedTwoSteps:
		return "rotated_two_steps"
	default:
		return "unknown"
	}
}

// Location is a coarse classification of where a piece sits.
type Location int

const (
	Top Location = iota
	Middle
	Bottom
)

func (l Location) String() string {
	switch l {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// locationOf classifies a slot by its first coordinate.
func locationOf(p Coord) Location {
	switch p.Face {
	case Down:
		return Bottom
	case Up:
		return Top
	}
	switch p.Row {
	case 0:
		return Top
	case 1:
		return Middle
	default:
		return Bottom
	}
}
