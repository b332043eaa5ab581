package rubik

// Stage checks. Standard orientation: White on Down, Red in front.
// Every check compares facelets against the face centers.

// edgeCells are the row*3+col indices of the four edge facelets of a face.
var edgeCells = [4]int{1, 3, 5, 7}

// rowMatches reports whether a whole row of a face equals its center.
func (c *Cube) rowMatches(face Face, row int) bool {
	center := c.facelets[face][4]
	for col := 0; col < 3; col++ {
		if c.facelets[face][row*3+col] != center {
			return false
		}
	}
	return true
}

// faceMatches reports whether every facelet of a face equals its center.
func (c *Cube) faceMatches(face Face) bool {
	for row := 0; row < 3; row++ {
		if !c.rowMatches(face, row) {
			return false
		}
	}
	return true
}

// crossMatches checks the center and the four edge facelets of face, and the
// side facelet next to each of them in the given side row.
func (c *Cube) crossMatches(face Face, sideRow int) bool {
	center := c.facelets[face][4]
	for _, pos := range edgeCells {
		if c.facelets[face][pos] != center {
			return false
		}
	}
	for _, side := range sideFaces {
		if c.facelets[side][sideRow*3+1] != c.facelets[side][4] {
			return false
		}
	}
	return true
}

// IsWhiteCrossComplete checks the white cross on Down:
// - 4 white edge facelets around the Down center
// - each edge's side color matches the adjacent center
func (c *Cube) IsWhiteCrossComplete() bool {
	return c.crossMatches(Down, 2)
}

// IsYellowCrossComplete checks the yellow cross on Up, including side colors.
func (c *Cube) IsYellowCrossComplete() bool {
	return c.crossMatches(Up, 0)
}

// IsWhiteLayerComplete checks the Down face and the bottom row of every side
// face.
func (c *Cube) IsWhiteLayerComplete() bool {
	if !c.faceMatches(Down) {
		return false
	}
	for _, side := range sideFaces {
		if !c.rowMatches(side, 2) {
			return false
		}
	}
	return true
}

// IsMiddleLayerComplete checks the middle row of every side face.
func (c *Cube) IsMiddleLayerComplete() bool {
	for _, side := range sideFaces {
		if !c.rowMatches(side, 1) {
			return false
		}
	}
	return true
}

// IsYellowLayerComplete checks the Up face and the top row of every side face.
func (c *Cube) IsYellowLayerComplete() bool {
	if !c.faceMatches(Up) {
		return false
	}
	for _, side := range sideFaces {
		if !c.rowMatches(side, 0) {
			return false
		}
	}
	return true
}

// isYellowEdgesUp checks only that the Up edge facelets are yellow.
func (c *Cube) isYellowEdgesUp() bool {
	for _, pos := range edgeCells {
		if c.facelets[Up][pos] != c.facelets[Up][4] {
			return false
		}
	}
	return true
}

// areYellowCornersPositioned checks that each Up corner slot holds its own
// three colors in any twist.
func (c *Cube) areYellowCornersPositioned() bool {
	for _, slot := range defaultRegistry.corners {
		if slot.Coords[0].Face != Up {
			continue
		}
		if !sameColors(liveColors(c, slot.Coords), slot.Colors) {
			return false
		}
	}
	return true
}

// areYellowCornersOriented checks that Up is all yellow and the corner
// facelets of the side top rows match their centers.
func (c *Cube) areYellowCornersOriented() bool {
	if !c.faceMatches(Up) {
		return false
	}
	for _, side := range sideFaces {
		center := c.facelets[side][4]
		if c.facelets[side][0] != center || c.facelets[side][2] != center {
			return false
		}
	}
	return true
}

// GetProgress returns the current progress through all phases.
func (c *Cube) GetProgress() PhaseProgress {
	var p PhaseProgress
	p.WhiteCross = c.IsWhiteCrossComplete()
	p.WhiteLayer = p.WhiteCross && c.IsWhiteLayerComplete()
	p.MiddleLayer = p.WhiteLayer && c.IsMiddleLayerComplete()
	p.YellowCross = p.MiddleLayer && c.isYellowEdgesUp()
	p.YellowCornersPositioned = p.YellowCross && c.areYellowCornersPositioned()
	p.YellowCornersOriented = p.YellowCornersPositioned && c.areYellowCornersOriented()
	p.Solved = c.IsSolved()
	return p
}

// DetectPhase returns the highest completed stage.
func (c *Cube) DetectPhase() Phase {
	p := c.GetProgress()
	switch {
	case p.Solved:
		return PhaseSolved
	case p.YellowCornersOriented:
		return PhaseYellowCornersOriented
	case p.YellowCornersPositioned:
		return PhaseYellowCornersPositioned
	case p.YellowCross:
		return PhaseYellowCross
	case p.MiddleLayer:
		return PhaseMiddleLayer
	case p.WhiteLayer:
		return PhaseWhiteLayer
	case p.WhiteCross:
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}
