package rubik

// numFacelets is the total number of facelets on the cube.
const numFacelets = NumFaces * 9

// permutation is a gather table over flat facelet indices:
// after applying it, facelet i holds the color previously at p[i].
type permutation [numFacelets]uint8

// strip is three facelets on one neighbouring face.
type strip [3]Coord

// rings lists, for every face, the four neighbouring strips that a clockwise
// turn of that face cycles. Strip k moves onto strip k+1 element by element,
// and strip 3 moves onto strip 0.
var rings = [NumFaces][4]strip{
	Down: {
		{{Front, 2, 0}, {Front, 2, 1}, {Front, 2, 2}},
		{{Right, 2, 0}, {Right, 2, 1}, {Right, 2, 2}},
		{{Back, 2, 0}, {Back, 2, 1}, {Back, 2, 2}},
		{{Left, 2, 0}, {Left, 2, 1}, {Left, 2, 2}},
	},
	Up: {
		{{Front, 0, 0}, {Front, 0, 1}, {Front, 0, 2}},
		{{Left, 0, 0}, {Left, 0, 1}, {Left, 0, 2}},
		{{Back, 0, 0}, {Back, 0, 1}, {Back, 0, 2}},
		{{Right, 0, 0}, {Right, 0, 1}, {Right, 0, 2}},
	},
	Front: {
		{{Up, 2, 0}, {Up, 2, 1}, {Up, 2, 2}},
		{{Right, 0, 0}, {Right, 1, 0}, {Right, 2, 0}},
		{{Down, 0, 2}, {Down, 0, 1}, {Down, 0, 0}},
		{{Left, 2, 2}, {Left, 1, 2}, {Left, 0, 2}},
	},
	Back: {
		{{Up, 0, 0}, {Up, 0, 1}, {Up, 0, 2}},
		{{Left, 2, 0}, {Left, 1, 0}, {Left, 0, 0}},
		{{Down, 2, 2}, {Down, 2, 1}, {Down, 2, 0}},
		{{Right, 0, 2}, {Right, 1, 2}, {Right, 2, 2}},
	},
	Right: {
		{{Up, 0, 2}, {Up, 1, 2}, {Up, 2, 2}},
		{{Back, 2, 0}, {Back, 1, 0}, {Back, 0, 0}},
		{{Down, 0, 2}, {Down, 1, 2}, {Down, 2, 2}},
		{{Front, 0, 2}, {Front, 1, 2}, {Front, 2, 2}},
	},
	Left: {
		{{Up, 0, 0}, {Up, 1, 0}, {Up, 2, 0}},
		{{Front, 0, 0}, {Front, 1, 0}, {Front, 2, 0}},
		{{Down, 0, 0}, {Down, 1, 0}, {Down, 2, 0}},
		{{Back, 2, 2}, {Back, 1, 2}, {Back, 0, 2}},
	},
}

// movePerms[face][q] is the permutation for q clockwise quarter turns of face.
var movePerms [NumFaces][4]permutation

func init() {
	for face := Face(0); face < NumFaces; face++ {
		cw := quarterTurn(face)
		movePerms[face][0] = identityPermutation()
		for q := 1; q < 4; q++ {
			movePerms[face][q] = movePerms[face][q-1].then(cw)
		}
	}
}

func identityPermutation() permutation {
	var p permutation
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// quarterTurn builds the clockwise permutation of a face from the rotation
// formula new[row][col] = old[2-col][row] and the face's ring.
func quarterTurn(face Face) permutation {
	p := identityPermutation()

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			dst := Coord{face, row, col}
			src := Coord{face, 2 - col, row}
			p[dst.index()] = uint8(src.index())
		}
	}

	ring := &rings[face]
	for k := 0; k < 4; k++ {
		from, to := &ring[k], &ring[(k+1)%4]
		for j := 0; j < 3; j++ {
			p[to[j].index()] = uint8(from[j].index())
		}
	}

	return p
}

// then returns the permutation equal to applying p and then q.
func (p permutation) then(q permutation) permutation {
	var r permutation
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// permute applies p to the cube. All facelets are read into a buffer before
// any is written, so overlapping cycles cannot corrupt each other.
func (c *Cube) permute(p *permutation) {
	src := c.facelets
	for i, from := range p {
		c.facelets[i/9][i%9] = src[from/9][from%9]
	}
}
