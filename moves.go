package rubik

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
var (
	// Right face moves
	R      = Move{Face: Right, Turn: CW}     // Right clockwise
	RPrime = Move{Face: Right, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: Right, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: Left, Turn: CW}
	LPrime = Move{Face: Left, Turn: CCW}
	L2     = Move{Face: Left, Turn: Double}

	// Up face moves
	U      = Move{Face: Up, Turn: CW}
	UPrime = Move{Face: Up, Turn: CCW}
	U2     = Move{Face: Up, Turn: Double}

	// Down face moves
	D      = Move{Face: Down, Turn: CW}
	DPrime = Move{Face: Down, Turn: CCW}
	D2     = Move{Face: Down, Turn: Double}

	// Front face moves
	F      = Move{Face: Front, Turn: CW}
	FPrime = Move{Face: Front, Turn: CCW}
	F2     = Move{Face: Front, Turn: Double}

	// Back face moves
	B      = Move{Face: Back, Turn: CW}
	BPrime = Move{Face: Back, Turn: CCW}
	B2     = Move{Face: Back, Turn: Double}
)

// AllMoves lists the 18 generator moves, grouped by face in enumeration order.
var AllMoves = []Move{
	D, DPrime, D2,
	U, UPrime, U2,
	F, FPrime, F2,
	B, BPrime, B2,
	R, RPrime, R2,
	L, LPrime, L2,
}

// SexyMove is R U R' U'. Six repetitions return to the starting state.
var SexyMove = []Move{R, U, RPrime, UPrime}
