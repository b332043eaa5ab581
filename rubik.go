// Package rubik models a 3x3x3 cube as 54 colored facelets and applies the
// 18 generator moves to it.
//
// # Features
//
//   - Facelet state with deep copy, per-face solved check and a text net
//   - Move parsing in standard notation (R, R', R2, ...)
//   - Precomputed move permutations applied through a buffer
//   - A fixed registry of edge and corner pieces
//   - Read-only analysis: piece lookup, layer and cross checks, progress
//
// # Quick Start
//
//	cube := rubik.NewCube()
//
//	// Apply moves using predefined values
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
//
//	// Or from notation; unknown tokens are skipped and reported
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    fmt.Println("skipped:", err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Analysis
//
//	a := rubik.NewAnalyzer()
//	loc, ok := a.FindPiece(cube, rubik.Edge, rubik.White, rubik.Red)
//	if ok {
//	    fmt.Println(loc.Slot, loc.Location, loc.CorrectlyOriented)
//	}
//	report := a.Analyze(cube)
//	fmt.Printf("%.1f%% solved, phase %s\n", report.Progress, report.Phase)
//
// # Ownership
//
// A Cube has a single owner. There is no internal locking: to explore several
// sequences, Clone the cube once per branch.
//
// # Orientation
//
// Faces are enumerated Down, Up, Front, Back, Right, Left and own the colors
// White, Yellow, Red, Orange, Blue, Green respectively.
package rubik
