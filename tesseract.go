// Package tesseract models a 4-dimensional twisty puzzle: a hypercube whose
// boundary is covered by 512 facelets that move under quarter turns of its
// layers.
//
// # Features
//
//   - Fixed facelet geometry on the boundary of a 4-cube
//   - Precomputed permutations for every quarter-turn layer rotation
//   - Puzzle state tracking under a stream of moves
//   - Frame-stepped animation of each move
//   - Perspective projection to a depth-sorted 2-D drawing list
//
// # Quick Start
//
//	sim := tesseract.New()
//
//	sim.Input("1wxy") // outer layer on +w, rotate x onto y
//	sim.Input("0zyx")
//
//	for !sim.Idle() {
//	    sim.Tick()
//	    draw(sim.Project(tesseract.W, 1))
//	}
//
// # Move Notation
//
// A move token has four characters. The first is a digit 0-3 selecting the
// layer (bit 0: outer shell, bit 1: negative half). The remaining three are
// axis letters w, x, y, z: the layer axis, then the axis rotated onto the
// last one.
//
//	0wxy  // inner shell on +w, x onto y
//	1wxy  // outer shell on +w (includes the +w cell itself)
//	3zwx  // outer shell on -z, w onto x
//
// # Drawing List
//
// Project returns "x,y,r,COLOR" entries joined by "|", farthest first. The
// core never draws; a host paints the entries in order.
package tesseract
