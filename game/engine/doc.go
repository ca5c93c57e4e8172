// Package engine provides the core puzzle logic for the fifteen game.
//
// The engine package implements the sliding puzzle mechanics including:
//   - A fixed 4x4 board of numbered tiles with a single blank cell
//   - Direction algebra (inversion, display names, random sampling)
//   - Move legality and blank-tile swapping
//   - Solvable shuffling built from random legal moves
//   - Win detection, layout validation and distance heuristics
//
// Core Types:
//
// Board owns the grid state. Direction is a stateless value consumed by
// Board.Move. The Engine interface, implemented by GameEngine, pairs a Board
// with the RandSource used to shuffle it.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.NewRandSource())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.Shuffle()
//
//	// Slide the tile below the blank upwards
//	moved := gameEngine.Move(engine.Up)
//	solved := gameEngine.IsSolved()
//
// Move Semantics:
//
// A direction names the way a tile slides, not the way the blank travels.
// Moving up takes the tile directly below the blank and slides it into the
// blank's cell, so the blank itself travels in the inverted direction. A move
// whose source tile would lie outside the grid is rejected and leaves the
// board untouched.
//
// Invariants:
//
// Every mutation is a swap of two cells, so a board is always a permutation
// of the tiles 0..15 with exactly one blank. Out-of-domain inputs such as an
// unknown Direction value are programming errors and panic with an error
// wrapping ErrInvariantViolation.
package engine
