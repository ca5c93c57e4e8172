// Package session provides the interactive loop for a single fifteen game.
//
// The session package implements:
//   - Command collection from line-buffered input or a raw-mode terminal
//   - Screen rendering of the board with a newline-based clear
//   - The read/move/render cycle with quit and win detection
//
// Core Types:
//
// Session drives one game. It owns an engine.Engine, reads commands through a
// CommandReader and writes through a Renderer. Each session carries a random
// identifier that tags its log entries.
//
// Commands:
//
// Only the keys w, a, s, d and q are recognised; anything else is skipped and
// the reader keeps waiting. The WASD keys are handed to engine.FromUserChar,
// q ends the session.
//
// Usage:
//
//	eng, _ := engine.NewEngine(engine.NewRandSource())
//	sess, err := session.New(session.Options{
//		Engine:   eng,
//		Input:    session.NewLineReader(os.Stdin),
//		Renderer: session.NewRenderer(os.Stdout, 25, "\n"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := sess.Run(ctx)
package session
