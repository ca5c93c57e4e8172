package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/fifteen/game/engine"
)

const (
	promptText   = "Enter your command: "
	farewellText = "Bye!"
	victoryText  = "You solved the puzzle!"
)

// Renderer writes the game screen
type Renderer struct {
	out        io.Writer
	clearLines int
	lineEnding string
}

// NewRenderer creates a renderer that pads every board with clearLines blank
// lines. lineEnding is "\n" normally and "\r\n" for a raw-mode terminal.
func NewRenderer(out io.Writer, clearLines int, lineEnding string) *Renderer {
	if lineEnding == "" {
		lineEnding = "\n"
	}
	return &Renderer{
		out:        out,
		clearLines: clearLines,
		lineEnding: lineEnding,
	}
}

// Board clears the screen and draws the grid
func (r *Renderer) Board(b *engine.Board) error {
	screen := strings.Repeat(r.lineEnding, r.clearLines) + b.Render(r.lineEnding)
	return r.write(screen)
}

// Prompt asks for the next command
func (r *Renderer) Prompt() error {
	return r.write(promptText)
}

// Farewell is printed when the player quits
func (r *Renderer) Farewell() error {
	nl := r.lineEnding
	return r.write(nl + nl + farewellText + nl + nl)
}

// Victory is printed once the board is solved
func (r *Renderer) Victory() error {
	return r.write(r.lineEnding + victoryText + r.lineEnding)
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("failed to write screen: %w", err)
	}
	return nil
}
