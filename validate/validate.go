// Command validate checks 15-puzzle layouts given on the command line. Each
// argument holds 16 tile values in row-major order, separated by spaces or
// commas, with 0 for the blank. It checks:
//   - Exactly 16 integer values
//   - Every value 0..15 appears once
//   - The layout is reachable from the solved board (solvability parity)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/fifteen/game/engine"
)

// ErrInvalidLayouts is returned when at least one layout fails validation
var ErrInvalidLayouts = errors.New("some layouts are invalid")

// ValidationResult captures the outcome of validating a single layout.
// If Valid is true, Info carries a short description of the board.
type ValidationResult struct {
	Layout string
	Valid  bool
	Errors []string
	Info   []string
}

// parseLayout reads 16 tile values separated by spaces or commas
func parseLayout(s string) ([engine.TileCount]engine.Tile, error) {
	var tiles [engine.TileCount]engine.Tile

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) != engine.TileCount {
		return tiles, fmt.Errorf("expected %d values, got %d", engine.TileCount, len(fields))
	}

	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return tiles, fmt.Errorf("value %d (%q) is not a number", i+1, field)
		}
		tiles[i] = engine.Tile(v)
	}
	return tiles, nil
}

// validateLayout parses and validates a single layout
func validateLayout(s string) ValidationResult {
	result := ValidationResult{
		Layout: s,
		Valid:  true,
		Errors: []string{},
	}

	tiles, err := parseLayout(s)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	board, err := engine.NewBoardFromTiles(tiles)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if !board.IsSolvable() {
		result.Valid = false
		result.Errors = append(result.Errors, "layout cannot be reached from the solved board")
		return result
	}

	result.Info = append(result.Info,
		fmt.Sprintf("Blank at %s", board.BlankPosition()),
		fmt.Sprintf("Manhattan distance: %d", board.ManhattanDistance()),
		fmt.Sprintf("Misplaced tiles: %d", board.MisplacedTiles()),
	)
	if board.IsSolved() {
		result.Info = append(result.Info, "Already solved")
	}
	return result
}

// printResults writes a report and reports whether every layout was valid
func printResults(out io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), result.Layout)
		if result.Valid {
			fmt.Fprintln(out, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(out, "  "+info)
			}
			continue
		}

		allValid = false
		fmt.Fprintln(out, "❌ INVALID")
		for _, err := range result.Errors {
			fmt.Fprintln(out, "  ❌ "+err)
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(out, "✅ All layouts are valid!")
	} else {
		fmt.Fprintln(out, "❌ Some layouts have errors")
	}
	return allValid
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check 15-puzzle layouts for validity and solvability",
		ArgsUsage: "LAYOUT [LAYOUT...]",
		Writer:    out,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			layouts := cmd.Args().Slice()
			if len(layouts) == 0 {
				return errors.New("at least one layout is required")
			}

			results := make([]ValidationResult, 0, len(layouts))
			for _, layout := range layouts {
				results = append(results, validateLayout(layout))
			}

			if !printResults(out, results) {
				return ErrInvalidLayouts
			}
			return nil
		},
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
