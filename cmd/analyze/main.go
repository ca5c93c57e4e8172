// Command analyze prints quick, human-readable statistics about shuffled
// boards. It shuffles a number of boards from consecutive seeds, summarizes
// how scrambled they are (Manhattan distance, misplaced tiles), how many
// samples the shuffle needed, where the blank ended up, and checks that every
// board is still a valid, solvable permutation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/fifteen/game/engine"
)

// ErrBrokenShuffle is returned when a shuffled board breaks an invariant
var ErrBrokenShuffle = errors.New("shuffle produced invalid boards")

// Report aggregates the statistics of a batch of shuffles.
type Report struct {
	Runs          int
	FirstSeed     uint64
	TotalAttempts int
	MinManhattan  int
	MaxManhattan  int
	SumManhattan  int
	SumMisplaced  int
	Blank         [engine.GridSize][engine.GridSize]int
	Failures      []string
}

// MeanAttempts returns the average number of samples per shuffle
func (r Report) MeanAttempts() float64 {
	return float64(r.TotalAttempts) / float64(r.Runs)
}

// MeanManhattan returns the average Manhattan distance of the shuffled boards
func (r Report) MeanManhattan() float64 {
	return float64(r.SumManhattan) / float64(r.Runs)
}

// MeanMisplaced returns the average number of misplaced tiles
func (r Report) MeanMisplaced() float64 {
	return float64(r.SumMisplaced) / float64(r.Runs)
}

func analyze(runs int, firstSeed uint64) Report {
	report := Report{
		Runs:         runs,
		FirstSeed:    firstSeed,
		MinManhattan: -1,
	}

	for i := 0; i < runs; i++ {
		seed := firstSeed + uint64(i)
		board := engine.NewBoard()
		report.TotalAttempts += board.Shuffle(engine.NewSeededSource(seed))

		if err := board.Validate(); err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("seed %d: %v", seed, err))
			continue
		}
		if !board.IsSolvable() {
			report.Failures = append(report.Failures, fmt.Sprintf("seed %d: board is not solvable", seed))
			continue
		}

		distance := board.ManhattanDistance()
		report.SumManhattan += distance
		if report.MinManhattan == -1 || distance < report.MinManhattan {
			report.MinManhattan = distance
		}
		if distance > report.MaxManhattan {
			report.MaxManhattan = distance
		}
		report.SumMisplaced += board.MisplacedTiles()

		blank := board.BlankPosition()
		report.Blank[blank.Y][blank.X]++
	}

	return report
}

func printReport(out io.Writer, r Report) {
	fmt.Fprintf(out, "\n=== Shuffle analysis (%d runs, seeds %d..%d) ===\n", r.Runs, r.FirstSeed, r.FirstSeed+uint64(r.Runs)-1)
	fmt.Fprintf(out, "Accepted moves per shuffle: %d\n", engine.ShuffleMoves)
	fmt.Fprintf(out, "Mean samples per shuffle: %.1f\n", r.MeanAttempts())
	fmt.Fprintf(out, "Manhattan distance: min %d, mean %.1f, max %d\n", r.MinManhattan, r.MeanManhattan(), r.MaxManhattan)
	fmt.Fprintf(out, "Mean misplaced tiles: %.1f\n", r.MeanMisplaced())

	fmt.Fprintln(out, "Blank position histogram:")
	for _, row := range r.Blank {
		cells := make([]string, 0, len(row))
		for _, count := range row {
			cells = append(cells, fmt.Sprintf("%5d", count))
		}
		fmt.Fprintln(out, strings.Join(cells, ""))
	}

	if len(r.Failures) > 0 {
		fmt.Fprintf(out, "⚠️  CRITICAL: %d boards broke an invariant!\n", len(r.Failures))
		for i, failure := range r.Failures {
			if i < 5 { // Show first 5 failures
				fmt.Fprintf(out, "   %s\n", failure)
			}
		}
		if len(r.Failures) > 5 {
			fmt.Fprintf(out, "   ... and %d more\n", len(r.Failures)-5)
		}
		return
	}
	fmt.Fprintln(out, "✅ All shuffled boards are valid and solvable")
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "analyze",
		Usage:  "report statistics about shuffled boards",
		Writer: out,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "runs",
				Usage: "number of boards to shuffle",
				Value: 100,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed of the first board",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			runs := cmd.Int("runs")
			if runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}

			report := analyze(runs, cmd.Uint64("seed"))
			printReport(out, report)
			if len(report.Failures) > 0 {
				return ErrBrokenShuffle
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
