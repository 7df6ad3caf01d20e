package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vyevs/vtools"

	"github.com/vyevs/wordbrain"
)

type solveFlags struct {
	puzzle  string
	permute bool
	first   bool
	verbose bool
	workers int
	timeout time.Duration
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [GRID LENGTH...]",
		Short: "Print every way to take words of the given lengths out of a grid",
		Example: `  wordbrain solve assp 4
  wordbrain solve catdogsun 3 2 --permute
  wordbrain solve -p puzzle.txt --first`,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := readPuzzle(f.puzzle, args)
			if err != nil {
				return err
			}
			return a.solve(cmd.Context(), cmd.OutOrStdout(), puzzle, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.puzzle, "puzzle", "p", "", "path to a puzzle file instead of GRID LENGTH...")
	fl.BoolVar(&f.permute, "permute", false, "try every ordering of the word lengths")
	fl.BoolVar(&f.first, "first", false, "stop at the first solution")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "draw each solution on the grid")
	fl.IntVarP(&f.workers, "workers", "w", 0, "goroutines used for sub-searches (default from config)")
	fl.DurationVar(&f.timeout, "timeout", 0, "give up after this long (default from config)")

	return cmd
}

func readPuzzle(file string, args []string) (wordbrain.Puzzle, error) {
	if file != "" {
		if len(args) > 0 {
			return wordbrain.Puzzle{}, errors.New("give either a puzzle file or GRID LENGTH..., not both")
		}
		return wordbrain.ReadPuzzleFromFile(file)
	}

	if len(args) < 2 {
		return wordbrain.Puzzle{}, errors.New("need a grid and at least one word length")
	}
	grid, err := wordbrain.ParseGrid(args[0])
	if err != nil {
		return wordbrain.Puzzle{}, err
	}
	lengths, err := wordbrain.ParseLengths(args[1:]...)
	if err != nil {
		return wordbrain.Puzzle{}, err
	}
	return wordbrain.Puzzle{Grid: grid, Lengths: lengths}, nil
}

func (a *app) solve(ctx context.Context, w io.Writer, p wordbrain.Puzzle, f solveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := a.cfg.Solver.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	workers := a.cfg.Solver.Workers
	if f.workers > 0 {
		workers = f.workers
	}

	dict, err := a.loadDictionary(ctx, p.Lengths)
	if err != nil {
		return errors.Wrap(err, "failed to get dictionary")
	}
	for _, n := range p.Lengths {
		if !dict.HasLength(n) {
			a.log.Warnw("no dictionary words of this length, nothing to solve", "length", n)
			return nil
		}
	}

	a.log.Debugw("solving",
		"grid", strings.TrimSpace(p.Grid.String()),
		"lengths", p.Lengths,
		"permute", f.permute,
		"first", f.first,
		"workers", workers,
	)

	if f.verbose {
		defer vtools.TimeIt(time.Now(), "solving and printing")
	}

	start := time.Now()
	solutions, stats, err := p.Grid.Solve(ctx, dict, p.Lengths, wordbrain.Options{
		Permute: f.permute,
		First:   f.first,
		Workers: workers,
	})
	if err != nil {
		return errors.Wrap(err, "failed to solve")
	}

	a.log.Infow("solved",
		"solutions", len(solutions),
		"visited", stats.Visited,
		"pruned", stats.Pruned,
		"took", time.Since(start),
	)

	for i, s := range solutions {
		if f.verbose {
			fmt.Fprintf(w, "%3d\n%s", i+1, s.Render(p.Grid))
			continue
		}
		fmt.Fprintln(w, strings.Join(p.Grid.Words(s), " "))
	}
	return nil
}
