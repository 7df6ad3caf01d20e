// Package wordbrain finds the words hidden in falling-letter grid puzzles.
package wordbrain

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoLengths = errors.New("no word lengths given")
	ErrBadLength = errors.New("word lengths must be at least 1")
)

var tracer = otel.Tracer("github.com/vyevs/wordbrain")

// Dictionary answers the two queries the search prunes with.
// *dictionaries.Trie implements it.
type Dictionary interface {
	// IsWord reports whether word is a complete dictionary word.
	IsWord(word string) bool
	// IsPrefix reports whether some word of total length n starts with word.
	IsPrefix(word string, n int) bool
}

// Options control how Solve explores the puzzle.
type Options struct {
	// Permute tries every ordering of the word lengths instead of only the given one.
	Permute bool
	// First stops the whole search at the first complete solution.
	First bool
	// Workers bounds the goroutines used below the first word. Values <= 1 run
	// sequentially. Ignored when First is set.
	Workers int
}

// Stats counts the work a search did.
type Stats struct {
	Visited int `json:"visited"` // cells tried as the next letter of a path
	Pruned  int `json:"pruned"`  // partial words no dictionary word of the wanted length starts with
	Words   int `json:"words"`   // paths that spelled a dictionary word
}

func (s *Stats) add(o Stats) {
	s.Visited += o.Visited
	s.Pruned += o.Pruned
	s.Words += o.Words
}

// step tells a walk whether to keep enumerating after a visit.
type step int

const (
	stepNext step = iota
	stepHalt
)

type (
	pathVisitor     func(Path) (step, error)
	solutionVisitor func(Solution) (step, error)
)

// solver carries the read-only inputs of one search and the stats it gathers.
// It is not shared between goroutines.
type solver struct {
	ctx  context.Context
	dict Dictionary
	opts Options

	stats Stats
}

// walk enumerates, in scan order, every path that extends path by n more
// cells and spells a dictionary word, handing each to visit. It stops as
// soon as visit asks it to and reports that to its caller.
func (s *solver) walk(g Grid, n int, path Path, visit pathVisitor) (step, error) {
	if err := s.ctx.Err(); err != nil {
		return stepHalt, err
	}

	b := nextBounds(g, path)
	for x := b.minX; x < b.maxX; x++ {
		for y := b.minY; y < b.maxY; y++ {
			pt := Point{X: x, Y: y}

			if path.contains(pt) || g.Get(pt).IsEmpty() {
				continue
			}
			s.stats.Visited++

			newPath := path.extend(pt)
			word := g.Word(newPath)

			if n == 1 {
				if !s.dict.IsWord(word) {
					continue
				}
				s.stats.Words++
				if st, err := visit(newPath); err != nil || st == stepHalt {
					return stepHalt, err
				}
				continue
			}

			if !s.dict.IsPrefix(word, len(path)+n) {
				s.stats.Pruned++
				continue
			}
			if st, err := s.walk(g, n-1, newPath, visit); err != nil || st == stepHalt {
				return stepHalt, err
			}
		}
	}
	return stepNext, nil
}

// solveEach enumerates every solution of lengths on g, handing each to visit.
func (s *solver) solveEach(g Grid, lengths []int, visit solutionVisitor) (step, error) {
	if len(lengths) == 1 {
		return s.walk(g, lengths[0], nil, func(p Path) (step, error) {
			return visit(Solution{p})
		})
	}

	for _, i := range s.nextIndexes(lengths) {
		rest := without(lengths, i)
		st, err := s.walk(g, lengths[i], nil, func(p Path) (step, error) {
			next := g.Clone()
			next.RemovePath(p)
			return s.solveEach(next, rest, func(sub Solution) (step, error) {
				return visit(append(Solution{p}, sub...))
			})
		})
		if err != nil || st == stepHalt {
			return stepHalt, err
		}
	}
	return stepNext, nil
}

// nextIndexes returns the positions in lengths to try as the next word.
func (s *solver) nextIndexes(lengths []int) []int {
	if !s.opts.Permute {
		return []int{0}
	}
	idxs := make([]int, len(lengths))
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

func without(lengths []int, i int) []int {
	out := make([]int, 0, len(lengths)-1)
	out = append(out, lengths[:i]...)
	return append(out, lengths[i+1:]...)
}

// Search returns every path of n letters in g spelling a word of dict, in
// scan order. With first set it returns at most one path.
func (g Grid) Search(ctx context.Context, dict Dictionary, n int, first bool) ([]Path, Stats, error) {
	if n < 1 {
		return nil, Stats{}, errors.Wrapf(ErrBadLength, "got %d", n)
	}

	s := &solver{ctx: ctx, dict: dict, opts: Options{First: first}}

	var paths []Path
	_, err := s.walk(g, n, nil, func(p Path) (step, error) {
		paths = append(paths, p)
		if first {
			return stepHalt, nil
		}
		return stepNext, nil
	})
	if err != nil {
		return nil, s.stats, err
	}
	return paths, s.stats, nil
}

// Solve finds every way to take words of the given lengths out of g one
// after another, letting letters fall after each word. Solutions come back in
// a deterministic order. No solution is not an error.
func (g Grid) Solve(ctx context.Context, dict Dictionary, lengths []int, opts Options) ([]Solution, Stats, error) {
	if len(lengths) == 0 {
		return nil, Stats{}, ErrNoLengths
	}
	for _, n := range lengths {
		if n < 1 {
			return nil, Stats{}, errors.Wrapf(ErrBadLength, "got %d", n)
		}
	}

	ctx, span := tracer.Start(ctx, "wordbrain.Solve", trace.WithAttributes(
		attribute.Int("grid.width", g.Width()),
		attribute.Int("grid.height", g.Height()),
		attribute.IntSlice("lengths", lengths),
		attribute.Bool("permute", opts.Permute),
		attribute.Bool("first", opts.First),
	))
	defer span.End()

	var (
		solutions []Solution
		stats     Stats
		err       error
	)
	if opts.Workers > 1 && !opts.First && len(lengths) > 1 {
		solutions, stats, err = g.solveParallel(ctx, dict, lengths, opts)
	} else {
		solutions, stats, err = g.solveSequential(ctx, dict, lengths, opts)
	}

	span.SetAttributes(
		attribute.Int("solutions", len(solutions)),
		attribute.Int("visited", stats.Visited),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, stats, err
	}
	return solutions, stats, nil
}

func (g Grid) solveSequential(ctx context.Context, dict Dictionary, lengths []int, opts Options) ([]Solution, Stats, error) {
	s := &solver{ctx: ctx, dict: dict, opts: opts}

	var solutions []Solution
	_, err := s.solveEach(g, lengths, func(sol Solution) (step, error) {
		solutions = append(solutions, sol)
		if opts.First {
			return stepHalt, nil
		}
		return stepNext, nil
	})
	return solutions, s.stats, err
}

// solveParallel finds the first word's paths sequentially, then solves the
// remaining lengths below each of them concurrently. Results are stitched
// back in the order the sequential search would produce them.
func (g Grid) solveParallel(ctx context.Context, dict Dictionary, lengths []int, opts Options) ([]Solution, Stats, error) {
	top := &solver{ctx: ctx, dict: dict, opts: opts}

	type branch struct {
		path Path
		rest []int

		solutions []Solution
		stats     Stats
	}

	var branches []*branch
	for _, i := range top.nextIndexes(lengths) {
		rest := without(lengths, i)
		_, err := top.walk(g, lengths[i], nil, func(p Path) (step, error) {
			branches = append(branches, &branch{path: p, rest: rest})
			return stepNext, nil
		})
		if err != nil {
			return nil, top.stats, err
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for _, b := range branches {
		eg.Go(func() error {
			next := g.Clone()
			next.RemovePath(b.path)

			s := &solver{ctx: egCtx, dict: dict, opts: opts}
			_, err := s.solveEach(next, b.rest, func(sub Solution) (step, error) {
				b.solutions = append(b.solutions, append(Solution{b.path}, sub...))
				return stepNext, nil
			})
			b.stats = s.stats
			return err
		})
	}
	err := eg.Wait()

	stats := top.stats
	var solutions []Solution
	for _, b := range branches {
		stats.add(b.stats)
		solutions = append(solutions, b.solutions...)
	}
	if err != nil {
		return nil, stats, err
	}
	return solutions, stats, nil
}
