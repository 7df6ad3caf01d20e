package wordbrain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const emptyCellChar = '.'

var (
	ErrEmptyGrid  = errors.New("empty grid")
	ErrNotSquare  = errors.New("grid must be square")
	ErrRaggedGrid = errors.New("grid rows must all have the same width")
)

// Cell is a grid slot that either holds a letter or is empty.
// The zero Cell is empty.
type Cell struct {
	letter  rune
	present bool
}

// Letter returns a Cell holding r.
func Letter(r rune) Cell {
	return Cell{letter: r, present: true}
}

// Empty is a Cell holding no letter.
var Empty = Cell{}

// Letter returns the cell's letter and whether there is one.
func (c Cell) Letter() (rune, bool) {
	return c.letter, c.present
}

func (c Cell) IsEmpty() bool {
	return !c.present
}

func (c Cell) String() string {
	if !c.present {
		return string(emptyCellChar)
	}
	return string(c.letter)
}

// Grid is a row-major 2D grid of cells, addressed as cells[y][x].
//
// Mutating methods must only be called on a Grid the caller owns;
// the solver always works on clones.
type Grid struct {
	cells [][]Cell
}

// NewGrid returns a Grid holding a copy of rows.
func NewGrid(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return Grid{}, errors.Wrapf(ErrRaggedGrid, "row %d has width %d, want %d", y, len(row), len(rows[0]))
		}
	}

	g := Grid{cells: rows}
	return g.Clone(), nil
}

// GridFromStrings builds a Grid from rows of letters, '.' marking an empty cell.
func GridFromStrings(rows ...string) (Grid, error) {
	cells := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, cellsFromString(row))
	}
	return NewGrid(cells)
}

// ParseGrid decodes a flat string, row-major, into a square grid.
// Letters are upper-cased and '.' marks an empty cell.
func ParseGrid(s string) (Grid, error) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return Grid{}, ErrEmptyGrid
	}

	size := int(math.Sqrt(float64(n)))
	for size*size > n {
		size--
	}
	for (size+1)*(size+1) <= n {
		size++
	}
	if size*size != n {
		return Grid{}, errors.Wrapf(ErrNotSquare, "%d letters", n)
	}

	flat := cellsFromString(s)
	cells := make([][]Cell, size)
	for y := range size {
		cells[y] = flat[y*size : (y+1)*size : (y+1)*size]
	}
	return Grid{cells: cells}, nil
}

func cellsFromString(s string) []Cell {
	row := make([]Cell, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		if r == emptyCellChar {
			row = append(row, Empty)
		} else {
			row = append(row, Letter(r))
		}
	}
	return row
}

func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g Grid) Height() int {
	return len(g.cells)
}

// Letters counts the non-empty cells.
func (g Grid) Letters() int {
	var ct int
	for _, row := range g.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				ct++
			}
		}
	}
	return ct
}

func (g Grid) Get(p Point) Cell {
	return g.cells[p.Y][p.X]
}

func (g *Grid) Set(p Point, c Cell) {
	g.cells[p.Y][p.X] = c
}

// Word concatenates the letters along path. It panics if path crosses an
// empty cell; the search never builds such a path.
func (g Grid) Word(path Path) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, p := range path {
		r, ok := g.Get(p).Letter()
		if !ok {
			panic(fmt.Sprintf("wordbrain: path crosses empty cell %v", p))
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveLetter deletes the letter at p and lets everything above it in the
// same column fall by one. The top cell of the column becomes empty.
func (g *Grid) RemoveLetter(p Point) {
	for y := p.Y; y > 0; y-- {
		g.cells[y][p.X] = g.cells[y-1][p.X]
	}
	g.cells[0][p.X] = Empty
}

// RemovePath removes the letters of path in order.
func (g *Grid) RemovePath(path Path) {
	for _, p := range path {
		g.RemoveLetter(p)
	}
}

func (g Grid) Clone() Grid {
	cells := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		cells[y] = slices.Clone(row)
	}
	return Grid{cells: cells}
}

// Words replays the paths of one solution, letting letters fall after
// each word, and returns the word each path spells.
func (g Grid) Words(paths []Path) []string {
	words := make([]string, 0, len(paths))
	cur := g
	for _, path := range paths {
		words = append(words, cur.Word(path))
		cur = cur.Clone()
		cur.RemovePath(path)
	}
	return words
}

// States returns the grid as each path of a solution is found in it.
func (g Grid) States(paths []Path) []Grid {
	states := make([]Grid, 0, len(paths))
	cur := g
	for _, path := range paths {
		states = append(states, cur)
		cur = cur.Clone()
		cur.RemovePath(path)
	}
	return states
}

func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
