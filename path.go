package wordbrain

import (
	"fmt"
	"slices"
)

// Point is an (x, y) grid coordinate. y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Adjacent reports whether q lies in the 3x3 neighborhood of p.
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Path is a sequence of distinct, pairwise adjacent points.
type Path []Point

func (p Path) contains(pt Point) bool {
	return slices.Contains(p, pt)
}

// extend returns a copy of p with pt appended.
func (p Path) extend(pt Point) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, pt)
}

// Valid reports whether p has no repeated points and every step moves to
// an adjacent cell.
func (p Path) Valid() bool {
	for i, pt := range p {
		if p[:i].contains(pt) {
			return false
		}
		if i > 0 && !p[i-1].Adjacent(pt) {
			return false
		}
	}
	return true
}

// bounds is the half-open scan window for the next point of a path.
type bounds struct {
	minX, maxX, minY, maxY int
}

// nextBounds returns the whole grid for an empty path and otherwise the
// neighborhood of the last point, clipped to the grid.
func nextBounds(g Grid, p Path) bounds {
	if len(p) == 0 {
		return bounds{0, g.Width(), 0, g.Height()}
	}
	last := p[len(p)-1]
	return bounds{
		minX: max(0, last.X-1),
		maxX: min(last.X+2, g.Width()),
		minY: max(0, last.Y-1),
		maxY: min(last.Y+2, g.Height()),
	}
}
