package wordbrain

import (
	"strings"

	"github.com/vyevs/ansi"
)

// Solution holds one path per word, in the order the words were taken out.
// Each path is only meaningful against the grid left by the paths before it.
type Solution []Path

var colors = [9]string{"red", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse", "light gray"}

func colorFor(i int) string {
	return colors[i%len(colors)]
}

// Render draws the words of s in color followed by the grid each word was
// found in, with that word's cells highlighted.
func (s Solution) Render(g Grid) string {
	var b strings.Builder
	b.Grow(128)

	for i, word := range g.Words(s) {
		b.WriteString(ansi.FGColorName(colorFor(i)))
		b.WriteString(word)
		b.WriteByte(' ')
	}
	b.WriteString(ansi.Clear)
	b.WriteByte('\n')

	for i, state := range g.States(s) {
		onPath := make(map[Point]bool, len(s[i]))
		for _, p := range s[i] {
			onPath[p] = true
		}

		for y, row := range state.cells {
			for x, c := range row {
				if onPath[Point{X: x, Y: y}] {
					b.WriteString(ansi.FGColorName(colorFor(i)))
				} else {
					b.WriteString(ansi.Clear)
				}
				b.WriteString(c.String())
			}
			b.WriteString(ansi.Clear)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
