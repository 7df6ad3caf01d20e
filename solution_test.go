package wordbrain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolutionRender(t *testing.T) {
	g := mustParse(t, "catdogsun")
	sol := Solution{
		{{2, 1}, {1, 1}},
		{{2, 2}, {1, 2}, {2, 1}},
	}

	out := sol.Render(g)

	first, _, _ := strings.Cut(out, "\n")
	assert.Contains(t, first, "GO")
	assert.Contains(t, first, "NUT")
	// one header line, then a grid per word each followed by a blank line
	assert.Equal(t, 1+2*(g.Height()+1), strings.Count(out, "\n"))
}

func TestColorFor_Wraps(t *testing.T) {
	assert.Equal(t, colorFor(0), colorFor(len(colors)))
}
