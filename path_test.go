package wordbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathValid(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want bool
	}{
		{name: "empty", path: nil, want: true},
		{name: "single", path: Path{{0, 0}}, want: true},
		{name: "diagonal walk", path: Path{{1, 1}, {0, 0}, {0, 1}, {1, 0}}, want: true},
		{name: "repeat", path: Path{{0, 0}, {0, 1}, {0, 0}}, want: false},
		{name: "jump", path: Path{{0, 0}, {2, 0}}, want: false},
		{name: "stay", path: Path{{1, 1}, {1, 1}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.Valid())
		})
	}
}

func TestNextBounds(t *testing.T) {
	g := mustParse(t, "catdogsun")

	assert.Equal(t, bounds{0, 3, 0, 3}, nextBounds(g, nil))
	assert.Equal(t, bounds{0, 2, 0, 2}, nextBounds(g, Path{{0, 0}}))
	assert.Equal(t, bounds{0, 3, 0, 3}, nextBounds(g, Path{{2, 2}, {1, 1}}))
	assert.Equal(t, bounds{1, 3, 1, 3}, nextBounds(g, Path{{2, 2}}))
}

func TestExtend(t *testing.T) {
	p := Path{{0, 0}, {1, 1}}
	a := p[:1].extend(Point{1, 0})
	b := p[:1].extend(Point{0, 1})

	assert.Equal(t, Path{{0, 0}, {1, 0}}, a)
	assert.Equal(t, Path{{0, 0}, {0, 1}}, b)
	assert.Equal(t, Path{{0, 0}, {1, 1}}, p, "extend must not write into the receiver's backing array")
}
