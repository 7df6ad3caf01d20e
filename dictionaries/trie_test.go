package dictionaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWord(t *testing.T) {
	d := NewTrie()
	d.AddWord("foo")
	d.AddWord("bar")

	assert.True(t, d.IsWord("foo"))
	assert.True(t, d.IsWord("bar"))

	assert.False(t, d.IsWord("f"))
	assert.False(t, d.IsWord("fo"))
	assert.False(t, d.IsWord("fooo"))
	assert.False(t, d.IsWord("hello"))
	assert.False(t, d.IsWord(""))
}

func TestIsPrefix(t *testing.T) {
	d := NewTrie()
	d.AddWord("foo")

	tests := []struct {
		word string
		n    int
		want bool
	}{
		{"", 3, true},
		{"f", 3, true},
		{"fo", 3, true},
		{"foo", 3, true},

		{"", 2, false},
		{"f", 0, false},
		{"f", 1, false},
		{"f", 2, false},
		{"fooo", 3, false},
		{"b", 3, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, d.IsPrefix(tt.word, tt.n), "IsPrefix(%q, %d)", tt.word, tt.n)
	}
}

func TestIsPrefix_MixedLengths(t *testing.T) {
	d := NewTrie()
	d.AddWord("PA")
	d.AddWord("PASS")
	d.AddWord("PAST")

	assert.True(t, d.IsPrefix("P", 2))
	assert.True(t, d.IsPrefix("PA", 2))
	assert.True(t, d.IsPrefix("PAS", 4))
	assert.False(t, d.IsPrefix("PAS", 3))
	assert.False(t, d.IsPrefix("PAX", 4))
	assert.False(t, d.IsPrefix("P", 3))

	assert.True(t, d.HasLength(2))
	assert.True(t, d.HasLength(4))
	assert.False(t, d.HasLength(3))
	assert.False(t, d.HasLength(0))
}

func TestAddWord_Idempotent(t *testing.T) {
	d := NewTrie()
	d.AddWord("PASS")
	d.AddWord("PASS")
	d.AddWord("")

	assert.Equal(t, 1, d.Len())
	assert.True(t, d.IsWord("PASS"))
	assert.False(t, d.IsWord("PAS"))
}
