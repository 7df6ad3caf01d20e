package dictionaries

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Source supplies the raw words of a dictionary.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// FileSource reads a newline-delimited word list from a file.
type FileSource struct {
	Path string
}

func (s FileSource) Words(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dictionary")
	}
	defer f.Close()

	return readWords(ctx, f)
}

// ReaderSource reads a newline-delimited word list from R.
type ReaderSource struct {
	R io.Reader
}

func (s ReaderSource) Words(ctx context.Context) ([]string, error) {
	return readWords(ctx, s.R)
}

func readWords(ctx context.Context, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := make([]string, 0, 1<<16)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scanner error")
	}

	return words, nil
}

// Normalize upper-cases word and strips spaces, apostrophes and hyphens.
// It returns false if what remains is empty or holds anything but letters.
func Normalize(word string) (string, bool) {
	word = strings.TrimSpace(word)
	word = strings.ReplaceAll(word, " ", "")
	word = strings.ReplaceAll(word, "'", "")
	word = strings.ReplaceAll(word, "-", "")
	word = strings.ToUpper(word)

	if word == "" {
		return "", false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return word, true
}

// Build inserts every normalized word whose length is in lengths.
// An empty lengths keeps every word.
func Build(words []string, lengths []int) *Trie {
	keep := make(map[int]bool, len(lengths))
	for _, l := range lengths {
		keep[l] = true
	}

	t := NewTrie()
	for _, w := range words {
		w, ok := Normalize(w)
		if !ok {
			continue
		}
		if len(keep) > 0 && !keep[len([]rune(w))] {
			continue
		}
		t.AddWord(w)
	}
	return t
}

// Load reads src and builds a trie of the words with the requested lengths.
func Load(ctx context.Context, src Source, lengths []int) (*Trie, error) {
	words, err := src.Words(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dictionary")
	}
	return Build(words, lengths), nil
}
