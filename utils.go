package wordbrain

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Puzzle is a grid together with the word lengths to take out of it.
type Puzzle struct {
	Grid    Grid
	Lengths []int
}

// ReadPuzzleFromFile uses ReadPuzzle to read a puzzle from the specified file.
func ReadPuzzleFromFile(file string) (Puzzle, error) {
	f, err := os.Open(file)
	if err != nil {
		return Puzzle{}, errors.Wrap(err, "failed to open puzzle")
	}
	defer f.Close()

	return ReadPuzzle(f)
}

// ReadPuzzle reads a puzzle from r: one grid row per line, a blank line,
// then one word length per line. '.' marks an empty cell.
func ReadPuzzle(r io.Reader) (Puzzle, error) {
	rows := make([]string, 0, 12)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return Puzzle{}, errors.Wrap(err, "error reading grid")
	}

	grid, err := GridFromStrings(rows...)
	if err != nil {
		return Puzzle{}, errors.Wrap(err, "invalid grid")
	}

	lengths := make([]int, 0, 12)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			return Puzzle{}, errors.Wrapf(err, "invalid word length %q", line)
		}
		if n < 1 {
			return Puzzle{}, errors.Wrapf(ErrBadLength, "got %d", n)
		}
		lengths = append(lengths, n)
	}
	if err := sc.Err(); err != nil {
		return Puzzle{}, errors.Wrap(err, "error reading word lengths")
	}
	if len(lengths) == 0 {
		return Puzzle{}, ErrNoLengths
	}

	return Puzzle{Grid: grid, Lengths: lengths}, nil
}

// ParseLengths parses word lengths such as "4", "3,5" or "3 5".
func ParseLengths(args ...string) ([]int, error) {
	var lengths []int
	for _, arg := range args {
		for _, f := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid word length %q", f)
			}
			if n < 1 {
				return nil, errors.Wrapf(ErrBadLength, "got %d", n)
			}
			lengths = append(lengths, n)
		}
	}
	if len(lengths) == 0 {
		return nil, ErrNoLengths
	}
	return lengths, nil
}
