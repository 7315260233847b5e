package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// tileOf maps an input symbol to its Tile, or fails with ErrInvalidCharacter.
func tileOf(c rune) (Tile, error) {
	switch c {
	case 'L':
		return Empty, nil
	case '.':
		return Floor, nil
	case '#':
		return Occupied, nil
	default:
		return Floor, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}
}

// Parse reads a seat layout in its text form: one row per line, built
// from 'L' (empty seat), '.' (floor) and '#' (occupied seat). Blank
// lines are skipped. All non-blank lines must share one width.
// Fails fast on the first invalid symbol or ragged row; no partial
// grid is ever returned.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	var (
		tiles []Tile
		width = -1
		row   = 0
		sc    = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if width == -1 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("row %d: %w", row, ErrInconsistentWidths)
		}
		for col, c := range line {
			t, err := tileOf(c)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", row, col, err)
			}
			tiles = append(tiles, t)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyGrid
	}

	return New(tiles, width)
}

// ParseString is a convenience wrapper around Parse for in-memory layouts.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
