package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input holds no tiles or a non-positive width.
	ErrEmptyGrid = errors.New("grid: grid must contain at least one row and one column")
	// ErrInconsistentWidths indicates rows of differing lengths.
	ErrInconsistentWidths = errors.New("grid: all rows must have the same length")
	// ErrInvalidCharacter indicates a symbol other than 'L', '.' or '#'.
	ErrInvalidCharacter = errors.New("grid: unrecognized tile character")
)
