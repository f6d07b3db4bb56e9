// Package board holds the 8x8 grid of piece codes and the moves applied to it.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Square is a (row, column) board coordinate.
// Row 0 is the top of the rendered grid (rank 8), column 0 is the left (file a).
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies within [0,7]x[0,7].
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// File returns the file letter ('a'..'h') for the column.
func (sq Square) File() byte {
	return 'a' + byte(sq.Col)
}

// Rank returns the rank digit ('8'..'1') for the row.
func (sq Square) Rank() byte {
	return '8' - byte(sq.Row)
}

// String returns the two-character label, e.g. "e2".
// Out-of-range squares render as their raw coordinates.
func (sq Square) String() string {
	if !sq.Valid() {
		return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
	}
	return string([]byte{sq.File(), sq.Rank()})
}

// ParseSquare parses a label such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}

	sq := Square{
		Row: int('8') - int(s[1]),
		Col: int(s[0]) - int('a'),
	}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	return sq, nil
}

func checkSquare(sq Square) error {
	if !sq.Valid() {
		return fmt.Errorf("square %s: %w", sq, ErrOutOfBounds)
	}
	return nil
}
