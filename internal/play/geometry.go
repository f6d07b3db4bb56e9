// Package play drives a board from point-and-click input: pixel to square
// mapping, the two-click selection buffer and the session that applies moves.
package play

import "github.com/hailam/clickboard/internal/board"

// Geometry describes the rendered board.
type Geometry struct {
	BoardSize int // Width and height of the board in pixels
	Dimension int // Squares per side
}

// DefaultGeometry is a 512px board of 64px squares.
func DefaultGeometry() Geometry {
	return Geometry{BoardSize: 512, Dimension: board.Size}
}

// SquareSize returns the size of one square in pixels.
func (g Geometry) SquareSize() int {
	if g.Dimension <= 0 {
		return 0
	}
	return g.BoardSize / g.Dimension
}

// SquareAt maps a pixel position to a square by integer division.
// It reports false for positions outside the board.
func (g Geometry) SquareAt(x, y int) (board.Square, bool) {
	size := g.SquareSize()
	if size == 0 || x < 0 || y < 0 {
		return board.Square{}, false
	}
	sq := board.Sq(y/size, x/size)
	if !sq.Valid() || sq.Row >= g.Dimension || sq.Col >= g.Dimension {
		return board.Square{}, false
	}
	return sq, true
}

// SquareOrigin returns the top-left pixel of a square.
func (g Geometry) SquareOrigin(sq board.Square) (int, int) {
	size := g.SquareSize()
	return sq.Col * size, sq.Row * size
}
