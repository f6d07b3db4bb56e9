package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")
	// ErrInvalidPiece is returned when a grid holds an unknown piece code.
	ErrInvalidPiece = errors.New("invalid piece code")
)

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 8x8 occupancy grid, indexed [row][col].
type Board struct {
	grid [Size][Size]Piece
}

// New returns a board in the standard starting position.
func New() *Board {
	b := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.grid[row][col] = Empty
		}
	}
	for col := 0; col < Size; col++ {
		b.grid[0][col] = NewPiece(Black, backRank[col])
		b.grid[1][col] = BlackPawn
		b.grid[6][col] = WhitePawn
		b.grid[7][col] = NewPiece(White, backRank[col])
	}
	return b
}

// FromGrid builds a board from a full grid snapshot.
func FromGrid(grid [Size][Size]Piece) (*Board, error) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !grid[row][col].Valid() {
				return nil, fmt.Errorf("square %s holds %q: %w", Sq(row, col), grid[row][col], ErrInvalidPiece)
			}
		}
	}
	return &Board{grid: grid}, nil
}

// PieceAt returns the piece code at sq, or Empty.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if err := checkSquare(sq); err != nil {
		return Empty, err
	}
	return b.grid[sq.Row][sq.Col], nil
}

// ApplyMove moves whatever stands on the start square of m onto its end square
// and empties the start square. The previous occupant of the end square is
// discarded. No chess rules are checked.
//
// For a move built against the current board the piece moved equals
// m.Moved(). Reapplying a move after its start square was emptied moves the
// empty marker.
func (b *Board) ApplyMove(m Move) error {
	if err := checkSquare(m.start); err != nil {
		return err
	}
	if err := checkSquare(m.end); err != nil {
		return err
	}
	b.grid[m.end.Row][m.end.Col] = b.grid[m.start.Row][m.start.Col]
	b.grid[m.start.Row][m.start.Col] = Empty
	return nil
}

// Grid returns a copy of the full grid.
func (b *Board) Grid() [Size][Size]Piece {
	return b.grid
}

// String renders the grid with rank labels on the left and files underneath.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", Size-row)
		for col := 0; col < Size; col++ {
			sb.WriteString(b.grid[row][col].String())
			if col < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a  b  c  d  e  f  g  h\n")
	return sb.String()
}
