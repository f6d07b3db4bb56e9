package board

// Move is a snapshot of a proposed transition: two squares and the pieces
// that stood on them when the move was built. It holds no reference to the
// board, so later board changes do not affect it.
type Move struct {
	start    Square
	end      Square
	moved    Piece
	captured Piece
}

// NewMove reads the pieces on start and end from b and records them.
func NewMove(start, end Square, b *Board) (Move, error) {
	moved, err := b.PieceAt(start)
	if err != nil {
		return Move{}, err
	}
	captured, err := b.PieceAt(end)
	if err != nil {
		return Move{}, err
	}
	return Move{
		start:    start,
		end:      end,
		moved:    moved,
		captured: captured,
	}, nil
}

// Start returns the origin square.
func (m Move) Start() Square {
	return m.start
}

// End returns the destination square.
func (m Move) End() Square {
	return m.end
}

// Moved returns the piece that stood on the start square at construction.
func (m Move) Moved() Piece {
	return m.moved
}

// Captured returns the piece that stood on the end square at construction.
func (m Move) Captured() Piece {
	return m.captured
}

// Notation returns the start and end labels concatenated, e.g. "e2e4".
func (m Move) Notation() string {
	return m.start.String() + m.end.String()
}

// String returns the move notation.
func (m Move) String() string {
	return m.Notation()
}
