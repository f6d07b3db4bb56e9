package board

// Color is the side character of a piece code.
type Color byte

const (
	White   Color = 'w'
	Black   Color = 'b'
	NoColor Color = 0
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Kind is the piece-kind character of a piece code.
type Kind byte

const (
	Pawn   Kind = 'p'
	Rook   Kind = 'R'
	Knight Kind = 'N'
	Bishop Kind = 'B'
	Queen  Kind = 'Q'
	King   Kind = 'K'
	NoKind Kind = 0
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece is a two-character occupant code: side then kind, e.g. "wp" or "bK".
// Empty marks an unoccupied square.
type Piece string

const (
	WhitePawn   Piece = "wp"
	WhiteRook   Piece = "wR"
	WhiteKnight Piece = "wN"
	WhiteBishop Piece = "wB"
	WhiteQueen  Piece = "wQ"
	WhiteKing   Piece = "wK"
	BlackPawn   Piece = "bp"
	BlackRook   Piece = "bR"
	BlackKnight Piece = "bN"
	BlackBishop Piece = "bB"
	BlackQueen  Piece = "bQ"
	BlackKing   Piece = "bK"
	Empty       Piece = "--"
)

// AllPieces lists every non-empty piece code.
var AllPieces = []Piece{
	WhitePawn, WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing,
	BlackPawn, BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing,
}

// NewPiece builds a piece code from a color and kind.
// Returns Empty if either part is unknown.
func NewPiece(c Color, k Kind) Piece {
	p := Piece([]byte{byte(c), byte(k)})
	if !p.Valid() || p == Empty {
		return Empty
	}
	return p
}

// Color returns the side of the piece, or NoColor for Empty.
func (p Piece) Color() Color {
	if p.IsEmpty() || len(p) != 2 {
		return NoColor
	}
	return Color(p[0])
}

// Kind returns the piece kind, or NoKind for Empty.
func (p Piece) Kind() Kind {
	if p.IsEmpty() || len(p) != 2 {
		return NoKind
	}
	return Kind(p[1])
}

// IsEmpty reports whether p is the empty marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Valid reports whether p is one of the twelve piece codes or Empty.
func (p Piece) Valid() bool {
	if p == Empty {
		return true
	}
	if len(p) != 2 {
		return false
	}
	switch Color(p[0]) {
	case White, Black:
	default:
		return false
	}
	switch Kind(p[1]) {
	case Pawn, Rook, Knight, Bishop, Queen, King:
		return true
	}
	return false
}

// String returns the piece code.
func (p Piece) String() string {
	return string(p)
}
