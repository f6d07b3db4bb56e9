package ui

import (
	"image/color"

	"github.com/hailam/clickboard/internal/board"
	"github.com/hailam/clickboard/internal/play"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	Background     color.RGBA
	WhitePiece     color.RGBA // Fallback disc colors when no sprite is loaded
	BlackPiece     color.RGBA
}

// DefaultTheme returns white and pink squares with a yellow selection.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{255, 255, 255, 255}, // White
		DarkSquare:     color.RGBA{255, 192, 203, 255}, // Pink
		SelectedSquare: color.RGBA{247, 247, 105, 160}, // Yellow highlight
		Background:     color.RGBA{255, 255, 255, 255},
		WhitePiece:     color.RGBA{245, 245, 245, 255},
		BlackPiece:     color.RGBA{40, 40, 40, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites  *SpriteManager
	theme    *Theme
	geometry play.Geometry
	scale    float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(geometry play.Geometry, sprites *SpriteManager) *Renderer {
	return &Renderer{
		sprites:  sprites,
		theme:    DefaultTheme(),
		geometry: geometry,
		scale:    1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the squares. The top left square is always light.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.geometry.SquareSize()
	for row := 0; row < r.geometry.Dimension; row++ {
		for col := 0; col < r.geometry.Dimension; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, r.s(col*size), r.s(row*size), r.s(size), r.s(size), c, false)
		}
	}
}

// DrawSelection highlights the selected square.
func (r *Renderer) DrawSelection(screen *ebiten.Image, sq board.Square) {
	x, y := r.geometry.SquareOrigin(sq)
	size := r.geometry.SquareSize()
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), r.theme.SelectedSquare, false)
}

// DrawPieces draws every occupied square of grid.
func (r *Renderer) DrawPieces(screen *ebiten.Image, grid [board.Size][board.Size]board.Piece) {
	for row := range grid {
		for col, piece := range grid[row] {
			if piece.IsEmpty() {
				continue
			}
			x, y := r.geometry.SquareOrigin(board.Sq(row, col))
			r.drawPiece(screen, piece, x, y)
		}
	}
}

// drawPiece draws the sprite for piece, or a labelled disc if none was loaded.
func (r *Renderer) drawPiece(screen *ebiten.Image, piece board.Piece, x, y int) {
	if r.sprites.DrawPieceAt(screen, piece, r.s(x), r.s(y), r.scale) {
		return
	}

	size := r.geometry.SquareSize()
	cx := r.s(x) + r.s(size)/2
	cy := r.s(y) + r.s(size)/2
	radius := r.s(size) * 0.38

	fill, ink := r.theme.WhitePiece, r.theme.BlackPiece
	if piece.Color() == board.Black {
		fill, ink = ink, fill
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	vector.StrokeCircle(screen, cx, cy, radius, r.s(1), r.theme.BlackPiece, true)
	drawCenteredText(screen, piece.String()[1:], float64(cx), float64(cy), float64(size)*0.45*r.scale, ink)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
