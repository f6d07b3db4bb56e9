package ui

import (
	"errors"
	"log"

	"github.com/hailam/clickboard/internal/assets"
	"github.com/hailam/clickboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 64)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager loads piece sprites of the given size from dir.
func NewSpriteManager(dir string, size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces(dir)
	return sm
}

// loadPieces converts every image found in dir into a sprite.
func (sm *SpriteManager) loadPieces(dir string) {
	if dir == "" {
		return
	}

	renderSize := int(float64(sm.size) * sm.renderScale)
	images, err := assets.Load(dir, renderSize)
	if errors.Is(err, assets.ErrNotFound) && len(images) == 0 {
		log.Printf("No piece images in %s, drawing placeholder pieces", dir)
	} else if err != nil {
		log.Printf("Warning: Some piece images failed to load: %v", err)
	}

	for piece, img := range images {
		sm.pieces[piece] = ebiten.NewImageFromImage(img)
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece at the given screen coordinates.
// It reports false when no sprite exists for p.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float32, scale float64) bool {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	s := scale / sm.renderScale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
	return true
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
