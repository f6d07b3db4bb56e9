// Package ui implements the board window using Ebitengine.
package ui

import (
	"log"

	"github.com/hailam/clickboard/internal/board"
	"github.com/hailam/clickboard/internal/play"
	"github.com/hailam/clickboard/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxTPS is the update rate of the frame loop.
const MaxTPS = 15

// Config is everything the window needs at startup.
type Config struct {
	Geometry play.Geometry
	AssetDir string // Directory holding <code>.png or <code>.svg piece images
	Sound    bool
	Resume   bool             // Continue the last stored session
	Storage  *storage.Storage // Optional
}

// Game implements ebiten.Game interface.
type Game struct {
	session  *play.Session
	geometry play.Geometry
	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager

	scale float64
}

// NewGame creates the game window state from cfg.
func NewGame(cfg Config) *Game {
	if cfg.Geometry.SquareSize() == 0 {
		cfg.Geometry = play.DefaultGeometry()
	}

	g := &Game{
		geometry: cfg.Geometry,
		renderer: NewRenderer(cfg.Geometry, NewSpriteManager(cfg.AssetDir, cfg.Geometry.SquareSize())),
		input:    NewInputHandler(),
		scale:    1.0,
	}
	if cfg.Sound {
		g.audio = NewAudioManager()
	}

	g.session = play.Open(cfg.Storage, cfg.Resume)

	return g
}

// Session returns the session being played.
func (g *Game) Session() *play.Session {
	return g.session
}

// Update handles input once per tick.
func (g *Game) Update() error {
	g.input.Update(g.scale)

	if IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		log.Printf("Board reset")
		return nil
	}

	if !g.input.IsLeftJustPressed() {
		return nil
	}

	mx, my := g.input.MousePosition()
	sq, ok := g.geometry.SquareAt(mx, my)
	if !ok {
		return nil
	}
	g.handleClick(sq)

	return nil
}

// handleClick feeds a clicked square to the session and reports any applied move.
func (g *Game) handleClick(sq board.Square) {
	m, applied, err := g.session.Click(sq)
	if err != nil {
		log.Printf("Warning: Click on %v rejected: %v", sq, err)
		return
	}
	if !applied {
		return
	}

	log.Print(m.Notation())

	if g.audio != nil {
		if m.Captured().IsEmpty() {
			g.audio.Play(SoundMove)
		} else {
			g.audio.Play(SoundCapture)
		}
	}
}

// Draw renders the board, the selection and the pieces.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if sq, ok := g.session.Selected(); ok {
		g.renderer.DrawSelection(screen, sq)
	}

	g.renderer.DrawPieces(screen, g.session.Board().Grid())
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}

	size := int(float64(g.geometry.BoardSize) * g.scale)
	return size, size
}
