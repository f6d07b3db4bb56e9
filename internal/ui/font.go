package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// Source for the piece letters drawn when no sprite is available.
var boldSource *text.GoTextFaceSource

func init() {
	initFonts()
}

func initFonts() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldSource = src
}

// faceWithSize returns a bold face of the given pixel size.
func faceWithSize(size float64) *text.GoTextFace {
	if boldSource == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: boldSource,
		Size:   size,
	}
}

// drawCenteredText draws s centered on (cx, cy).
func drawCenteredText(screen *ebiten.Image, s string, cx, cy, size float64, c color.Color) {
	face := faceWithSize(size)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
