package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/clickboard/internal/board"
)

const discSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">
<circle cx="22.5" cy="22.5" r="20" fill="#000000"/>
</svg>`

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 0, 0, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wp.png"), 10, 20)

	img, err := LoadPiece(dir, board.WhitePawn, 64)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("bounds = %v, want 64x64", img.Bounds())
	}
	if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
		t.Error("scaled image is transparent at the center")
	}
}

func TestLoadSVG(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bK.svg"), []byte(discSVG), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadPiece(dir, board.BlackKing, 48)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 48 {
		t.Errorf("width = %d, want 48", img.Bounds().Dx())
	}
	if _, _, _, a := img.At(24, 24).RGBA(); a == 0 {
		t.Error("disc center not painted")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("corner outside the disc painted")
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wQ.png"), 8, 8)

	images, err := Load(dir, 32)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load err = %v, want ErrNotFound", err)
	}
	if len(images) != 1 {
		t.Errorf("loaded %d images, want 1", len(images))
	}
	if _, ok := images[board.WhiteQueen]; !ok {
		t.Error("wQ not loaded")
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wN.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPiece(dir, board.WhiteKnight, 32); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want decode error", err)
	}
}
