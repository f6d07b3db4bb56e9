// Package assets loads piece images from disk and scales them to a square size.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hailam/clickboard/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// Extensions tried for every piece, in order.
var Extensions = []string{".svg", ".png"}

// ErrNotFound is returned when no image file exists for a piece.
var ErrNotFound = errors.New("piece image not found")

// Load reads <dir>/<code>.svg or <dir>/<code>.png for every piece and scales
// each to size x size. Pieces without an image are left out of the result;
// their errors are joined into the returned error.
func Load(dir string, size int) (map[board.Piece]*image.RGBA, error) {
	images := make(map[board.Piece]*image.RGBA, len(board.AllPieces))
	var errs []error

	for _, piece := range board.AllPieces {
		img, err := LoadPiece(dir, piece, size)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		images[piece] = img
	}

	return images, errors.Join(errs...)
}

// LoadPiece loads and scales the image for one piece.
func LoadPiece(dir string, piece board.Piece, size int) (*image.RGBA, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, piece.String()+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if ext == ".svg" {
			return rasterizeSVG(path, data, size)
		}
		return decodeScaled(path, data, size)
	}
	return nil, fmt.Errorf("%s in %s: %w", piece, dir, ErrNotFound)
}

// rasterizeSVG renders an SVG icon with anti-aliasing into a size x size image.
func rasterizeSVG(path string, data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// decodeScaled decodes a raster image and resamples it to size x size.
func decodeScaled(path string, data []byte, size int) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}
