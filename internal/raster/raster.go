// Package raster holds the pixel buffer operations that follow rendering:
// rotation for vertical output and saving to disk.
package raster

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/tg/internal/registry"
)

// Rotate90 returns src rotated 90 degrees clockwise.
// A horizontal strip becomes a vertical one whose first pixel is at the top.
func Rotate90(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))

	// (x, y) -> (maxY - y, x - minX)
	s2d := f64.Aff3{
		0, -1, float64(b.Max.Y),
		1, 0, -float64(b.Min.X),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

// Save encodes img into path, choosing the format from the path's extension.
// The file is only created once an encoder has been found.
func Save(img image.Image, path string) (err error) {
	enc, err := registry.Lookup(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close %s: %w", path, cerr)
		}
	}()

	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode %s as %s: %w", path, enc.Name(), err)
	}
	return nil
}
