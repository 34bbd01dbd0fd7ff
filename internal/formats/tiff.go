package formats

import (
	"image"
	"io"

	"golang.org/x/image/tiff"

	"github.com/vovakirdan/tg/internal/registry"
)

func init() {
	enc := registry.EncoderFunc{
		FormatName: "TIFF",
		Fn: func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		},
	}
	registry.Register(".tif", enc)
	registry.Register(".tiff", enc)
}
