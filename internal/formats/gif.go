package formats

import (
	"image"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tg/internal/registry"
)

func init() {
	registry.Register(".gif", registry.EncoderFunc{
		FormatName: "GIF",
		Fn: func(w io.Writer, img image.Image) error {
			// No dithering: a one pixel strip gains nothing from error diffusion.
			return gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.Src})
		},
	})
}
