package formats

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/vovakirdan/tg/internal/registry"
)

// JPEGQuality is the quality used for .jpg/.jpeg output.
const JPEGQuality = 95

func init() {
	enc := registry.EncoderFunc{
		FormatName: "JPEG",
		Fn: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		},
	}
	registry.Register(".jpg", enc)
	registry.Register(".jpeg", enc)
}
