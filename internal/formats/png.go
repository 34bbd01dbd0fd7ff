package formats

import (
	"image"
	"image/png"
	"io"

	"github.com/vovakirdan/tg/internal/registry"
)

func init() {
	enc := registry.EncoderFunc{
		FormatName: "PNG",
		Fn: func(w io.Writer, img image.Image) error {
			e := png.Encoder{CompressionLevel: png.BestCompression}
			return e.Encode(w, img)
		},
	}
	registry.Register(".png", enc)
}
