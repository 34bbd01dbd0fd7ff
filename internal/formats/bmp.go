package formats

import (
	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tg/internal/registry"
)

func init() {
	registry.Register(".bmp", registry.EncoderFunc{FormatName: "BMP", Fn: bmp.Encode})
}
