package core

// Size limits for the rendered gradient strip, in pixels along the primary axis.
const (
	MinSize     = 2
	MaxSize     = 4096
	DefaultSize = 512
)

// RenderOptions contains everything the command line specifies besides the stops.
// It is created once by the argument parser and never mutated afterwards.
type RenderOptions struct {
	Size     int    // Pixels along the gradient axis, in [MinSize, MaxSize]
	Vertical bool   // Rotate the strip 90 degrees after rendering
	Reverse  bool   // Odd number of reverse toggles seen
	Filename string // Output path; the encoder is picked from its extension
}

// DefaultRenderOptions returns RenderOptions with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Size:     DefaultSize,
		Vertical: false,
		Reverse:  false,
	}
}

// Width returns the width of the output image in pixels.
func (o RenderOptions) Width() int {
	if o.Vertical {
		return 1
	}
	return o.Size
}

// Height returns the height of the output image in pixels.
func (o RenderOptions) Height() int {
	if o.Vertical {
		return o.Size
	}
	return 1
}
