package gradient

import "image"

// Render samples g into a size×1 horizontal strip.
// Pixel i receives the color at t = i/(size-1).
func Render(g *Gradient, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, 1))
	w := g.Walker()
	last := float64(size - 1)

	for i := 0; i < size; i++ {
		c := w.At(float64(i) / last)
		img.SetNRGBA(i, 0, c.NRGBA())
	}
	return img
}
