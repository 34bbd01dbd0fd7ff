// Package gradient turns a list of color stops into a sampled color gradient.
//
// Interpolation happens in linear light: each stop's sRGB color is expanded
// once when the Gradient is built, blended linearly, and compressed back to
// sRGB for output. Blending gamma-encoded channels directly would produce
// darker midpoints.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tg/internal/core"
)

var (
	// ErrTooFewStops is returned when fewer than two stops are given.
	ErrTooFewStops = errors.New("gradient: at least two stops are required")
	// ErrUnresolved is returned when a stop has no position.
	ErrUnresolved = errors.New("gradient: stop position not resolved")
	// ErrUnordered is returned when positions decrease along the list.
	ErrUnordered = errors.New("gradient: stop positions must not decrease")
)

// linearStop is a stop with its color expanded to linear RGB.
type linearStop struct {
	color    core.RGB
	r, g, b  float64
	position float64
}

// Gradient evaluates colors along a normalized list of stops.
type Gradient struct {
	stops []linearStop
}

// New builds a Gradient from resolved stops.
func New(stops core.StopList) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}

	g := &Gradient{stops: make([]linearStop, len(stops))}
	for i, s := range stops {
		if !s.HasPosition {
			return nil, fmt.Errorf("%w: stop %d", ErrUnresolved, i)
		}
		if i > 0 && s.Position < stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d at %g after %g", ErrUnordered, i, s.Position, stops[i-1].Position)
		}
		g.stops[i] = expand(s)
	}
	return g, nil
}

// At returns the color at t, where 0 is the start and 1 the end.
// It selects the same segment a Walker would, so At and Walker agree
// for every t.
func (g *Gradient) At(t float64) core.RGB {
	n := len(g.stops)
	to := sort.Search(n, func(i int) bool {
		return g.stops[i].position > t
	})
	to = max(1, min(to, n-1))
	return blend(g.stops[to-1], g.stops[to], t)
}

// Walker returns a sampler for monotonically non-decreasing t values.
func (g *Gradient) Walker() *Walker {
	return &Walker{stops: g.stops, from: 0, to: 1}
}

// Walker samples a Gradient in a single pass.
// Each call to At must pass a t no smaller than the previous one;
// the walker never moves backwards.
type Walker struct {
	stops    []linearStop
	from, to int
}

// At returns the color at t.
func (w *Walker) At(t float64) core.RGB {
	for t >= w.stops[w.to].position && w.to+1 < len(w.stops) {
		w.from = w.to
		w.to++
	}
	return blend(w.stops[w.from], w.stops[w.to], t)
}

// blend interpolates between two adjacent stops in linear light.
// Outside the segment the nearest stop color is returned unchanged.
func blend(from, to linearStop, t float64) core.RGB {
	if t <= from.position {
		return from.color
	}
	if t >= to.position {
		return to.color
	}

	f := math.Min(1, (t-from.position)/(to.position-from.position))
	c := colorful.LinearRgb(
		from.r+(to.r-from.r)*f,
		from.g+(to.g-from.g)*f,
		from.b+(to.b-from.b)*f,
	)
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// expand converts a stop to linear RGB.
func expand(s core.Stop) linearStop {
	c, _ := colorful.MakeColor(s.Color.NRGBA())
	r, g, b := c.LinearRgb()
	return linearStop{color: s.Color, r: r, g: g, b: b, position: s.Position}
}
