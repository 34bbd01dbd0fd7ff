package gradient

import "github.com/vovakirdan/tg/internal/core"

// Normalize resolves every missing stop position in place.
//
// A missing first position becomes 0 and a missing last position becomes 1.
// A run of interior stops without positions is spread evenly between the
// positioned stops around it. If nothing after the run has a position, the
// final stop is pinned to 1 and closes the run.
func Normalize(stops core.StopList) {
	n := len(stops)
	for i := 0; i < n; i++ {
		if stops[i].HasPosition {
			continue
		}

		switch i {
		case 0:
			stops[i] = stops[i].At(0)
		case n - 1:
			stops[i] = stops[i].At(1)
		default:
			j := i + 1
			for j < n && !stops[j].HasPosition {
				j++
			}
			if j == n {
				j--
				stops[j] = stops[j].At(1)
			}

			from := stops[i-1].Position
			delta := stops[j].Position - from
			count := float64(j - i + 1)
			for k := i; k < j; k++ {
				stops[k] = stops[k].At(from + float64(k-i+1)*delta/count)
			}
			i = j
		}
	}
}

// Reverse flips the gradient direction in place: the stop order is reversed
// and every position p becomes 1-p. Stops must already be normalized.
func Reverse(stops core.StopList) {
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}
	for i := range stops {
		stops[i].Position = 1 - stops[i].Position
	}
}

// Prepare normalizes stops and, if requested, reverses them.
func Prepare(stops core.StopList, opts core.RenderOptions) {
	Normalize(stops)
	if opts.Reverse {
		Reverse(stops)
	}
}
