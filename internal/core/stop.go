package core

// Stop is a single gradient anchor.
// While the command line is being parsed the position may be missing;
// the gradient normalizer resolves every position before evaluation.
type Stop struct {
	Color       RGB
	Position    float64 // Fraction in [0, 1], meaningful only if HasPosition
	HasPosition bool
}

// NewStop creates a stop without a position.
func NewStop(c RGB) Stop {
	return Stop{Color: c}
}

// At returns a copy of the stop with the given position set.
func (s Stop) At(pos float64) Stop {
	s.Position = pos
	s.HasPosition = true
	return s
}

// StopList is the ordered list of gradient stops.
type StopList []Stop

// Resolved reports whether every stop has a position.
func (l StopList) Resolved() bool {
	for _, s := range l {
		if !s.HasPosition {
			return false
		}
	}
	return true
}

// Positions returns the stop positions in list order.
// Unresolved stops report 0.
func (l StopList) Positions() []float64 {
	out := make([]float64, len(l))
	for i, s := range l {
		out[i] = s.Position
	}
	return out
}

// Clone returns an independent copy of the list.
func (l StopList) Clone() StopList {
	out := make(StopList, len(l))
	copy(out, l)
	return out
}
