package gradient

import (
	"math"
	"testing"

	"github.com/vovakirdan/tg/internal/core"
)

const epsilon = 1e-6

// stops builds a list from positions; negative values mean "no position".
func stops(positions ...float64) core.StopList {
	out := make(core.StopList, len(positions))
	for i, p := range positions {
		out[i] = core.NewStop(core.RGB{R: uint8(i)})
		if p >= 0 {
			out[i] = out[i].At(p)
		}
	}
	return out
}

func assertPositions(t *testing.T, got core.StopList, expected ...float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %d stops, got %d", len(expected), len(got))
	}
	for i, e := range expected {
		if !got[i].HasPosition {
			t.Errorf("stop %d has no position", i)
			continue
		}
		if math.Abs(got[i].Position-e) > epsilon {
			t.Errorf("stop %d: position = %v, expected %v", i, got[i].Position, e)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    core.StopList
		expected []float64
	}{
		{"two bare stops", stops(-1, -1), []float64{0, 1}},
		{"three bare stops", stops(-1, -1, -1), []float64{0, 0.5, 1}},
		{"five bare stops", stops(-1, -1, -1, -1, -1), []float64{0, 0.25, 0.5, 0.75, 1}},
		{"first positioned", stops(0.25, -1, -1), []float64{0.25, 0.625, 1}},
		{"last positioned", stops(-1, -1, 0.6), []float64{0, 0.3, 0.6}},
		{"interior run", stops(-1, 0.2, -1, -1, 0.8, -1), []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"all positioned", stops(0.1, 0.5, 0.9), []float64{0.1, 0.5, 0.9}},
		{"two runs", stops(-1, -1, 0.5, -1, -1), []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Normalize(tc.input)
			assertPositions(t, tc.input, tc.expected...)
		})
	}
}

func TestNormalizeNonDecreasing(t *testing.T) {
	inputs := []core.StopList{
		stops(-1, -1, -1, -1, -1, -1, -1),
		stops(0.05, -1, -1, 0.1, -1, 0.99, -1),
		stops(-1, 0.3, -1, -1, -1, -1, 1),
	}
	for _, in := range inputs {
		Normalize(in)
		if !in.Resolved() {
			t.Fatalf("not all positions resolved: %+v", in)
		}
		for i := 1; i < len(in); i++ {
			if in[i].Position < in[i-1].Position {
				t.Errorf("positions decrease: %v", in.Positions())
			}
		}
	}
}

func TestNormalizeEqualIntervals(t *testing.T) {
	// k interior stops split [from, to] into k+1 equal sub-intervals.
	for k := 1; k <= 6; k++ {
		positions := []float64{0.2}
		for i := 0; i < k; i++ {
			positions = append(positions, -1)
		}
		positions = append(positions, 0.9)

		list := stops(positions...)
		Normalize(list)

		step := (0.9 - 0.2) / float64(k+1)
		for i := 1; i < len(list); i++ {
			if d := list[i].Position - list[i-1].Position; math.Abs(d-step) > epsilon {
				t.Errorf("k=%d: interval %d = %v, expected %v", k, i, d, step)
			}
		}
	}
}

func TestReverse(t *testing.T) {
	list := stops(-1, 0.25, -1)
	Normalize(list)
	Reverse(list)

	assertPositions(t, list, 0, 0.75, 1)
	if list[0].Color.R != 2 || list[2].Color.R != 0 {
		t.Errorf("stop order not reversed: %+v", list)
	}
}

func TestReverseInvolution(t *testing.T) {
	list := stops(-1, 0.1, -1, 0.7, -1)
	Normalize(list)
	original := list.Clone()

	Reverse(list)
	Reverse(list)

	for i := range list {
		if list[i].Color != original[i].Color {
			t.Errorf("stop %d: color %v, expected %v", i, list[i].Color, original[i].Color)
		}
		if math.Abs(list[i].Position-original[i].Position) > epsilon {
			t.Errorf("stop %d: position %v, expected %v", i, list[i].Position, original[i].Position)
		}
	}
}

func TestPrepare(t *testing.T) {
	list := stops(-1, -1)
	Prepare(list, core.RenderOptions{Reverse: true})
	assertPositions(t, list, 0, 1)
	if list[0].Color.R != 1 {
		t.Errorf("expected reversed order, got %+v", list)
	}

	list = stops(-1, -1)
	Prepare(list, core.RenderOptions{})
	if list[0].Color.R != 0 {
		t.Errorf("unexpected reversal: %+v", list)
	}
}
