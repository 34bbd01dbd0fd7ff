package cmdline

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tg/internal/colorlit"
	"github.com/vovakirdan/tg/internal/core"
)

func parse(line string) (core.StopList, core.RenderOptions, error) {
	return Parse(strings.Fields(line), colorlit.Parser{})
}

func TestParseTwoColors(t *testing.T) {
	stops, opts, err := parse("red blue out.png")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0].Color != (core.RGB{R: 255}) || stops[1].Color != (core.RGB{B: 255}) {
		t.Errorf("unexpected colors: %v, %v", stops[0].Color, stops[1].Color)
	}
	if stops[0].HasPosition || stops[1].HasPosition {
		t.Error("stops should not have positions")
	}
	if opts.Size != core.DefaultSize {
		t.Errorf("expected default size %d, got %d", core.DefaultSize, opts.Size)
	}
	if opts.Vertical || opts.Reverse {
		t.Errorf("unexpected flags: %+v", opts)
	}
	if opts.Filename != "out.png" {
		t.Errorf("expected filename out.png, got %q", opts.Filename)
	}
}

func TestParsePositions(t *testing.T) {
	stops, _, err := parse("red 25% blue green 80.5% white out.png")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(stops))
	}

	expected := []struct {
		has bool
		pos float64
	}{
		{true, 0.25},
		{false, 0},
		{true, 0.805},
		{false, 0},
	}
	for i, e := range expected {
		if stops[i].HasPosition != e.has {
			t.Errorf("stop %d: HasPosition = %v, expected %v", i, stops[i].HasPosition, e.has)
		}
		if e.has && stops[i].Position != e.pos {
			t.Errorf("stop %d: Position = %v, expected %v", i, stops[i].Position, e.pos)
		}
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		size     int
		vertical bool
		reverse  bool
	}{
		{"short size", "red blue -s 64 out.png", 64, false, false},
		{"long size", "red blue --size 4096 out.png", 4096, false, false},
		{"slash size", "red blue /s 2 out.png", 2, false, false},
		{"uppercase", "red blue /SIZE 10 --VERTICAL out.png", 10, true, false},
		{"vertical", "red blue -v out.png", 512, true, false},
		{"horizontal wins", "red blue -v --h out.png", 512, false, false},
		{"vertical wins", "red blue /horizontal /v out.png", 512, true, false},
		{"reverse", "red blue -r out.png", 512, false, true},
		{"reverse twice", "red blue -r --reverse out.png", 512, false, false},
		{"reverse thrice", "red blue -r /r /reverse out.png", 512, false, true},
		{"option after position", "red blue 50% -v out.png", 512, true, false},
		{"everything", "red blue -s 100 -v -r out.png", 100, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, opts, err := parse(tc.line)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.line, err)
			}
			if opts.Size != tc.size {
				t.Errorf("Size = %d, expected %d", opts.Size, tc.size)
			}
			if opts.Vertical != tc.vertical {
				t.Errorf("Vertical = %v, expected %v", opts.Vertical, tc.vertical)
			}
			if opts.Reverse != tc.reverse {
				t.Errorf("Reverse = %v, expected %v", opts.Reverse, tc.reverse)
			}
		})
	}
}

func TestParseFullPercent(t *testing.T) {
	stops, _, err := parse("red 10% blue 100% out.png")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !stops[1].HasPosition || stops[1].Position != 1 {
		t.Errorf("expected last stop at 1, got %+v", stops[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		kind   Kind
		cause  error
		index  int
	}{
		{"no arguments", nil, KindGrammar, ErrNoArguments, -1},
		{"filename only", []string{"out.png"}, KindGrammar, ErrTooFewStops, 0},
		{"single color", []string{"red", "out.png"}, KindGrammar, ErrTooFewStops, 1},
		{"single color with position", []string{"red", "50%", "out.png"}, KindGrammar, ErrTooFewStops, 2},
		{"size out of range", []string{"red", "blue", "-s", "10000", "out.png"}, KindValue, ErrSizeRange, 3},
		{"size too small", []string{"red", "blue", "-s", "1", "out.png"}, KindValue, ErrSizeRange, 3},
		{"size not a number", []string{"red", "blue", "-s", "big", "out.png"}, KindValue, ErrInvalidSize, 3},
		{"size with sign", []string{"red", "blue", "-s", "+64", "out.png"}, KindValue, ErrInvalidSize, 3},
		{"size missing", []string{"red", "blue", "-s", "out.png"}, KindGrammar, ErrMissingOptionValue, 3},
		{"option too early", []string{"red", "-v", "blue", "out.png"}, KindGrammar, ErrUnexpectedOption, 1},
		{"option first", []string{"-v", "red", "blue", "out.png"}, KindGrammar, ErrUnexpectedOption, 0},
		{"unknown option", []string{"red", "blue", "-x", "out.png"}, KindGrammar, ErrInvalidOption, 2},
		{"short horizontal", []string{"red", "blue", "-h", "out.png"}, KindGrammar, ErrInvalidOption, 2},
		{"percent first", []string{"50%", "red", "blue", "out.png"}, KindGrammar, ErrMisplacedPercent, 0},
		{"double percent", []string{"red", "10%", "20%", "blue", "out.png"}, KindGrammar, ErrMisplacedPercent, 2},
		{"percent after option", []string{"red", "blue", "-v", "50%", "out.png"}, KindGrammar, ErrMisplacedPercent, 3},
		{"percent twice on stop", []string{"red", "blue", "10%", "20%", "out.png"}, KindGrammar, ErrMisplacedPercent, 3},
		{"zero percent", []string{"red", "0%", "blue", "out.png"}, KindValue, ErrPositionOrder, 1},
		{"above hundred", []string{"red", "blue", "101%", "out.png"}, KindValue, ErrPositionOrder, 2},
		{"decreasing", []string{"red", "50%", "blue", "30%", "out.png"}, KindValue, ErrPositionOrder, 3},
		{"equal", []string{"red", "50%", "blue", "50%", "out.png"}, KindValue, ErrPositionOrder, 3},
		{"hundred not last", []string{"red", "blue", "100%", "green", "out.png"}, KindValue, ErrPositionOrder, 2},
		{"hundred before option", []string{"red", "blue", "100%", "-v", "out.png"}, KindValue, ErrPositionOrder, 2},
		{"malformed percent", []string{"red", "1e1%", "blue", "out.png"}, KindValue, ErrInvalidPercent, 1},
		{"bare percent", []string{"red", "%", "blue", "out.png"}, KindValue, ErrInvalidPercent, 1},
		{"two dots", []string{"red", "1.2.3%", "blue", "out.png"}, KindValue, ErrInvalidPercent, 1},
		{"color after option", []string{"red", "blue", "-v", "green", "out.png"}, KindGrammar, ErrUnexpectedToken, 3},
		{"color after size", []string{"red", "blue", "-s", "10", "green", "out.png"}, KindGrammar, ErrUnexpectedToken, 4},
		{"unknown color", []string{"red", "notacolor", "out.png"}, KindLiteral, colorlit.ErrUnknownColor, 1},
		{"invalid path", []string{"red", "blue", "out\x00.png"}, KindPath, ErrInvalidPath, 2},
		{"empty path", []string{"red", "blue", ""}, KindPath, ErrEmptyPath, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stops, _, err := Parse(tc.tokens, colorlit.Parser{})
			if err == nil {
				t.Fatalf("Parse(%q) succeeded with %d stops, expected error", tc.tokens, len(stops))
			}
			if !errors.Is(err, tc.cause) {
				t.Errorf("expected %v, got %v", tc.cause, err)
			}
			if k := KindOf(err); k != tc.kind {
				t.Errorf("kind = %v, expected %v", k, tc.kind)
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if perr.Index != tc.index {
				t.Errorf("index = %d, expected %d", perr.Index, tc.index)
			}
			if err.Error() == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestParseErrorNamesToken(t *testing.T) {
	_, _, err := parse("red blue --bogus out.png")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "--bogus") {
		t.Errorf("error %q does not name the token", err.Error())
	}

	_, _, err = parse("red blue -s out.png")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "-s") {
		t.Errorf("error %q does not name the option", err.Error())
	}
}

func TestStateTransitions(t *testing.T) {
	colorTests := []struct {
		from, to State
		ok       bool
	}{
		{StateBeforeFirstColor, StateAfterFirstColor, true},
		{StateAfterFirstColor, StateBeforeAny, true},
		{StateBeforeSecondColor, StateBeforeAny, true},
		{StateBeforeAny, StateBeforeAny, true},
		{StateBeforeAnyExceptPosition, StateBeforeAny, true},
		{StateAfterOption, StateAfterOption, false},
		{StateBeforeOptionValue, StateBeforeOptionValue, false},
		{StateEnd, StateEnd, false},
	}
	for _, tc := range colorTests {
		got, ok := tc.from.afterColor()
		if got != tc.to || ok != tc.ok {
			t.Errorf("%v.afterColor() = %v, %v; expected %v, %v", tc.from, got, ok, tc.to, tc.ok)
		}
	}

	positionTests := []struct {
		from, to State
		ok       bool
	}{
		{StateAfterFirstColor, StateBeforeSecondColor, true},
		{StateBeforeAny, StateBeforeAnyExceptPosition, true},
		{StateBeforeFirstColor, StateBeforeFirstColor, false},
		{StateBeforeSecondColor, StateBeforeSecondColor, false},
		{StateBeforeAnyExceptPosition, StateBeforeAnyExceptPosition, false},
		{StateAfterOption, StateAfterOption, false},
	}
	for _, tc := range positionTests {
		got, ok := tc.from.afterPosition()
		if got != tc.to || ok != tc.ok {
			t.Errorf("%v.afterPosition() = %v, %v; expected %v, %v", tc.from, got, ok, tc.to, tc.ok)
		}
	}
}

func TestLookupOption(t *testing.T) {
	tests := []struct {
		token    string
		expected Option
		ok       bool
	}{
		{"-s", OptionSize, true},
		{"--Size", OptionSize, true},
		{"/S", OptionSize, true},
		{"-v", OptionVertical, true},
		{"/Vertical", OptionVertical, true},
		{"--h", OptionHorizontal, true},
		{"/H", OptionHorizontal, true},
		{"-r", OptionReverse, true},
		{"--REVERSE", OptionReverse, true},
		{"-h", OptionNone, false},
		{"--s", OptionNone, false},
		{"-size", OptionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			got, ok := LookupOption(tc.token)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("LookupOption(%q) = %v, %v; expected %v, %v", tc.token, got, ok, tc.expected, tc.ok)
			}
		})
	}
}
