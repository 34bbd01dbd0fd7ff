package cmdline

// State is the position of the parser within the command line grammar:
//
//	color [position] color [position] [color [position]]... [options] filename
type State uint8

const (
	StateBeforeFirstColor        State = iota // Expect a (first) color
	StateAfterFirstColor                      // Expect a (second) color or a position for the first
	StateBeforeSecondColor                    // Expect a (second) color, the first has a position
	StateBeforeAny                            // At least two stops; expect anything
	StateBeforeAnyExceptPosition              // Like StateBeforeAny, but the last token was a position
	StateAfterOption                          // Expect another option or the filename
	StateBeforeOptionValue                    // Expect the value of the preceding option
	StateEnd                                  // Filename consumed
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateBeforeFirstColor:
		return "before-first-color"
	case StateAfterFirstColor:
		return "after-first-color"
	case StateBeforeSecondColor:
		return "before-second-color"
	case StateBeforeAny:
		return "before-any"
	case StateBeforeAnyExceptPosition:
		return "before-any-except-position"
	case StateAfterOption:
		return "after-option"
	case StateBeforeOptionValue:
		return "before-option-value"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// acceptsOption reports whether an option (or the filename) may follow.
func (s State) acceptsOption() bool {
	switch s {
	case StateBeforeAny, StateBeforeAnyExceptPosition, StateAfterOption:
		return true
	default:
		return false
	}
}

// acceptsPosition reports whether a percent token may follow.
func (s State) acceptsPosition() bool {
	return s == StateAfterFirstColor || s == StateBeforeAny
}

// afterColor returns the state following a color token.
func (s State) afterColor() (State, bool) {
	switch s {
	case StateBeforeFirstColor:
		return StateAfterFirstColor, true
	case StateAfterFirstColor, StateBeforeSecondColor, StateBeforeAny, StateBeforeAnyExceptPosition:
		return StateBeforeAny, true
	default:
		return s, false
	}
}

// afterPosition returns the state following a percent token.
func (s State) afterPosition() (State, bool) {
	switch s {
	case StateAfterFirstColor:
		return StateBeforeSecondColor, true
	case StateBeforeAny:
		return StateBeforeAnyExceptPosition, true
	default:
		return s, false
	}
}
