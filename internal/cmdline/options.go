package cmdline

import "strings"

// Option identifies a command line switch.
type Option uint8

const (
	OptionNone Option = iota
	OptionSize
	OptionVertical
	OptionHorizontal
	OptionReverse
)

// String returns the canonical long name of the option.
func (o Option) String() string {
	switch o {
	case OptionSize:
		return "size"
	case OptionVertical:
		return "vertical"
	case OptionHorizontal:
		return "horizontal"
	case OptionReverse:
		return "reverse"
	default:
		return "none"
	}
}

// TakesValue reports whether the option consumes the following token.
func (o Option) TakesValue() bool {
	return o == OptionSize
}

// optionAliases maps lowercased spellings to options.
// Horizontal has no "-h" spelling.
var optionAliases = map[string]Option{
	"-s":     OptionSize,
	"--size": OptionSize,
	"/s":     OptionSize,
	"/size":  OptionSize,

	"-v":         OptionVertical,
	"--vertical": OptionVertical,
	"/v":         OptionVertical,
	"/vertical":  OptionVertical,

	"--h":          OptionHorizontal,
	"--horizontal": OptionHorizontal,
	"/h":           OptionHorizontal,
	"/horizontal":  OptionHorizontal,

	"-r":        OptionReverse,
	"--reverse": OptionReverse,
	"/r":        OptionReverse,
	"/reverse":  OptionReverse,
}

// LookupOption resolves an option token, ignoring case.
func LookupOption(token string) (Option, bool) {
	o, ok := optionAliases[strings.ToLower(token)]
	return o, ok
}

// isOptionToken reports whether the token looks like a switch.
func isOptionToken(token string) bool {
	return len(token) > 0 && (token[0] == '-' || token[0] == '/')
}
