// Package colorlit parses textual color literals given on the command line.
// It understands the CSS/SVG color keywords and #rgb / #rrggbb hex notation
// (the leading '#' is optional, which spares shell quoting).
package colorlit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tg/internal/core"
)

// ErrUnknownColor is returned when a token is neither a color name nor hex.
var ErrUnknownColor = errors.New("unknown color")

// Parser implements cmdline.ColorParser using Parse.
type Parser struct{}

// ParseColor parses a color token.
func (Parser) ParseColor(token string) (core.RGB, error) {
	return Parse(token)
}

// Parse converts a color token to RGB.
// Names are matched case-insensitively. A bare token made of 3 or 6 hex
// digits that is also a color name resolves as the name.
func Parse(token string) (core.RGB, error) {
	lower := strings.ToLower(token)

	if c, ok := colornames.Map[lower]; ok {
		return core.NewRGB(c), nil
	}

	hex := strings.TrimPrefix(lower, "#")
	if !isHex(hex) {
		return core.RGB{}, fmt.Errorf("%w: %s", ErrUnknownColor, token)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return core.RGB{}, fmt.Errorf("%w: %s", ErrUnknownColor, token)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}

// Names returns all recognized color names in sorted order.
func Names() []string {
	out := make([]string, len(colornames.Names))
	copy(out, colornames.Names)
	return out
}

// isHex reports whether s is 3 or 6 hexadecimal digits.
func isHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
