// Package cmdline parses the gradient command line:
//
//	color [position] color [position] [color [position]]... [options] filename
//
// Parsing is a single pass over the tokens driven by an explicit state machine.
// The last token is always the output filename. Any token that does not fit the
// current state rejects the whole command line; there is no partial recovery.
package cmdline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tg/internal/core"
)

// ColorParser converts a color token to RGB.
type ColorParser interface {
	ParseColor(token string) (core.RGB, error)
}

// Parse validates tokens and returns the stops (positions not yet normalized)
// together with the render options.
func Parse(tokens []string, colors ColorParser) (core.StopList, core.RenderOptions, error) {
	if len(tokens) == 0 {
		return nil, core.RenderOptions{}, newError(KindGrammar, -1, "", ErrNoArguments, "")
	}

	p := &parser{
		tokens: tokens,
		colors: colors,
		state:  StateBeforeFirstColor,
		opts:   core.DefaultRenderOptions(),
	}

	for i, tok := range tokens {
		if err := p.next(i, tok); err != nil {
			return nil, core.RenderOptions{}, err
		}
	}

	return p.stops, p.opts, nil
}

type parser struct {
	tokens []string
	colors ColorParser

	state       State
	pending     Option  // Option waiting for its value
	pendingTok  string  // Token that introduced pending
	minPosition float64 // Last accepted position; the next must be greater

	stops core.StopList
	opts  core.RenderOptions
}

// next classifies a single token and advances the state machine.
func (p *parser) next(i int, tok string) error {
	switch {
	case i == len(p.tokens)-1:
		return p.filename(i, tok)
	case p.state == StateBeforeOptionValue:
		return p.optionValue(i, tok)
	case isOptionToken(tok):
		return p.option(i, tok)
	case strings.HasSuffix(tok, "%"):
		return p.position(i, tok)
	default:
		return p.color(i, tok)
	}
}

func (p *parser) filename(i int, tok string) error {
	if len(p.stops) < 2 {
		return newError(KindGrammar, i, tok, ErrTooFewStops, ErrTooFewStops.Error())
	}
	if !p.state.acceptsOption() {
		if p.state == StateBeforeOptionValue {
			return newError(KindGrammar, i, tok, ErrMissingOptionValue,
				fmt.Sprintf("the value for option %s must be specified before the filename", p.pendingTok))
		}
		return newError(KindGrammar, i, tok, ErrUnexpectedToken,
			fmt.Sprintf("unexpected filename %q in state %s", tok, p.state))
	}
	if err := validatePath(tok); err != nil {
		return newError(KindPath, i, tok, err, fmt.Sprintf("%v: %q", err, tok))
	}

	p.opts.Filename = tok
	p.state = StateEnd
	return nil
}

func (p *parser) optionValue(i int, tok string) error {
	switch p.pending {
	case OptionSize:
		size, err := parseSize(tok)
		if err != nil {
			return newError(KindValue, i, tok, err, fmt.Sprintf("%v: %s", err, tok))
		}
		p.opts.Size = size
	default:
		return newError(KindGrammar, i, tok, ErrUnexpectedToken,
			fmt.Sprintf("processing for option %s has not been implemented", p.pendingTok))
	}

	p.pending = OptionNone
	p.pendingTok = ""
	p.state = StateAfterOption
	return nil
}

func (p *parser) option(i int, tok string) error {
	if !p.state.acceptsOption() {
		return newError(KindGrammar, i, tok, ErrUnexpectedOption, fmt.Sprintf("unexpected option: %s", tok))
	}
	opt, ok := LookupOption(tok)
	if !ok {
		return newError(KindGrammar, i, tok, ErrInvalidOption, fmt.Sprintf("invalid option: %s", tok))
	}

	if opt.TakesValue() {
		p.pending = opt
		p.pendingTok = tok
		p.state = StateBeforeOptionValue
		return nil
	}

	p.state = StateAfterOption
	switch opt {
	case OptionHorizontal:
		p.opts.Vertical = false
	case OptionVertical:
		p.opts.Vertical = true
	case OptionReverse:
		p.opts.Reverse = !p.opts.Reverse
	}
	return nil
}

func (p *parser) position(i int, tok string) error {
	next, ok := p.state.afterPosition()
	if !ok {
		return newError(KindGrammar, i, tok, ErrMisplacedPercent, ErrMisplacedPercent.Error())
	}

	value, err := parsePercent(strings.TrimSuffix(tok, "%"))
	if err != nil {
		return newError(KindValue, i, tok, err, fmt.Sprintf("%v: %s", err, tok))
	}

	// 100% is only legal right before the filename.
	if value <= p.minPosition || value > 1 || (value == 1 && i < len(p.tokens)-2) {
		return newError(KindValue, i, tok, ErrPositionOrder, fmt.Sprintf("%v: %s", ErrPositionOrder, tok))
	}

	p.minPosition = value
	p.stops[len(p.stops)-1] = p.stops[len(p.stops)-1].At(value)
	p.state = next
	return nil
}

func (p *parser) color(i int, tok string) error {
	next, ok := p.state.afterColor()
	if !ok {
		return newError(KindGrammar, i, tok, ErrUnexpectedToken,
			fmt.Sprintf("unexpected color %q: colors must come before options", tok))
	}

	c, err := p.colors.ParseColor(tok)
	if err != nil {
		return newError(KindLiteral, i, tok, err, fmt.Sprintf("invalid color: %v", err))
	}

	p.stops = append(p.stops, core.NewStop(c))
	p.state = next
	return nil
}

// parseSize accepts an unsigned decimal integer within the size limits.
func parseSize(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrInvalidSize
	}
	if n < core.MinSize || n > core.MaxSize {
		return 0, ErrSizeRange
	}
	return int(n), nil
}

// parsePercent accepts digits with at most one decimal point and returns
// the value divided by 100.
func parsePercent(s string) (float64, error) {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return 0, ErrInvalidPercent
		}
	}
	if digits == 0 || dots > 1 {
		return 0, ErrInvalidPercent
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidPercent
	}
	return v / 100, nil
}
