package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	previewFallbackSamples = 11 // Samples listed when stdout is not a terminal
	previewRows            = 2  // Height of a horizontal swatch in lines
)

var previewCmd = &cobra.Command{
	Use:   "preview <gradient arguments>",
	Short: "Draw the gradient in the terminal",
	Long: `Parse the arguments exactly like a render and draw the gradient in the
terminal using truecolor backgrounds. The filename is required but nothing
is written. When stdout is not a terminal, evenly spaced samples are listed
as hex colors instead.

Examples:
  tg preview red yellow 50% green out.png
  tg preview black white -v out.png`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return preview(args, cmd.OutOrStdout())
	},
}

func preview(args []string, w io.Writer) error {
	if len(args) == 0 || isHelp(args) {
		printUsage(w)
		return nil
	}

	p, err := buildPlan(args)
	if err != nil {
		return err
	}

	width, height, ok := terminalSize(w)
	if !ok {
		return previewSamples(w, p, previewFallbackSamples)
	}

	st := newStyles(w)
	if p.Options.Vertical {
		cells := min(p.Options.Size, max(2, height-1))
		walker := p.Gradient.Walker()
		for i := 0; i < cells; i++ {
			c := walker.At(float64(i) / float64(cells-1))
			fmt.Fprintln(w, st.Swatch(c.Hex(), "    "))
		}
		return nil
	}

	cells := min(p.Options.Size, max(2, width))
	walker := p.Gradient.Walker()
	var row strings.Builder
	for i := 0; i < cells; i++ {
		c := walker.At(float64(i) / float64(cells-1))
		row.WriteString(st.Swatch(c.Hex(), " "))
	}
	line := row.String()
	for i := 0; i < previewRows; i++ {
		fmt.Fprintln(w, line)
	}
	return nil
}

// previewSamples lists n evenly spaced samples as "position hex" lines.
func previewSamples(w io.Writer, p *plan, n int) error {
	n = min(n, p.Options.Size)
	walker := p.Gradient.Walker()
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if _, err := fmt.Fprintf(w, "%5.1f%%  %s\n", t*100, walker.At(t).Hex()); err != nil {
			return err
		}
	}
	return nil
}
