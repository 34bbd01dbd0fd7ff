package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tg/internal/colorlit"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List recognized color names",
	Long: `Shows every color name accepted on the command line with its hex value.
Hex colors (#rgb or #rrggbb, the '#' being optional) are accepted too.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listColors(cmd.OutOrStdout())
	},
}

func listColors(w io.Writer) {
	st := newStyles(w)
	_, _, isTerm := terminalSize(w)

	names := colorlit.Names()
	maxLen := 0
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	for _, n := range names {
		c, err := colorlit.Parse(n)
		if err != nil {
			continue
		}
		if isTerm {
			fmt.Fprintf(w, "%s %-*s  %s\n", st.Swatch(c.Hex(), "  "), maxLen, n, st.Muted.Render(c.Hex()))
		} else {
			fmt.Fprintf(w, "%-*s  %s\n", maxLen, n, c.Hex())
		}
	}
}
