package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tg/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output image formats",
	Long:  `Shows the filename extensions tg can write and the format used for each.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listFormats(cmd.OutOrStdout())
	},
}

func listFormats(w io.Writer) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Fprintln(w, "No formats available.")
		return
	}

	// Calculate column widths
	maxExtLen := len("Extension")
	for _, f := range formats {
		maxExtLen = max(maxExtLen, len(f.Extension))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxExtLen, "Extension", "Format")
	fmt.Fprintf(w, "  %-*s  %s\n", maxExtLen, "---------", "------")
	for _, f := range formats {
		fmt.Fprintf(w, "  %-*s  %s\n", maxExtLen, f.Extension, f.Name)
	}
}
