// tg renders a one-dimensional color gradient into an image file.
//
// Usage:
//
//	tg color [position] color [position] [color [position]]... [options] filename
//	tg inspect <gradient arguments>   - Print the resolved stops as YAML
//	tg preview <gradient arguments>   - Draw the gradient in the terminal
//	tg colors                         - List color names
//	tg formats                        - List output formats
//
// Options (case-insensitive, "-", "--" and "/" prefixes):
//
//	-s, --size <n>     - Gradient size in pixels, 2 to 4096 (default: 512)
//	--h, --horizontal  - Horizontal strip (default)
//	-v, --vertical     - Vertical strip
//	-r, --reverse      - Reverse the gradient direction (toggles)
//
// The output format is chosen from the filename extension. Set TG_LOG_LEVEL
// to debug, info, warn or error to control diagnostics on stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tg/internal/cmdline"

	// Import formats to register encoders
	_ "github.com/vovakirdan/tg/internal/formats"
)

var logger = newLogger(os.Stderr)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tg color [position] color [position]... [options] filename",
	Short: "Render a color gradient into an image file",
	Long: `tg renders a one-dimensional color gradient into an image file.

Colors are CSS color names or #rgb/#rrggbb hex values. A position given
as a percentage right after a color pins that color along the gradient;
colors without a position are spread evenly.

Examples:
  tg red blue out.png
  tg black 25% white 75% black out.png
  tg '#102030' orange -s 64 --vertical out.bmp
  tg red blue -r out.png`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runRender,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(formatsCmd)
}

// newLogger creates the stderr logger. The level comes from TG_LOG_LEVEL.
func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if env := os.Getenv("TG_LOG_LEVEL"); env != "" {
		if parsed, err := log.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "tg",
	})
}

// reportError prints err to w. Command line errors are followed by usage.
func reportError(w io.Writer, err error) {
	var perr *cmdline.Error
	if errors.As(err, &perr) {
		st := newStyles(w)
		fmt.Fprintln(w, st.Error.Render("An error occurred when parsing the command line:"))
		fmt.Fprintln(w, perr.Error())
		fmt.Fprintln(w)
		printUsage(w)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
