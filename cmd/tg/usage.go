package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styles contains the text styles used for console output.
type styles struct {
	Heading lipgloss.Style
	Flag    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	renderer *lipgloss.Renderer
}

// newStyles returns styles adapted to the color support of w.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Heading:  r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Flag:     r.NewStyle().Foreground(lipgloss.Color("226")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("245")),
		renderer: r,
	}
}

// Swatch renders text on a background of the given hex color.
func (s styles) Swatch(hex, text string) string {
	return s.renderer.NewStyle().Background(lipgloss.Color(hex)).Render(text)
}

var usageOptions = []struct {
	flags string
	help  string
}{
	{"-s, --size <n>", "Size of the gradient in pixels, 2 to 4096. Default: 512."},
	{"--h, --horizontal", "Produce a horizontal gradient (default)."},
	{"-v, --vertical", "Produce a vertical gradient."},
	{"-r, --reverse", "Reverse the gradient direction."},
}

// printUsage writes the command line summary to w.
func printUsage(w io.Writer) {
	st := newStyles(w)

	fmt.Fprintln(w, st.Heading.Render("Usage:"))
	fmt.Fprintln(w, "  tg color [position] color [position] [color [position]]... [options] filename")
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Heading.Render("Options:"))
	for _, o := range usageOptions {
		fmt.Fprintf(w, "  %s  %s\n", st.Flag.Render(fmt.Sprintf("%-18s", o.flags)), o.help)
	}
	fmt.Fprintln(w, st.Muted.Render("  Options are case-insensitive and accept -, -- or / prefixes."))
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Heading.Render("Commands:"))
	fmt.Fprintln(w, "  tg inspect <arguments>   Print the resolved stops as YAML")
	fmt.Fprintln(w, "  tg preview <arguments>   Draw the gradient in the terminal")
	fmt.Fprintln(w, "  tg colors                List recognized color names")
	fmt.Fprintln(w, "  tg formats               List output formats")
}

// isHelp reports whether args is a lone request for help.
func isHelp(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch strings.ToLower(args[0]) {
	case "--help", "-?", "/?":
		return true
	}
	return false
}

// terminalSize returns the size of w if it is a terminal.
func terminalSize(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
