package main

import (
	"fmt"
	"image"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tg/internal/cmdline"
	"github.com/vovakirdan/tg/internal/colorlit"
	"github.com/vovakirdan/tg/internal/core"
	"github.com/vovakirdan/tg/internal/gradient"
	"github.com/vovakirdan/tg/internal/raster"
)

// plan is a parsed and normalized gradient ready to be rendered.
type plan struct {
	Parsed   core.StopList // Stops as given, before normalization
	Stops    core.StopList // Normalized and possibly reversed
	Options  core.RenderOptions
	Gradient *gradient.Gradient
}

// buildPlan parses args and prepares the gradient.
func buildPlan(args []string) (*plan, error) {
	stops, opts, err := cmdline.Parse(args, colorlit.Parser{})
	if err != nil {
		return nil, err
	}

	parsed := stops.Clone()
	gradient.Prepare(stops, opts)

	g, err := gradient.New(stops)
	if err != nil {
		return nil, fmt.Errorf("cannot build gradient: %w", err)
	}

	logger.Debug("resolved stops", "stops", len(stops), "positions", stops.Positions(), "reverse", opts.Reverse)
	return &plan{Parsed: parsed, Stops: stops, Options: opts, Gradient: g}, nil
}

// Image renders the plan, rotating it when a vertical strip is requested.
func (p *plan) Image() image.Image {
	img := gradient.Render(p.Gradient, p.Options.Size)
	if p.Options.Vertical {
		return raster.Rotate90(img)
	}
	return img
}

func runRender(cmd *cobra.Command, args []string) error {
	return render(args, cmd.OutOrStdout())
}

// render writes the gradient described by args to its output file.
// With no arguments, or a lone help flag, it prints usage to stdout instead.
func render(args []string, stdout io.Writer) error {
	if len(args) == 0 || isHelp(args) {
		printUsage(stdout)
		return nil
	}

	p, err := buildPlan(args)
	if err != nil {
		return err
	}

	logger.Debug("rendering", "width", p.Options.Width(), "height", p.Options.Height())
	if err := raster.Save(p.Image(), p.Options.Filename); err != nil {
		return err
	}

	logger.Info("wrote gradient", "path", p.Options.Filename, "width", p.Options.Width(), "height", p.Options.Height())
	return nil
}
