package main

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tg/internal/registry"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <gradient arguments>",
	Short: "Print the resolved gradient as YAML",
	Long: `Parse the arguments exactly like a render, resolve every stop position
and print the result as YAML. The filename is required but nothing is written.

Examples:
  tg inspect red 25% blue green out.png
  tg inspect red blue -r -s 64 out.png`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args, cmd.OutOrStdout())
	},
}

// inspectReport is the YAML document printed by inspect.
type inspectReport struct {
	Filename    string        `yaml:"filename"`
	Format      string        `yaml:"format,omitempty"`
	Size        int           `yaml:"size"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Orientation string        `yaml:"orientation"`
	Reversed    bool          `yaml:"reversed"`
	Stops       []inspectStop `yaml:"stops"`
}

type inspectStop struct {
	Color    string  `yaml:"color"`
	Position float64 `yaml:"position"`
	Explicit bool    `yaml:"explicit"`
}

func inspect(args []string, w io.Writer) error {
	if len(args) == 0 || isHelp(args) {
		printUsage(w)
		return nil
	}

	p, err := buildPlan(args)
	if err != nil {
		return err
	}

	report := inspectReport{
		Filename:    p.Options.Filename,
		Size:        p.Options.Size,
		Width:       p.Options.Width(),
		Height:      p.Options.Height(),
		Orientation: "horizontal",
		Reversed:    p.Options.Reverse,
	}
	if p.Options.Vertical {
		report.Orientation = "vertical"
	}
	if enc, err := registry.Lookup(p.Options.Filename); err == nil {
		report.Format = enc.Name()
	}

	n := len(p.Stops)
	for i, s := range p.Stops {
		// Reversal flips the order, so find the stop as it was typed.
		src := p.Parsed[i]
		if p.Options.Reverse {
			src = p.Parsed[n-1-i]
		}
		report.Stops = append(report.Stops, inspectStop{
			Color:    s.Color.Hex(),
			Position: s.Position,
			Explicit: src.HasPosition,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
