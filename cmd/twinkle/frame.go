package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/tui"
)

type frameOptions struct {
	sceneOptions
	Counter   int
	Format    string
	NoUnicode bool
}

func newFrameCmd(app *AppContext) *cobra.Command {
	opts := &frameOptions{}

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render a single frame without animating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrame(cmd, app, *opts)
		},
	}

	bindSceneFlags(cmd, &opts.sceneOptions)
	cmd.Flags().IntVar(&opts.Counter, "counter", 0, "Tick counter to render")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format (text, yaml)")
	cmd.Flags().BoolVar(&opts.NoUnicode, "no-unicode", false, "Draw with ASCII glyphs only")

	return cmd
}

func runFrame(cmd *cobra.Command, app *AppContext, opts frameOptions) error {
	if opts.Counter < 0 {
		return fmt.Errorf("counter must not be negative, got %d", opts.Counter)
	}
	if opts.Format != "text" && opts.Format != "yaml" {
		return fmt.Errorf("unsupported format %q (want text or yaml)", opts.Format)
	}

	engine, _, err := prepareEngine(opts.sceneOptions, app.Logger, app.Logger)
	if err != nil {
		return err
	}

	frame := display.Render(engine.State(), opts.Counter)
	out := cmd.OutOrStdout()

	if opts.Format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
		return enc.Close()
	}

	_, err = fmt.Fprintln(out, tui.RenderFrame(frame, !opts.NoUnicode))
	return err
}
