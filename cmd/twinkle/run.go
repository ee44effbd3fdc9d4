package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twinkle/internal/tui"
)

func newRunCmd(app *AppContext) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the animated display",
		Long: `Launch the full-screen display. Lights and toggles change every tick.
The timer pauses while the terminal loses focus or the program is suspended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisplay(cmd, app, *opts)
		},
	}

	bindRunFlags(cmd, opts)
	return cmd
}

func runDisplay(cmd *cobra.Command, app *AppContext, opts runOptions) error {
	log := app.Logger.Component("cli")

	if err := validateRunOptions(opts); err != nil {
		return err
	}

	engine, sc, err := prepareEngine(opts.sceneOptions, app.Logger, app.DisplayLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		log.Info("output is not a terminal, printing a single frame")
		_, err := fmt.Fprintln(out, tui.RenderFrame(engine.Frame(), !opts.NoUnicode))
		return err
	}

	interval := opts.Interval
	if interval == 0 {
		interval = sc.Interval()
	}

	m := tui.NewModel(engine, tui.Options{
		Interval:   interval,
		UseUnicode: !opts.NoUnicode,
		Logger:     app.DisplayLogger(),
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "display execution failed")
		return fmt.Errorf("failed to run display: %w", err)
	}

	log.WithFields(map[string]any{"ticks": engine.Counter()}).Info("display closed")
	return nil
}
