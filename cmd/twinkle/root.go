package main

import (
	"context"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	logFile  string
}

func newRootCmd() (*cobra.Command, *AppContext) {
	flags := &rootFlags{}
	app := &AppContext{}
	runOpts := &runOptions{}

	cmd := &cobra.Command{
		Use:           "twinkle",
		Short:         "Twinkle draws a tree of blinking lights and toggles in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, run the display.
			if len(args) == 0 {
				return runDisplay(cmd, app, *runOpts)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	bindRunFlags(cmd, runOpts)

	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newFrameCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd, app
}

// execute runs the command tree and always releases the log file, including
// when a command fails.
func execute(ctx context.Context, root *cobra.Command, app *AppContext) error {
	defer func() { _ = app.Close() }()
	return root.ExecuteContext(ctx)
}
