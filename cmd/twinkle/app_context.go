package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twinkle/internal/logger"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Logger *logger.Logger

	// toFile is set when logs go to --log-file rather than stderr.
	toFile  bool
	logFile *os.File
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	writer := cmd.ErrOrStderr()
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		a.toFile = true
		writer = f
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: writer})
	if err != nil {
		_ = a.Close()
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.Logger = log
	return nil
}

// DisplayLogger is the logger handed to the full-screen display. Writing to
// stderr while the alternate screen is active would corrupt it, so entries
// are only kept when a log file was requested.
func (a *AppContext) DisplayLogger() *logger.Logger {
	if a.toFile {
		return a.Logger
	}
	return logger.Nop()
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
