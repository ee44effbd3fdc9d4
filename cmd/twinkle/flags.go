package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type sceneOptions struct {
	ScenePath string
	Seed      uint64
}

type runOptions struct {
	sceneOptions
	Interval  time.Duration
	NoUnicode bool
}

func bindSceneFlags(cmd *cobra.Command, opts *sceneOptions) {
	cmd.Flags().StringVarP(&opts.ScenePath, "scene", "s", "", "Scene YAML file (defaults to the built-in tree)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for color assignment (0 picks a random seed)")
}

func bindRunFlags(cmd *cobra.Command, opts *runOptions) {
	bindSceneFlags(cmd, &opts.sceneOptions)
	cmd.Flags().DurationVar(&opts.Interval, "interval", 0, "Tick period, overriding the scene setting")
	cmd.Flags().BoolVar(&opts.NoUnicode, "no-unicode", false, "Draw with ASCII glyphs only")
}

func validateSceneOptions(opts sceneOptions) error {
	if strings.TrimSpace(opts.ScenePath) == "" {
		return nil
	}

	abs, err := filepath.Abs(opts.ScenePath)
	if err != nil {
		return fmt.Errorf("resolve scene path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("scene file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("scene path %s is a directory", abs)
	}

	return nil
}

func validateRunOptions(opts runOptions) error {
	if opts.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", opts.Interval)
	}
	return validateSceneOptions(opts.sceneOptions)
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
