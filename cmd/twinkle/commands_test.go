package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
	twinkleerrors "github.com/alexisbeaulieu97/twinkle/pkg/errors"
)

func TestRootWithoutTerminalPrintsSingleFrame(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "--seed", "5")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(stdout, "★"))
	require.Equal(t, 23, strings.Count(stdout, "●"))
	require.Contains(t, stderr, "display initialised")
	require.Contains(t, stderr, "printing a single frame")
}

func TestRunCommandASCII(t *testing.T) {
	stdout, _, err := executeCommand(t, "run", "--no-unicode")
	require.NoError(t, err)
	require.Equal(t, 23, strings.Count(stdout, "o"))
	require.NotContains(t, stdout, "●")
}

func TestRunAbortsWhenSceneHasNoToggles(t *testing.T) {
	path := writeScene(t, lightsOnlyScene)

	stdout, stderr, err := executeCommand(t, "run", "--scene", path)
	require.Error(t, err)
	var layoutErr *twinkleerrors.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "display initialisation aborted")
}

func TestRunRejectsNegativeInterval(t *testing.T) {
	_, _, err := executeCommand(t, "run", "--interval", "-1s")
	require.Error(t, err)
	require.Contains(t, err.Error(), "interval must not be negative")
}

func TestSceneFlagRejectsDirectory(t *testing.T) {
	_, _, err := executeCommand(t, "frame", "--scene", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}

func TestFrameYAMLIsDeterministicForSeed(t *testing.T) {
	first, _, err := executeCommand(t, "frame", "--seed", "3", "--counter", "1", "--format", "yaml")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "frame", "--seed", "3", "--counter", "1", "-f", "yaml")
	require.NoError(t, err)
	require.Equal(t, first, second)

	var frame display.Frame
	require.NoError(t, yaml.Unmarshal([]byte(first), &frame))
	require.Equal(t, 1, frame.Counter)
	require.Equal(t, 30, frame.KnobDiameter)
	require.True(t, frame.Star)
	require.Len(t, frame.Rows, 9)

	large := frame.Rows[4][1]
	require.Equal(t, scene.ElementToggle, large.Type)
	require.Zero(t, large.Offset)
	require.False(t, large.Shifted)

	small := frame.Rows[2][0]
	require.Equal(t, 40, small.Offset)
	require.True(t, small.Shifted)
}

func TestFrameText(t *testing.T) {
	stdout, _, err := executeCommand(t, "frame", "--no-unicode")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(stdout, "*"))
}

func TestFrameRejectsBadInput(t *testing.T) {
	_, _, err := executeCommand(t, "frame", "--format", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")

	_, _, err = executeCommand(t, "frame", "--counter", "-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "counter must not be negative")
}

func TestLayoutPrintsBuiltInTree(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "layout")
	require.NoError(t, err)
	require.Contains(t, stdout, "name: tree")
	require.Contains(t, stderr, "scene is valid")

	parsed, err := scene.Parse("stdout", []byte(stdout))
	require.NoError(t, err)
	require.Equal(t, scene.Tree(), parsed)
}

func TestLayoutReportsValidationErrors(t *testing.T) {
	path := writeScene(t, invalidScene)

	_, stderr, err := executeCommand(t, "layout", "--scene", path)
	require.Error(t, err)
	var validationErr *twinkleerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "rows[0].elements[0].size", validationErr.Field)
	require.Contains(t, stderr, "failed to load scene")
}

func TestLogFileReceivesEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "twinkle.log")

	_, stderr, err := executeCommand(t, "--log-file", logPath, "frame")
	require.NoError(t, err)
	require.Empty(t, stderr)

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), "display initialised")
}

func TestUnknownLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, "--log-level", "shouty", "frame")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to create logger")
}

func TestVerboseEnablesDebug(t *testing.T) {
	_, stderr, err := executeCommand(t, "-v", "frame")
	require.NoError(t, err)
	require.Contains(t, stderr, "using built-in tree scene")
}
