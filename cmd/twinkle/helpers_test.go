package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root, app := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := execute(context.Background(), root, app)
	return stdout.String(), stderr.String(), err
}

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const lightsOnlyScene = `version: "1.0"
name: lights-only
rows:
  - elements:
      - type: light
      - type: light
`

const invalidScene = `version: "1.0"
name: broken
rows:
  - elements:
      - type: toggle
        size: 20
        size_class: small
`
