package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	twinkleerrors "github.com/alexisbeaulieu97/twinkle/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a scene file from disk, fills defaults and validates it.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, twinkleerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes scene YAML. Unknown keys are rejected so typos surface early.
func Parse(path string, data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("document is empty")
		}
		return nil, twinkleerrors.NewParseError(path, extractLine(err), err)
	}

	ApplyDefaults(&s)

	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// ApplyDefaults fills toggle sizes left unset from their size class.
func ApplyDefaults(s *Scene) {
	for r := range s.Rows {
		for i := range s.Rows[r].Elements {
			el := &s.Rows[r].Elements[i]
			if el.Type == ElementToggle && el.Size == 0 && el.SizeClass != "" {
				el.Size = DefaultSize(el.SizeClass)
			}
		}
	}
}

// Encode writes the scene as YAML.
func Encode(w io.Writer, s *Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return enc.Close()
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
