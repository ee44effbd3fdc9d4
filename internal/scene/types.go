package scene

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/twinkle/internal/palette"
)

const (
	// DefaultInterval is the tick period when settings leave it unset.
	DefaultInterval = 1000 * time.Millisecond
	// DefaultKnobDiameter is the width of a toggle knob in layout units.
	DefaultKnobDiameter = 30
	// CurrentVersion is written by the built-in scene.
	CurrentVersion = "1.0"
)

// ElementType distinguishes lights from toggles.
type ElementType string

const (
	ElementLight  ElementType = "light"
	ElementToggle ElementType = "toggle"
)

// SizeClass is a toggle's category. Large toggles run phase-inverted.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// Scene is the static layout handed to the display: rows of lights and toggles.
type Scene struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	Name     string   `yaml:"name" validate:"required,min=1,max=100"`
	Settings Settings `yaml:"settings,omitempty"`
	Palette  []string `yaml:"palette,omitempty" validate:"omitempty,min=2,unique,dive,hexcolor"`
	Rows     []Row    `yaml:"rows" validate:"required,min=1,dive"`
}

// Settings tunes animation timing and geometry.
type Settings struct {
	IntervalMS   int   `yaml:"interval_ms,omitempty" validate:"omitempty,min=50,max=60000"`
	KnobDiameter int   `yaml:"knob_diameter,omitempty" validate:"omitempty,min=1,max=200"`
	Star         *bool `yaml:"star,omitempty"`
}

// Row is one level of the tree, top to bottom.
type Row struct {
	Elements []Element `yaml:"elements" validate:"required,min=1,dive"`
}

// Element is a single light or toggle in a row.
type Element struct {
	Type      ElementType `yaml:"type" validate:"required,element_type"`
	Size      int         `yaml:"size,omitempty" validate:"omitempty,min=1,max=400"`
	SizeClass SizeClass   `yaml:"size_class,omitempty" validate:"omitempty,size_class"`
}

// Interval returns the configured tick period.
func (s *Scene) Interval() time.Duration {
	if s.Settings.IntervalMS <= 0 {
		return DefaultInterval
	}
	return time.Duration(s.Settings.IntervalMS) * time.Millisecond
}

// KnobDiameter returns the configured knob width.
func (s *Scene) KnobDiameter() int {
	if s.Settings.KnobDiameter <= 0 {
		return DefaultKnobDiameter
	}
	return s.Settings.KnobDiameter
}

// ShowStar reports whether a star tops the rows.
func (s *Scene) ShowStar() bool {
	if s.Settings.Star == nil {
		return true
	}
	return *s.Settings.Star
}

// PaletteColors returns the scene palette, falling back to the stock one.
func (s *Scene) PaletteColors() []string {
	if len(s.Palette) == 0 {
		return append([]string(nil), palette.DefaultColors...)
	}
	return append([]string(nil), s.Palette...)
}

// Counts returns the number of lights and toggles.
func (s *Scene) Counts() (lights, toggles int) {
	for _, row := range s.Rows {
		for _, el := range row.Elements {
			switch el.Type {
			case ElementLight:
				lights++
			case ElementToggle:
				toggles++
			}
		}
	}
	return lights, toggles
}

// Key is the stable identity of the element at (row, index): "<level>-<index>"
// with a 1-based level.
func Key(row, index int) string {
	return fmt.Sprintf("%d-%d", row+1, index)
}

// IsLarge reports whether the class is phase-inverted.
func (c SizeClass) IsLarge() bool {
	return c == SizeLarge
}
