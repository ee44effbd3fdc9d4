package display

import (
	"github.com/alexisbeaulieu97/twinkle/internal/palette"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

// Style is what the rendering host applies to one element for one tick.
type Style struct {
	Key  string            `yaml:"key"`
	Type scene.ElementType `yaml:"type"`

	Color palette.Color `yaml:"color,omitempty"`

	Background palette.Color `yaml:"background,omitempty"`
	Knob       palette.Color `yaml:"knob,omitempty"`
	Offset     int           `yaml:"offset,omitempty"`
	Size       int           `yaml:"size,omitempty"`
	Shifted    bool          `yaml:"shifted,omitempty"`
}

// Frame is the full set of styles for one counter value.
type Frame struct {
	Counter      int       `yaml:"counter"`
	Star         bool      `yaml:"star"`
	KnobDiameter int       `yaml:"knob_diameter"`
	Rows         [][]Style `yaml:"rows"`
}

// ShouldShift reports whether a toggle sits in its travelled position.
// Large toggles are phase-inverted relative to the rest.
func ShouldShift(class scene.SizeClass, counter int) bool {
	even := counter%2 == 0
	if class.IsLarge() {
		return even
	}
	return !even
}

// RenderElement computes the style of el at counter.
func RenderElement(el Element, counter, knobDiameter int) Style {
	idx := counter % 2
	style := Style{Key: el.Key, Type: el.Type}

	switch el.Type {
	case scene.ElementLight:
		style.Color = el.Colors[idx]
	case scene.ElementToggle:
		shift := ShouldShift(el.SizeClass, counter)
		style.Shifted = shift
		style.Size = el.Size
		style.Knob = el.Knob[idx]
		if shift {
			style.Offset = el.Size - knobDiameter
			style.Background = el.Background[1]
		} else {
			style.Background = el.Background[0]
		}
	}

	return style
}

// Render maps state and counter to a frame. It has no side effects, so
// Render(s, c) and Render(s, c+2) are identical apart from Counter.
func Render(state *State, counter int) Frame {
	frame := Frame{
		Counter:      counter,
		Star:         state.Star,
		KnobDiameter: state.KnobDiameter,
		Rows:         make([][]Style, len(state.Rows)),
	}
	for r, row := range state.Rows {
		styles := make([]Style, len(row))
		for i, el := range row {
			styles[i] = RenderElement(el, counter, state.KnobDiameter)
		}
		frame.Rows[r] = styles
	}
	return frame
}
