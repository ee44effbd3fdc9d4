// Package display is the light display engine: it assigns every element of a
// scene its colors once and derives what each element shows from a tick
// counter.
package display

import (
	"github.com/alexisbeaulieu97/twinkle/internal/palette"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
	twinkleerrors "github.com/alexisbeaulieu97/twinkle/pkg/errors"
)

// Element is the fixed color assignment of one light or toggle.
type Element struct {
	Key  string
	Type scene.ElementType

	// Colors is used by lights.
	Colors palette.Pair

	// Background, Knob, Size and SizeClass are used by toggles.
	Background palette.Pair
	Knob       palette.Pair
	Size       int
	SizeClass  scene.SizeClass
}

// State holds every element, row by row, as laid out by the scene.
type State struct {
	Rows         [][]Element
	KnobDiameter int
	Star         bool
}

// Lights returns the number of light elements.
func (s *State) Lights() int {
	return s.count(scene.ElementLight)
}

// Toggles returns the number of toggle elements.
func (s *State) Toggles() int {
	return s.count(scene.ElementToggle)
}

func (s *State) count(kind scene.ElementType) int {
	n := 0
	for _, row := range s.Rows {
		for _, el := range row {
			if el.Type == kind {
				n++
			}
		}
	}
	return n
}

// Assign draws colors for every element of sc. Lights get two distinct
// colors; toggles get background and knob pairs that avoid sharing a color.
// A scene lacking lights or toggles is rejected with a LayoutError.
func Assign(sc *scene.Scene, pal *palette.Palette, rng palette.Source) (*State, error) {
	lights, toggles := sc.Counts()
	if lights == 0 {
		return nil, twinkleerrors.NewLayoutError(string(scene.ElementLight), "scene has no lights")
	}
	if toggles == 0 {
		return nil, twinkleerrors.NewLayoutError(string(scene.ElementToggle), "scene has no toggles")
	}

	state := &State{
		Rows:         make([][]Element, len(sc.Rows)),
		KnobDiameter: sc.KnobDiameter(),
		Star:         sc.ShowStar(),
	}

	for r, row := range sc.Rows {
		elements := make([]Element, len(row.Elements))
		for i, spec := range row.Elements {
			el := Element{Key: scene.Key(r, i), Type: spec.Type}
			switch spec.Type {
			case scene.ElementLight:
				el.Colors = pal.PickTwoDistinctColors(rng)
			case scene.ElementToggle:
				el.Background, el.Knob = pal.PickDisjointColorPairs(rng)
				el.Size = spec.Size
				el.SizeClass = spec.SizeClass
			}
			elements[i] = el
		}
		state.Rows[r] = elements
	}

	return state, nil
}
