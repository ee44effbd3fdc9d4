// Package palette holds the fixed set of colors lights cycle through and the
// random pair selection used when a display is first assigned its colors.
package palette

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxDisjointAttempts bounds the resampling in PickDisjointColorPairs.
const MaxDisjointAttempts = 100

// DefaultColors is the stock five-color palette.
var DefaultColors = []string{"#c0392b", "#f8f9fa", "#d68910", "#0e6655", "#27ae60"}

// Color is a normalised lowercase "#rrggbb" value.
type Color string

// Lipgloss converts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(string(c))
}

// Pair is two colors a light alternates between. The two entries differ.
type Pair [2]Color

// Contains reports whether c is either entry of the pair.
func (p Pair) Contains(c Color) bool {
	return p[0] == c || p[1] == c
}

// Overlaps reports whether the pairs share any color.
func (p Pair) Overlaps(other Pair) bool {
	return other.Contains(p[0]) || other.Contains(p[1])
}

// Source is the randomness a Palette draws from.
type Source interface {
	IntN(n int) int
}

// Palette is an ordered set of distinct colors.
type Palette struct {
	colors []Color
}

// New parses and normalises hex colors. At least two distinct colors are
// required, otherwise PickTwoDistinctColors could never terminate.
func New(hexes []string) (*Palette, error) {
	colors := make([]Color, 0, len(hexes))
	seen := make(map[Color]struct{}, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("palette[%d]: duplicate color %s", i, c)
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	if len(colors) < 2 {
		return nil, fmt.Errorf("palette needs at least 2 colors, got %d", len(colors))
	}
	return &Palette{colors: colors}, nil
}

// Default returns the stock palette.
func Default() *Palette {
	p, err := New(DefaultColors)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseColor validates a hex color and returns its canonical form.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return Color(c.Hex()), nil
}

// Colors returns a copy of the palette entries.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// PickTwoDistinctColors draws the first color uniformly and resamples the
// second until it differs.
func (p *Palette) PickTwoDistinctColors(rng Source) Pair {
	n := len(p.colors)
	first := rng.IntN(n)
	second := rng.IntN(n)
	for second == first {
		second = rng.IntN(n)
	}
	return Pair{p.colors[first], p.colors[second]}
}

// PickDisjointColorPairs returns two pairs that share no color. After
// MaxDisjointAttempts resamples of the second pair the last sample is
// returned even if it still overlaps.
func (p *Palette) PickDisjointColorPairs(rng Source) (Pair, Pair) {
	first := p.PickTwoDistinctColors(rng)
	second := p.PickTwoDistinctColors(rng)
	for attempts := 0; first.Overlaps(second) && attempts < MaxDisjointAttempts; attempts++ {
		second = p.PickTwoDistinctColors(rng)
	}
	return first, second
}

// NewSource returns a Source. A zero seed yields a randomly seeded source.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
