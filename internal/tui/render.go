package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

// cellUnits is how many layout units one terminal column represents.
const cellUnits = 10

type glyphs struct {
	star  string
	light string
	knob  string
}

var (
	unicodeGlyphs = glyphs{star: "★", light: "●", knob: "█"}
	asciiGlyphs   = glyphs{star: "*", light: "o", knob: "#"}
)

// RenderFrame draws a frame as centred rows of colored glyphs.
func RenderFrame(frame display.Frame, useUnicode bool) string {
	g := asciiGlyphs
	if useUnicode {
		g = unicodeGlyphs
	}

	rows := make([]string, 0, len(frame.Rows)+1)
	if frame.Star {
		rows = append(rows, starStyle.Render(g.star))
	}
	for _, row := range frame.Rows {
		parts := make([]string, 0, len(row))
		for _, style := range row {
			parts = append(parts, renderElement(style, frame.KnobDiameter, g))
		}
		rows = append(rows, strings.Join(parts, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderElement(style display.Style, knobDiameter int, g glyphs) string {
	switch style.Type {
	case scene.ElementLight:
		return lightStyle(style.Color.Lipgloss()).Render(g.light)
	case scene.ElementToggle:
		return renderToggle(style, knobDiameter, g)
	default:
		return ""
	}
}

func renderToggle(style display.Style, knobDiameter int, g glyphs) string {
	cells, pos, width := toggleCells(style.Size, knobDiameter, style.Offset)
	track := style.Background.Lipgloss()

	before := trackStyle(track).Render(strings.Repeat(" ", pos))
	knob := knobStyle(style.Knob.Lipgloss(), track).Render(strings.Repeat(g.knob, width))
	after := trackStyle(track).Render(strings.Repeat(" ", cells-pos-width))

	return before + knob + after
}

// toggleCells scales a toggle to terminal columns: the track width, the
// knob's starting column and the knob width.
func toggleCells(size, knobDiameter, offset int) (cells, pos, width int) {
	cells = roundDiv(size, cellUnits)
	if cells < 2 {
		cells = 2
	}
	travel := roundDiv((size-knobDiameter)*cells, size)
	width = cells - travel
	if width < 1 {
		width = 1
		travel = cells - 1
	}
	pos = roundDiv(offset*cells, size)
	if pos > travel {
		pos = travel
	}
	if pos < 0 {
		pos = 0
	}
	return cells, pos, width
}

func roundDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}
