package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/palette"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

func treeFrame(t *testing.T, counter int) display.Frame {
	t.Helper()
	state, err := display.Assign(scene.Tree(), palette.Default(), palette.NewSource(4))
	require.NoError(t, err)
	return display.Render(state, counter)
}

func TestRenderFrameDrawsEveryElement(t *testing.T) {
	t.Parallel()

	out := RenderFrame(treeFrame(t, 0), true)
	require.Equal(t, 1, strings.Count(out, "★"))
	require.Equal(t, 23, strings.Count(out, "●"))
	require.Equal(t, 9*3, strings.Count(out, "█"))
}

func TestRenderFrameASCII(t *testing.T) {
	t.Parallel()

	out := RenderFrame(treeFrame(t, 1), false)
	require.Equal(t, 1, strings.Count(out, "*"))
	require.Equal(t, 23, strings.Count(out, "o"))
	require.Equal(t, 9*3, strings.Count(out, "#"))
	require.NotContains(t, out, "●")
}

func TestRenderFrameWithoutStar(t *testing.T) {
	t.Parallel()

	frame := treeFrame(t, 0)
	frame.Star = false
	require.NotContains(t, RenderFrame(frame, true), "★")
}

func TestToggleCells(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name               string
		size, knob, offset int
		cells, pos, width  int
	}{
		{name: "small off", size: 70, knob: 30, offset: 0, cells: 7, pos: 0, width: 3},
		{name: "small on", size: 70, knob: 30, offset: 40, cells: 7, pos: 4, width: 3},
		{name: "medium on", size: 95, knob: 30, offset: 65, cells: 10, pos: 7, width: 3},
		{name: "large on", size: 110, knob: 30, offset: 80, cells: 11, pos: 8, width: 3},
		{name: "tiny toggle keeps a knob", size: 12, knob: 11, offset: 1, cells: 2, pos: 0, width: 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cells, pos, width := toggleCells(tc.size, tc.knob, tc.offset)
			require.Equal(t, tc.cells, cells)
			require.Equal(t, tc.pos, pos)
			require.Equal(t, tc.width, width)
			require.LessOrEqual(t, pos+width, cells)
		})
	}
}

func TestViewShowsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()
	require.Contains(t, view, "tick 0")
	require.Contains(t, view, "quit")
	require.NotContains(t, view, "paused")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.Contains(t, m.View(), "paused")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 40)
}
