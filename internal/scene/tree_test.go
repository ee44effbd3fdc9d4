package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTreeLayout(t *testing.T) {
	t.Parallel()

	tree := Tree()
	require.Len(t, tree.Rows, 9)

	lights, toggles := tree.Counts()
	require.Equal(t, 23, lights)
	require.Equal(t, 9, toggles)

	large := 0
	for _, row := range tree.Rows {
		for _, el := range row.Elements {
			if el.SizeClass.IsLarge() {
				large++
				require.Equal(t, 110, el.Size)
			}
		}
	}
	require.Equal(t, 2, large)
}

func TestSceneDefaults(t *testing.T) {
	t.Parallel()

	tree := Tree()
	require.Equal(t, time.Second, tree.Interval())
	require.Equal(t, 30, tree.KnobDiameter())
	require.True(t, tree.ShowStar())
	require.Len(t, tree.PaletteColors(), 5)
}

func TestKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1-0", Key(0, 0))
	require.Equal(t, "9-5", Key(8, 5))
}

func TestDefaultSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, 70, DefaultSize(SizeSmall))
	require.Equal(t, 95, DefaultSize(SizeMedium))
	require.Equal(t, 110, DefaultSize(SizeLarge))
}
