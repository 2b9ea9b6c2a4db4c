package cell

import (
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func TestThemedDescriptorsShareStyle(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	cells := g.Append(nil, 0, 50, Themed)
	require.Len(t, cells, 50)
	for i, c := range cells {
		require.Equal(t, i, c.Index)
		require.Equal(t, ThemeStyle, c.Style)
	}
}

func TestRandomDescriptorsIndependent(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))
	cells := g.Append(nil, 0, 200, RandomRGB)

	distinct := map[Style]struct{}{}
	for _, c := range cells {
		require.Equal(t, 0.5, c.Style.Border.A)
		require.Equal(t, 0.2, c.Style.Fill.A)
		distinct[c.Style] = struct{}{}
	}
	require.Greater(t, len(distinct), 1)
}

func TestAppendContinuesIndexes(t *testing.T) {
	g := NewGenerator(nil)
	cells := g.Append(nil, 0, 3, RandomRGB)
	cells = g.Append(cells, 3, 5, RandomRGB)
	require.Len(t, cells, 5)
	require.Equal(t, 4, cells[4].Index)
}

func TestOver(t *testing.T) {
	black := colorful.Color{}
	white := RGBA{R: 255, G: 255, B: 255, A: 0.5}
	got := white.Over(black)
	require.InDelta(t, 0.5, got.R, 1e-9)
	require.InDelta(t, 0.5, got.G, 1e-9)
	require.InDelta(t, 0.5, got.B, 1e-9)

	opaque := RGBA{R: 255, A: 1}
	r, g, b := opaque.Over(black).RGB255()
	require.Equal(t, []uint8{255, 0, 0}, []uint8{r, g, b})
}

func TestModeString(t *testing.T) {
	require.Equal(t, "themed", Themed.String())
	require.Equal(t, "rgb", RandomRGB.String())
	require.Equal(t, "Mode(7)", Mode(7).String())
}
