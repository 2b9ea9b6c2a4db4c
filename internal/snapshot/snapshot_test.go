package snapshot

import (
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sectiongrid/internal/cell"

	"github.com/stretchr/testify/require"
)

func TestDrawThemed(t *testing.T) {
	g := cell.NewGenerator(rand.New(rand.NewSource(1)))
	cells := g.Append(nil, 0, 4, cell.Themed)

	img := Draw(40, 40, 4, cells)
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	// Centre of the first cell is fill over black: green, faint.
	c := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA)
	require.Greater(t, c.G, c.R)
	require.Greater(t, c.G, c.B)
	require.Equal(t, uint8(255), c.A)
}

func TestDrawMissingCellsStayBlack(t *testing.T) {
	img := Draw(20, 20, 4, nil)
	c := color.RGBAModel.Convert(img.At(5, 5)).(color.RGBA)
	require.Equal(t, color.RGBA{A: 255}, c)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := Draw(8, 8, 1, []cell.Descriptor{{Index: 0, Style: cell.ThemeStyle}})
	path, err := Save(dir, img)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(path), "sectiongrid-"))
	require.Equal(t, ".png", filepath.Ext(path))
	_, err = os.Stat(path)
	require.NoError(t, err)
}
