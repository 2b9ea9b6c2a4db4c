// Package snapshot draws a grid of cells into a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/geometry"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
)

// Draw lays count cells out on a width x height canvas, the same way the
// terminal grid does for its own viewport, and paints the given descriptors.
// Slots without a descriptor stay black.
func Draw(width, height, count int, cells []cell.Descriptor) image.Image {
	v := geometry.Viewport{Width: width, Height: height}
	shape := geometry.ComputeShape(count, v.AspectRatio())

	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetLineWidth(1)

	for _, c := range cells {
		r := shape.Cell(v, c.Index)
		if r.Empty() {
			continue
		}
		x, y := float64(r.X0), float64(r.Y0)
		w, h := float64(r.Width()), float64(r.Height())

		setColor(dc, c.Style.Fill)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		if w < 2 || h < 2 {
			continue
		}
		setColor(dc, c.Style.Border)
		dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		dc.Stroke()
	}
	return dc.Image()
}

func setColor(dc *gg.Context, c cell.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A*255+0.5))
}

// Save writes img as a uniquely named PNG in dir and returns its path.
func Save(dir string, img image.Image) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("sectiongrid-%s.png", uuid.New().String()))
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("error saving snapshot: %w", err)
	}
	return path, nil
}
