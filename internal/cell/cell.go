// Package cell describes the individual grid units and how they are coloured.
package cell

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how cells are coloured.
type Mode int

const (
	// Themed draws every cell with the same green style.
	Themed Mode = iota
	// RandomRGB gives each cell its own random border and fill.
	RandomRGB
)

func (m Mode) String() string {
	switch m {
	case Themed:
		return "themed"
	case RandomRGB:
		return "rgb"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	borderAlpha     = 0.5
	randomFillAlpha = 0.2
	themedFillAlpha = 0.05
)

// RGBA is an 8-bit colour with a straight alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Over composites c onto an opaque background and returns the resulting
// opaque colour.
func (c RGBA) Over(bg colorful.Color) colorful.Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return bg.BlendRgb(src, c.A).Clamped()
}

// Style is the pair of colours a cell is drawn with.
type Style struct {
	Border RGBA
	Fill   RGBA
}

// themeGreen is green-500.
var themeGreen = RGBA{R: 0x22, G: 0xc5, B: 0x5e}

// ThemeStyle is shared by every cell in Themed mode.
var ThemeStyle = Style{
	Border: RGBA{R: themeGreen.R, G: themeGreen.G, B: themeGreen.B, A: borderAlpha},
	Fill:   RGBA{R: themeGreen.R, G: themeGreen.G, B: themeGreen.B, A: themedFillAlpha},
}

// ThemeColor is the opaque accent used by overlays.
func ThemeColor() colorful.Color {
	return colorful.Color{R: float64(themeGreen.R) / 255, G: float64(themeGreen.G) / 255, B: float64(themeGreen.B) / 255}
}

// Descriptor is one cell of a render pass. Its style is fixed at creation.
type Descriptor struct {
	Index int
	Style Style
}

// Generator creates descriptors for a colour mode.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator drawing from rnd. A nil rnd is seeded
// from the global source.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{rnd: rnd}
}

// New builds the descriptor at index.
func (g *Generator) New(index int, mode Mode) Descriptor {
	if mode != RandomRGB {
		return Descriptor{Index: index, Style: ThemeStyle}
	}
	return Descriptor{
		Index: index,
		Style: Style{
			Border: g.randomColor(borderAlpha),
			Fill:   g.randomColor(randomFillAlpha),
		},
	}
}

// Append generates descriptors for indexes [from, to) onto dst.
func (g *Generator) Append(dst []Descriptor, from, to int, mode Mode) []Descriptor {
	for i := from; i < to; i++ {
		dst = append(dst, g.New(i, mode))
	}
	return dst
}

func (g *Generator) randomColor(alpha float64) RGBA {
	return RGBA{
		R: uint8(g.rnd.Intn(256)),
		G: uint8(g.rnd.Intn(256)),
		B: uint8(g.rnd.Intn(256)),
		A: alpha,
	}
}
