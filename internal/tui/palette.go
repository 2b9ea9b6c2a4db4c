package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// maxCachedColors bounds the reduced-colour cache; random grids would
// otherwise grow it without limit.
const maxCachedColors = 4096

// palette maps true colours onto what the terminal can show.
type palette struct {
	colors int
	basic  []colorful.Color
	cache  map[uint32]tcell.Color
}

func newPalette(colors int) *palette {
	p := &palette{colors: colors, cache: make(map[uint32]tcell.Color)}
	n := 16
	if colors < 16 {
		n = 8
	}
	for i := 0; i < n; i++ {
		r, g, b := tcell.PaletteColor(i).RGB()
		p.basic = append(p.basic, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
	}
	return p
}

// fades reports whether the terminal can show intermediate brightness.
func (p *palette) fades() bool {
	return p.colors >= 8
}

func (p *palette) color(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	if p.colors >= 256 {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if tc, ok := p.cache[key]; ok {
		return tc
	}
	var tc tcell.Color
	if p.colors >= 8 {
		tc = p.nearestBasic(c)
	} else {
		tc = monochrome(c)
	}
	if len(p.cache) >= maxCachedColors {
		clear(p.cache)
	}
	p.cache[key] = tc
	return tc
}

func (p *palette) nearestBasic(c colorful.Color) tcell.Color {
	best, bestDist := 0, -1.0
	for i, candidate := range p.basic {
		d := c.DistanceLab(candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return tcell.PaletteColor(best)
}

func monochrome(c colorful.Color) tcell.Color {
	l, _, _ := c.Lab()
	switch {
	case l < 0.2:
		return tcell.ColorBlack
	case l < 0.6:
		return tcell.ColorGray
	default:
		return tcell.ColorWhite
	}
}

// shade blends c toward black; opacity 1 keeps c.
func shade(c colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return colorful.Color{}
	}
	return colorful.Color{}.BlendRgb(c, opacity)
}

// fadeRune steps a solid glyph down to blank, for terminals that cannot
// dim colours.
func fadeRune(opacity float64) rune {
	fadeSteps := []rune{' ', '░', '▒', '▓', '█'}
	if opacity <= 0 {
		return fadeSteps[0]
	}
	if opacity >= 1 {
		return fadeSteps[len(fadeSteps)-1]
	}
	return fadeSteps[int(opacity*float64(len(fadeSteps)-1))]
}
