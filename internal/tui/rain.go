package tui

import (
	"math/rand"
	"time"
)

const (
	rainGlyphBase  = 0x30A0
	rainGlyphRange = 96
	// rainOpacity keeps the background well behind the grid.
	rainOpacity = 0.2
)

// drop is one falling column of glyphs. Glyphs are double width, so drop i
// occupies screen columns 2i and 2i+1.
type drop struct {
	head   float64
	speed  float64 // rows per second
	length int
	glyphs []rune
}

// rain is the decorative background shown behind small grids.
type rain struct {
	rnd    *rand.Rand
	height int
	drops  []drop
}

func newRain(rnd *rand.Rand) *rain {
	return &rain{rnd: rnd}
}

func (r *rain) resize(width, height int) {
	n := max(0, width/2)
	if n == len(r.drops) && height == r.height {
		return
	}
	r.height = height
	r.drops = r.drops[:0]
	for i := 0; i < n; i++ {
		r.drops = append(r.drops, r.newDrop(true))
	}
}

func (r *rain) newDrop(scatter bool) drop {
	d := drop{
		speed:  4 + r.rnd.Float64()*10,
		length: 4 + r.rnd.Intn(max(1, r.height/2)),
	}
	d.glyphs = make([]rune, max(1, r.height))
	for i := range d.glyphs {
		d.glyphs[i] = r.glyph()
	}
	if scatter {
		d.head = -r.rnd.Float64() * float64(r.height*2)
	} else {
		d.head = -float64(r.rnd.Intn(max(1, r.height)))
	}
	return d
}

func (r *rain) glyph() rune {
	return rune(rainGlyphBase + r.rnd.Intn(rainGlyphRange))
}

func (r *rain) advance(dt time.Duration) {
	for i := range r.drops {
		d := &r.drops[i]
		d.head += d.speed * dt.Seconds()
		if int(d.head)-d.length > r.height {
			r.drops[i] = r.newDrop(false)
			continue
		}
		// Occasionally flicker one glyph.
		if len(d.glyphs) > 0 && r.rnd.Intn(8) == 0 {
			d.glyphs[r.rnd.Intn(len(d.glyphs))] = r.glyph()
		}
	}
}

// at returns the glyph covering screen cell (x, y) and its brightness in
// (0,1]. Only even columns start a glyph.
func (r *rain) at(x, y int) (rune, float64, bool) {
	if x < 0 || x%2 != 0 || y < 0 || y >= r.height {
		return 0, 0, false
	}
	i := x / 2
	if i >= len(r.drops) {
		return 0, 0, false
	}
	d := r.drops[i]
	dist := int(d.head) - y
	if dist < 0 || dist >= d.length || y >= len(d.glyphs) {
		return 0, 0, false
	}
	return d.glyphs[y], 1 - float64(dist)/float64(d.length), true
}
