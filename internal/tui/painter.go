package tui

import (
	"sectiongrid/internal/cell"
	"sectiongrid/internal/geometry"
	"sectiongrid/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var background = colorful.Color{}

// drawGrid paints every generated cell as a bordered box. Boxes narrower or
// shorter than two units collapse to a solid block.
func (a *App) drawGrid(view session.View) {
	showRain := a.cfg.Rain && !view.Batched
	for _, c := range view.Cells {
		r := view.Shape.Cell(view.Viewport, c.Index)
		if r.Empty() {
			continue
		}
		a.drawCell(r, c.Style, view.Opacity, showRain)
	}
}

// drawRain paints the background glyphs on every screen column pair.
func (a *App) drawRain(view session.View, width, height int) {
	if !a.cfg.Rain || view.Batched {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x+1 < width; x += 2 {
			g, level, ok := a.rain.at(x, y)
			if !ok {
				continue
			}
			glyph := background.BlendRgb(cell.ThemeColor(), level*rainOpacity)
			a.screen.SetContent(x, y, g, nil, tcell.StyleDefault.Foreground(a.palette.color(glyph)))
		}
	}
}

func (a *App) drawCell(r geometry.Rect, style cell.Style, opacity float64, showRain bool) {
	if !a.palette.fades() && opacity <= 0 {
		return
	}
	fill := shade(style.Fill.Over(background), opacity)
	border := shade(style.Border.Over(background), opacity)
	fillStyle := tcell.StyleDefault.Background(a.palette.color(fill))
	borderStyle := fillStyle.Foreground(a.palette.color(border))

	if r.Width() < 2 || r.Height() < 2 {
		ch := '█'
		if !a.palette.fades() {
			ch = fadeRune(opacity)
		}
		for y := r.Y0; y < r.Y1; y++ {
			for x := r.X0; x < r.X1; x++ {
				a.screen.SetContent(x, y, ch, nil, borderStyle)
			}
		}
		return
	}

	x1, y1 := r.X1-1, r.Y1-1
	for x := r.X0 + 1; x < x1; x++ {
		a.screen.SetContent(x, r.Y0, tcell.RuneHLine, nil, borderStyle)
		a.screen.SetContent(x, y1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.Y0 + 1; y < y1; y++ {
		a.screen.SetContent(r.X0, y, tcell.RuneVLine, nil, borderStyle)
		a.screen.SetContent(x1, y, tcell.RuneVLine, nil, borderStyle)
	}
	a.screen.SetContent(r.X0, r.Y0, tcell.RuneULCorner, nil, borderStyle)
	a.screen.SetContent(x1, r.Y0, tcell.RuneURCorner, nil, borderStyle)
	a.screen.SetContent(r.X0, y1, tcell.RuneLLCorner, nil, borderStyle)
	a.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, borderStyle)

	for y := r.Y0 + 1; y < y1; y++ {
		for x := r.X0 + 1; x < x1; x++ {
			if showRain && x+1 < x1 {
				if g, level, ok := a.rain.at(x, y); ok {
					glyph := fill.BlendRgb(cell.ThemeColor(), level*rainOpacity*opacity)
					a.screen.SetContent(x, y, g, nil, fillStyle.Foreground(a.palette.color(glyph)))
					x++
					continue
				}
			}
			a.screen.SetContent(x, y, ' ', nil, fillStyle)
		}
	}
}
