package tui

import (
	"fmt"
	"strings"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/session"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	hudMaxWidth = 44
	hudTop      = 1
)

var numbers = message.NewPrinter(language.English)

// drawHUD draws the prompt, the colour toggle, the progress overlay while
// batching, and the status line.
func (a *App) drawHUD(view session.View) {
	w, h := view.Viewport.Width, view.Viewport.Height
	green := a.palette.color(cell.ThemeColor())
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(green)
	dim := base.Dim(true)

	boxW := min(hudMaxWidth, w-2)
	if boxW < 8 || h < 3 {
		return
	}
	x0 := (w - boxW) / 2

	a.drawBox(x0, hudTop, boxW, 3, base)
	if a.field.Empty() {
		a.drawCentered(x0, hudTop+1, boxW, numbers.Sprintf("Enter number (1-%d)", view.MaxAllowed), dim)
	} else {
		a.drawCentered(x0, hudTop+1, boxW, a.field.Value()+"_", base.Bold(true))
	}

	check := "[ ]"
	if view.Mode == cell.RandomRGB {
		check = "[x]"
	}
	a.drawCentered(x0, hudTop+3, boxW, check+" RGB Mode", base)

	if view.Rendering && h >= hudTop+9 {
		y := hudTop + 5
		a.drawBox(x0, y, boxW, 4, base)
		barW := boxW - 4
		filled := int(view.Progress.Fraction() * float64(barW))
		for i := 0; i < barW; i++ {
			ch := '░'
			if i < filled {
				ch = '█'
			}
			a.screen.SetContent(x0+2+i, y+1, ch, nil, base)
		}
		a.drawCentered(x0, y+2, boxW, numbers.Sprintf("Rendering: %d / %d", view.Progress.Done, view.Progress.Total), base)
	}

	a.drawStatusLine(view, h-1, base)
}

func (a *App) drawStatusLine(view session.View, y int, style tcell.Style) {
	if y <= hudTop+3 {
		return
	}
	parts := []string{
		numbers.Sprintf("cells %d", view.Count),
		fmt.Sprintf("grid %d×%d", view.Shape.Columns, view.Shape.Rows),
		numbers.Sprintf("max %d", view.MaxAllowed),
	}
	if a.monitor != nil {
		if s, ok := a.monitor.Stats(); ok {
			parts = append(parts, fmt.Sprintf("cpu %.1f%% mem %.1f%%", s.CPU, s.Mem))
		}
	}
	if a.status != "" {
		parts = append(parts, a.status)
	} else {
		parts = append(parts, "enter apply · tab rgb · ctrl+s snapshot · esc quit")
	}
	line := " " + strings.Join(parts, " · ") + " "
	for x := 0; x < view.Viewport.Width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
	a.drawText(0, y, view.Viewport.Width, line, style)
}

func (a *App) drawBox(x, y, w, h int, style tcell.Style) {
	x1, y1 := x+w-1, y+h-1
	for i := x; i <= x1; i++ {
		for j := y; j <= y1; j++ {
			a.screen.SetContent(i, j, ' ', nil, style)
		}
	}
	for i := x + 1; i < x1; i++ {
		a.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		a.screen.SetContent(i, y1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y1; j++ {
		a.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		a.screen.SetContent(x1, j, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(x1, y, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(x, y1, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (a *App) drawCentered(x, y, w int, text string, style tcell.Style) {
	n := len([]rune(text))
	start := x + max(0, (w-n)/2)
	a.drawText(start, y, x+w-start, text, style)
}

// drawText writes text from (x, y), cut after limit columns.
func (a *App) drawText(x, y, limit int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= limit {
			return
		}
		a.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
