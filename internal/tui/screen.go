package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
)

// OpenScreen creates and initialises a screen on tty, or on the controlling
// terminal when tty is empty. The caller must Fini it.
func OpenScreen(tty string) (tcell.Screen, error) {
	// Register the full set of encodings for non UTF-8 locales.
	encoding.Register()

	screen, err := newScreen(tty)
	if err != nil {
		return nil, fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	return screen, nil
}
