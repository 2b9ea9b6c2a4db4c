//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

func newScreen(tty string) (tcell.Screen, error) {
	if tty != "" {
		return nil, errors.New("selecting a tty device is not supported on this platform")
	}
	return tcell.NewScreen()
}
