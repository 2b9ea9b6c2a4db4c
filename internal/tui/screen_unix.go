//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package tui

import "github.com/gdamore/tcell/v2"

func newScreen(tty string) (tcell.Screen, error) {
	if tty == "" {
		return tcell.NewScreen()
	}
	t, err := tcell.NewDevTtyFromDev(tty)
	if err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(t)
}
