// Package tui runs the interactive grid on a terminal screen.
package tui

import (
	"context"
	"math/rand"
	"time"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/config"
	"sectiongrid/internal/geometry"
	"sectiongrid/internal/input"
	"sectiongrid/internal/monitor"
	"sectiongrid/internal/session"
	"sectiongrid/internal/snapshot"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const (
	// idleEvery repaints one frame in this many while nothing moves.
	idleEvery = 5
	// busyHostIdleEvery is used instead when the host CPU is above the
	// configured threshold.
	busyHostIdleEvery = 20
	statusTTL         = 4 * time.Second
)

type snapshotResult struct {
	path string
	err  error
}

// App owns the screen and the session it shows. All fields are touched only
// by the goroutine in Run, except results which snapshot workers send on.
type App struct {
	screen  tcell.Screen
	cfg     config.Config
	session *session.Session
	field   *input.Field
	monitor *monitor.Monitor
	palette *palette
	rain    *rain

	results     chan snapshotResult
	status      string
	statusUntil time.Time
	dirty       bool
	lastTick    time.Time
}

// New builds an App on an initialised screen. mon may be nil.
func New(screen tcell.Screen, cfg config.Config, mon *monitor.Monitor) *App {
	w, h := screen.Size()
	mode := cell.Themed
	if cfg.RGB {
		mode = cell.RandomRGB
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	a := &App{
		screen: screen,
		cfg:    cfg,
		session: session.New(session.Options{
			Viewport:     geometry.Viewport{Width: w, Height: h},
			InitialCount: cfg.InitialCount,
			Mode:         mode,
			FadeDelay:    cfg.FadeDelay,
			Generator:    cell.NewGenerator(rand.New(rand.NewSource(rnd.Int63()))),
		}),
		field:   input.NewField("1"),
		monitor: mon,
		palette: newPalette(screen.Colors()),
		rain:    newRain(rnd),
		results: make(chan snapshotResult, 1),
		dirty:   true,
	}
	a.rain.resize(w, h)
	return a
}

// Run drives the UI until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameInterval)
	defer ticker.Stop()

	a.lastTick = time.Now()
	a.draw(a.lastTick)

	var skipCounter int
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}
		case res := <-a.results:
			a.handleSnapshot(res, time.Now())
		case now := <-ticker.C:
			if a.tick(now) {
				skipCounter = 0
				a.draw(now)
				continue
			}
			skipCounter++
			if skipCounter >= a.idleEvery() {
				skipCounter = 0
				a.draw(now)
			}
		}
	}
}

// tick advances one frame and reports whether a repaint is needed now.
func (a *App) tick(now time.Time) bool {
	dt := now.Sub(a.lastTick)
	a.lastTick = now

	changed := a.session.Tick(now)
	if a.rainVisible() {
		a.rain.advance(dt)
		changed = true
	}
	if a.status != "" && now.After(a.statusUntil) {
		a.status = ""
		changed = true
	}
	changed = changed || a.dirty
	a.dirty = false
	return changed
}

// idleEvery throttles idle repaints further when the host is loaded.
func (a *App) idleEvery() int {
	if a.monitor == nil {
		return idleEvery
	}
	if s, ok := a.monitor.Stats(); ok && s.CPU > a.cfg.IdleCPUThreshold*100 {
		return busyHostIdleEvery
	}
	return idleEvery
}

func (a *App) rainVisible() bool {
	return a.cfg.Rain && !geometry.ShouldBatch(a.session.Count())
}

// handleEvent applies one terminal event. Returns false to quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.session.Resize(geometry.Viewport{Width: w, Height: h})
		a.rain.resize(w, h)
		a.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.session.Submit(a.field.Value(), now)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			a.field.Backspace()
		case tcell.KeyCtrlU:
			a.field.Clear()
		case tcell.KeyTab, tcell.KeyCtrlR:
			a.session.ToggleMode()
			log.Debug().Str("mode", a.session.Mode().String()).Msg("colour mode toggled")
		case tcell.KeyCtrlS:
			a.startSnapshot(now)
		case tcell.KeyRune:
			a.field.Insert(ev.Rune())
		}
	}
	a.dirty = true
	return true
}

// startSnapshot exports the current grid in the background. Descriptors are
// never modified once generated, so the worker can read them freely.
func (a *App) startSnapshot(now time.Time) {
	view := a.session.View(now)
	width, height, dir := a.cfg.Snapshot.Width, a.cfg.Snapshot.Height, a.cfg.Snapshot.Dir
	a.setStatus("saving snapshot…", now)
	go func() {
		img := snapshot.Draw(width, height, view.Count, view.Cells)
		path, err := snapshot.Save(dir, img)
		a.results <- snapshotResult{path: path, err: err}
	}()
}

func (a *App) handleSnapshot(res snapshotResult, now time.Time) {
	if res.err != nil {
		log.Error().Err(res.err).Msg("error saving snapshot")
		a.setStatus("snapshot failed: "+res.err.Error(), now)
		return
	}
	log.Info().Str("path", res.path).Msg("snapshot saved")
	a.setStatus("saved "+res.path, now)
}

func (a *App) setStatus(msg string, now time.Time) {
	a.status = msg
	a.statusUntil = now.Add(statusTTL)
	a.dirty = true
}

func (a *App) draw(now time.Time) {
	a.screen.Clear()
	view := a.session.View(now)
	a.drawRain(view, view.Viewport.Width, view.Viewport.Height)
	a.drawGrid(view)
	a.drawHUD(view)
	a.screen.Show()
}
