// Package session keeps the state of one interactive grid: the viewport, the
// committed count and colour mode, and the render pass that follows them.
package session

import (
	"time"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/fade"
	"sectiongrid/internal/frame"
	"sectiongrid/internal/geometry"
	"sectiongrid/internal/render"

	"github.com/rs/zerolog/log"
)

// Options for New.
type Options struct {
	Viewport     geometry.Viewport
	InitialCount int
	Mode         cell.Mode
	FadeDelay    time.Duration
	Generator    *cell.Generator
}

// Session is driven from a single goroutine: input events call Submit,
// SetMode and Resize, and the frame loop calls Tick.
type Session struct {
	viewport   geometry.Viewport
	aspect     float64
	maxAllowed int
	count      int
	mode       cell.Mode
	shape      geometry.Shape
	completed  uint64

	frames   *frame.Scheduler
	renderer *render.Renderer
	fade     *fade.Controller
}

// New creates a session and starts the first render pass.
func New(opts Options) *Session {
	frames := frame.NewScheduler()
	s := &Session{
		viewport:   opts.Viewport,
		aspect:     opts.Viewport.AspectRatio(),
		maxAllowed: geometry.MaxAllowed(opts.Viewport),
		mode:       opts.Mode,
		frames:     frames,
		renderer:   render.New(frames, opts.Generator),
		fade:       fade.NewController(opts.FadeDelay),
	}
	s.count = clampCount(opts.InitialCount, s.maxAllowed)
	s.regenerate()
	return s
}

func clampCount(n, max int) int {
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// MaxAllowed is the largest count the current viewport accepts.
func (s *Session) MaxAllowed() int {
	return s.maxAllowed
}

// Count is the committed cell count.
func (s *Session) Count() int {
	return s.count
}

// Mode is the current colour mode.
func (s *Session) Mode() cell.Mode {
	return s.mode
}

// Resize records a new viewport. The maximum is recomputed; the grid is
// rebuilt only when the aspect ratio changed.
func (s *Session) Resize(v geometry.Viewport) {
	if v == s.viewport {
		return
	}
	s.viewport = v
	s.maxAllowed = geometry.MaxAllowed(v)
	aspect := v.AspectRatio()
	if aspect == s.aspect {
		return
	}
	s.aspect = aspect
	log.Debug().Int("width", v.Width).Int("height", v.Height).Int("max", s.maxAllowed).Msg("viewport aspect changed")
	s.regenerate()
}

// Submit requests a new count from raw user text. It is committed by Tick
// once the fade delay has passed.
func (s *Session) Submit(raw string, now time.Time) {
	s.fade.Submit(raw, now)
}

// SetMode switches the colour mode and rebuilds every cell.
func (s *Session) SetMode(m cell.Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.regenerate()
}

// ToggleMode flips between themed and random colours.
func (s *Session) ToggleMode() {
	if s.mode == cell.RandomRGB {
		s.SetMode(cell.Themed)
		return
	}
	s.SetMode(cell.RandomRGB)
}

// Tick advances the session by one frame: work scheduled before this frame
// runs, then a due fade commits its count. Passes started here produce their
// first batch on the next Tick. Reports whether the view needs repainting.
func (s *Session) Tick(now time.Time) bool {
	changed := s.frames.Flush() > 0
	if n, ok := s.fade.Tick(now, s.maxAllowed); ok {
		changed = true
		if n != s.count {
			log.Debug().Int("from", s.count).Int("to", n).Msg("count committed")
			s.count = n
			s.regenerate()
		}
	}
	return changed || s.fade.Transitioning()
}

// Busy reports whether the session has pending work for upcoming frames.
func (s *Session) Busy() bool {
	return s.fade.Transitioning() || s.frames.Pending() > 0
}

// CompletedPasses counts render passes that ran to completion.
func (s *Session) CompletedPasses() uint64 {
	return s.completed
}

func (s *Session) regenerate() {
	s.shape = geometry.ComputeShape(s.count, s.aspect)
	s.renderer.Render(s.count, s.mode, nil, func([]cell.Descriptor) {
		s.completed++
	})
}

// View is a read-only picture of the session for painting.
type View struct {
	Viewport      geometry.Viewport
	MaxAllowed    int
	Count         int
	Mode          cell.Mode
	Shape         geometry.Shape
	Cells         []cell.Descriptor
	Progress      render.Progress
	Rendering     bool
	Batched       bool
	Transitioning bool
	Opacity       float64
}

// View captures the state at now. Opacity is 1 when the grid is fully shown. Cells holds what has been generated so
// far and must not be modified.
func (s *Session) View(now time.Time) View {
	v := View{
		Viewport:      s.viewport,
		MaxAllowed:    s.maxAllowed,
		Count:         s.count,
		Mode:          s.mode,
		Shape:         s.shape,
		Progress:      s.renderer.Progress(),
		Rendering:     s.renderer.State() == render.Batching,
		Batched:       geometry.ShouldBatch(s.count),
		Transitioning: s.fade.Transitioning(),
		Opacity:       s.fade.Opacity(now),
	}
	if p := s.renderer.Active(); p != nil {
		v.Cells = p.Cells()
	}
	// Large grids skip the gradual fade and blank at once.
	if v.Batched && v.Transitioning {
		v.Opacity = 0
	}
	return v
}
