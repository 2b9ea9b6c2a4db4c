// Package render generates the cell descriptors for a grid, spreading large
// counts over several frames.
package render

import (
	"fmt"

	"sectiongrid/internal/cell"
	"sectiongrid/internal/geometry"

	"github.com/rs/zerolog/log"
)

// BatchSize is how many descriptors a batching pass produces per frame.
const BatchSize = 1000

// State of a render pass. A pass starts Synchronous or Batching and ends
// Idle, or Superseded when a newer pass replaced it first.
type State int

const (
	Idle State = iota
	Synchronous
	Batching
	Superseded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Synchronous:
		return "synchronous"
	case Batching:
		return "batching"
	case Superseded:
		return "superseded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Progress counts generated descriptors of the current pass.
type Progress struct {
	Done  int
	Total int
}

// Fraction is Done/Total in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// ProgressFunc is told the cumulative number of descriptors after each chunk.
type ProgressFunc func(done, total int)

// CompleteFunc receives the full descriptor list when a pass finishes.
type CompleteFunc func(cells []cell.Descriptor)

// FrameRequester schedules work on the next frame boundary.
type FrameRequester interface {
	Request(fn func())
}

// Renderer runs render passes. Only the most recently started pass may
// publish progress or results. Not safe for concurrent use.
type Renderer struct {
	frames     FrameRequester
	gen        *cell.Generator
	generation uint64
	progress   Progress
	active     *Pass
}

// New creates a renderer scheduling batches on frames and colouring cells
// with gen.
func New(frames FrameRequester, gen *cell.Generator) *Renderer {
	if gen == nil {
		gen = cell.NewGenerator(nil)
	}
	return &Renderer{frames: frames, gen: gen}
}

// Generation of the latest pass. Zero before the first Render.
func (r *Renderer) Generation() uint64 {
	return r.generation
}

// Progress of the latest pass.
func (r *Renderer) Progress() Progress {
	return r.progress
}

// Active returns the latest pass, or nil.
func (r *Renderer) Active() *Pass {
	return r.active
}

// State of the latest pass.
func (r *Renderer) State() State {
	if r.active == nil {
		return Idle
	}
	return r.active.state
}

// Render starts a pass for count cells, superseding any pass in flight.
// Counts up to geometry.BatchThreshold complete before Render returns, with
// no progress calls. Larger counts produce one chunk per frame, calling
// onProgress after each and onComplete at the end.
func (r *Renderer) Render(count int, mode cell.Mode, onProgress ProgressFunc, onComplete CompleteFunc) *Pass {
	if count < 1 {
		count = 1
	}
	if prev := r.active; prev != nil && prev.state == Batching {
		prev.state = Superseded
		log.Debug().Uint64("generation", prev.generation).Int("done", len(prev.cells)).Msg("render pass superseded")
	}
	r.generation++
	p := &Pass{
		r:          r,
		generation: r.generation,
		count:      count,
		mode:       mode,
		onProgress: onProgress,
		onComplete: onComplete,
	}
	r.active = p

	if !geometry.ShouldBatch(count) {
		p.state = Synchronous
		p.cells = r.gen.Append(make([]cell.Descriptor, 0, count), 0, count, mode)
		r.progress = Progress{Done: count, Total: count}
		p.state = Idle
		log.Debug().Uint64("generation", p.generation).Int("count", count).Str("mode", mode.String()).Msg("render pass done")
		if onComplete != nil {
			onComplete(p.cells)
		}
		return p
	}

	p.state = Batching
	p.cells = make([]cell.Descriptor, 0, count)
	r.progress = Progress{Done: 0, Total: count}
	log.Debug().Uint64("generation", p.generation).Int("count", count).Str("mode", mode.String()).Msg("render pass batching")
	r.frames.Request(p.step)
	return p
}

// Pass is the handle of one render request.
type Pass struct {
	r          *Renderer
	generation uint64
	count      int
	mode       cell.Mode
	state      State
	cells      []cell.Descriptor
	onProgress ProgressFunc
	onComplete CompleteFunc
}

// Generation token of the pass.
func (p *Pass) Generation() uint64 { return p.generation }

// Count of cells requested.
func (p *Pass) Count() int { return p.count }

// Mode the pass colours with.
func (p *Pass) Mode() cell.Mode { return p.mode }

// State of the pass.
func (p *Pass) State() State { return p.state }

// Stale reports whether a newer pass has started.
func (p *Pass) Stale() bool {
	return p.generation != p.r.generation
}

// Done reports whether the pass produced all of its cells.
func (p *Pass) Done() bool {
	return p.state == Idle && len(p.cells) == p.count
}

// Cells generated so far. Do not modify.
func (p *Pass) Cells() []cell.Descriptor {
	return p.cells
}

// step produces one chunk, then reschedules itself or finishes.
func (p *Pass) step() {
	if p.Stale() {
		p.state = Superseded
		return
	}
	end := min(len(p.cells)+BatchSize, p.count)
	p.cells = p.r.gen.Append(p.cells, len(p.cells), end, p.mode)
	p.r.progress.Done = end

	if p.onProgress != nil {
		p.onProgress(end, p.count)
		// The callback may have started a newer pass.
		if p.Stale() {
			p.state = Superseded
			return
		}
	}
	if end < p.count {
		p.r.frames.Request(p.step)
		return
	}
	p.state = Idle
	log.Debug().Uint64("generation", p.generation).Int("count", p.count).Msg("render pass done")
	if p.onComplete != nil {
		p.onComplete(p.cells)
	}
}
