// Package monitor samples host CPU and memory usage in the background.
package monitor

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is one sample, both values in percent.
type Stats struct {
	CPU float64
	Mem float64
}

// Sampler reads the current usage. Tests replace it.
type Sampler func(ctx context.Context) (Stats, error)

// Monitor keeps the latest sample. Reads are safe from any goroutine.
type Monitor struct {
	sample   Sampler
	interval time.Duration
	latest   atomic.Pointer[Stats]
}

// New returns a monitor polling every interval with sample, or with the
// system sampler when sample is nil.
func New(interval time.Duration, sample Sampler) *Monitor {
	if sample == nil {
		sample = SystemStats
	}
	return &Monitor{sample: sample, interval: interval}
}

// Run polls until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	m.update(ctx)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.update(ctx)
		}
	}
}

// Stats returns the latest sample and whether one was taken yet.
func (m *Monitor) Stats() (Stats, bool) {
	s := m.latest.Load()
	if s == nil {
		return Stats{}, false
	}
	return *s, true
}

func (m *Monitor) update(ctx context.Context) {
	s, err := m.sample(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("error sampling host stats")
		return
	}
	s.CPU = round1(s.CPU)
	s.Mem = round1(s.Mem)
	m.latest.Store(&s)
}

// SystemStats reads memory usage and CPU usage averaged across cores since
// the previous call.
func SystemStats(ctx context.Context) (Stats, error) {
	var s Stats
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, err
	}
	s.Mem = v.UsedPercent

	c, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return s, err
	}
	if len(c) > 0 {
		s.CPU = c[0]
	}
	return s, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
