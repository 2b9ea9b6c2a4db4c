package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonitorUpdate(t *testing.T) {
	calls := 0
	m := New(time.Hour, func(ctx context.Context) (Stats, error) {
		calls++
		if calls == 2 {
			return Stats{}, errors.New("boom")
		}
		return Stats{CPU: 12.345, Mem: 67.89}, nil
	})

	_, ok := m.Stats()
	require.False(t, ok)

	m.update(context.Background())
	s, ok := m.Stats()
	require.True(t, ok)
	require.Equal(t, Stats{CPU: 12.3, Mem: 67.9}, s)

	m.update(context.Background())
	s, _ = m.Stats()
	require.Equal(t, 12.3, s.CPU, "failed sample keeps the previous one")
}

func TestMonitorRunStops(t *testing.T) {
	sampled := make(chan struct{}, 1)
	m := New(time.Millisecond, func(ctx context.Context) (Stats, error) {
		select {
		case sampled <- struct{}{}:
		default:
		}
		return Stats{CPU: 1}, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-sampled:
	case <-time.After(time.Second):
		t.Fatal("no sample taken")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
