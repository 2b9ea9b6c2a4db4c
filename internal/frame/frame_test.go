package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlushRunsInOrder(t *testing.T) {
	s := NewScheduler()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		s.Request(func() { got = append(got, i) })
	}
	require.Equal(t, 3, s.Pending())
	require.Equal(t, 3, s.Flush())
	require.Equal(t, []int{0, 1, 2}, got)
	require.Equal(t, 0, s.Pending())
}

func TestRequestDuringFlushWaits(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var step func()
	step = func() {
		calls++
		if calls < 3 {
			s.Request(step)
		}
	}
	s.Request(step)

	require.Equal(t, 1, s.Flush())
	require.Equal(t, 1, calls)
	require.Equal(t, 1, s.Pending())

	s.Flush()
	s.Flush()
	require.Equal(t, 3, calls)
	require.Equal(t, 0, s.Flush())
}

func TestRequestNil(t *testing.T) {
	s := NewScheduler()
	s.Request(nil)
	require.Equal(t, 0, s.Pending())
}
