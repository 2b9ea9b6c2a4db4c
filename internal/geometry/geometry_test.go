package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeShapeCoversCount(t *testing.T) {
	aspects := []float64{0.1, 0.5, 1, 4.0 / 3.0, 16.0 / 9.0, 3.2, 10}
	for _, aspect := range aspects {
		for count := 1; count <= 3000; count += 7 {
			s := ComputeShape(count, aspect)
			require.GreaterOrEqual(t, s.Columns, 1)
			require.GreaterOrEqual(t, s.Rows, 1)
			require.GreaterOrEqual(t, s.Capacity(), count, "count=%d aspect=%v", count, aspect)
		}
	}
}

func TestComputeShape(t *testing.T) {
	testCases := []struct {
		name   string
		count  int
		aspect float64
		want   Shape
	}{
		{"single", 1, 1, Shape{Columns: 1, Rows: 1}},
		{"square", 9, 1, Shape{Columns: 3, Rows: 3}},
		{"wide", 12, 3, Shape{Columns: 6, Rows: 2}},
		{"too tall correction", 2, 10, Shape{Columns: 2, Rows: 1}},
		{"zero count", 0, 1, Shape{Columns: 1, Rows: 1}},
		{"bad aspect", 4, math.NaN(), Shape{Columns: 2, Rows: 2}},
		{"negative aspect", 4, -2, Shape{Columns: 2, Rows: 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ComputeShape(tc.count, tc.aspect))
		})
	}
}

func TestShouldBatch(t *testing.T) {
	require.False(t, ShouldBatch(1))
	require.False(t, ShouldBatch(1000))
	require.True(t, ShouldBatch(1001))
}

func TestMaxAllowed(t *testing.T) {
	require.Equal(t, 1, MaxAllowed(Viewport{}))
	require.Equal(t, 1, MaxAllowed(Viewport{Width: 1, Height: 500}))
	require.Equal(t, 1, MaxAllowed(Viewport{Width: -4, Height: -4}))
	require.Equal(t, 12, MaxAllowed(Viewport{Width: 8, Height: 7}))
	require.Equal(t, 960*540, MaxAllowed(Viewport{Width: 1920, Height: 1080}))
}

func TestAspectRatioDegenerate(t *testing.T) {
	require.Equal(t, 1.0, Viewport{}.AspectRatio())
	require.Equal(t, 80.0, Viewport{Width: 80}.AspectRatio())
	require.Equal(t, 2.0, Viewport{Width: 80, Height: 40}.AspectRatio())
}

func TestShapeCellTilesViewport(t *testing.T) {
	v := Viewport{Width: 80, Height: 24}
	s := ComputeShape(30, v.AspectRatio())

	covered := make([][]bool, v.Height)
	for y := range covered {
		covered[y] = make([]bool, v.Width)
	}
	for i := 0; i < s.Capacity(); i++ {
		r := s.Cell(v, i)
		for y := r.Y0; y < r.Y1; y++ {
			for x := r.X0; x < r.X1; x++ {
				require.False(t, covered[y][x], "cell %d overlaps at %d,%d", i, x, y)
				covered[y][x] = true
			}
		}
	}
	for y := range covered {
		for x := range covered[y] {
			require.True(t, covered[y][x], "gap at %d,%d", x, y)
		}
	}
}

func TestShapeCellRowMajor(t *testing.T) {
	s := Shape{Columns: 4, Rows: 2}
	v := Viewport{Width: 8, Height: 4}
	require.Equal(t, Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}, s.Cell(v, 0))
	require.Equal(t, Rect{X0: 6, Y0: 0, X1: 8, Y1: 2}, s.Cell(v, 3))
	require.Equal(t, Rect{X0: 0, Y0: 2, X1: 2, Y1: 4}, s.Cell(v, 4))
	require.True(t, Shape{}.Cell(v, 0).Empty())
}
