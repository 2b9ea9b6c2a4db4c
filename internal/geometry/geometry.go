// Package geometry computes the grid shape used to split a viewport into
// roughly square cells.
package geometry

import "math"

const (
	// BatchThreshold is the largest count generated in a single pass.
	BatchThreshold = 1000
	// minCellSpan is the smallest extent, per axis, a cell may occupy when
	// the count is at its maximum.
	minCellSpan = 2
)

// Viewport is the drawable area measured in terminal cells.
type Viewport struct {
	Width  int
	Height int
}

// AspectRatio returns width/height. Both sides are floored to 1 so a
// collapsed viewport still yields a finite ratio.
func (v Viewport) AspectRatio() float64 {
	w, h := v.Width, v.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return float64(w) / float64(h)
}

// Shape is the number of grid tracks along each axis.
type Shape struct {
	Columns int
	Rows    int
}

// Capacity is the number of slots the shape provides.
func (s Shape) Capacity() int {
	return s.Columns * s.Rows
}

// ComputeShape picks columns and rows for count cells so that the cells stay
// close to square for the given aspect ratio. The result always holds at
// least count cells.
func ComputeShape(count int, aspect float64) Shape {
	if count < 1 {
		count = 1
	}
	if math.IsNaN(aspect) || math.IsInf(aspect, 0) || aspect <= 0 {
		aspect = 1
	}
	total := float64(count)

	cols := ceilInt(math.Sqrt(total * aspect))
	rows := ceilDiv(count, cols)

	// Too tall for the viewport: solve for rows first instead.
	if float64(rows) > float64(cols)/aspect {
		rows = ceilInt(math.Sqrt(total / aspect))
		cols = ceilDiv(count, rows)
	}
	return Shape{Columns: cols, Rows: rows}
}

// ShouldBatch reports whether count cells must be generated across frames.
func ShouldBatch(count int) bool {
	return count > BatchThreshold
}

// MaxAllowed is the largest count the viewport can show with every cell at
// least two units on each side. Never below 1.
func MaxAllowed(v Viewport) int {
	perRow := v.Width / minCellSpan
	perColumn := v.Height / minCellSpan
	if perRow < 0 || perColumn < 0 {
		return 1
	}
	return max(1, perRow*perColumn)
}

func ceilInt(x float64) int {
	n := int(math.Ceil(x))
	if n < 1 {
		return 1
	}
	return n
}

func ceilDiv(a, b int) int {
	if b < 1 {
		b = 1
	}
	return max(1, (a+b-1)/b)
}
