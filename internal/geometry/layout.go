package geometry

// Rect is a half-open rectangle [X0,X1) x [Y0,Y1).
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Empty reports whether the rectangle covers no units.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width of the rectangle.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height of the rectangle.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Cell returns the area of the cell at index inside v, placing cells row by
// row. Tracks share the extent evenly, like equal fractional grid tracks;
// boundaries fall on floor(i*extent/n).
func (s Shape) Cell(v Viewport, index int) Rect {
	if s.Columns < 1 || s.Rows < 1 || index < 0 {
		return Rect{}
	}
	col := index % s.Columns
	row := index / s.Columns
	return Rect{
		X0: trackEdge(col, s.Columns, v.Width),
		X1: trackEdge(col+1, s.Columns, v.Width),
		Y0: trackEdge(row, s.Rows, v.Height),
		Y1: trackEdge(row+1, s.Rows, v.Height),
	}
}

func trackEdge(i, n, extent int) int {
	if extent < 0 {
		extent = 0
	}
	return i * extent / n
}
