package modal

// Region classifies where a pointer click landed relative to an open modal.
type Region int

const (
	RegionOverlay Region = iota
	RegionBody
)

// Bounds is a rectangle in terminal cells.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// HitTest classifies a click at (x, y) against the modal body bounds.
func HitTest(x, y int, body Bounds) Region {
	if body.Contains(x, y) {
		return RegionBody
	}
	return RegionOverlay
}

// Center returns the bounds of a w×h box centered in an outer area that
// starts at (originX, originY). Boxes larger than the area are pinned to
// the origin.
func Center(originX, originY, outerW, outerH, w, h int) Bounds {
	x := originX + max(0, (outerW-w)/2)
	y := originY + max(0, (outerH-h)/2)
	return Bounds{X: x, Y: y, Width: w, Height: h}
}
