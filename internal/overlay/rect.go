package overlay

// Point is a position in terminal cell coordinates.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in cell coordinates. X/Y name the
// top-left cell; Width/Height count cells, so the right and bottom edges
// are exclusive.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(x, y int, size Size) Rect {
	return Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, or an empty Rect when
// they do not touch.
func (r Rect) Intersect(o Rect) Rect {
	x := maxInt(r.X, o.X)
	y := maxInt(r.Y, o.Y)
	right := minInt(r.Right(), o.Right())
	bottom := minInt(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

func clampInt(val, minVal, maxVal int) int {
	if maxVal < minVal {
		return minVal
	}
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
