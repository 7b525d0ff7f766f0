package sheet

// Point is an integer pixel position or offset.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Size is a non-negative pixel extent.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Rect is an axis-aligned rectangle: top-left corner plus extent.
// Width and height never go negative; constructors normalize.
type Rect struct {
	TopLeft Point `json:"top_left"`
	Size    Size  `json:"size"`
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{
		TopLeft: Point{X: minX, Y: minY},
		Size:    Size{W: maxX - minX, H: maxY - minY},
	}
}

// MinX returns the left edge.
func (r Rect) MinX() int { return r.TopLeft.X }

// MinY returns the top edge.
func (r Rect) MinY() int { return r.TopLeft.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() int { return r.TopLeft.X + r.Size.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() int { return r.TopLeft.Y + r.Size.H }

// Shape is the geometry attached to a hitbox. It is a closed variant set;
// axis-aligned rectangles are the only member today, but the document and
// serialization layers treat it as a union so more shapes can be added.
type Shape interface {
	isShape()
	CloneShape() Shape
	EqualShape(other Shape) bool
}

// Rectangle is the axis-aligned rectangle shape variant.
type Rectangle struct {
	Rect Rect
}

func (Rectangle) isShape() {}

// CloneShape returns a copy of the rectangle.
func (r Rectangle) CloneShape() Shape { return r }

// EqualShape reports whether other is an identical rectangle.
func (r Rectangle) EqualShape(other Shape) bool {
	o, ok := other.(Rectangle)
	return ok && r.Rect == o.Rect
}
