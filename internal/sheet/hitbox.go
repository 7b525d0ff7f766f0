package sheet

// MaxHitboxNameLength is the maximum length of a hitbox name, in bytes.
const MaxHitboxNameLength = 32

// Hitbox is a named region attached to a keyframe, used for collision and
// gameplay metadata. Linked hitboxes follow future structural edits; locked
// hitboxes are excluded from selection and resizing.
type Hitbox struct {
	Name     string
	Geometry Shape
	Linked   bool
	Locked   bool
}

// NewHitbox returns a hitbox with an empty rectangle at the origin.
func NewHitbox(name string) *Hitbox {
	return &Hitbox{
		Name:     name,
		Geometry: Rectangle{},
		Linked:   true,
		Locked:   false,
	}
}

// Rectangle returns the hitbox geometry as a rectangle.
func (h *Hitbox) Rectangle() Rect {
	switch g := h.Geometry.(type) {
	case Rectangle:
		return g.Rect
	default:
		return Rect{}
	}
}

// Position returns the top-left corner of the hitbox.
func (h *Hitbox) Position() Point { return h.Rectangle().TopLeft }

// SetPosition moves the hitbox without changing its size.
func (h *Hitbox) SetPosition(p Point) {
	r := h.Rectangle()
	r.TopLeft = p
	h.Geometry = Rectangle{Rect: r}
}

// SetRectangle replaces the hitbox geometry.
func (h *Hitbox) SetRectangle(r Rect) {
	h.Geometry = Rectangle{Rect: r}
}

// Clone returns a deep copy of the hitbox.
func (h *Hitbox) Clone() *Hitbox {
	c := *h
	c.Geometry = h.Geometry.CloneShape()
	return &c
}

// Equal reports structural equality.
func (h *Hitbox) Equal(other *Hitbox) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.Name == other.Name &&
		h.Linked == other.Linked &&
		h.Locked == other.Locked &&
		h.Geometry.EqualShape(other.Geometry)
}
