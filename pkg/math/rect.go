package math

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// UnitRect returns the [0,1]x[0,1] rectangle.
func UnitRect() Rect {
	return Rect{Max: Vec2{1, 1}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}
