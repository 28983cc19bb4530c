// Package math provides the small vector and matrix types used for
// texture-space coordinate work.
package math

// Vec2 is a 2D vector. In texture space X is U and Y is V.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Mul returns the component-wise product of v and other.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// MulAdd returns v*scale + offset, component-wise.
func (v Vec2) MulAdd(scale, offset Vec2) Vec2 {
	return v.Mul(scale).Add(offset)
}
