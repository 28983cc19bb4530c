package texture

import (
	"fmt"

	"github.com/Faultbox/midgard-atlas/pkg/math"
)

// UVMapper maps texture coordinates in the [0..1] range of a whole texture
// into the range covered by one sub-rectangle of it. The zero value is not
// usable; use IdentityUVMapper or NewUVMapper.
type UVMapper struct {
	scale  math.Vec2
	offset math.Vec2
}

// IdentityUVMapper returns a mapper that leaves coordinates unchanged.
func IdentityUVMapper() UVMapper {
	return UVMapper{scale: math.Vec2{X: 1, Y: 1}}
}

// NewUVMapper returns a mapper computing uv*scale + offset.
func NewUVMapper(scale, offset math.Vec2) UVMapper {
	return UVMapper{scale: scale, offset: offset}
}

// SubRectUVMapper returns the mapper for the pixel rectangle (x, y, w, h)
// inside a texture of atlasW x atlasH pixels. atlasW and atlasH must be
// non-zero.
func SubRectUVMapper(x, y, w, h, atlasW, atlasH int) UVMapper {
	aw := float32(atlasW)
	ah := float32(atlasH)
	return NewUVMapper(
		math.Vec2{X: float32(w) / aw, Y: float32(h) / ah},
		math.Vec2{X: float32(x) / aw, Y: float32(y) / ah},
	)
}

// Map transforms uv. Inputs outside [0,1] follow the same linear law and are
// not clamped.
func (m UVMapper) Map(uv math.Vec2) math.Vec2 {
	return uv.MulAdd(m.scale, m.offset)
}

// MapRect transforms both corners of r.
func (m UVMapper) MapRect(r math.Rect) math.Rect {
	return math.Rect{Min: m.Map(r.Min), Max: m.Map(r.Max)}
}

// IsIdentity reports whether Map returns its input unchanged.
func (m UVMapper) IsIdentity() bool {
	return m.scale == math.Vec2{X: 1, Y: 1} && m.offset == math.Vec2{}
}

// Scale returns the per-axis scale factor.
func (m UVMapper) Scale() math.Vec2 { return m.scale }

// Offset returns the per-axis offset.
func (m UVMapper) Offset() math.Vec2 { return m.offset }

// Bounds returns the sub-rectangle the unit square maps to.
func (m UVMapper) Bounds() (minU, maxU, minV, maxV float32) {
	r := m.MapRect(math.UnitRect())
	return r.Min.X, r.Max.X, r.Min.Y, r.Max.Y
}

// Matrix returns the mapping as a texture matrix suitable for a shader
// uniform: translate(offset) * scale(scale).
func (m UVMapper) Matrix() math.Mat4 {
	return math.Translate(m.offset.X, m.offset.Y, 0).Mul(math.Scale(m.scale.X, m.scale.Y, 1))
}

func (m UVMapper) String() string {
	minU, maxU, minV, maxV := m.Bounds()
	return fmt.Sprintf("UVMapper(u %.4f..%.4f, v %.4f..%.4f)", minU, maxU, minV, maxV)
}
