// Package texture describes GPU textures without touching the GPU: the
// read-only descriptors handed to renderers, the coordinate mapping into a
// sub-rectangle of a shared texture, and the pixel buffers a texture is
// created from.
package texture

// Wrap is a texture coordinate wrap mode.
type Wrap uint8

// Wrap modes.
const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
)

// Filter is a texture sampling filter.
type Filter uint8

// Sampling filters.
const (
	FilterLinear Filter = iota
	FilterNearest
)

// Texture is a lightweight "virtual texture": a read-only window into a GPU
// texture that may be shared with other descriptors. It never owns the GPU
// texture named by ID.
type Texture struct {
	id       uint32
	width    int
	height   int
	blend    bool
	wrap     Wrap
	filter   Filter
	released bool
}

// NewTexture creates a descriptor for the GPU texture id with the given
// logical size. Atlas windows always clamp and filter linearly, since
// repeating would sample neighbouring entries.
func NewTexture(id uint32, width, height int, blend bool) *Texture {
	return &Texture{
		id:     id,
		width:  width,
		height: height,
		blend:  blend,
		wrap:   WrapClampToEdge,
		filter: FilterLinear,
	}
}

// ID returns the GPU texture name.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the logical width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the logical height in pixels.
func (t *Texture) Height() int { return t.height }

// Blend reports whether drawing this texture requires blending.
func (t *Texture) Blend() bool { return t.blend }

// Wrap returns the wrap mode for both axes.
func (t *Texture) Wrap() Wrap { return t.wrap }

// Filter returns the min/mag filter.
func (t *Texture) Filter() Filter { return t.filter }

// Release marks the descriptor as destroyed by its owner. The GPU texture
// is not affected.
func (t *Texture) Release() {
	t.released = true
}

// Released reports whether the owner has destroyed this descriptor.
func (t *Texture) Released() bool { return t.released }
