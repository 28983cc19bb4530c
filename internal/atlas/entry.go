package atlas

import (
	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
)

// MergeID is a batching key for atlas draws. Draws whose entries report the
// same MergeID share texture and blend state.
type MergeID uint8

// Merge ids. The zero value is never returned by an Entry.
const (
	MergeOpaque MergeID = iota + 1
	MergeBlend
)

func (id MergeID) String() string {
	switch id {
	case MergeOpaque:
		return "opaque"
	case MergeBlend:
		return "blend"
	default:
		return "invalid"
	}
}

// Entry is the atlas record for one bitmap.
type Entry struct {
	texture *texture.Texture
	mapper  texture.UVMapper
	key     Key
}

func newEntry(key Key, tex *texture.Texture, mapper texture.UVMapper) *Entry {
	return &Entry{
		texture: tex,
		mapper:  mapper,
		key:     key,
	}
}

// Texture returns the virtual texture for this entry. It shares its GPU
// texture with every other entry of the atlas and must not be modified.
func (e *Entry) Texture() *texture.Texture {
	return e.texture
}

// Mapper maps [0..1] texture coordinates into this entry's sub-rectangle.
func (e *Entry) Mapper() texture.UVMapper {
	return e.mapper
}

// Key returns the bitmap identity the entry was registered under.
func (e *Entry) Key() Key {
	return e.key
}

// MergeID returns MergeBlend for entries that need blending and MergeOpaque
// otherwise.
func (e *Entry) MergeID() MergeID {
	if e.texture.Blend() {
		return MergeBlend
	}
	return MergeOpaque
}

func (e *Entry) destroy() {
	e.texture.Release()
}
