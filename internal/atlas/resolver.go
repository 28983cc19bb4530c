package atlas

import (
	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
)

// Key identifies a bitmap by the identity of its backing pixel storage. It is
// compared by value and never dereferenced.
type Key int64

// BitmapInfo describes a bitmap as far as the atlas needs to know.
type BitmapInfo struct {
	Width  int
	Height int
	Blend  bool
}

// Resolver describes bitmaps by identity. Describe returns false when the
// identity is unknown, for example because the bitmap was evicted.
type Resolver interface {
	Describe(key Key) (BitmapInfo, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(key Key) (BitmapInfo, bool)

// Describe calls f(key).
func (f ResolverFunc) Describe(key Key) (BitmapInfo, bool) {
	return f(key)
}

// Image is a buffer bound as a GPU texture.
type Image interface {
	// Texture returns the GPU texture name, 0 if binding produced none.
	Texture() uint32
	Width() int
	Height() int
	// Destroy releases the GPU texture.
	Destroy()
}

// Binder binds an already populated buffer as a GPU image.
type Binder interface {
	Bind(buf texture.Buffer) (Image, error)
}
