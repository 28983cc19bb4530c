// Package assets keeps decoded bitmaps in memory and describes them to the
// atlas by identity.
package assets

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/Faultbox/midgard-atlas/internal/atlas"
)

var keySeq atomic.Int64

// nextKey returns a process-wide unique bitmap identity.
func nextKey() atlas.Key {
	return atlas.Key(keySeq.Add(1))
}

// Registry is an in-memory bitmap cache keyed by identity. It implements
// atlas.Resolver. Loaders may register bitmaps from any goroutine.
type Registry struct {
	mu      sync.RWMutex
	bitmaps map[atlas.Key]image.Image

	// Stats
	hits   int
	misses int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bitmaps: make(map[atlas.Key]image.Image),
	}
}

// Add stores img under a fresh identity and returns it. Adding the same
// image twice yields two identities.
func (r *Registry) Add(img image.Image) atlas.Key {
	key := nextKey()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bitmaps[key] = img
	return key
}

// Get returns the bitmap stored under key.
func (r *Registry) Get(key atlas.Key) (image.Image, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.bitmaps[key]
	return img, ok
}

// Describe implements atlas.Resolver. Bitmaps that report themselves opaque
// through an Opaque method are drawn without blending; all others blend.
func (r *Registry) Describe(key atlas.Key) (atlas.BitmapInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	img, ok := r.bitmaps[key]
	if !ok {
		r.misses++
		return atlas.BitmapInfo{}, false
	}
	r.hits++

	b := img.Bounds()
	return atlas.BitmapInfo{
		Width:  b.Dx(),
		Height: b.Dy(),
		Blend:  !isOpaque(img),
	}, true
}

func isOpaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}

// Evict drops the bitmap stored under key. Atlas entries built earlier are
// unaffected; later builds skip the identity.
func (r *Registry) Evict(key atlas.Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bitmaps[key]; !ok {
		return false
	}
	delete(r.bitmaps, key)
	return true
}

// Len returns the number of registered bitmaps.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bitmaps)
}

// Clear drops every bitmap and resets the statistics.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bitmaps = make(map[atlas.Key]image.Image)
	r.hits = 0
	r.misses = 0
}

// Stats returns how many Describe calls found or missed their bitmap.
func (r *Registry) Stats() (hits, misses int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hits, r.misses
}
