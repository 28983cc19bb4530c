package atlas

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
	"github.com/Faultbox/midgard-atlas/internal/logger"
)

// Atlas maps bitmap identities to their entries inside one shared GPU
// texture. The zero value is not usable; use New.
type Atlas struct {
	binder   Binder
	resolver Resolver
	log      *zap.Logger

	image   Image
	entries map[Key]*Entry
}

// Option configures an Atlas.
type Option func(*Atlas)

// WithLogger sets the logger used for init, teardown and skipped placements.
func WithLogger(l *zap.Logger) Option {
	return func(a *Atlas) {
		a.log = l
	}
}

// New creates an empty, unbound atlas. binder turns the shared buffer into a
// GPU image; resolver describes the bitmaps named by placements.
func New(binder Binder, resolver Resolver, opts ...Option) *Atlas {
	a := &Atlas{
		binder:   binder,
		resolver: resolver,
		entries:  make(map[Key]*Entry),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Named("atlas")
	}
	return a
}

// Init binds buf as the atlas texture and creates one entry per placement
// whose bitmap the resolver can describe. Placements the resolver does not
// know are skipped. A duplicate key replaces the earlier entry.
//
// Init returns immediately if the atlas is already bound; call Terminate
// first to re-initialize. buf must have non-zero width and height.
func (a *Atlas) Init(buf texture.Buffer, placements []Placement) {
	if a.image != nil {
		return
	}

	img, err := a.binder.Bind(buf)
	if err != nil {
		a.log.Warn("could not create atlas image", zap.Error(err))
		return
	}
	if img.Texture() == 0 {
		a.log.Warn("could not create atlas image", zap.String("reason", "no texture name"))
		img.Destroy()
		return
	}
	a.image = img

	a.createEntries(placements)

	a.log.Info("atlas initialized",
		zap.Uint32("texture", img.Texture()),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Int("placements", len(placements)),
		zap.Int("entries", len(a.entries)),
	)
}

// InitFlat is Init for a flat map of count (identity, x, y) triples.
func (a *Atlas) InitFlat(buf texture.Buffer, m []int64, count int) {
	if a.image != nil {
		return
	}
	a.Init(buf, DecodePlacements(m, count))
}

func (a *Atlas) createEntries(placements []Placement) {
	width := a.image.Width()
	height := a.image.Height()
	id := a.image.Texture()

	for _, p := range placements {
		info, ok := a.resolver.Describe(p.Key)
		if !ok {
			a.log.Debug("skipping unknown bitmap", zap.Int64("key", int64(p.Key)))
			continue
		}

		tex := texture.NewTexture(id, info.Width, info.Height, info.Blend)
		mapper := texture.SubRectUVMapper(p.X, p.Y, info.Width, info.Height, width, height)

		if prev, ok := a.entries[p.Key]; ok {
			prev.destroy()
		}
		a.entries[p.Key] = newEntry(p.Key, tex, mapper)
	}
}

// Terminate destroys the atlas texture and every entry. Width, Height and
// Texture return 0 afterwards. The atlas can be initialized again.
func (a *Atlas) Terminate() {
	if a.image == nil {
		return
	}

	for key, e := range a.entries {
		e.destroy()
		delete(a.entries, key)
	}

	a.image.Destroy()
	a.image = nil

	a.log.Info("atlas terminated")
}

// Bound reports whether the atlas currently holds a GPU image.
func (a *Atlas) Bound() bool {
	return a.image != nil
}

// Width returns the atlas width in pixels, or 0 if not initialized.
func (a *Atlas) Width() int {
	if a.image == nil {
		return 0
	}
	return a.image.Width()
}

// Height returns the atlas height in pixels, or 0 if not initialized.
func (a *Atlas) Height() int {
	if a.image == nil {
		return 0
	}
	return a.image.Height()
}

// Texture returns the GPU texture name of the atlas, or 0 if not initialized.
func (a *Atlas) Texture() uint32 {
	if a.image == nil {
		return 0
	}
	return a.image.Texture()
}

// Entry returns the entry for key, or nil if the bitmap is not in the atlas.
func (a *Atlas) Entry(key Key) *Entry {
	return a.entries[key]
}

// EntryTexture returns the virtual texture for key, or nil if the bitmap is
// not in the atlas.
func (a *Atlas) EntryTexture(key Key) *texture.Texture {
	if e := a.entries[key]; e != nil {
		return e.texture
	}
	return nil
}

// Remove destroys the entry for key. It reports whether an entry existed.
func (a *Atlas) Remove(key Key) bool {
	e, ok := a.entries[key]
	if !ok {
		return false
	}
	e.destroy()
	delete(a.entries, key)
	return true
}

// Len returns the number of entries.
func (a *Atlas) Len() int {
	return len(a.entries)
}
