// Package gpuimage binds externally populated pixel buffers as OpenGL
// textures.
package gpuimage

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-atlas/internal/atlas"
	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
)

// ErrEmptyBuffer is returned when a buffer has no pixels to bind.
var ErrEmptyBuffer = errors.New("gpuimage: empty buffer")

// Image is a GL texture created from a buffer.
type Image struct {
	texture uint32
	width   int32
	height  int32
}

// Texture returns the GL texture name.
func (img *Image) Texture() uint32 {
	return img.texture
}

// Width returns the texture width.
func (img *Image) Width() int {
	return int(img.width)
}

// Height returns the texture height.
func (img *Image) Height() int {
	return int(img.height)
}

// Destroy deletes the GL texture. Calling it again is a no-op.
func (img *Image) Destroy() {
	if img.texture != 0 {
		gl.DeleteTextures(1, &img.texture)
		img.texture = 0
	}
}

// Binder uploads buffers into new GL textures. It requires a current GL
// context on the calling thread.
type Binder struct{}

// NewBinder returns a Binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Bind implements atlas.Binder.
func (b *Binder) Bind(buf texture.Buffer) (atlas.Image, error) {
	w, h := int32(buf.Width()), int32(buf.Height())
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}

	img := &Image{width: w, height: h}

	var prev int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &prev)
	defer gl.BindTexture(gl.TEXTURE_2D, uint32(prev))

	gl.GenTextures(1, &img.texture)
	gl.BindTexture(gl.TEXTURE_2D, img.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf.Pixels()))

	setSampling(texture.WrapClampToEdge, texture.FilterLinear)

	if code := gl.GetError(); code != gl.NO_ERROR {
		img.Destroy()
		return nil, fmt.Errorf("uploading %dx%d atlas buffer: gl error 0x%x", w, h, code)
	}

	return img, nil
}

// checkBuffer validates a buffer before it reaches GL.
func checkBuffer(buf texture.Buffer) error {
	w, h := buf.Width(), buf.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrEmptyBuffer)
	}
	if want := w * h * 4; len(buf.Pixels()) < want {
		return fmt.Errorf("buffer has %d bytes, %dx%d RGBA needs %d", len(buf.Pixels()), w, h, want)
	}
	return nil
}

// setSampling applies wrap and filter state to the bound 2D texture.
func setSampling(wrap texture.Wrap, filter texture.Filter) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(filter))
}

func glWrap(w texture.Wrap) int32 {
	if w == texture.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func glFilter(f texture.Filter) int32 {
	if f == texture.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}
