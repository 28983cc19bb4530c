package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Buffer is GPU-uploadable pixel memory produced outside this module.
// Pixels are tightly packed RGBA8 rows, top row first.
type Buffer interface {
	Width() int
	Height() int
	Pixels() []byte
}

// RGBABuffer is a Buffer backed by an *image.RGBA.
type RGBABuffer struct {
	img *image.RGBA
}

// NewRGBABuffer wraps img. Images that are not *image.RGBA with a zero
// origin and tight stride are copied.
func NewRGBABuffer(img image.Image) *RGBABuffer {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return &RGBABuffer{img: rgba}
	}
	return &RGBABuffer{img: ImageToRGBA(img)}
}

// Width returns the buffer width in pixels.
func (b *RGBABuffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *RGBABuffer) Height() int { return b.img.Rect.Dy() }

// Pixels returns the raw RGBA8 data.
func (b *RGBABuffer) Pixels() []byte { return b.img.Pix }

// ImageToRGBA converts any image.Image to an *image.RGBA anchored at the origin.
func ImageToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	return rgba
}
