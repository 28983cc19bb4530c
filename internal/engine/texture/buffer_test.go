package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRGBABufferWrapsTightRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	buf := NewRGBABuffer(img)

	if buf.Width() != 4 || buf.Height() != 2 {
		t.Errorf("expected 4x2, got %dx%d", buf.Width(), buf.Height())
	}
	if &buf.Pixels()[0] != &img.Pix[0] {
		t.Error("expected tight RGBA image to be wrapped without copying")
	}
}

func TestNewRGBABufferConvertsOtherImages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	src.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})

	buf := NewRGBABuffer(src)
	if buf.Width() != 2 || buf.Height() != 1 {
		t.Fatalf("expected 2x1, got %dx%d", buf.Width(), buf.Height())
	}
	if len(buf.Pixels()) != 2*1*4 {
		t.Fatalf("expected %d bytes, got %d", 8, len(buf.Pixels()))
	}
	px := buf.Pixels()[:4]
	if px[0] != 255 || px[1] != 0 || px[2] != 0 || px[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", px)
	}
}
