package texture

import (
	"errors"
	"image/color"
	"testing"
)

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, width, height int, bpp byte, topToBottom bool) []byte {
	h := make([]byte, tgaHeaderSize)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = bpp
	if topToBottom {
		h[17] = 0x20
	}
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 32-bit, top-to-bottom: red then half-transparent blue (BGRA order).
	data := tgaHeader(TGATypeUncompressed, 2, 1, 32, true)
	data = append(data,
		0, 0, 255, 255,
		255, 0, 0, 128,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %v, want opaque red", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 128}) {
		t.Errorf("pixel (1,0) = %v, want translucent blue", got)
	}
	if img.Opaque() {
		t.Error("image with alpha 128 should not be opaque")
	}
}

func TestDecodeTGABottomUp24Bit(t *testing.T) {
	// 1x2, 24-bit, bottom-to-top: first stored row is the bottom one.
	data := tgaHeader(TGATypeUncompressed, 1, 2, 24, false)
	data = append(data,
		0, 255, 0, // green, bottom
		255, 0, 0, // blue, top
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("bottom pixel = %v, want green", got)
	}
	if !img.Opaque() {
		t.Error("24-bit TGA should decode opaque")
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1: one RLE packet of 2 white pixels, one raw packet of 1 black pixel.
	data := tgaHeader(TGATypeRLE, 3, 1, 24, true)
	data = append(data,
		0x81, 255, 255, 255,
		0x00, 0, 0, 0,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	for x, want := range []color.RGBA{white, white, black} {
		if got := img.RGBAAt(x, 0); got != want {
			t.Errorf("pixel (%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte {
			h := tgaHeader(TGATypeUncompressed, 1, 1, 24, false)
			h[1] = 1
			return h
		}()},
		{"unsupported type", tgaHeader(3, 1, 1, 24, false)},
		{"unsupported depth", tgaHeader(TGATypeUncompressed, 1, 1, 16, false)},
		{"truncated pixels", tgaHeader(TGATypeUncompressed, 4, 4, 32, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := DecodeTGA([]byte{1}); !errors.Is(err, ErrTGATruncated) {
		t.Errorf("expected ErrTGATruncated, got %v", err)
	}
}
