package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// ErrTGATruncated is returned when TGA data ends before the header or pixels do.
var ErrTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes a TGA image file.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10) TGA
// files with 24 or 32 bits per pixel. 24-bit images decode fully opaque.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		pix:         data[offset:],
		width:       width,
		height:      height,
		bytesPerPix: bpp / 8,
		// Bit 5 of the descriptor marks top-to-bottom row order.
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if err := d.decodeRaw(); err != nil {
			return nil, err
		}
	} else {
		d.decodeRLE()
	}

	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	pix         []byte
	pos         int
	width       int
	height      int
	bytesPerPix int
	topToBottom bool
}

// next reads one BGR(A) pixel from the stream.
func (d *tgaDecoder) next() (color.RGBA, bool) {
	if d.pos+d.bytesPerPix > len(d.pix) {
		return color.RGBA{}, false
	}
	p := d.pix[d.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPerPix == 4 {
		c.A = p[3]
	}
	d.pos += d.bytesPerPix
	return c, true
}

// set stores the n-th pixel in file order.
func (d *tgaDecoder) set(n int, c color.RGBA) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRaw() error {
	count := d.width * d.height
	if len(d.pix) < count*d.bytesPerPix {
		return fmt.Errorf("TGA pixel data: %w", ErrTGATruncated)
	}
	for n := 0; n < count; n++ {
		c, _ := d.next()
		d.set(n, c)
	}
	return nil
}

// decodeRLE tolerates short streams; missing pixels stay transparent.
func (d *tgaDecoder) decodeRLE() {
	count := d.width * d.height
	n := 0
	for n < count && d.pos < len(d.pix) {
		packet := d.pix[d.pos]
		d.pos++
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return
			}
			for i := 0; i < run && n < count; i++ {
				d.set(n, c)
				n++
			}
			continue
		}

		for i := 0; i < run && n < count; i++ {
			c, ok := d.next()
			if !ok {
				return
			}
			d.set(n, c)
			n++
		}
	}
}
