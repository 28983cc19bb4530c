package assets

import (
	"github.com/Faultbox/midgard-atlas/internal/atlas"
	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
)

type stubBuffer struct{}

func (stubBuffer) Width() int     { return 64 }
func (stubBuffer) Height() int    { return 64 }
func (stubBuffer) Pixels() []byte { return nil }

type stubImage struct{ w, h int }

func (i stubImage) Texture() uint32 { return 1 }
func (i stubImage) Width() int      { return i.w }
func (i stubImage) Height() int     { return i.h }
func (i stubImage) Destroy()        {}

type stubBinder struct{}

func (stubBinder) Bind(buf texture.Buffer) (atlas.Image, error) {
	return stubImage{buf.Width(), buf.Height()}, nil
}
