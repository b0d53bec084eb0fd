package icopack

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resizer scales a source image to the given target dimensions.
// Implementations must be safe for concurrent use: Pack issues resample
// requests for the resolution ladder in parallel.
type Resizer interface {
	Resize(src image.Image, width, height int) (image.Image, error)
}

// CatmullRom is the default Resizer. It scales with the Catmull-Rom cubic
// kernel and never fails.
var CatmullRom Resizer = catmullRom{}

type catmullRom struct{}

func (catmullRom) Resize(src image.Image, width, height int) (image.Image, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
