package icopack

import (
	"image"
	"image/draw"
)

// Raster is an immutable square region of straight-alpha RGBA8 pixels,
// stored top-down in row-major order. It is the unit the encoder consumes:
// one Raster per embedded icon resolution.
type Raster struct {
	width int
	pix   []byte // 4 bytes per pixel: R, G, B, A
}

// NewRaster copies img into a Raster, converting premultiplied or paletted
// pixels to straight-alpha RGBA8.
func NewRaster(img image.Image) *Raster {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return &Raster{width: b.Dx(), pix: n.Pix}
}

// Width returns the side length in pixels.
func (r *Raster) Width() int { return r.width }

// RGBA returns the channels of the pixel at column x, row y (top-down).
// Coordinates outside the region read as transparent black.
func (r *Raster) RGBA(x, y int) (red, green, blue, alpha uint8) {
	if x < 0 || y < 0 || x >= r.width {
		return 0, 0, 0, 0
	}
	off := (y*r.width + x) * 4
	if off+4 > len(r.pix) {
		return 0, 0, 0, 0
	}
	return r.pix[off], r.pix[off+1], r.pix[off+2], r.pix[off+3]
}

// Bytes returns a copy of the pixel buffer (top-down RGBA8,
// width*width*4 bytes).
func (r *Raster) Bytes() []byte {
	out := make([]byte, len(r.pix))
	copy(out, r.pix)
	return out
}

// Image returns the pixels as a standalone NRGBA image. The result shares
// no memory with the Raster.
func (r *Raster) Image() image.Image {
	if r.width == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	return &image.NRGBA{
		Pix:    r.Bytes(),
		Stride: r.width * 4,
		Rect:   image.Rect(0, 0, r.width, len(r.pix)/(r.width*4)),
	}
}
