// Package sample renders procedural placeholder icons for the bundled
// tools: a flat disc with a darker rim, anti-aliased, on a transparent
// background.
package sample

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/fogleman/gg"
)

// DefaultHue is the hue (degrees) used when callers don't pick one.
const DefaultHue = 210 // steel blue

// Disc paints a size×size disc icon at the default hue.
func Disc(size int) *image.NRGBA {
	return DiscHue(size, DefaultHue)
}

// DiscHue paints a size×size disc icon with the given hue in degrees.
// Hue wraps modulo 360.
func DiscHue(size int, hue float64) *image.NRGBA {
	body := hsv(hue, 0.65, 0.95)
	rim := hsv(hue, 0.80, 0.50)

	dc := gg.NewContext(size, size)
	center := float64(size) / 2
	radius := center - 0.5 // half-pixel inset so edges don't clip

	dc.SetColor(rim)
	dc.DrawCircle(center, center, radius)
	dc.Fill()
	dc.SetColor(body)
	dc.DrawCircle(center, center, radius*0.82)
	dc.Fill()

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out
}

func hsv(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		// Only reachable with s or v outside [0,1]; fall back to gray.
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
