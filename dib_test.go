package icopack

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestMaskStride(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{1, 4},
		{8, 4},
		{16, 4},
		{32, 4},
		{33, 8},
		{48, 8},
		{64, 8},
		{256, 32},
	}

	for _, tt := range tests {
		got := maskStride(tt.width)
		if got != tt.want {
			t.Errorf("maskStride(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestEncodeDIBByteOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	got := encodeDIB(NewRaster(img))
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8 (4 color + 4 mask)", len(got))
	}
	if want := []byte{30, 20, 10, 255}; !bytes.Equal(got[:4], want) {
		t.Errorf("color map = %v, want %v (B, G, R, A)", got[:4], want)
	}
	if !bytes.Equal(got[4:], []byte{0, 0, 0, 0}) {
		t.Errorf("mask = %v, want all zero for opaque pixel", got[4:])
	}
}

func TestEncodeDIBTransparentBit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{})

	got := encodeDIB(NewRaster(img))
	if got[4] != 0x80 {
		t.Errorf("mask byte = %#02x, want 0x80 (MSB set for transparent pixel)", got[4])
	}
}

func TestEncodeDIBBottomUp(t *testing.T) {
	// Top row: red, green. Bottom row: blue, white.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := encodeDIB(NewRaster(img))
	want := []byte{
		255, 0, 0, 255, // bottom row first: blue
		255, 255, 255, 255, // white
		0, 0, 255, 255, // then top row: red
		0, 255, 0, 255, // green
	}
	if !bytes.Equal(got[:16], want) {
		t.Errorf("color map = %v, want %v", got[:16], want)
	}
}

func TestEncodeDIBMaskFlipped(t *testing.T) {
	// Only the top-left pixel is transparent; its bit must land on the
	// last mask row because storage is bottom-up.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 0, color.NRGBA{A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	got := encodeDIB(NewRaster(img))
	mask := got[2*2*4:]
	want := []byte{0, 0, 0, 0, 0x80, 0, 0, 0}
	if !bytes.Equal(mask, want) {
		t.Errorf("mask = %v, want %v", mask, want)
	}
}

func TestEncodeDIBAlphaThreshold(t *testing.T) {
	// Any nonzero alpha is opaque.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 1})

	got := encodeDIB(NewRaster(img))
	if got[4] != 0 {
		t.Errorf("mask byte = %#02x, want 0 (alpha=1 counts as opaque)", got[4])
	}
}
