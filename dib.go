package icopack

// maskStride returns the padded byte width of one transparency-mask
// scanline: 1 bit per pixel, rounded up to a 32-bit boundary.
func maskStride(width int) int {
	return ((width + 31) / 32) * 4
}

// encodeDIB lays out one raster as an uncompressed 32-bit device-independent
// bitmap: the BGRA color map (XOR map) followed by the 1-bit transparency
// mask (AND map). Both sections are stored bottom-up, so source row y lands
// on destination row W-1-y.
func encodeDIB(r *Raster) []byte {
	w := r.Width()
	xorSize := w * w * 4
	stride := maskStride(w)
	out := make([]byte, xorSize+stride*w)

	for y := 0; y < w; y++ {
		row := w - 1 - y
		for x := 0; x < w; x++ {
			red, green, blue, alpha := r.RGBA(x, y)
			off := (row*w + x) * 4
			out[off+0] = blue
			out[off+1] = green
			out[off+2] = red
			out[off+3] = alpha
			// Mask bit 1 = transparent, 0 = opaque; any nonzero alpha
			// counts as opaque. Bits are MSB-first within each byte.
			if alpha == 0 {
				out[xorSize+row*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return out
}
