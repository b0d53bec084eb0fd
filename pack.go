// Package icopack converts square raster images into multi-resolution
// Windows ICO containers holding uncompressed 32-bit bitmaps.
//
// Each container embeds the source at 48, 32 and 16 pixels plus a 256 px
// canonical image, resampled with a Catmull-Rom cubic kernel. The encoder
// is deterministic: identical input always yields byte-identical output.
package icopack

import (
	"errors"
	"image"
	"io"
	"sync"
)

// Source is a decoded input image plus the format tag reported by its
// decoder (as returned by image.Decode).
type Source struct {
	Image  image.Image
	Format string
}

// Options configures a conversion. The zero value selects defaults.
type Options struct {
	// Resizer performs the cubic resampling. Nil selects CatmullRom.
	Resizer Resizer
}

// ErrInvalidInput reports a source that is not a supported raster format or
// is not square. Match with errors.Is.
var ErrInvalidInput = errors.New("icopack: input must be a square png, jpeg, gif or bmp image")

// canonicalSize is the resolution every source is normalized to; it becomes
// the final container entry.
const canonicalSize = 256

// targetSizes are the resolutions produced ahead of the canonical image,
// in container order.
var targetSizes = []int{48, 32, 16}

func supportedFormat(format string) bool {
	switch format {
	case "png", "jpeg", "gif", "bmp":
		return true
	}
	return false
}

// Pack converts src into ICO container bytes. Any validation or resample
// failure aborts the whole conversion; no partial container is returned.
func Pack(src Source, opts Options) ([]byte, error) {
	rasters, err := Rasters(src, opts)
	if err != nil {
		return nil, err
	}
	return Assemble(rasters), nil
}

// Encode packs src and writes the container to w.
func Encode(w io.Writer, src Source, opts Options) error {
	data, err := Pack(src, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Rasters validates src and returns the ordered resolution ladder
// [48, 32, 16, 256] as rasters, resampling the source to the 256 px
// canonical image first if needed. Resizer errors are returned unchanged.
func Rasters(src Source, opts Options) ([]*Raster, error) {
	if !supportedFormat(src.Format) {
		return nil, ErrInvalidInput
	}
	if src.Image == nil {
		return nil, ErrInvalidInput
	}
	b := src.Image.Bounds()
	if b.Dx() != b.Dy() || b.Dx() < 1 {
		return nil, ErrInvalidInput
	}

	resizer := opts.Resizer
	if resizer == nil {
		resizer = CatmullRom
	}

	canonical := src.Image
	if b.Dx() != canonicalSize {
		scaled, err := resizer.Resize(src.Image, canonicalSize, canonicalSize)
		if err != nil {
			return nil, err
		}
		canonical = scaled
	}

	// Resample the ladder concurrently; slots keep positional order so
	// completion order never affects the container layout.
	rasters := make([]*Raster, len(targetSizes)+1)
	errs := make([]error, len(targetSizes))
	var wg sync.WaitGroup
	for i, size := range targetSizes {
		wg.Add(1)
		go func(i, size int) {
			defer wg.Done()
			scaled, err := resizer.Resize(canonical, size, size)
			if err != nil {
				errs[i] = err
				return
			}
			rasters[i] = NewRaster(scaled)
		}(i, size)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	rasters[len(targetSizes)] = NewRaster(canonical)
	return rasters, nil
}
