package icopack

import (
	"bytes"
	"encoding/binary"
)

const (
	fileHeaderSize = 6
	dirEntrySize   = 16
	infoHeaderSize = 40
)

// bitmapInfoHeader is the fixed 40-byte descriptor preceding each image's
// pixel data. Height is doubled to cover the color map plus the mask.
type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func writeInfoHeader(buf *bytes.Buffer, width int) {
	binary.Write(buf, binary.LittleEndian, bitmapInfoHeader{
		Size:     infoHeaderSize,
		Width:    int32(width),
		Height:   int32(width * 2),
		Planes:   1,
		BitCount: 32,
	})
}

// writeDirEntry appends one 16-byte directory record. dataSize counts the
// info header plus the full payload (color map and mask); offset is the
// byte position of the info header from the start of the container.
func writeDirEntry(buf *bytes.Buffer, width int, dataSize, offset uint32) {
	w := uint8(width)
	if width >= 256 {
		w = 0
	}
	buf.Write([]byte{w, w, 0, 0}) // width, height, palette, reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(32))
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, offset)
}

// Assemble concatenates the container: the 6-byte file header, one
// directory entry per raster, then one (info header, DIB payload) pair per
// raster in the same order. Offsets run strictly increasing with index.
func Assemble(rasters []*Raster) []byte {
	n := len(rasters)
	offset := uint32(fileHeaderSize + n*dirEntrySize)

	var dir, body bytes.Buffer
	// Header: reserved, type (1=ICO), count.
	binary.Write(&dir, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	for _, r := range rasters {
		dib := encodeDIB(r)
		writeDirEntry(&dir, r.Width(), uint32(infoHeaderSize+len(dib)), offset)
		writeInfoHeader(&body, r.Width())
		body.Write(dib)
		offset += uint32(infoHeaderSize + len(dib))
	}

	out := make([]byte, 0, offset)
	out = append(out, dir.Bytes()...)
	return append(out, body.Bytes()...)
}
