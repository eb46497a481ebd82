package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type binPatchImageHeader struct {
	Width, Height, LeftOffset, TopOffset int16
}

// The doom picture (image) format. Sometimes called a patch, but this code considers a patch to
// be a parent entity that makes up part of a texture, and points to a picture
type Picture struct {
	Width, Height         int
	LeftOffset, TopOffset int // Allows soulspheres, weapons and keys to float
	Columns               []Column
}

// Rather than implement column posts, just set column to transparent and fill in post data.
type Column []byte

// TransparentIndex fills picture cells not covered by any post
const TransparentIndex = 255

// Largest width or height accepted by the picture heuristic
const maxPictureSide = 2048

const postEnd = 0xff

// LooksLikePicture reports whether data has a self-consistent picture header: positive bounded
// dimensions, a complete column offset table and a first column offset inside the lump. It is a
// heuristic; raw lumps may pass it by accident.
func LooksLikePicture(data []byte) bool {
	if _, ok := pictureHeader(data); !ok {
		return false
	}
	first := int32(binary.LittleEndian.Uint32(data[8:12]))
	return first >= 0 && int(first) < len(data)
}

func pictureHeader(data []byte) (binPatchImageHeader, bool) {
	var header binPatchImageHeader
	if len(data) < 8 {
		return header, false
	}
	_ = binary.Read(bytes.NewReader(data[:8]), binary.LittleEndian, &header)
	if header.Width <= 0 || header.Height <= 0 || header.Width > maxPictureSide || header.Height > maxPictureSide {
		return header, false
	}
	if len(data) < 8+int(header.Width)*4 {
		return header, false
	}
	return header, true
}

// DegradePicture replaces every column with a single one pixel post, keeping the header and the
// column offset table shape. Data that does not look like a picture is returned unchanged.
func DegradePicture(data []byte) []byte {
	if !LooksLikePicture(data) {
		return data
	}
	header, _ := pictureHeader(data)

	// topdelta, length, padding, one pixel, padding, end of column
	column := []byte{0, 1, 0, 0, 0, postEnd}

	width := int(header.Width)
	offsets := make([]int32, width)
	pos := 8 + 4*width
	for i := range offsets {
		offsets[i] = int32(pos)
		pos += len(column)
	}

	out := bytes.NewBuffer(make([]byte, 0, pos))
	_ = binary.Write(out, binary.LittleEndian, &header)
	_ = binary.Write(out, binary.LittleEndian, offsets)
	for range offsets {
		out.Write(column)
	}
	return out.Bytes()
}

// DecodePicture expands a picture lump into columns of palette indices.
func DecodePicture(lump []byte) (*Picture, error) {
	header, ok := pictureHeader(lump)
	if !ok {
		return nil, fmt.Errorf("not a picture: bad header")
	}
	reader := bytes.NewReader(lump[8:])

	// Initialise rectangular picture space to transparent
	columns := make([]Column, header.Width)
	for i := range columns {
		columns[i] = make(Column, header.Height)
		for j := range columns[i] {
			columns[i][j] = TransparentIndex
		}
	}

	// Read column offsets
	offsets := make([]int32, header.Width)
	if err := binary.Read(reader, binary.LittleEndian, offsets); err != nil {
		return nil, err
	}

	// For each column offset, expand out the posts into columns
	for columnIndex, offset := range offsets {
		pos := int(offset)
		for {
			if pos < 0 || pos >= len(lump) {
				return nil, fmt.Errorf("column %d runs past end of lump", columnIndex)
			}
			topDelta := int(lump[pos])
			pos += 1
			if topDelta == postEnd {
				break
			}
			if pos+2 > len(lump) {
				return nil, fmt.Errorf("column %d: truncated post", columnIndex)
			}
			numPixels := int(lump[pos])
			pos += 1
			pos += 1 // Padding
			if pos+numPixels+1 > len(lump) {
				return nil, fmt.Errorf("column %d: truncated post", columnIndex)
			}
			for i := range numPixels {
				if topDelta+i < len(columns[columnIndex]) {
					columns[columnIndex][topDelta+i] = lump[pos]
				}
				pos += 1
			}
			pos += 1 // Padding
		}
	}

	return &Picture{
		Width:      int(header.Width),
		Height:     int(header.Height),
		LeftOffset: int(header.LeftOffset),
		TopOffset:  int(header.TopOffset),
		Columns:    columns,
	}, nil
}
