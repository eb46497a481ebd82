// Package wad reads, reduces and rewrites Doom's data archives also known as WAD files.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html

package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// WAD is a struct that represents Doom's data archive that contains graphics, sounds, and level
// data. The data is organized as named lumps, and lump order is significant.
type WAD struct {
	Magic string // "IWAD" or "PWAD"
	Lumps []Lump
}

// Lump is one named blob. Names are not unique within an archive.
type Lump struct {
	Name string
	Data []byte
}

type binHeader struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

type binLumpInfo struct {
	Filepos int32
	Size    int32
	Name    String8
}

const (
	headerSize   = 12
	lumpInfoSize = 16
)

// Recognized archive tags
const (
	MagicIWAD = "IWAD"
	MagicPWAD = "PWAD"
)

// WAD eight-character string type. Null-terminated for short strings.
type String8 [8]byte

// String converts String8 to string
func (s String8) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[0:i])
}

// Name returns the upper case form used for all lump and texture lookups.
func (s String8) Name() string {
	return strings.ToUpper(s.String())
}

// NewString8 packs name into a null-padded eight byte field, truncating longer names.
func NewString8(name string) String8 {
	var s String8
	copy(s[:], strings.ToUpper(name))
	return s
}

// Read parses a complete archive held in memory. Lump data is copied out of buf.
func Read(buf []byte) (*WAD, error) {
	if len(buf) < headerSize {
		return nil, formatErrorf(ErrTruncated, "header needs %d bytes, have %d", headerSize, len(buf))
	}

	var header binHeader
	if err := binary.Read(bytes.NewReader(buf[:headerSize]), binary.LittleEndian, &header); err != nil {
		return nil, formatErrorf(err, "read header")
	}
	magic := string(header.Magic[:])
	if magic != MagicIWAD && magic != MagicPWAD {
		return nil, formatErrorf(ErrBadMagic, "bad magic: %q", header.Magic[:])
	}

	numLumps, tableOfs := int64(header.NumLumps), int64(header.InfoTableOfs)
	if numLumps < 0 || tableOfs < 0 || tableOfs+numLumps*lumpInfoSize > int64(len(buf)) {
		return nil, formatErrorf(ErrDirectoryBounds, "directory of %d entries at %d exceeds %d bytes",
			numLumps, tableOfs, len(buf))
	}
	logger.Printf("Reading %v directory: %v lumps", magic, numLumps)

	infos := make([]binLumpInfo, numLumps)
	table := bytes.NewReader(buf[tableOfs : tableOfs+numLumps*lumpInfoSize])
	if err := binary.Read(table, binary.LittleEndian, infos); err != nil {
		return nil, formatErrorf(err, "read directory")
	}

	w := &WAD{Magic: magic, Lumps: make([]Lump, len(infos))}
	for i, info := range infos {
		pos, size := int64(info.Filepos), int64(info.Size)
		if pos < 0 || size < 0 || pos+size > int64(len(buf)) {
			return nil, formatErrorf(ErrDirectoryBounds, "lump %d (%v) at %d+%d exceeds %d bytes",
				i, info.Name, pos, size, len(buf))
		}
		data := make([]byte, size)
		copy(data, buf[pos:pos+size])
		w.Lumps[i] = Lump{Name: info.Name.Name(), Data: data}
	}
	return w, nil
}

// Bytes serializes the archive: header, lump data in order, then the directory.
// Offsets are always recomputed.
func (w *WAD) Bytes() []byte {
	out := bytes.NewBuffer(make([]byte, 0, w.Size()))

	infos := make([]binLumpInfo, len(w.Lumps))
	pos := headerSize
	for i, l := range w.Lumps {
		infos[i] = binLumpInfo{Filepos: int32(pos), Size: int32(len(l.Data)), Name: NewString8(l.Name)}
		pos += len(l.Data)
	}

	var header binHeader
	copy(header.Magic[:], w.Magic)
	header.NumLumps = int32(len(w.Lumps))
	header.InfoTableOfs = int32(pos)

	// Writes into a bytes.Buffer cannot fail
	_ = binary.Write(out, binary.LittleEndian, &header)
	for _, l := range w.Lumps {
		out.Write(l.Data)
	}
	_ = binary.Write(out, binary.LittleEndian, infos)
	return out.Bytes()
}

// Index returns the position of the last lump called name, or -1.
func (w *WAD) Index(name string) int {
	name = strings.ToUpper(name)
	for i := len(w.Lumps) - 1; i >= 0; i-- {
		if w.Lumps[i].Name == name {
			return i
		}
	}
	return -1
}

// Lump returns the last lump called name
func (w *WAD) Lump(name string) (*Lump, bool) {
	i := w.Index(name)
	if i < 0 {
		return nil, false
	}
	return &w.Lumps[i], true
}

// Size is the serialized length of the archive
func (w *WAD) Size() int {
	size := headerSize + len(w.Lumps)*lumpInfoSize
	for _, l := range w.Lumps {
		size += len(l.Data)
	}
	return size
}

func (w *WAD) String() string {
	return fmt.Sprintf("%v: %v lumps, %v bytes", w.Magic, len(w.Lumps), w.Size())
}
