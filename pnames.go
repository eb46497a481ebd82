package wad

import (
	"bytes"
	"encoding/binary"
)

// PNAMES lump name
const PatchNamesLump = "PNAMES"

// ParsePatchNames reads the PNAMES lump into a slice of upper case patch names. Textures refer
// to patches by their position in this slice.
func ParsePatchNames(data []byte) ([]string, error) {
	reader := bytes.NewReader(data)

	// Read PNAMES header
	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, formatErrorf(ErrTruncated, "PNAMES header")
	}
	if count < 0 || int64(count)*8 > int64(reader.Len()) {
		return nil, formatErrorf(ErrTruncated, "PNAMES claims %d names in %d bytes", count, len(data))
	}

	// Read and translate PNAMES body
	pnames := make([]String8, count)
	if err := binary.Read(reader, binary.LittleEndian, pnames); err != nil {
		return nil, formatErrorf(err, "PNAMES body")
	}
	patchNames := make([]string, count)
	for i, p := range pnames {
		patchNames[i] = p.Name() // ToUpper required for "w94_1" patch
	}
	return patchNames, nil
}

// BuildPatchNames encodes names as a PNAMES lump.
func BuildPatchNames(names []string) []byte {
	out := bytes.NewBuffer(make([]byte, 0, 4+8*len(names)))
	pnames := make([]String8, len(names))
	for i, n := range names {
		pnames[i] = NewString8(n)
	}
	_ = binary.Write(out, binary.LittleEndian, int32(len(names)))
	_ = binary.Write(out, binary.LittleEndian, pnames)
	return out.Bytes()
}
