package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Texture table lumps, in the order the engine loads them
var TextureLumps = []string{"TEXTURE1", "TEXTURE2"}

type binTextureHeader struct {
	TextureName String8
	Masked      int32
	Width       int16
	Height      int16
	Unused      int32 // ColumnDirectory
	NumPatches  int16
}

type binPatch struct {
	XOffset      int16
	YOffset      int16
	PatchNameIdx int16
	StepDir      int16
	ColorMap     int16
}

// Texture is a composed wall texture: a named canvas with patches drawn onto it.
// Fields that the engine ignores are carried so the record can be written back unchanged.
type Texture struct {
	Name            string
	Masked          int32
	Width, Height   int16
	ColumnDirectory int32
	Patches         []TexturePatch
}

// TexturePatch places one PNAMES entry on a texture.
type TexturePatch struct {
	XOffset  int16 // horizontal offset of patch relative to upper-left of texture
	YOffset  int16 // vertical offset of patch relative to upper-left of texture
	Index    int   // index into PNAMES
	StepDir  int16
	ColorMap int16
}

// ParseTextures reads a TEXTUREn lump.
func ParseTextures(data []byte) ([]*Texture, error) {
	reader := bytes.NewReader(data)

	// Read header
	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, formatErrorf(ErrTruncated, "texture table header")
	}
	if count < 0 || int64(count)*4 > int64(reader.Len()) {
		return nil, formatErrorf(ErrTruncated, "texture table claims %d entries in %d bytes", count, len(data))
	}

	// Read offsets
	offsets := make([]int32, count)
	if err := binary.Read(reader, binary.LittleEndian, offsets); err != nil {
		return nil, formatErrorf(err, "texture offsets")
	}

	// For each offset...
	textures := make([]*Texture, 0, count)
	for i, offset := range offsets {
		if offset < 0 || int(offset) >= len(data) {
			return nil, formatErrorf(ErrTruncated, "texture %d offset %d outside %d bytes", i, offset, len(data))
		}
		texture, err := parseTexture(data[offset:])
		if err != nil {
			return nil, formatErrorf(err, "texture %d at %d", i, offset)
		}
		textures = append(textures, texture)
	}
	return textures, nil
}

func parseTexture(record []byte) (*Texture, error) {
	reader := bytes.NewReader(record)

	var header binTextureHeader
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return nil, ErrTruncated
	}
	if header.NumPatches < 0 {
		return nil, fmt.Errorf("negative patch count %d", header.NumPatches)
	}

	binPatches := make([]binPatch, header.NumPatches)
	if err := binary.Read(reader, binary.LittleEndian, binPatches); err != nil {
		return nil, ErrTruncated
	}

	texture := &Texture{
		Name:            header.TextureName.Name(),
		Masked:          header.Masked,
		Width:           header.Width,
		Height:          header.Height,
		ColumnDirectory: header.Unused,
		Patches:         make([]TexturePatch, len(binPatches)),
	}
	for pi, p := range binPatches {
		texture.Patches[pi] = TexturePatch{
			XOffset:  p.XOffset,
			YOffset:  p.YOffset,
			Index:    int(p.PatchNameIdx),
			StepDir:  p.StepDir,
			ColorMap: p.ColorMap,
		}
	}
	return texture, nil
}

// BuildTextures encodes textures as a TEXTUREn lump: count, offset table, then records.
func BuildTextures(textures []*Texture) []byte {
	out := new(bytes.Buffer)

	offsets := make([]int32, len(textures))
	pos := 4 + 4*len(textures)
	for i, t := range textures {
		offsets[i] = int32(pos)
		pos += binary.Size(binTextureHeader{}) + len(t.Patches)*binary.Size(binPatch{})
	}
	_ = binary.Write(out, binary.LittleEndian, int32(len(textures)))
	_ = binary.Write(out, binary.LittleEndian, offsets)

	for _, t := range textures {
		header := binTextureHeader{
			TextureName: NewString8(t.Name),
			Masked:      t.Masked,
			Width:       t.Width,
			Height:      t.Height,
			Unused:      t.ColumnDirectory,
			NumPatches:  int16(len(t.Patches)),
		}
		_ = binary.Write(out, binary.LittleEndian, &header)
		for _, p := range t.Patches {
			_ = binary.Write(out, binary.LittleEndian, &binPatch{
				XOffset:      p.XOffset,
				YOffset:      p.YOffset,
				PatchNameIdx: int16(p.Index),
				StepDir:      p.StepDir,
				ColorMap:     p.ColorMap,
			})
		}
	}
	return out.Bytes()
}
