package wad

import (
	"bytes"
	"encoding/binary"
	"slices"
)

// LevelLumps is the fixed order of the lumps that follow a level marker.
var LevelLumps = []string{
	"THINGS",
	"LINEDEFS",
	"SIDEDEFS",
	"VERTEXES",
	"SEGS",
	"SSECTORS",
	"NODES",
	"SECTORS",
	"REJECT",
	"BLOCKMAP",
}

// NoTexture is the side texture name meaning "draw nothing here".
const NoTexture = "-"

type binThing struct {
	X       int16
	Y       int16
	Angle   int16
	Type    int16
	Options int16
}

type binSide struct {
	XOffset       int16
	YOffset       int16
	UpperTexture  String8
	LowerTexture  String8
	MiddleTexture String8
	SectorNum     int16
}

type binSector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   String8
	CeilingTexture String8
	LightLevel     int16
	Type           int16
	TagNum         int16
}

// IsLevelMarker reports whether name is an ExMy or MAPxx level marker.
func IsLevelMarker(name string) bool {
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	switch {
	case len(name) == 4 && name[0] == 'E' && isDigit(name[1]) && name[2] == 'M' && isDigit(name[3]):
		return true
	case len(name) == 5 && name[:3] == "MAP" && isDigit(name[3]) && isDigit(name[4]):
		return true
	}
	return false
}

// IsLevelLump reports whether name is one of the ten level payload lumps.
func IsLevelLump(name string) bool {
	return slices.Contains(LevelLumps, name)
}

// LevelNames returns the level markers found in lumps, in archive order.
func LevelNames(lumps []Lump) []string {
	result := make([]string, 0)
	for _, l := range lumps {
		if IsLevelMarker(l.Name) {
			result = append(result, l.Name)
		}
	}
	return result
}

// levelIndex returns the position of the last marker called name
func levelIndex(lumps []Lump, name string) int {
	idx := -1
	for i, l := range lumps {
		if l.Name == name && IsLevelMarker(l.Name) {
			idx = i
		}
	}
	return idx
}

// levelLump returns the data of the payload lump called name within the block that follows
// the marker at markerIdx. Lookup is positional: only the ten lumps after the marker count.
func levelLump(lumps []Lump, markerIdx int, name string) []byte {
	var data []byte
	for i := markerIdx + 1; i <= markerIdx+len(LevelLumps) && i < len(lumps); i++ {
		if lumps[i].Name == name {
			data = lumps[i].Data
		}
	}
	return data
}

// inLevelBlock reports whether position i lies in the payload block of the marker at markerIdx
func inLevelBlock(i, markerIdx int) bool {
	return i > markerIdx && i <= markerIdx+len(LevelLumps)
}

// decodeRecords splits data into whole fixed size records; a trailing partial record is
// returned as the remainder.
func decodeRecords[T any](data []byte) ([]T, []byte) {
	var zero T
	size := binary.Size(zero)
	records := make([]T, len(data)/size)
	n := len(records) * size
	_ = binary.Read(bytes.NewReader(data[:n]), binary.LittleEndian, records)
	return records, data[n:]
}

func encodeRecords[T any](records []T, rest []byte) []byte {
	out := new(bytes.Buffer)
	_ = binary.Write(out, binary.LittleEndian, records)
	out.Write(rest)
	return out.Bytes()
}

// textures returns upper, lower and middle texture names of a side
func (s *binSide) textures() [3]string {
	return [3]string{s.UpperTexture.Name(), s.LowerTexture.Name(), s.MiddleTexture.Name()}
}

// Thing types kept by the minimal things rewrite
var (
	PlayerStartTypes = []int16{1, 2, 3, 4}
	KeptMonsterTypes = []int16{3001, 3004}
)

// Legacy thing types rewritten before the keep check.
var thingTypeRemap = map[int16]int16{
	9: 3004,
}

// MinimalThings keeps player starts and a small monster set; everything else is removed.
// A trailing partial record is dropped.
func MinimalThings(data []byte) []byte {
	things, _ := decodeRecords[binThing](data)
	kept := make([]binThing, 0, len(things))
	for _, t := range things {
		if slices.Contains(PlayerStartTypes, t.Type) {
			kept = append(kept, t)
			continue
		}
		if remapped, ok := thingTypeRemap[t.Type]; ok {
			t.Type = remapped
		}
		if slices.Contains(KeptMonsterTypes, t.Type) {
			kept = append(kept, t)
		}
	}
	logger.Printf("Kept %v of %v things", len(kept), len(things))
	return encodeRecords(kept, nil)
}

// CanonicalSides sets every side texture slot that is not "-" to texture.
func CanonicalSides(data []byte, texture string) []byte {
	sides, rest := decodeRecords[binSide](data)
	name := NewString8(texture)
	for i := range sides {
		for _, slot := range []*String8{&sides[i].UpperTexture, &sides[i].LowerTexture, &sides[i].MiddleTexture} {
			if slot.String() == NoTexture {
				continue
			}
			*slot = name
		}
	}
	return encodeRecords(sides, rest)
}

// CanonicalSectors sets every sector floor and ceiling flat.
func CanonicalSectors(data []byte, floor, ceiling string) []byte {
	sectors, rest := decodeRecords[binSector](data)
	floorName, ceilingName := NewString8(floor), NewString8(ceiling)
	for i := range sectors {
		sectors[i].FloorTexture = floorName
		sectors[i].CeilingTexture = ceilingName
	}
	return encodeRecords(sectors, rest)
}

// MinSectorLight raises sector light levels below level up to level. Brighter sectors are untouched.
func MinSectorLight(data []byte, level int16) []byte {
	sectors, rest := decodeRecords[binSector](data)
	for i := range sectors {
		if sectors[i].LightLevel < level {
			sectors[i].LightLevel = level
		}
	}
	return encodeRecords(sectors, rest)
}

// firstSurfaces finds the first usable wall texture (middle, then upper, then lower slot of each
// side in turn) and the flats of the first sector of the level at markerIdx.
func firstSurfaces(lumps []Lump, markerIdx int) (wall, floor, ceiling string) {
	sides, _ := decodeRecords[binSide](levelLump(lumps, markerIdx, "SIDEDEFS"))
	for _, s := range sides {
		for _, name := range []string{s.MiddleTexture.Name(), s.UpperTexture.Name(), s.LowerTexture.Name()} {
			if name != "" && name != NoTexture {
				wall = name
				break
			}
		}
		if wall != "" {
			break
		}
	}

	sectors, _ := decodeRecords[binSector](levelLump(lumps, markerIdx, "SECTORS"))
	if len(sectors) > 0 {
		floor = sectors[0].FloorTexture.Name()
		ceiling = sectors[0].CeilingTexture.Name()
	}
	return wall, floor, ceiling
}
