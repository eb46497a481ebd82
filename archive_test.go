package wad

import (
	"slices"
	"testing"
)

// Fixture layout. PNAMES indices are deliberately sparse in use so that compaction renumbers.
var testPatchNames = []string{"UNUSEDP", "WALL00_1", "SKYP", "BIGP", "DOORP", "WALL00_2"}

func testTexture(name string, patches ...int) *Texture {
	t := &Texture{Name: name, Width: 64, Height: 128}
	for i, p := range patches {
		t.Patches = append(t.Patches, TexturePatch{XOffset: int16(i * 32), Index: p, StepDir: 1})
	}
	return t
}

func testTextures() []*Texture {
	return []*Texture{
		testTexture("STARTAN", 1, 5),
		testTexture("SKY1", 2),
		testTexture("DOOR1", 4),
		testTexture("BIGDOOR", 3),
	}
}

func thingsData(types ...int16) []byte {
	things := make([]binThing, len(types))
	for i, t := range types {
		things[i] = binThing{X: int16(i * 64), Y: 32, Type: t, Options: 7}
	}
	return encodeRecords(things, nil)
}

// sidesData takes upper, lower and middle texture names per side.
func sidesData(sides ...[3]string) []byte {
	records := make([]binSide, len(sides))
	for i, s := range sides {
		records[i] = binSide{
			XOffset:       int16(i),
			UpperTexture:  NewString8(s[0]),
			LowerTexture:  NewString8(s[1]),
			MiddleTexture: NewString8(s[2]),
			SectorNum:     int16(i),
		}
	}
	return encodeRecords(records, nil)
}

type testSector struct {
	floor, ceiling string
	light          int16
}

func sectorsData(sectors ...testSector) []byte {
	records := make([]binSector, len(sectors))
	for i, s := range sectors {
		records[i] = binSector{
			CeilingHeight:  128,
			FloorTexture:   NewString8(s.floor),
			CeilingTexture: NewString8(s.ceiling),
			LightLevel:     s.light,
			TagNum:         int16(i),
		}
	}
	return encodeRecords(records, nil)
}

// levelBlock returns a marker followed by the ten payload lumps in canonical order.
func levelBlock(marker string, things, sides, sectors []byte) []Lump {
	lumps := []Lump{{Name: marker}}
	for _, name := range LevelLumps {
		data := []byte(marker + "/" + name)
		switch name {
		case "THINGS":
			data = things
		case "SIDEDEFS":
			data = sides
		case "SECTORS":
			data = sectors
		}
		lumps = append(lumps, Lump{Name: name, Data: data})
	}
	return lumps
}

// testPicture builds a w by h picture where each column is one opaque post of value x.
func testPicture(w, h int) []byte {
	out := []byte{
		byte(w), byte(w >> 8), byte(h), byte(h >> 8),
		3, 0, 5, 0,
	}
	pos := 8 + 4*w
	for x := 0; x < w; x++ {
		out = append(out, byte(pos), byte(pos>>8), byte(pos>>16), byte(pos>>24))
		pos += h + 5
	}
	for x := 0; x < w; x++ {
		out = append(out, 0, byte(h), 0)
		for y := 0; y < h; y++ {
			out = append(out, byte(x))
		}
		out = append(out, 0, postEnd)
	}
	return out
}

func testLumps() []Lump {
	lumps := []Lump{
		{Name: "PLAYPAL", Data: make([]byte, 768)},
		{Name: PatchNamesLump, Data: BuildPatchNames(testPatchNames)},
		{Name: "TEXTURE1", Data: BuildTextures(testTextures())},
	}
	lumps = append(lumps, levelBlock("E1M1",
		thingsData(1, 9, 3001, 2001),
		sidesData([3]string{"-", "-", "STARTAN"}, [3]string{"DOOR1", "-", "-"}),
		sectorsData(testSector{"FLOOR4_8", "CEIL3_5", 40}, testSector{"FLOOR4_8", "CEIL3_5", 200}),
	)...)
	lumps = append(lumps, levelBlock("E1M2",
		thingsData(1, 3004),
		sidesData([3]string{"-", "-", "BIGDOOR"}),
		sectorsData(testSector{"NUKAGE1", "CEIL3_5", 160}),
	)...)
	for _, name := range []string{
		"TITLEPIC", "CREDIT", "HELP1", "WIMAP0", "WIA00000", "M_DOOM", "GENMIDI", "DMXGUS",
		"ENDOOM", "DSPISTOL", "DPPISTOL", "D_E1M1", "DEMO1", "COLORMAP",
	} {
		lumps = append(lumps, Lump{Name: name, Data: []byte(name)})
	}
	lumps = append(lumps,
		Lump{Name: "S_START"},
		Lump{Name: "PLAYA1", Data: testPicture(4, 6)},
		Lump{Name: "POSSA1", Data: testPicture(3, 2)},
		Lump{Name: "SARGA1", Data: testPicture(5, 5)},
		Lump{Name: "S_END"},
		Lump{Name: "P_START"},
		Lump{Name: "P1_START"},
	)
	for _, name := range testPatchNames {
		lumps = append(lumps, Lump{Name: name, Data: testPicture(2, 2)})
	}
	lumps = append(lumps,
		Lump{Name: "P1_END"},
		Lump{Name: "P_END"},
		Lump{Name: "F_START"},
		Lump{Name: "F1_START"},
	)
	for _, name := range []string{"FLOOR4_8", "CEIL3_5", "NUKAGE1", "F_SKY1", "FLOOR7_2"} {
		lumps = append(lumps, Lump{Name: name, Data: make([]byte, 4096)})
	}
	lumps = append(lumps, Lump{Name: "F1_END"}, Lump{Name: "F_END"})
	return lumps
}

func testArchive(t testing.TB) []byte {
	t.Helper()
	return (&WAD{Magic: MagicIWAD, Lumps: testLumps()}).Bytes()
}

func lumpNames(lumps []Lump) []string {
	names := make([]string, len(lumps))
	for i, l := range lumps {
		names[i] = l.Name
	}
	return names
}

func mustMinify(t *testing.T, input []byte, opts Options) (*WAD, *Report) {
	t.Helper()
	output, report, err := Minify(input, opts)
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	w, err := Read(output)
	if err != nil {
		t.Fatalf("Read output: %v", err)
	}
	return w, report
}

func assertHas(t *testing.T, w *WAD, names ...string) {
	t.Helper()
	have := lumpNames(w.Lumps)
	for _, n := range names {
		if !slices.Contains(have, n) {
			t.Errorf("output lacks %v", n)
		}
	}
}

func assertLacks(t *testing.T, w *WAD, names ...string) {
	t.Helper()
	have := lumpNames(w.Lumps)
	for _, n := range names {
		if slices.Contains(have, n) {
			t.Errorf("output still has %v", n)
		}
	}
}
