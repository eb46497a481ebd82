package wad

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestReadBytesRoundTrip(t *testing.T) {
	t.Parallel()

	input := testArchive(t)
	w, err := Read(input)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Magic != MagicIWAD {
		t.Fatalf("magic = %q", w.Magic)
	}
	if len(w.Lumps) != len(testLumps()) {
		t.Fatalf("lumps = %d, want %d", len(w.Lumps), len(testLumps()))
	}
	if w.Size() != len(input) {
		t.Fatalf("Size = %d, want %d", w.Size(), len(input))
	}
	if got := w.Bytes(); xxhash.Sum64(got) != xxhash.Sum64(input) {
		t.Fatalf("re-serialized archive differs from input")
	}
}

func TestReadPreservesPWADAndEmptyLumps(t *testing.T) {
	t.Parallel()

	in := &WAD{Magic: MagicPWAD, Lumps: []Lump{{Name: "MAP01"}, {Name: "THINGS", Data: []byte{1, 2}}}}
	w, err := Read(in.Bytes())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Magic != MagicPWAD {
		t.Fatalf("magic = %q", w.Magic)
	}
	if len(w.Lumps[0].Data) != 0 || !bytes.Equal(w.Lumps[1].Data, []byte{1, 2}) {
		t.Fatalf("unexpected lumps %+v", w.Lumps)
	}
}

func TestReadLowerCaseNames(t *testing.T) {
	t.Parallel()

	buf := (&WAD{Magic: MagicPWAD, Lumps: []Lump{{Name: "X", Data: []byte{1}}}}).Bytes()
	// Directory name field starts 8 bytes into the only entry
	copy(buf[len(buf)-8:], "w94_1\x00\x00\x00")
	w, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Lumps[0].Name != "W94_1" {
		t.Fatalf("name = %q", w.Lumps[0].Name)
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	valid := (&WAD{Magic: MagicIWAD, Lumps: []Lump{{Name: "A", Data: []byte{1, 2, 3}}}}).Bytes()

	badMagic := bytes.Clone(valid)
	copy(badMagic, "JUNK")

	badTable := bytes.Clone(valid)
	binary.LittleEndian.PutUint32(badTable[8:], uint32(len(valid)))

	badCount := bytes.Clone(valid)
	binary.LittleEndian.PutUint32(badCount[4:], 0xffffffff)

	badLump := bytes.Clone(valid)
	binary.LittleEndian.PutUint32(badLump[len(valid)-12:], 100)

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"short header", valid[:8], ErrTruncated},
		{"bad magic", badMagic, ErrBadMagic},
		{"table past end", badTable, ErrDirectoryBounds},
		{"negative count", badCount, ErrDirectoryBounds},
		{"lump past end", badLump, ErrDirectoryBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(tt.buf)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !IsFormatError(err) {
				t.Fatalf("err = %T, want *FormatError", err)
			}
		})
	}
}

func TestIndexFindsLastOccurrence(t *testing.T) {
	t.Parallel()

	w := &WAD{Lumps: []Lump{{Name: "PNAMES", Data: []byte{1}}, {Name: "X"}, {Name: "PNAMES", Data: []byte{2}}}}
	if i := w.Index("pnames"); i != 2 {
		t.Fatalf("Index = %d", i)
	}
	l, ok := w.Lump("PNAMES")
	if !ok || l.Data[0] != 2 {
		t.Fatalf("Lump = %+v, %v", l, ok)
	}
	if _, ok := w.Lump("NOPE"); ok {
		t.Fatalf("found missing lump")
	}
}

func TestString8(t *testing.T) {
	t.Parallel()

	s := NewString8("startan3x")
	if s.String() != "STARTAN3" {
		t.Fatalf("truncated name = %q", s.String())
	}
	short := NewString8("sky1")
	if short.Name() != "SKY1" || short[4] != 0 {
		t.Fatalf("short name = %q %v", short.Name(), short)
	}
}
