package wad

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Report summarizes one Minify run.
type Report struct {
	Level      string
	InputSize  int
	OutputSize int
	InputHash  uint64 // xxhash64 of the input archive
	OutputHash uint64 // xxhash64 of the output archive

	TotalLumps    int
	KeptLumps     int
	TotalTextures int
	KeptTextures  int
	TotalPatches  int
	KeptPatches   int
	KeptFlats     int
}

func newReport(level string, input, output []byte) *Report {
	return &Report{
		Level:      level,
		InputSize:  len(input),
		OutputSize: len(output),
		InputHash:  xxhash.Sum64(input),
		OutputHash: xxhash.Sum64(output),
	}
}

// Saved is the number of bytes removed
func (r *Report) Saved() int {
	return r.InputSize - r.OutputSize
}

// SavedPercent is Saved relative to the input size
func (r *Report) SavedPercent() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.Saved()) * 100 / float64(r.InputSize)
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level  : %v\n", r.Level)
	fmt.Fprintf(&b, "Input  : %v bytes (xxh64 %016x)\n", r.InputSize, r.InputHash)
	fmt.Fprintf(&b, "Output : %v bytes (xxh64 %016x)\n", r.OutputSize, r.OutputHash)
	fmt.Fprintf(&b, "Saved  : %v bytes (%.2f%%)\n", r.Saved(), r.SavedPercent())
	fmt.Fprintf(&b, "Kept lumps   : %v / %v\n", r.KeptLumps, r.TotalLumps)
	fmt.Fprintf(&b, "Kept textures: %v / %v\n", r.KeptTextures, r.TotalTextures)
	fmt.Fprintf(&b, "Kept patches : %v / %v\n", r.KeptPatches, r.TotalPatches)
	fmt.Fprintf(&b, "Kept flats   : %v\n", r.KeptFlats)
	return b.String()
}
