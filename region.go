package wad

import "strings"

// region is the resource category the pipeline is currently walking through.
type region int

const (
	outside region = iota
	inPatches
	inFlats
	inSprites
)

func (r region) String() string {
	switch r {
	case inPatches:
		return "patches"
	case inFlats:
		return "flats"
	case inSprites:
		return "sprites"
	}
	return "outside"
}

// Region markers. The doubled forms are what PWAD authors use for the same regions.
var (
	regionStarts = map[string]region{
		"P_START": inPatches, "PP_START": inPatches,
		"F_START": inFlats, "FF_START": inFlats,
		"S_START": inSprites, "SS_START": inSprites,
	}
	regionEnds = map[string]region{
		"P_END": inPatches, "PP_END": inPatches,
		"F_END": inFlats, "FF_END": inFlats,
		"S_END": inSprites, "SS_END": inSprites,
	}
)

// regionTracker follows region markers in lump order. Regions are assumed not to nest; an end
// marker always returns to outside.
type regionTracker struct {
	state region
}

// step consumes one lump name and reports whether it was a marker. Markers change state only
// when they open or close a region; numbered sub-markers such as P1_START leave it alone.
func (t *regionTracker) step(name string) bool {
	if r, ok := regionStarts[name]; ok {
		t.state = r
		return true
	}
	if r, ok := regionEnds[name]; ok {
		if r != t.state {
			logger.Printf("%v closes %v while in %v", name, r, t.state)
		}
		t.state = outside
		return true
	}
	return isSubMarker(name)
}

// isSubMarker matches P1_START, F3_END and similar numbered markers
func isSubMarker(name string) bool {
	var prefix string
	switch {
	case strings.HasSuffix(name, "_START"):
		prefix = strings.TrimSuffix(name, "_START")
	case strings.HasSuffix(name, "_END"):
		prefix = strings.TrimSuffix(name, "_END")
	default:
		return false
	}
	if len(prefix) < 2 || strings.IndexByte("PFS", prefix[0]) < 0 {
		return false
	}
	for _, c := range prefix[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
