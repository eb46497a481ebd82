package wad

import (
	"slices"
)

// selection walks the original lump sequence once and decides, per lump, whether to keep it,
// drop it or replace its data.
type selection struct {
	policy  *policy
	marker  int // index of the kept level marker
	tables  *tableRewrite
	flats   map[string]struct{}
	regions regionTracker

	keptFlats int
}

// run returns the output lump sequence. Input lumps are never modified.
func (s *selection) run(lumps []Lump) []Lump {
	out := make([]Lump, 0, len(lumps))
	for i, l := range lumps {
		if data, keep := s.decide(lumps, i); keep {
			out = append(out, Lump{Name: l.Name, Data: data})
		}
	}
	return out
}

// decide applies the selection rules in order; the first rule that matches wins.
func (s *selection) decide(lumps []Lump, i int) ([]byte, bool) {
	p := s.policy
	l := lumps[i]
	name := l.Name

	// Kept level rewrites
	if p.MinimalThings && i == s.marker+1 && name == "THINGS" {
		return MinimalThings(l.Data), true
	}
	if p.WallTexture != "" && inLevelBlock(i, s.marker) && name == "SIDEDEFS" {
		return CanonicalSides(l.Data, p.WallTexture), true
	}
	if inLevelBlock(i, s.marker) && name == "SECTORS" {
		data := l.Data
		if p.canonicalFlats() {
			data = CanonicalSectors(data, p.FloorFlat, p.CeilingFlat)
		}
		if p.MinSectorLight >= 0 {
			data = MinSectorLight(data, int16(p.MinSectorLight))
		}
		return data, true
	}

	// Rebuilt tables replace every copy of the original ones
	if data, ok := s.tables.lumps[name]; ok {
		return data, true
	}

	// Levels
	if IsLevelMarker(name) {
		return l.Data, name == p.Level
	}
	if i > 0 && IsLevelMarker(lumps[i-1].Name) && lumps[i-1].Name != p.Level && IsLevelLump(name) {
		return nil, false
	}
	if IsLevelLump(name) {
		return l.Data, inLevelBlock(i, s.marker)
	}

	// Regions
	if s.regions.step(name) {
		return l.Data, true
	}
	switch s.regions.state {
	case inPatches:
		_, ok := s.tables.patchNamesSet[name]
		return l.Data, ok
	case inSprites:
		if p.sprites == nil {
			return l.Data, true
		}
		if len(name) < 4 || !slices.Contains(p.sprites, name[:4]) {
			return nil, false
		}
		if p.DegradeGraphics {
			return DegradePicture(l.Data), true
		}
		return l.Data, true
	case inFlats:
		_, ok := s.flats[name]
		if ok {
			s.keptFlats++
		}
		return l.Data, ok
	}

	// Everything else
	for _, r := range p.drops {
		if r.matches(name) {
			return nil, false
		}
	}
	return l.Data, true
}
