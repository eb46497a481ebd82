package wad

// Usage holds the surface names a level needs.
type Usage struct {
	Textures map[string]struct{}
	Flats    map[string]struct{}
}

// LevelUsage collects the wall textures named by the sides and the flats named by the sectors
// of the level whose marker is at markerIdx. The sky texture is always included.
func LevelUsage(lumps []Lump, markerIdx int) Usage {
	usage := Usage{Textures: map[string]struct{}{}, Flats: map[string]struct{}{}}

	sides, _ := decodeRecords[binSide](levelLump(lumps, markerIdx, "SIDEDEFS"))
	for _, s := range sides {
		for _, name := range s.textures() {
			if name != "" && name != NoTexture {
				usage.Textures[name] = struct{}{}
			}
		}
	}

	sectors, _ := decodeRecords[binSector](levelLump(lumps, markerIdx, "SECTORS"))
	for _, s := range sectors {
		for _, name := range []string{s.FloorTexture.Name(), s.CeilingTexture.Name()} {
			if name != "" {
				usage.Flats[name] = struct{}{}
			}
		}
	}

	usage.Textures[SkyTexture] = struct{}{}
	logger.Printf("Level uses textures %v", sortedNames(usage.Textures))
	logger.Printf("Level uses flats %v", sortedNames(usage.Flats))
	return usage
}

// resolveUsage applies canonical surfaces on top of the level's own usage and adds the flats
// the engine needs regardless of level.
func resolveUsage(lumps []Lump, markerIdx int, p *policy) Usage {
	level := LevelUsage(lumps, markerIdx)
	usage := level
	if p.WallTexture != "" {
		usage.Textures = map[string]struct{}{p.WallTexture: {}, SkyTexture: {}}
	}
	if p.canonicalFlats() {
		usage.Flats = map[string]struct{}{p.FloorFlat: {}, p.CeilingFlat: {}}
	}
	for _, f := range RequiredFlats {
		usage.Flats[f] = struct{}{}
	}
	return usage
}

// usedPatches returns the PNAMES indices referenced by textures. Indices outside the table are
// reported as an error since they cannot be remapped.
func usedPatches(textures []*Texture, numNames int) (map[int]struct{}, error) {
	used := make(map[int]struct{})
	for _, t := range textures {
		for _, p := range t.Patches {
			if p.Index < 0 || p.Index >= numNames {
				return nil, formatErrorf(ErrBadPatchIndex, "texture %v patch %d of %d", t.Name, p.Index, numNames)
			}
			used[p.Index] = struct{}{}
		}
	}
	return used, nil
}

// FlatNames returns the lump names in the first flat region of the archive.
func FlatNames(lumps []Lump) map[string]struct{} {
	names := make(map[string]struct{})
	var tracker regionTracker
	seen := false
	for _, l := range lumps {
		isMarker := tracker.step(l.Name)
		if tracker.state == inFlats {
			seen = true
			if !isMarker {
				names[l.Name] = struct{}{}
			}
		} else if seen {
			break
		}
	}
	return names
}
