package wad

// tableRewrite is the reduced PNAMES and texture tables for the kept level.
type tableRewrite struct {
	patchNames    []string
	patchNamesSet map[string]struct{}
	textures      map[string][]*Texture // keyed by texture lump name
	lumps         map[string][]byte     // replacement data keyed by lump name

	totalTextures int
	keptTextures  int
	totalPatches  int
}

// rewriteTables keeps only the textures in used, drops PNAMES entries no kept texture refers
// to and renumbers the remaining patch references.
func rewriteTables(lumps []Lump, used map[string]struct{}, wall string) (*tableRewrite, error) {
	w := &WAD{Lumps: lumps}

	pnamesLump, ok := w.Lump(PatchNamesLump)
	if !ok {
		return nil, formatErrorf(ErrMissingLump, "%v", PatchNamesLump)
	}
	if _, ok := w.Lump(TextureLumps[0]); !ok {
		return nil, formatErrorf(ErrMissingLump, "%v", TextureLumps[0])
	}

	logger.Println("Loading patch names ...")
	pnames, err := ParsePatchNames(pnamesLump.Data)
	if err != nil {
		return nil, err
	}

	tr := &tableRewrite{
		textures:     make(map[string][]*Texture),
		lumps:        make(map[string][]byte),
		totalPatches: len(pnames),
	}

	known := make(map[string]struct{})
	var kept []*Texture
	for _, name := range TextureLumps {
		lump, ok := w.Lump(name)
		if !ok {
			continue
		}
		logger.Printf("Loading %v ...", name)
		textures, err := ParseTextures(lump.Data)
		if err != nil {
			return nil, err
		}
		tr.totalTextures += len(textures)

		keep := make([]*Texture, 0)
		for _, t := range textures {
			known[t.Name] = struct{}{}
			if _, ok := used[t.Name]; ok {
				keep = append(keep, t)
			}
		}
		tr.textures[name] = keep
		kept = append(kept, keep...)
	}
	tr.keptTextures = len(kept)

	if _, ok := known[wall]; wall != "" && !ok {
		return nil, configErrorf(ErrUnknownTexture, "%v", wall)
	}

	patches, err := usedPatches(kept, len(pnames))
	if err != nil {
		return nil, err
	}
	c := compact(patches)
	for _, t := range kept {
		for i := range t.Patches {
			t.Patches[i].Index, _ = c.Remap(t.Patches[i].Index)
		}
	}

	tr.patchNames = selectCompacted(c, pnames)
	tr.patchNamesSet = make(map[string]struct{}, len(tr.patchNames))
	for _, n := range tr.patchNames {
		tr.patchNamesSet[n] = struct{}{}
	}

	tr.lumps[PatchNamesLump] = BuildPatchNames(tr.patchNames)
	for name, textures := range tr.textures {
		tr.lumps[name] = BuildTextures(textures)
	}
	logger.Printf("Kept %v of %v textures, %v of %v patches",
		tr.keptTextures, tr.totalTextures, len(tr.patchNames), tr.totalPatches)
	return tr, nil
}
