package wad

import (
	"strings"
)

// DefaultLevel is kept when Options.Level is empty
const DefaultLevel = "E1M1"

// Options selects what Minify keeps. The zero value keeps E1M1, drops sounds, music and demos,
// and raises no sector light; DefaultOptions returns the same with light raising disabled.
type Options struct {
	Level string // Level marker to keep, e.g. E1M1 or MAP01

	KeepDemos  bool
	KeepMusic  bool
	KeepSounds bool

	StripUI        bool // Title, help and intermission art
	StripSprites   bool // Keep only SpritePrefixes (EssentialSpritePrefixes under BareEssentials)
	StripMenus     bool // M_* menu patches
	StripMIDI      bool // GENMIDI and DMXGUS
	StripEndScreen bool // ENDOOM

	// Canonical surfaces. Floor and ceiling go together.
	WallTexture string
	FloorFlat   string
	CeilingFlat string

	DegradeGraphics bool // Replace kept sprite pictures with one pixel columns
	MinimalThings   bool // Keep player starts and a couple of monster types

	// BareEssentials turns on every strip option, DegradeGraphics and MinimalThings, and fills
	// missing canonical surfaces from the first side and sector of the kept level.
	BareEssentials bool

	// MinSectorLight raises darker sectors of the kept level; -1 disables.
	MinSectorLight int

	// DropPatterns are extra glob patterns for lumps to remove.
	DropPatterns []string
}

// DefaultOptions returns the options used when nothing is specified.
func DefaultOptions() Options {
	return Options{Level: DefaultLevel, MinSectorLight: -1}
}

// Validate checks the options that do not depend on the archive.
func (o Options) Validate() error {
	if o.MinSectorLight < -1 || o.MinSectorLight > 255 {
		return configErrorf(ErrLightRange, "got %d", o.MinSectorLight)
	}
	if !o.BareEssentials && (o.FloorFlat == "") != (o.CeilingFlat == "") {
		return configErrorf(ErrUnpairedFlats, "floor %q, ceiling %q", o.FloorFlat, o.CeilingFlat)
	}
	if p, ok := validPatterns(o.DropPatterns); !ok {
		return configErrorf(ErrBadPattern, "%q", p)
	}
	return nil
}

// policy is the immutable, fully expanded form of Options for one archive.
type policy struct {
	Options
	sprites []string // nil keeps every sprite
	drops   []dropRule
}

// newPolicy expands opts against the level whose marker sits at markerIdx.
func newPolicy(opts Options, lumps []Lump, markerIdx int) (*policy, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := &policy{Options: opts}
	p.Level = strings.ToUpper(p.Level)
	p.WallTexture = strings.ToUpper(p.WallTexture)
	p.FloorFlat = strings.ToUpper(p.FloorFlat)
	p.CeilingFlat = strings.ToUpper(p.CeilingFlat)
	p.DropPatterns = make([]string, len(opts.DropPatterns))
	for i, pat := range opts.DropPatterns {
		p.DropPatterns[i] = strings.ToUpper(pat)
	}

	if p.BareEssentials {
		p.StripUI = true
		p.StripSprites = true
		p.StripMenus = true
		p.StripMIDI = true
		p.StripEndScreen = true
		p.KeepSounds = false
		p.KeepMusic = false
		p.KeepDemos = false
		p.DegradeGraphics = true
		p.MinimalThings = true

		wall, floor, ceiling := firstSurfaces(lumps, markerIdx)
		if p.WallTexture == "" {
			p.WallTexture = wall
		}
		if p.FloorFlat == "" {
			p.FloorFlat = floor
		}
		if p.CeilingFlat == "" {
			p.CeilingFlat = ceiling
		}
		logger.Printf("Bare essentials: wall %q, floor %q, ceiling %q", p.WallTexture, p.FloorFlat, p.CeilingFlat)
	}
	if (p.FloorFlat == "") != (p.CeilingFlat == "") {
		return nil, configErrorf(ErrUnpairedFlats, "floor %q, ceiling %q", p.FloorFlat, p.CeilingFlat)
	}

	if p.StripSprites {
		p.sprites = SpritePrefixes
		if p.BareEssentials {
			p.sprites = EssentialSpritePrefixes
		}
	}
	p.drops = p.dropRules()
	return p, nil
}

func (p *policy) canonicalFlats() bool {
	return p.FloorFlat != "" && p.CeilingFlat != ""
}
