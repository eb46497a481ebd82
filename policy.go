package wad

import (
	"github.com/bmatcuk/doublestar/v4"
)

// dropRule removes every lump outside the level and region blocks whose name matches one of
// its glob patterns.
type dropRule struct {
	name     string
	patterns []string
}

func (r dropRule) matches(lumpName string) bool {
	for _, p := range r.patterns {
		if doublestar.MatchUnvalidated(p, lumpName) {
			return true
		}
	}
	return false
}

var (
	uiArtRule = dropRule{"title, help and intermission art",
		[]string{"TITLEPIC", "CREDIT", "HELP1", "HELP2", "WIMAP0", "WI*"}}
	menuRule      = dropRule{"menu art", []string{"M_*"}}
	midiRule      = dropRule{"MIDI instruments", []string{"GENMIDI", "DMXGUS"}}
	endScreenRule = dropRule{"end screen", []string{"ENDOOM"}}
	soundRule     = dropRule{"sound effects", []string{"DS*", "DP*"}}
	musicRule     = dropRule{"music", []string{"D_*"}}
	demoRule      = dropRule{"demos", []string{"DEMO*"}}
)

// Sprite name prefixes kept when sprites are stripped: the player, the first level's monsters,
// weapons and effects, pickups and keys.
var SpritePrefixes = []string{
	"PLAY", "POSS", "TROO",
	"PISG", "PISF", "PUNG",
	"PUFF", "BLUD",
	"CLIP", "STIM", "MEDI",
	"BKEY", "RKEY", "YKEY", "BSKU", "RSKU", "YSKU",
}

// EssentialSpritePrefixes is the smaller set kept under BareEssentials.
var EssentialSpritePrefixes = []string{
	"PLAY", "POSS", "TROO",
	"PISG", "PISF", "PUNG",
	"PUFF", "BLUD",
	"CLIP", "STIM",
}

// Surfaces referenced by engine code rather than by any level
const SkyTexture = "SKY1"

var RequiredFlats = []string{"F_SKY1", "FLOOR7_2"}

// validPatterns reports the first pattern that does not compile, if any
func validPatterns(patterns []string) (string, bool) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return p, false
		}
	}
	return "", true
}

// dropRules assembles the drop battery enabled by p, in the order they are checked.
func (p *policy) dropRules() []dropRule {
	var rules []dropRule
	if p.StripUI {
		rules = append(rules, uiArtRule)
	}
	if p.StripMenus {
		rules = append(rules, menuRule)
	}
	if p.StripMIDI {
		rules = append(rules, midiRule)
	}
	if p.StripEndScreen {
		rules = append(rules, endScreenRule)
	}
	if !p.KeepSounds {
		rules = append(rules, soundRule)
	}
	if !p.KeepMusic {
		rules = append(rules, musicRule)
	}
	if !p.KeepDemos {
		rules = append(rules, demoRule)
	}
	if len(p.DropPatterns) > 0 {
		rules = append(rules, dropRule{"user patterns", p.DropPatterns})
	}
	return rules
}
