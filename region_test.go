package wad

import "testing"

func TestRegionTracker(t *testing.T) {
	t.Parallel()

	steps := []struct {
		name   string
		marker bool
		state  region
	}{
		{"PLAYPAL", false, outside},
		{"S_START", true, inSprites},
		{"PLAYA1", false, inSprites},
		{"S_END", true, outside},
		{"PP_START", true, inPatches},
		{"P1_START", true, inPatches},
		{"WALL00_1", false, inPatches},
		{"P1_END", true, inPatches},
		{"PP_END", true, outside},
		{"F_START", true, inFlats},
		{"F2_START", true, inFlats},
		{"NUKAGE1", false, inFlats},
		{"S_END", true, outside}, // mismatched end still closes
		{"FF_START", true, inFlats},
		{"F_END", true, outside},
		{"ENDOOM", false, outside},
	}

	var tracker regionTracker
	for i, s := range steps {
		if got := tracker.step(s.name); got != s.marker {
			t.Fatalf("step %d (%v): marker = %v", i, s.name, got)
		}
		if tracker.state != s.state {
			t.Fatalf("step %d (%v): state = %v, want %v", i, s.name, tracker.state, s.state)
		}
	}
}

func TestIsSubMarker(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"P1_START": true,
		"F3_END":   true,
		"S12_END":  true,
		"P_START":  false,
		"PX_START": false,
		"X1_START": false,
		"P1_MID":   false,
		"P1":       false,
	} {
		if got := isSubMarker(name); got != want {
			t.Errorf("isSubMarker(%q) = %v", name, got)
		}
	}
}

func TestFlatNames(t *testing.T) {
	t.Parallel()

	names := FlatNames(testLumps())
	got := sortedNames(names)
	want := []string{"CEIL3_5", "FLOOR4_8", "FLOOR7_2", "F_SKY1", "NUKAGE1"}
	if len(got) != len(want) {
		t.Fatalf("FlatNames = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FlatNames = %v, want %v", got, want)
		}
	}
}
