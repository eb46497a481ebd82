package wad

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// compaction maps a sparse set of used indices onto dense positions, preserving order.
type compaction[T constraints.Integer] struct {
	Old   []T       // Old[new] = old
	ToNew map[T]int // ToNew[old] = new
}

// compact sorts the used indices ascending and numbers them from zero.
func compact[T constraints.Integer](used map[T]struct{}) compaction[T] {
	old := maps.Keys(used)
	slices.Sort(old)
	toNew := make(map[T]int, len(old))
	for i, o := range old {
		toNew[o] = i
	}
	return compaction[T]{Old: old, ToNew: toNew}
}

// Remap returns the dense position of an old index.
func (c compaction[T]) Remap(old T) (int, bool) {
	i, ok := c.ToNew[old]
	return i, ok
}

// selectCompacted picks the kept entries of items, in compacted order.
func selectCompacted[T constraints.Integer, E any](c compaction[T], items []E) []E {
	out := make([]E, len(c.Old))
	for i, o := range c.Old {
		out[i] = items[o]
	}
	return out
}

// sortedNames returns the members of a name set in ascending order
func sortedNames(set map[string]struct{}) []string {
	names := maps.Keys(set)
	slices.Sort(names)
	return names
}
