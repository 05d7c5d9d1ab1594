package solver

import (
	"maps"
	"slices"
)

// Frontier is the set of register A values consistent with the output suffix
// processed so far.
type Frontier map[int64]struct{}

func NewFrontier(values ...int64) Frontier {
	f := make(Frontier, len(values))
	for _, v := range values {
		f[v] = struct{}{}
	}
	return f
}

func (f Frontier) Add(values ...int64) {
	for _, v := range values {
		f[v] = struct{}{}
	}
}

func (f Frontier) Sorted() []int64 {
	return slices.Sorted(maps.Keys(f))
}

func (f Frontier) Min() (int64, bool) {
	if len(f) == 0 {
		return 0, false
	}
	return slices.Min(slices.Collect(maps.Keys(f))), true
}
