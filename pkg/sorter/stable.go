package sorter

import (
	"cmp"
	"slices"
	"strings"
)

// Direction is the order a SortKey applies.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey is one level of a multi-key ordering.
type SortKey[T any] struct {
	// Name identifies the key, e.g. "domain".
	Name string
	// Direction reverses Compare when Descending.
	Direction Direction
	// Compare returns a negative number when a sorts before b, zero when
	// they are equal on this key and a positive number otherwise.
	Compare func(a, b T) int
}

// ByString builds a key over a string accessor, compared in natural order.
func ByString[T any](name string, dir Direction, get func(T) string) SortKey[T] {
	return SortKey[T]{
		Name:      name,
		Direction: dir,
		Compare:   func(a, b T) int { return NaturalCompare(get(a), get(b)) },
	}
}

// ByInt builds a key over an integer accessor, e.g. a progress value.
func ByInt[T any](name string, dir Direction, get func(T) int64) SortKey[T] {
	return SortKey[T]{
		Name:      name,
		Direction: dir,
		Compare:   func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// ByFunc builds a key from an arbitrary comparison.
func ByFunc[T any](name string, dir Direction, compare func(a, b T) int) SortKey[T] {
	return SortKey[T]{Name: name, Direction: dir, Compare: compare}
}

// ParseKeySpec splits a key spec such as "-domain" into its name and direction.
// A leading '-' means Descending, a leading '+' or none means Ascending.
func ParseKeySpec(spec string) (name string, dir Direction) {
	spec = strings.TrimSpace(spec)
	switch {
	case strings.HasPrefix(spec, "-"):
		return strings.TrimSpace(spec[1:]), Descending
	case strings.HasPrefix(spec, "+"):
		return strings.TrimSpace(spec[1:]), Ascending
	}
	return spec, Ascending
}

// StableComparer orders items by a list of keys and falls back to the
// position each item had in the sequence it was built from. Items that
// compare equal on every key therefore keep their original relative order,
// whichever sort algorithm drives the comparisons.
type StableComparer[T comparable] struct {
	keys  []SortKey[T]
	index map[T]int
}

// NewStableComparer records the position of every item and the keys to
// compare by, in priority order.
func NewStableComparer[T comparable](items []T, keys ...SortKey[T]) *StableComparer[T] {
	index := make(map[T]int, len(items))
	for i, it := range items {
		if _, ok := index[it]; !ok {
			index[it] = i
		}
	}
	return &StableComparer[T]{keys: keys, index: index}
}

// Keys returns the configured keys in priority order.
func (s *StableComparer[T]) Keys() []SortKey[T] {
	return slices.Clone(s.keys)
}

// Compare returns -1, 0 or +1. Items not present in the original sequence
// sort after those that were; two such items compare equal.
func (s *StableComparer[T]) Compare(a, b T) int {
	for _, k := range s.keys {
		if k.Compare == nil {
			continue
		}
		c := k.Compare(a, b)
		if k.Direction == Descending {
			c = -c
		}
		switch {
		case c < 0:
			return -1
		case c > 0:
			return 1
		}
	}
	return s.comparePosition(a, b)
}

func (s *StableComparer[T]) comparePosition(a, b T) int {
	ia, okA := s.index[a]
	ib, okB := s.index[b]
	switch {
	case okA && okB:
		return cmp.Compare(ia, ib)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// Sort sorts items in place.
func (s *StableComparer[T]) Sort(items []T) {
	slices.SortFunc(items, s.Compare)
}
