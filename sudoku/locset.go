package sudoku

import (
	"github.com/bits-and-blooms/bitset"
)

// LocSet is a mutable set of locations over the whole grid, backed by an
// 81-bit dense bitset.
type LocSet struct {
	bits *bitset.BitSet
}

// NewLocSet returns an empty location set.
func NewLocSet(locs ...Location) *LocSet {
	s := &LocSet{bits: bitset.New(LocationCount)}
	for _, loc := range locs {
		s.Add(loc)
	}
	return s
}

// Add puts the given location in the set.
func (s *LocSet) Add(loc Location) {
	s.bits.Set(uint(loc))
}

// Remove takes the given location out of the set.
func (s *LocSet) Remove(loc Location) {
	s.bits.Clear(uint(loc))
}

// Contains tells whether the given location is in the set.
func (s *LocSet) Contains(loc Location) bool {
	return s.bits.Test(uint(loc))
}

// Size returns the number of locations in the set.
func (s *LocSet) Size() int {
	return int(s.bits.Count())
}

// IsEmpty tells whether the set is empty.
func (s *LocSet) IsEmpty() bool {
	return !s.bits.Any()
}

// Union returns a new set holding the locations of both sets.
func (s *LocSet) Union(t *LocSet) *LocSet {
	return &LocSet{bits: s.bits.Union(t.bits)}
}

// Intersect returns a new set holding the locations common to both sets.
func (s *LocSet) Intersect(t *LocSet) *LocSet {
	return &LocSet{bits: s.bits.Intersection(t.bits)}
}

// Clone returns a copy of the set.
func (s *LocSet) Clone() *LocSet {
	return &LocSet{bits: s.bits.Clone()}
}

// Equal tells whether both sets hold the same locations.
func (s *LocSet) Equal(t *LocSet) bool {
	return s.bits.Equal(t.bits)
}

// Locations returns the set's locations in index order.
func (s *LocSet) Locations() []Location {
	locs := make([]Location, 0, s.Size())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		locs = append(locs, Location(i))
	}
	return locs
}
