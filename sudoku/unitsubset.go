package sudoku

import (
	"math/bits"
	"strings"
)

// UnitSubset is an immutable set of locations, always a subset of the
// locations in a particular unit.  The bit at position i corresponds to the
// unit's i-th location.
type UnitSubset struct {
	Unit Unit
	Bits uint16
}

// SubsetOfBits returns the subset of the given unit corresponding to the
// given bit set.
func SubsetOfBits(unit Unit, bits uint16) UnitSubset {
	return UnitSubset{Unit: unit, Bits: bits & allBits}
}

// SubsetOf returns the subset of the given unit holding the given locations.
func SubsetOf(unit Unit, locs ...Location) UnitSubset {
	s := UnitSubset{Unit: unit}
	for _, loc := range locs {
		s = s.With(loc)
	}
	return s
}

// BitsSize returns the number of locations in a subset bit pattern.
func BitsSize(b uint16) int {
	return bits.OnesCount16(b & allBits)
}

// Size returns the number of locations in the subset.
func (s UnitSubset) Size() int { return bits.OnesCount16(s.Bits) }

// IsEmpty tells whether the subset is empty.
func (s UnitSubset) IsEmpty() bool { return s.Bits == 0 }

// Contains tells whether the given location is in the subset.
func (s UnitSubset) Contains(loc Location) bool {
	i := s.Unit.IndexOf(loc)
	return i >= 0 && s.Bits&(1<<i) != 0
}

// With returns this subset plus the given location, which must belong to the
// subset's unit.
func (s UnitSubset) With(loc Location) UnitSubset {
	i := s.Unit.IndexOf(loc)
	if i < 0 {
		panic("sudoku: location " + loc.String() + " is not in " + s.Unit.String())
	}
	return UnitSubset{Unit: s.Unit, Bits: s.Bits | 1<<i}
}

// Not returns the complement of this subset within its unit.
func (s UnitSubset) Not() UnitSubset {
	return UnitSubset{Unit: s.Unit, Bits: ^s.Bits & allBits}
}

// And returns the intersection of this subset and another of the same unit.
func (s UnitSubset) And(t UnitSubset) UnitSubset {
	return UnitSubset{Unit: s.Unit, Bits: s.Bits & t.Bits}
}

// Or returns the union of this subset and another of the same unit.
func (s UnitSubset) Or(t UnitSubset) UnitSubset {
	return UnitSubset{Unit: s.Unit, Bits: s.Bits | t.Bits}
}

// Minus returns the asymmetric difference of this subset and another of the
// same unit.
func (s UnitSubset) Minus(t UnitSubset) UnitSubset {
	return UnitSubset{Unit: s.Unit, Bits: s.Bits &^ t.Bits}
}

// Get returns the location at the given index within this subset, counting
// in unit order.
func (s UnitSubset) Get(index int) Location {
	return s.Unit.Location(NumSet(s.Bits).Get(index).Index())
}

// GetIndex returns the within-unit index of the subset's index-th location.
func (s UnitSubset) GetIndex(index int) int {
	return NumSet(s.Bits).Get(index).Index()
}

// Locations returns the subset's locations in unit order.
func (s UnitSubset) Locations() []Location {
	locs := make([]Location, 0, s.Size())
	for i := 0; i < UnitSize; i++ {
		if s.Bits&(1<<i) != 0 {
			locs = append(locs, s.Unit.Location(i))
		}
	}
	return locs
}

func (s UnitSubset) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, loc := range s.Locations() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(loc.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
