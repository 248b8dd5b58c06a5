package insight

import (
	"fmt"

	"github.com/sudogic/sudogic/sudoku"
)

// LockedSet describes a locked set: a set of numerals and a set of locations
// such that each of the numerals must inhabit one of the locations.
type LockedSet struct {
	nums    sudoku.NumSet
	locs    sudoku.UnitSubset
	isNaked bool

	overlap    sudoku.Unit
	hasOverlap bool

	// eliminations, when present, was precomputed by the analyzer against
	// the marks the set was found in.
	eliminations []sudoku.Assignment
}

// NewLockedSet returns the insight that the given numerals are locked into
// the given locations.  A naked set is one found through the possible
// numerals of the locations; a hidden set is found through the possible
// locations of the numerals.
func NewLockedSet(nums sudoku.NumSet, locs sudoku.UnitSubset, isNaked bool) *LockedSet {
	overlap, hasOverlap := FindOverlappingUnit(locs)
	return &LockedSet{nums: nums, locs: locs, isNaked: isNaked, overlap: overlap, hasOverlap: hasOverlap}
}

func newLockedSetWithEliminations(nums sudoku.NumSet, locs sudoku.UnitSubset, isNaked bool,
	overlap sudoku.Unit, hasOverlap bool, eliminations []sudoku.Assignment) *LockedSet {
	return &LockedSet{
		nums: nums, locs: locs, isNaked: isNaked,
		overlap: overlap, hasOverlap: hasOverlap,
		eliminations: eliminations,
	}
}

// makeLockedSetEliminations constructs the eliminations implied by a locked
// set, leaving out those already eliminated by an assignment in the given
// marks (if one is supplied).
func makeLockedSetEliminations(nums sudoku.NumSet, locs sudoku.UnitSubset, isNaked bool,
	overlap sudoku.Unit, hasOverlap bool, m *Marks) []sudoku.Assignment {
	var as []sudoku.Assignment
	elimNums, elimLocs := nums, locs
	if isNaked {
		elimLocs = locs.Not()
	} else {
		elimNums = nums.Not()
	}
	for _, num := range elimNums.Numerals() {
		for _, loc := range elimLocs.Locations() {
			as = appendIfPossibleAssignment(as, loc, num, m)
		}
	}
	if hasOverlap {
		extraLocs := overlap.Subtract(locs.Unit)
		for _, num := range nums.Numerals() {
			for _, loc := range extraLocs.Locations() {
				as = appendIfPossibleAssignment(as, loc, num, m)
			}
		}
	}
	return as
}

func appendIfPossibleAssignment(as []sudoku.Assignment, loc sudoku.Location, num sudoku.Numeral, m *Marks) []sudoku.Assignment {
	if m == nil || m.IsPossibleAssignment(loc, num) || !m.IsEliminatedByAssignment(loc, num) {
		as = append(as, sudoku.NewAssignment(loc, num))
	}
	return as
}

// IsNakedSet tells whether this is a naked set.
func (i *LockedSet) IsNakedSet() bool { return i.isNaked }

// IsHiddenSet tells whether this is a hidden set.
func (i *LockedSet) IsHiddenSet() bool { return !i.isNaked }

// Numerals returns the set's numerals.
func (i *LockedSet) Numerals() sudoku.NumSet { return i.nums }

// Locations returns the set's locations.
func (i *LockedSet) Locations() sudoku.UnitSubset { return i.locs }

// Unit returns the unit the set lies within.
func (i *LockedSet) Unit() sudoku.Unit { return i.locs.Unit }

// Size returns the number of numerals (and locations) in the set.
func (i *LockedSet) Size() int { return i.nums.Size() }

// OverlappingUnit returns the second unit the set's locations all lie
// within, if there is one.
func (i *LockedSet) OverlappingUnit() (sudoku.Unit, bool) {
	return i.overlap, i.hasOverlap
}

func (i *LockedSet) Type() Type { return TypeLockedSet }

func (i *LockedSet) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *LockedSet) Eliminations() []sudoku.Assignment {
	if i.eliminations != nil {
		return i.eliminations
	}
	return makeLockedSetEliminations(i.nums, i.locs, i.isNaked, i.overlap, i.hasOverlap, nil)
}

func (i *LockedSet) Nub() Insight { return i }

func (i *LockedSet) Cost() int { return 0 }

func (i *LockedSet) String() string {
	kind := "h"
	if i.isNaked {
		kind = "n"
	}
	return fmt.Sprintf("%s <-> %s%s", i.nums, i.locs, kind)
}

func (i *LockedSet) collectAntecedents(m *Marks) []Insight {
	if i.isNaked {
		// The set's locations have had all other numerals eliminated.
		return m.CollectAntecedents(i.locs, i.nums.Not())
	}
	// The set's numerals have been eliminated from the rest of the unit.
	return m.CollectAntecedents(i.locs.Not(), i.nums)
}

func (i *LockedSet) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {}

func (i *LockedSet) key() string {
	naked := 0
	if i.isNaked {
		naked = 1
	}
	return fmt.Sprintf("s:%d:%d:%d:%d", i.nums, i.locs.Unit, i.locs.Bits, naked)
}
