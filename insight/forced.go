package insight

import (
	"fmt"

	"github.com/sudogic/sudogic/sudoku"
)

// ForcedLoc describes a situation where there is only one possible location
// within a unit for a given numeral.
type ForcedLoc struct {
	unit     sudoku.Unit
	numeral  sudoku.Numeral
	location sudoku.Location
}

// NewForcedLoc returns the insight that the given numeral can only go in the
// given location within the given unit.
func NewForcedLoc(unit sudoku.Unit, num sudoku.Numeral, loc sudoku.Location) *ForcedLoc {
	return &ForcedLoc{unit: unit, numeral: num, location: loc}
}

// Unit returns the unit within which the location is forced.
func (i *ForcedLoc) Unit() sudoku.Unit { return i.unit }

// Numeral returns the numeral whose location is forced.
func (i *ForcedLoc) Numeral() sudoku.Numeral { return i.numeral }

// Location returns the forced location.
func (i *ForcedLoc) Location() sudoku.Location { return i.location }

func (i *ForcedLoc) Type() Type { return TypeForcedLocation }

func (i *ForcedLoc) Assignment() (sudoku.Assignment, bool) {
	return sudoku.NewAssignment(i.location, i.numeral), true
}

func (i *ForcedLoc) Eliminations() []sudoku.Assignment { return nil }

func (i *ForcedLoc) Nub() Insight { return i }

func (i *ForcedLoc) Cost() int { return 0 }

func (i *ForcedLoc) String() string {
	return fmt.Sprintf("%s in %s -> %s", i.numeral, i.unit, i.location)
}

func (i *ForcedLoc) collectAntecedents(m *Marks) []Insight {
	rest := sudoku.SubsetOfBits(i.unit, 1<<i.unit.IndexOf(i.location)).Not()
	return m.CollectAntecedents(rest, i.numeral.AsSet())
}

func (i *ForcedLoc) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
	if includeConsequent {
		set.Add(i.location)
	}
}

func (i *ForcedLoc) key() string {
	return fmt.Sprintf("fl:%d:%d:%d", i.unit, i.numeral, i.location)
}

// ForcedNum describes a situation where there is only one possible numeral
// for a given location.
type ForcedNum struct {
	location sudoku.Location
	numeral  sudoku.Numeral
}

// NewForcedNum returns the insight that the given location can only hold the
// given numeral.
func NewForcedNum(loc sudoku.Location, num sudoku.Numeral) *ForcedNum {
	return &ForcedNum{location: loc, numeral: num}
}

// Location returns the location whose numeral is forced.
func (i *ForcedNum) Location() sudoku.Location { return i.location }

// Numeral returns the forced numeral.
func (i *ForcedNum) Numeral() sudoku.Numeral { return i.numeral }

func (i *ForcedNum) Type() Type { return TypeForcedNumeral }

func (i *ForcedNum) Assignment() (sudoku.Assignment, bool) {
	return sudoku.NewAssignment(i.location, i.numeral), true
}

func (i *ForcedNum) Eliminations() []sudoku.Assignment { return nil }

func (i *ForcedNum) Nub() Insight { return i }

func (i *ForcedNum) Cost() int { return 0 }

func (i *ForcedNum) String() string {
	return fmt.Sprintf("%s <- %s", i.location, i.numeral)
}

func (i *ForcedNum) collectAntecedents(m *Marks) []Insight {
	return m.CollectAntecedents(i.location.UnitSubset(sudoku.RowType), i.numeral.AsSet().Not())
}

func (i *ForcedNum) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
	if includeConsequent {
		set.Add(i.location)
	}
}

func (i *ForcedNum) key() string {
	return fmt.Sprintf("fn:%d:%d", i.location, i.numeral)
}
