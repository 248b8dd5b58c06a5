package insight

import (
	"fmt"

	"github.com/sudogic/sudogic/sudoku"
)

// Conflict describes an actual conflict on a Sudoku board: a set of locations
// within a unit that are all assigned the same numeral.
type Conflict struct {
	numeral   sudoku.Numeral
	locations sudoku.UnitSubset
}

// NewConflict returns the insight that the given locations all hold the
// given numeral.
func NewConflict(num sudoku.Numeral, locs sudoku.UnitSubset) *Conflict {
	return &Conflict{numeral: num, locations: locs}
}

// Numeral returns the conflicting numeral.
func (i *Conflict) Numeral() sudoku.Numeral { return i.numeral }

// Locations returns the locations holding the conflicting numeral.
func (i *Conflict) Locations() sudoku.UnitSubset { return i.locations }

func (i *Conflict) Type() Type { return TypeConflict }

func (i *Conflict) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *Conflict) Eliminations() []sudoku.Assignment { return nil }

func (i *Conflict) Nub() Insight { return i }

func (i *Conflict) Cost() int { return 0 }

func (i *Conflict) String() string {
	return fmt.Sprintf("%s in %s", i.numeral, i.locations)
}

func (i *Conflict) collectAntecedents(m *Marks) []Insight {
	var ants []Insight
	for _, loc := range i.locations.Locations() {
		if a := m.AssignmentInsight(sudoku.NewAssignment(loc, i.numeral)); a != nil {
			ants = append(ants, a)
		}
	}
	return ants
}

func (i *Conflict) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {}

func (i *Conflict) key() string {
	return fmt.Sprintf("c:%d:%d:%d", i.numeral, i.locations.Unit, i.locations.Bits)
}

// BarredLoc holds a location that is prevented by the rules of the game from
// being assigned any numeral.
type BarredLoc struct {
	location sudoku.Location
}

// NewBarredLoc returns the insight that no numeral can go in the given
// location.
func NewBarredLoc(loc sudoku.Location) *BarredLoc {
	return &BarredLoc{location: loc}
}

// Location returns the location that nothing can be assigned to.
func (i *BarredLoc) Location() sudoku.Location { return i.location }

func (i *BarredLoc) Type() Type { return TypeBarredLocation }

func (i *BarredLoc) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *BarredLoc) Eliminations() []sudoku.Assignment { return nil }

func (i *BarredLoc) Nub() Insight { return i }

func (i *BarredLoc) Cost() int { return 0 }

func (i *BarredLoc) String() string {
	return fmt.Sprintf("%s <- nothing", i.location)
}

func (i *BarredLoc) collectAntecedents(m *Marks) []Insight {
	return m.CollectAntecedents(i.location.UnitSubset(sudoku.RowType), sudoku.AllNums)
}

func (i *BarredLoc) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {}

func (i *BarredLoc) key() string {
	return fmt.Sprintf("bl:%d", i.location)
}

// BarredNum describes a situation where there are no possible locations
// within a unit for a given numeral.
type BarredNum struct {
	unitNum sudoku.UnitNumeral
}

// NewBarredNum returns the insight that the given numeral has nowhere to go
// within the given unit.
func NewBarredNum(un sudoku.UnitNumeral) *BarredNum {
	return &BarredNum{unitNum: un}
}

// Unit returns the unit that cannot hold the numeral.
func (i *BarredNum) Unit() sudoku.Unit { return i.unitNum.Unit }

// Numeral returns the numeral that cannot go anywhere in the unit.
func (i *BarredNum) Numeral() sudoku.Numeral { return i.unitNum.Numeral }

func (i *BarredNum) Type() Type { return TypeBarredNumeral }

func (i *BarredNum) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *BarredNum) Eliminations() []sudoku.Assignment { return nil }

func (i *BarredNum) Nub() Insight { return i }

func (i *BarredNum) Cost() int { return 0 }

func (i *BarredNum) String() string {
	return fmt.Sprintf("%s not in %s", i.unitNum.Numeral, i.unitNum.Unit)
}

func (i *BarredNum) collectAntecedents(m *Marks) []Insight {
	return m.CollectAntecedents(i.unitNum.Unit.AllSubset(), i.unitNum.Numeral.AsSet())
}

func (i *BarredNum) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {}

func (i *BarredNum) key() string {
	return fmt.Sprintf("bn:%d:%d", i.unitNum.Unit, i.unitNum.Numeral)
}
