package insight

import (
	"fmt"

	"github.com/sudogic/sudogic/sudoku"
)

// Overlap describes an overlap, where the only locations within one unit
// that a numeral may inhabit also lie within an overlapping unit, so the
// numeral can be eliminated from the rest of the overlapping unit.
//
// The eliminated locations do not identify the insight: two overlaps of the
// same numeral between the same pair of units are the same fact.
type Overlap struct {
	unit                sudoku.Unit
	numeral             sudoku.Numeral
	eliminatedLocations sudoku.UnitSubset

	// antecedents, when present, is a reduced proof found by the analyzer
	// that replaces the default one.
	antecedents    []Insight
	hasAntecedents bool
}

// NewOverlap returns the insight that the given numeral is confined, within
// the given unit, to its intersection with the eliminated locations' unit.
func NewOverlap(unit sudoku.Unit, num sudoku.Numeral, eliminated sudoku.UnitSubset) *Overlap {
	return &Overlap{unit: unit, numeral: num, eliminatedLocations: eliminated}
}

func newOverlapWithAntecedents(unit sudoku.Unit, num sudoku.Numeral, eliminated sudoku.UnitSubset, ants []Insight) *Overlap {
	return &Overlap{
		unit:                unit,
		numeral:             num,
		eliminatedLocations: eliminated,
		antecedents:         ants,
		hasAntecedents:      true,
	}
}

// Unit returns the unit the numeral is confined within.
func (i *Overlap) Unit() sudoku.Unit { return i.unit }

// Numeral returns the confined numeral.
func (i *Overlap) Numeral() sudoku.Numeral { return i.numeral }

// OverlappingUnit returns the unit the eliminations apply to.
func (i *Overlap) OverlappingUnit() sudoku.Unit { return i.eliminatedLocations.Unit }

// EliminatedLocations returns the overlapping unit's locations that cannot
// hold the numeral.
func (i *Overlap) EliminatedLocations() sudoku.UnitSubset { return i.eliminatedLocations }

func (i *Overlap) Type() Type { return TypeOverlap }

func (i *Overlap) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *Overlap) Eliminations() []sudoku.Assignment {
	locs := i.eliminatedLocations.Locations()
	as := make([]sudoku.Assignment, len(locs))
	for j, loc := range locs {
		as[j] = sudoku.NewAssignment(loc, i.numeral)
	}
	return as
}

func (i *Overlap) Nub() Insight { return i }

func (i *Overlap) Cost() int { return 0 }

func (i *Overlap) String() string {
	return fmt.Sprintf("%s in %s ^ %s", i.numeral, i.unit, i.OverlappingUnit())
}

func (i *Overlap) collectAntecedents(m *Marks) []Insight {
	if i.hasAntecedents {
		return i.antecedents
	}
	// The locations of the unit outside the intersection must all have had
	// the numeral eliminated.
	intersection := i.unit.Intersect(i.OverlappingUnit())
	outside := m.UnassignedLocations(i.unit).Minus(intersection)
	return m.CollectAntecedents(outside, i.numeral.AsSet())
}

func (i *Overlap) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {}

func (i *Overlap) key() string {
	return fmt.Sprintf("o:%d:%d:%d", i.unit, i.numeral, i.eliminatedLocations.Unit)
}
