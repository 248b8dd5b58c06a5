package insight

import (
	"fmt"

	"github.com/sudogic/sudogic/sudoku"
)

// ExplicitAssignment is a degenerate insight that wraps an actual assignment
// already in the grid.
type ExplicitAssignment struct {
	assignment sudoku.Assignment
}

// NewExplicitAssignment wraps the given assignment as an insight.
func NewExplicitAssignment(a sudoku.Assignment) *ExplicitAssignment {
	return &ExplicitAssignment{assignment: a}
}

func (i *ExplicitAssignment) Type() Type { return TypeExplicitAssignment }

func (i *ExplicitAssignment) Assignment() (sudoku.Assignment, bool) {
	return i.assignment, true
}

func (i *ExplicitAssignment) Eliminations() []sudoku.Assignment { return nil }

func (i *ExplicitAssignment) Nub() Insight { return i }

func (i *ExplicitAssignment) Cost() int { return 0 }

func (i *ExplicitAssignment) String() string { return i.assignment.String() }

func (i *ExplicitAssignment) collectAntecedents(m *Marks) []Insight { return nil }

func (i *ExplicitAssignment) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
	if includeConsequent {
		set.Add(i.assignment.Location)
	}
}

func (i *ExplicitAssignment) key() string {
	return fmt.Sprintf("ea:%d:%d", i.assignment.Location, i.assignment.Numeral)
}

// ExplicitElimination marks an elimination that the caller has somehow
// indicated they wish to apply.
type ExplicitElimination struct {
	elimination sudoku.Assignment
}

// NewExplicitElimination wraps the given disproved assignment as an insight.
func NewExplicitElimination(a sudoku.Assignment) *ExplicitElimination {
	return &ExplicitElimination{elimination: a}
}

func (i *ExplicitElimination) Type() Type { return TypeExplicitElimination }

func (i *ExplicitElimination) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *ExplicitElimination) Eliminations() []sudoku.Assignment {
	return []sudoku.Assignment{i.elimination}
}

func (i *ExplicitElimination) Nub() Insight { return i }

func (i *ExplicitElimination) Cost() int { return 0 }

func (i *ExplicitElimination) String() string {
	return fmt.Sprintf("%s eliminated from %s", i.elimination.Numeral, i.elimination.Location)
}

func (i *ExplicitElimination) collectAntecedents(m *Marks) []Insight { return nil }

func (i *ExplicitElimination) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
}

func (i *ExplicitElimination) key() string {
	return fmt.Sprintf("ee:%d:%d", i.elimination.Location, i.elimination.Numeral)
}
