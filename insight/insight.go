package insight

import (
	"github.com/sudogic/sudogic/sudoku"
)

// Type identifies the kind of fact an Insight expresses.  The declaration
// order is relied upon by Marks.Compare.
type Type int

const (
	TypeExplicitAssignment Type = iota
	TypeForcedLocation
	TypeForcedNumeral
	TypeExplicitElimination
	TypeOverlap
	TypeLockedSet
	TypeDisprovedAssignment
	TypeConflict
	TypeBarredLocation
	TypeBarredNumeral
	TypeImplication
)

// IsAssignment tells whether insights of this type imply an assignment.
func (t Type) IsAssignment() bool {
	switch t {
	case TypeExplicitAssignment, TypeForcedLocation, TypeForcedNumeral:
		return true
	}
	return false
}

// IsElimination tells whether insights of this type disprove assignments.
func (t Type) IsElimination() bool {
	switch t {
	case TypeExplicitElimination, TypeOverlap, TypeLockedSet, TypeDisprovedAssignment:
		return true
	}
	return false
}

// IsError tells whether insights of this type mark a contradiction.
func (t Type) IsError() bool {
	switch t {
	case TypeConflict, TypeBarredLocation, TypeBarredNumeral:
		return true
	}
	return false
}

func (t Type) String() string {
	switch t {
	case TypeExplicitAssignment:
		return "explicit assignment"
	case TypeForcedLocation:
		return "forced location"
	case TypeForcedNumeral:
		return "forced numeral"
	case TypeExplicitElimination:
		return "explicit elimination"
	case TypeOverlap:
		return "overlap"
	case TypeLockedSet:
		return "locked set"
	case TypeDisprovedAssignment:
		return "disproved assignment"
	case TypeConflict:
		return "conflict"
	case TypeBarredLocation:
		return "barred location"
	case TypeBarredNumeral:
		return "barred numeral"
	case TypeImplication:
		return "implication"
	}
	return "unknown"
}

// Insight is a fact about a Sudoku board.  It may be a move implied by or
// already present in the current state of the board, an impossible or
// illegal state, or one of several other facts useful in solving Sudokus.
// Insights may be compound, with one fact implying others.
//
// The interface is sealed: the concrete types in this package are the only
// implementations.
type Insight interface {
	// Type returns the insight's kind.
	Type() Type

	// Assignment returns the assignment this insight implies, if any.
	Assignment() (sudoku.Assignment, bool)

	// Eliminations returns the assignments this insight disproves.
	Eliminations() []sudoku.Assignment

	// Nub returns the ultimate consequent insight, unwrapping implications.
	Nub() Insight

	// Cost returns the number of distinct assignments needed to prove this
	// insight.  Leaf insights are costless.
	Cost() int

	String() string

	// collectAntecedents returns the insights from the given marks that
	// prove this one; the result may be empty.
	collectAntecedents(m *Marks) []Insight

	// addAssignmentLocations accumulates the locations whose assignments
	// imply this insight, optionally including the location this insight
	// itself assigns.
	addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet)

	// key returns a canonical identity string; two insights are the same
	// fact exactly when their keys are equal.
	key() string
}

// IsAssignment tells whether the given insight implies an assignment,
// looking through implications.
func IsAssignment(i Insight) bool {
	_, ok := i.Assignment()
	return ok
}

// IsElimination tells whether the given insight disproves assignments,
// looking through implications.
func IsElimination(i Insight) bool {
	return i.Nub().Type().IsElimination()
}

// IsError tells whether the given insight marks a contradiction, looking
// through implications.
func IsError(i Insight) bool {
	return i.Nub().Type().IsError()
}

// Equal tells whether two insights express the same fact.
func Equal(a, b Insight) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.key() == b.key()
}

// calcCost counts the distinct locations whose assignments imply the given
// insight.
func calcCost(i Insight) int {
	set := sudoku.NewLocSet()
	i.addAssignmentLocations(false, set)
	return set.Size()
}
