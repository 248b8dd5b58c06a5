package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sudogic/sudogic/sudoku"
)

// Implication describes an insight implied by one or more other insights.
type Implication struct {
	antecedents []Insight
	consequent  Insight
	cost        int
}

// NewImplication returns the insight that the given antecedents together
// prove the consequent.  The antecedents must be nonempty.
func NewImplication(antecedents []Insight, consequent Insight) *Implication {
	if len(antecedents) == 0 {
		panic("insight: implication requires antecedents")
	}
	if consequent == nil {
		panic("insight: implication requires a consequent")
	}
	i := &Implication{
		antecedents: append([]Insight(nil), antecedents...),
		consequent:  consequent,
	}
	i.cost = calcCost(i)
	return i
}

// Antecedents returns the insights that prove the consequent.
func (i *Implication) Antecedents() []Insight { return i.antecedents }

// Consequent returns the implied insight.
func (i *Implication) Consequent() Insight { return i.consequent }

func (i *Implication) Type() Type { return TypeImplication }

func (i *Implication) Assignment() (sudoku.Assignment, bool) {
	return i.consequent.Assignment()
}

func (i *Implication) Eliminations() []sudoku.Assignment {
	return i.consequent.Eliminations()
}

func (i *Implication) Nub() Insight { return i.consequent.Nub() }

func (i *Implication) Cost() int { return i.cost }

func (i *Implication) String() string {
	parts := make([]string, len(i.antecedents))
	for j, a := range i.antecedents {
		parts[j] = a.String()
	}
	return fmt.Sprintf("%s because [%s]", i.consequent, strings.Join(parts, "; "))
}

func (i *Implication) collectAntecedents(m *Marks) []Insight { return nil }

func (i *Implication) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
	for _, a := range i.antecedents {
		a.addAssignmentLocations(true, set)
	}
	i.consequent.addAssignmentLocations(includeConsequent, set)
}

func (i *Implication) key() string {
	keys := make([]string, len(i.antecedents))
	for j, a := range i.antecedents {
		keys[j] = a.key()
	}
	sort.Strings(keys)
	return "i:[" + strings.Join(keys, ",") + "]=" + i.consequent.key()
}

// DisprovedAssignment holds an assignment that leads to an error.
type DisprovedAssignment struct {
	assignment     sudoku.Assignment
	resultingError Insight
	cost           int
}

// NewDisprovedAssignment returns the insight that making the given
// assignment surfaces the given error.
func NewDisprovedAssignment(a sudoku.Assignment, resultingError Insight) *DisprovedAssignment {
	if !IsError(resultingError) {
		panic("insight: disproof requires an error insight")
	}
	i := &DisprovedAssignment{assignment: a, resultingError: resultingError}
	i.cost = calcCost(i)
	return i
}

// DisprovedAssignment returns the assignment that was disproved.
func (i *DisprovedAssignment) DisprovedAssignment() sudoku.Assignment { return i.assignment }

// ResultingError returns the error insight that surfaces after the
// assignment is made.
func (i *DisprovedAssignment) ResultingError() Insight { return i.resultingError }

func (i *DisprovedAssignment) Type() Type { return TypeDisprovedAssignment }

func (i *DisprovedAssignment) Assignment() (sudoku.Assignment, bool) {
	return sudoku.Assignment{}, false
}

func (i *DisprovedAssignment) Eliminations() []sudoku.Assignment {
	return []sudoku.Assignment{i.assignment}
}

func (i *DisprovedAssignment) Nub() Insight { return i }

func (i *DisprovedAssignment) Cost() int { return i.cost }

func (i *DisprovedAssignment) String() string {
	return fmt.Sprintf("%s can't go in %s: %s", i.assignment.Numeral, i.assignment.Location, i.resultingError)
}

func (i *DisprovedAssignment) collectAntecedents(m *Marks) []Insight { return nil }

func (i *DisprovedAssignment) addAssignmentLocations(includeConsequent bool, set *sudoku.LocSet) {
	set.Add(i.assignment.Location)
	i.resultingError.addAssignmentLocations(includeConsequent, set)
}

func (i *DisprovedAssignment) key() string {
	return fmt.Sprintf("d:%d:%d:%s", i.assignment.Location, i.assignment.Numeral, i.resultingError.key())
}
