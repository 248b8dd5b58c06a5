package pattern

import (
	"fmt"

	"github.com/sudogic/sudogic/insight"
	"github.com/sudogic/sudogic/sudoku"
)

// ForInsight returns the pattern that categorizes the given insight against
// the given marks.  The prior set holds the numerals of the move the insight
// helps explain; a pattern is flagged same-numeral when the insight involves
// any of them.
func ForInsight(ins insight.Insight, prior sudoku.NumSet, m *insight.Marks) (Pattern, error) {
	switch v := ins.(type) {
	case *insight.Conflict:
		return NewConflictIn(prior.Contains(v.Numeral()), v.Locations().Unit), nil
	case *insight.BarredLoc:
		return NewBarredLocation(PeerMetricsAt(m, v.Location())), nil
	case *insight.BarredNum:
		return NewBarredNumeral(prior.Contains(v.Numeral()), CategoryForUnit(v.Unit())), nil
	case *insight.ForcedLoc:
		return NewForcedLocation(prior.Contains(v.Numeral()), CategoryForUnit(v.Unit())), nil
	case *insight.ForcedNum:
		return NewForcedNumeral(prior.Contains(v.Numeral()), PeerMetricsAt(m, v.Location())), nil
	case *insight.Overlap:
		return NewOverlap(prior.Contains(v.Numeral()), CategoryForUnit(v.Unit())), nil
	case *insight.LockedSet:
		return lockedSetForInsight(v, prior, m), nil
	case *insight.Implication:
		antecedents := make([]Pattern, 0, len(v.Antecedents()))
		for _, a := range v.Antecedents() {
			p, err := ForInsight(a, prior, m)
			if err != nil {
				return nil, err
			}
			antecedents = append(antecedents, p)
		}
		consequent, err := ForInsight(v.Consequent(), prior, m)
		if err != nil {
			return nil, err
		}
		return NewImplication(antecedents, consequent)
	}
	return nil, fmt.Errorf("pattern: no pattern categorizes %T", ins)
}

// CollForInsights categorizes a batch of insights seen together.
func CollForInsights(insights []insight.Insight, prior sudoku.NumSet, m *insight.Marks) (Coll, error) {
	var c Coll
	for _, ins := range insights {
		p, err := ForInsight(ins, prior, m)
		if err != nil {
			return Coll{}, err
		}
		c.Patterns = append(c.Patterns, p)
	}
	return c, nil
}

// minusAllInUnit removes from nums every numeral assigned somewhere in the
// unit.
func minusAllInUnit(nums sudoku.NumSet, unit sudoku.Unit, m *insight.Marks) sudoku.NumSet {
	return nums.Minus(m.UnassignedNumerals(unit).Not())
}

func lockedSetForInsight(set *insight.LockedSet, prior sudoku.NumSet, m *insight.Marks) *LockedSet {
	category := CategoryForUnit(set.Unit())
	setSize := set.Locations().Size()
	isNaked := set.IsNakedSet()

	// Overlapped means that the set arises from assignments in overlapping
	// units.
	isOverlapped := false
	if isNaked {
		// For naked sets, this means that the set lies in two overlapping
		// units and all numerals not in the set appear in those two units.
		if overlap, ok := set.OverlappingUnit(); ok {
			remaining := set.Numerals().Not()
			remaining = minusAllInUnit(remaining, set.Unit(), m)
			remaining = minusAllInUnit(remaining, overlap, m)
			isOverlapped = remaining.IsEmpty()
		}
	} else {
		// For hidden sets, it means that all open squares not in the set lie
		// in an overlapping unit, and all numerals in the set appear in this
		// unit.
		taken := set.Locations()
		for _, loc := range set.Unit().Locations() {
			if m.HasAssignment(loc) {
				taken = taken.With(loc)
			}
		}
		open := taken.Not()
		overlap, ok := insight.FindOverlappingUnit(open)
		if !ok && open.Size() == 1 {
			loc := open.Get(0)
			if category == Line {
				overlap, ok = loc.Block(), true
			} else {
				isOverlapped = minusAllInUnit(set.Numerals(), loc.Row(), m).IsEmpty() ||
					minusAllInUnit(set.Numerals(), loc.Column(), m).IsEmpty()
			}
		}
		if ok {
			isOverlapped = minusAllInUnit(set.Numerals(), overlap, m).IsEmpty()
		}
	}

	sameNumeral := !prior.And(set.Numerals()).IsEmpty()
	return NewLockedSet(sameNumeral, category, setSize, isNaked, isOverlapped)
}
