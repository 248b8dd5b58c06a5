package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sudogic/sudogic/sudoku"
)

// gridOf parses a grid string, ignoring the box-drawing characters so test
// grids can be laid out visually.
func gridOf(t testing.TB, s string) sudoku.Grid {
	t.Helper()
	var sb strings.Builder
	for _, r := range s {
		if r == '.' || (r >= '1' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	g, err := sudoku.GridFromString(sb.String())
	require.NoError(t, err)
	return g
}

func marksOf(t testing.TB, s string) *Marks {
	t.Helper()
	return MarksOf(gridOf(t, s))
}

func marksBuilderOf(t testing.TB, s string) *MarksBuilder {
	t.Helper()
	return NewMarksBuilder(gridOf(t, s))
}

func num(n int) sudoku.Numeral { return sudoku.NumeralOf(n) }

func nums(ns ...int) sudoku.NumSet {
	var s sudoku.NumSet
	for _, n := range ns {
		s = s.With(num(n))
	}
	return s
}

func row(n int) sudoku.Unit { return sudoku.RowOf(n) }
func col(n int) sudoku.Unit { return sudoku.ColumnOf(n) }
func blk(n int) sudoku.Unit { return sudoku.BlockOf(n) }

func un(u sudoku.Unit, n int) sudoku.UnitNumeral {
	return sudoku.NewUnitNumeral(u, num(n))
}

// us builds a unit subset from 1-based positions within the unit.
func us(u sudoku.Unit, positions ...int) sudoku.UnitSubset {
	var bits uint16
	for _, p := range positions {
		bits |= 1 << (p - 1)
	}
	return sudoku.SubsetOfBits(u, bits)
}

func loc(r, c int) sudoku.Location { return sudoku.LocationOf(r, c) }

func asg(r, c, n int) sudoku.Assignment {
	return sudoku.NewAssignment(loc(r, c), num(n))
}

func ea(r, c, n int) *ExplicitAssignment  { return NewExplicitAssignment(asg(r, c, n)) }
func ee(r, c, n int) *ExplicitElimination { return NewExplicitElimination(asg(r, c, n)) }

func imp(consequent Insight, antecedents ...Insight) *Implication {
	return NewImplication(antecedents, consequent)
}

func keysOf(ins []Insight) []string {
	keys := make([]string, len(ins))
	for i, in := range ins {
		keys[i] = in.key()
	}
	return keys
}

// requireSameInsights checks that got holds exactly the wanted insights in
// any order.
func requireSameInsights(t testing.TB, got []Insight, want ...Insight) {
	t.Helper()
	require.ElementsMatch(t, keysOf(want), keysOf(got))
}

// requireInsightsInOrder checks that got holds exactly the wanted insights
// in the given order.
func requireInsightsInOrder(t testing.TB, got []Insight, want ...Insight) {
	t.Helper()
	require.Equal(t, keysOf(want), keysOf(got))
}

// takeAll runs the given finder and returns everything it reports.
func takeAll(t testing.TB, find func(*Marks, Callback) error, m *Marks) []Insight {
	t.Helper()
	var taken []Insight
	require.NoError(t, find(m, func(ins Insight) error {
		taken = append(taken, ins)
		return nil
	}))
	return taken
}
