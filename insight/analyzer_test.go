package insight

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sudogic/sudogic/sudoku"
)

func requireContainsInsights(t testing.TB, got []Insight, want ...Insight) {
	t.Helper()
	for _, w := range want {
		found := false
		for _, g := range got {
			if Equal(g, w) {
				found = true
				break
			}
		}
		require.True(t, found, "missing insight %s", w)
	}
}

func TestFindOverlapsBlocks(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | 4 . 5 | . . .
-------+-------+-------
 . 2 3 | . . . | . . .
 . . . | . . . | . . .
 . 4 5 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`))
	requireSameInsights(t, taken,
		NewOverlap(blk(2), num(1), us(col(5), 2, 3)),
		NewOverlap(blk(4), num(1), us(row(5), 2, 3)))
}

// The flat-string form of the grid above, with the full block contents, must
// produce exactly the same two overlaps.
func TestFindOverlapsFlatString(t *testing.T) {
	flat := "1........" +
		"...2.3..." +
		"...4.5..." +
		".23......" +
		"........." +
		".45......" +
		"........." +
		"........." +
		"........."
	grid, err := sudoku.GridFromString(flat)
	require.NoError(t, err)
	taken := takeAll(t, FindOverlaps, MarksOf(grid))
	requireSameInsights(t, taken,
		NewOverlap(blk(2), num(1), us(col(5), 2, 3)),
		NewOverlap(blk(4), num(1), us(row(5), 2, 3)))
}

func TestFindOverlapsBlocksSkipAssignment(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | 4 . 5 | . . 1
-------+-------+-------
 . 2 3 | . . . | . . .
 . . . | . . . | . . .
 . 4 5 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . 1 | . . . | . . .`))
	requireInsightsInOrder(t, taken,
		NewOverlap(blk(4), num(1), us(row(5), 2, 3)),
		NewOverlap(blk(2), num(1), us(col(5), 2, 3)))
	// The antecedents must have been calculated before emission.
	requireSameInsights(t, taken[0].collectAntecedents(nil), ea(1, 1, 1))
	requireSameInsights(t, taken[1].collectAntecedents(nil), ea(1, 1, 1))
}

func TestFindOverlapsBlocksSkipAssignment2(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | . . 5 | . . 1
-------+-------+-------
 . 2 . | . . . | . 1 .
 . . . | . . . | . . .
 . 4 5 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | 1 . . | . . .
 . . 1 | . . . | . . .`))
	requireInsightsInOrder(t, taken,
		NewOverlap(blk(4), num(1), us(row(5), 2, 3)),
		NewOverlap(blk(2), num(1), us(col(5), 2, 3)),
		NewOverlap(row(6), num(1), us(blk(5), 8, 9)),
		NewOverlap(col(6), num(1), us(blk(5), 6, 9)))
	requireSameInsights(t, taken[0].collectAntecedents(nil), ea(1, 1, 1), ea(4, 8, 1))
	requireSameInsights(t, taken[1].collectAntecedents(nil), ea(1, 1, 1), ea(8, 4, 1))
}

func TestFindOverlapsBlocksSkipAssignment3(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . 8 | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 4 . . | . . 3 | . . 8
 6 . 3 | . . . | . . .
 9 . . | 8 . . | . . .`))

	// (5,3) compares after both (9,4) and (7,9) because of the number of
	// open locations in its units.
	requireInsightsInOrder(t, taken,
		NewOverlap(blk(7), num(8), us(col(2), 1, 2, 3)),
		NewOverlap(col(1), num(8), us(blk(1), 2, 5, 8)))
	requireSameInsights(t, taken[0].collectAntecedents(nil), ea(5, 3, 8))
}

func TestFindOverlapsBlocksSkipAssignment4(t *testing.T) {
	set1 := imp(NewLockedSet(nums(1, 2, 5), us(blk(7), 3, 8, 9), false), ea(1, 9, 5))
	set2 := NewLockedSet(nums(1, 2, 7), us(blk(7), 2, 3, 9), false)
	marks := marksBuilderOf(t, `
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 4 . . | . . 3 | . . .
 6 . 3 | . . . | . . .
 9 . . | . . . | . . .`).
		Add(set1).Add(set2).Build()
	taken := takeAll(t, FindOverlaps, marks)

	// Note these sets are utterly bogus; the point is that the second
	// possible location's eliminations are retained even if they sort
	// greater.
	requireInsightsInOrder(t, taken,
		NewOverlap(blk(7), num(5), us(col(2), 1, 2, 3, 4, 5, 6)),
		NewOverlap(blk(7), num(7), us(col(2), 1, 2, 3, 4, 5, 6)),
		NewOverlap(blk(7), num(8), us(col(2), 1, 2, 3, 4, 5, 6)))
	requireSameInsights(t, taken[2].collectAntecedents(nil), set1)
	require.Positive(t, marks.Compare(set1, set2))
}

func TestFindOverlapsLines(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | . 2 . | . . .
 . . . | . 3 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . 2 3 | . . . | 4 5 6
 . . . | . . . | . . .
-------+-------+-------
 . . . | . 4 . | . . .
 . . . | . 5 . | . . .
 . . . | . 6 . | . . .`))
	requireInsightsInOrder(t, taken,
		NewOverlap(row(5), num(1), us(blk(5), 4, 5, 6)),
		NewOverlap(col(5), num(1), us(blk(5), 4, 5, 6)))
}

func TestFindOverlapsLinesSkipAssignment(t *testing.T) {
	var taken []Insight
	taken = append(taken, takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | . 2 . | . . .
 . . . | . 3 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . 7 . | . . .
 . . . | . . . | . . 1
-------+-------+-------
 . . . | . 4 . | . . .
 . . . | . 5 . | . . .
 . . . | . 6 . | . . .`))...)
	taken = append(taken, takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . 2 3 | . 7 . | 4 5 6
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . 1 | . . .`))...)
	requireInsightsInOrder(t, taken,
		NewOverlap(col(5), num(1), us(blk(5), 2, 8)),
		NewOverlap(row(5), num(1), us(blk(5), 4, 6)))
	requireSameInsights(t, taken[0].collectAntecedents(nil), ea(1, 1, 1))
	requireSameInsights(t, taken[1].collectAntecedents(nil), ea(1, 1, 1))
}

func TestFindOverlapsNoneForcedLoc(t *testing.T) {
	taken := takeAll(t, FindOverlaps, marksOf(t, `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | 4 5 6 | . . .
-------+-------+-------
 . 2 3 | . . . | . . .
 . . 4 | . . . | . . .
 . 5 6 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`))
	// Finds the line overlaps, but not the spurious block 2 and 4 overlaps.
	requireSameInsights(t, taken,
		NewOverlap(row(3), num(1), us(blk(3), 7, 8, 9)),
		NewOverlap(col(3), num(1), us(blk(7), 7, 8, 9)))
}

func TestFindOverlapsNone(t *testing.T) {
	grids := map[string]string{
		"blocks already there": `
 1 . . | . . . | . . .
 . . . | 2 1 3 | . . .
 . . . | 4 . 6 | . . .
-------+-------+-------
 . 2 3 | . . . | . . .
 . 1 . | . . . | . . .
 . 5 6 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`,
		"lines already there": `
 1 . . | . . . | . . .
 . . . | . 2 . | . . .
 . . . | . 3 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . 2 3 | . 1 . | 4 5 6
 . . . | . . . | . . .
-------+-------+-------
 . . . | . 4 . | . . .
 . . . | . 5 . | . . .
 . . . | . 6 . | . . .`,
		"blocks": `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | . . 5 | . . 1
-------+-------+-------
 . 2 . | . . . | . . .
 . . . | . . . | . . .
 . 4 5 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . 1 | . . . | . . .`,
		"nothing to eliminate": `
 1 . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . 1
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . 1 | . . . | . . .`,
	}
	for name, grid := range grids {
		t.Run(name, func(t *testing.T) {
			require.Empty(t, takeAll(t, FindOverlaps, marksOf(t, grid)))
		})
	}
}

func TestFindSetsNakedJustOne(t *testing.T) {
	// Both b8 and c4 have naked sets, but they are equivalent.
	taken := takeAll(t, FindSets, marksOf(t, `
 . . . | 1 . . | . . .
 . . . | 2 . . | . . .
 . . . | 3 . . | . . .
-------+-------+-------
 . . . | 4 . . | . . .
 . . . | 5 . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . 6 | . . .`))
	requireSameInsights(t, taken,
		NewLockedSet(nums(7, 8, 9), us(blk(8), 1, 4, 7), true))
}

func TestFindSetsHidden(t *testing.T) {
	taken := takeAll(t, FindSets, marksOf(t, `
 . . . | 1 . . | . . .
 . . . | 2 . . | . . .
 . . . | 3 . . | . . .
-------+-------+-------
 . . . | . 1 . | . . .
 . . . | . 2 . | . . .
 . . . | . 3 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`))
	requireSameInsights(t, taken,
		NewLockedSet(nums(1, 2, 3), us(blk(8), 3, 6, 9), false),
		NewLockedSet(nums(1, 2, 3), us(col(6), 7, 8, 9), false))
}

func TestFindSetsBoth(t *testing.T) {
	taken := takeAll(t, FindSets, marksOf(t, `
 . . . | 1 . . | . . .
 . . . | . . . | . . .
 . . . | 2 . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | 3 . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . 4 . | . . .
 . . . | . 5 . | . . .
 . . . | . 6 . | . . .`))
	requireSameInsights(t, taken,
		NewLockedSet(nums(1, 2, 3), us(blk(8), 3, 6, 9), false),
		NewLockedSet(nums(4, 5, 6), us(col(4), 2, 4, 6), false),
		NewLockedSet(nums(7, 8, 9), us(blk(8), 1, 4, 7), true))
}

func TestFindSetsBothAllOpen(t *testing.T) {
	// The naked and hidden triples cover the same locations but are not
	// equivalent, so both are reported.
	taken := takeAll(t, FindSets, marksOf(t, `
 . . . | 1 4 . | . . .
 . . . | 2 5 . | . . .
 . . . | 3 6 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`))
	requireSameInsights(t, taken,
		NewLockedSet(nums(7, 8, 9), us(blk(2), 3, 6, 9), true),
		NewLockedSet(nums(7, 8, 9), us(blk(2), 3, 6, 9), false))
}

func TestFindSetsNoneNothingToDo(t *testing.T) {
	// Lots of sets, but none that eliminates anything new.
	taken := takeAll(t, FindSets, marksOf(t, `
 . . . | 1 . . | . . .
 . . . | 2 . . | . . .
 . . . | 3 . . | . . .
-------+-------+-------
 . . . | . 4 . | . . .
 . . . | . 5 . | . . .
 . . . | . 6 . | . . .
-------+-------+-------
 . . . | . . 7 | . . .
 . . . | . . 8 | . . .
 . . . | . . 9 | . . .`))
	require.Empty(t, taken)
}

func TestFindErrorsConflict(t *testing.T) {
	taken := takeAll(t, FindErrors, marksOf(t, `
 . . . | . . 2 | . . .
 . . . | 1 1 . | . . .
 . . . | . 2 2 | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`))
	requireSameInsights(t, taken,
		NewConflict(num(1), us(blk(2), 4, 5)),
		NewConflict(num(2), us(blk(2), 3, 8, 9)),
		NewConflict(num(1), us(row(2), 4, 5)),
		NewConflict(num(2), us(col(6), 1, 3)),
		NewConflict(num(2), us(row(3), 5, 6)))
}

func TestFindErrorsBarredLoc(t *testing.T) {
	taken := takeAll(t, FindErrors, marksOf(t, `
 . . . | . 1 . | . . .
 . . . | . 2 . | . . .
 . . . | . 3 . | . . .
-------+-------+-------
 . . . | . . . | . . .
 4 5 6 | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . 7 . | . . .
 . . . | . 8 . | . . .
 . . . | . 9 . | . . .`))
	requireSameInsights(t, taken, NewBarredLoc(loc(5, 5)))
}

func TestFindErrorsBarredNum(t *testing.T) {
	taken := takeAll(t, FindErrors, marksOf(t, `
 . . . | . . 1 | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 1 . . | . . . | . . .
 . . . | . 2 . | . . .
 . . . | . . . | . . 1
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | 1 . . | . . .`))
	requireSameInsights(t, taken,
		NewBarredNum(un(blk(5), 1)),
		NewBarredNum(un(row(5), 1)),
		NewBarredNum(un(col(5), 1)))
}

func TestFindErrorsNoConflict(t *testing.T) {
	marks := marksBuilderOf(t, `
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . 1 . | . . .
 . . . | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`).
		Add(ee(5, 5, 1)).Build()
	taken := takeAll(t, FindErrors, marks)
	requireSameInsights(t, taken,
		NewBarredLoc(loc(5, 5)),
		NewBarredNum(un(blk(5), 1)),
		NewBarredNum(un(row(5), 1)),
		NewBarredNum(un(col(5), 1)))
}

const forcedLocGrid = `
 1 . . | . . . | . . .
 . . . | 2 . 3 | . . .
 . . . | 4 5 6 | . . .
-------+-------+-------
 . 2 3 | . . . | . . .
 . . 4 | . . . | . . .
 . 5 6 | . . . | . . .
-------+-------+-------
 . . . | . . . | . . .
 . . . | . . . | . . .
 . . . | . . . | . . .`

func TestAnalyzeStopped(t *testing.T) {
	complete := Analyze(context.Background(), marksOf(t, forcedLocGrid), func(Insight) error {
		return ErrStop
	})
	require.False(t, complete)
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	complete := Analyze(ctx, marksOf(t, forcedLocGrid), func(Insight) error {
		cancel()
		return nil
	})
	require.False(t, complete)
}

func TestAnalyzeComplete(t *testing.T) {
	complete := Analyze(context.Background(), marksOf(t, forcedLocGrid), func(Insight) error {
		return nil
	})
	require.True(t, complete)
}

func TestAnalyzeReal(t *testing.T) {
	// Puzzle 1:2:2017-2:67
	marks := marksOf(t, `
 . . . | 1 . 9 | . . 6
 . 2 . | . 5 8 | 1 . .
 . . . | 6 . . | . . 3
-------+-------+-------
 . . 9 | 2 . . | . 1 .
 . . 8 | . . . | 5 . .
 . 6 . | . . 4 | 7 . .
-------+-------+-------
 4 . . | . . 3 | . . .
 . . 3 | 7 . . | . . .
 9 . . | 8 . 1 | . . 5`)
	var taken []Insight
	require.True(t, Analyze(context.Background(), marks, func(ins Insight) error {
		taken = append(taken, ins)
		return nil
	}))

	requireContainsInsights(t, taken,
		imp(NewForcedLoc(blk(1), num(9), loc(3, 2)), ea(4, 3, 9), ea(9, 1, 9), ea(1, 6, 9)),
		imp(NewOverlap(blk(4), num(4), us(col(2), 1, 3)), ea(7, 1, 4), ea(6, 6, 4)))
}

// The set of insights found must not depend on when eliminations were folded
// in during a previous run.
func TestAnalyzeIdempotent(t *testing.T) {
	run := func(m *Marks) []string {
		var keys []string
		require.True(t, Analyze(context.Background(), m, func(ins Insight) error {
			keys = append(keys, ins.key())
			return nil
		}))
		sort.Strings(keys)
		return keys
	}

	for _, grid := range []string{forcedLocGrid, openingGrid, eliminationGrid} {
		first := run(marksOf(t, grid))
		second := run(marksOf(t, grid))
		require.Empty(t, cmp.Diff(first, second))
	}
}

const solvedGrid = "123456789456789123789123456234567891567891234891234567345678912678912345912345678"

func TestSolvedGrid(t *testing.T) {
	grid, err := sudoku.GridFromString(solvedGrid)
	require.NoError(t, err)
	require.Equal(t, sudoku.Solved, grid.State())
	require.True(t, MarksOf(grid).IsSolved())
}

func TestFindSingletons(t *testing.T) {
	// The solved grid with its first cell blanked: the 1 is forced back in,
	// once per unit by location and once by numeral.
	grid, err := sudoku.GridFromString("." + solvedGrid[1:])
	require.NoError(t, err)
	marks := MarksOf(grid)

	locs := takeAll(t, FindSingletonLocations, marks)
	requireSameInsights(t, locs,
		NewForcedLoc(row(1), num(1), loc(1, 1)),
		NewForcedLoc(col(1), num(1), loc(1, 1)),
		NewForcedLoc(blk(1), num(1), loc(1, 1)))

	numerals := takeAll(t, FindSingletonNumerals, marks)
	requireSameInsights(t, numerals, NewForcedNum(loc(1, 1), num(1)))
}

const benchGrid = "...1.9..6.2..581.....6....3..92...1...8...5...6...47..4....3.....37.....9..8.1..5"

func BenchmarkAnalyze(b *testing.B) {
	grid, err := sudoku.GridFromString(benchGrid)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		marks := MarksOf(grid)
		Analyze(context.Background(), marks, func(Insight) error { return nil })
	}
}

func BenchmarkMarksOf(b *testing.B) {
	grid, err := sudoku.GridFromString(benchGrid)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MarksOf(grid)
	}
}
