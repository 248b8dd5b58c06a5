package sudoku

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

const solvedGridString = "123456789456789123789123456234567891567891234891234567345678912678912345912345678"

func genGridString() gopter.Gen {
	return gen.SliceOfN(LocationCount, gen.RuneRange('0', '9')).Map(func(runes []rune) string {
		var sb strings.Builder
		for _, r := range runes {
			if r == '0' {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(r)
			}
		}
		return sb.String()
	})
}

func TestGridRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("GridFromString(s).FlatString() == s", prop.ForAll(
		func(s string) bool {
			g, err := GridFromString(s)
			return err == nil && g.FlatString() == s
		},
		genGridString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGridFromStringErrors(t *testing.T) {
	_, err := GridFromString("123")
	require.Error(t, err)
	_, err = GridFromString(solvedGridString + ".")
	require.Error(t, err)
	_, err = GridFromString(strings.Repeat("0", LocationCount))
	require.Error(t, err)
	_, err = GridFromString("x" + solvedGridString[1:])
	require.Error(t, err)
}

func TestGridAccess(t *testing.T) {
	g, err := GridFromString("1.3" + strings.Repeat(".", 78))
	require.NoError(t, err)

	require.Equal(t, 2, g.Size())
	num, ok := g.Get(LocationOf(1, 1))
	require.True(t, ok)
	require.Equal(t, NumeralOf(1), num)
	_, ok = g.Get(LocationOf(1, 2))
	require.False(t, ok)
	require.True(t, g.Has(LocationOf(1, 3)))
	require.False(t, g.Has(LocationOf(9, 9)))

	require.Equal(t, []Assignment{
		NewAssignment(LocationOf(1, 1), NumeralOf(1)),
		NewAssignment(LocationOf(1, 3), NumeralOf(3)),
	}, g.Assignments())
}

func TestGridState(t *testing.T) {
	require.Equal(t, Incomplete, BlankGrid().State())

	solved, err := GridFromString(solvedGridString)
	require.NoError(t, err)
	require.Equal(t, Solved, solved.State())
	require.True(t, solved.IsSolved())

	// Two 1s in row 1.
	broken, err := GridFromString("1..1" + strings.Repeat(".", 77))
	require.NoError(t, err)
	require.Equal(t, Broken, broken.State())
	require.False(t, broken.IsSolved())

	// A solved grid with one blanked location is merely incomplete.
	almost := solved.Builder().Remove(LocationOf(5, 5)).Build()
	require.Equal(t, Incomplete, almost.State())
}

func TestGridBrokenLocations(t *testing.T) {
	g, err := GridFromString("1..1" + strings.Repeat(".", 77))
	require.NoError(t, err)

	broken := g.BrokenLocations()
	require.Equal(t, 2, broken.Size())
	require.True(t, broken.Contains(LocationOf(1, 1)))
	require.True(t, broken.Contains(LocationOf(1, 4)))

	require.Equal(t, NewNumSet(1), g.ConflictingNumerals(RowOf(1)))
	require.Equal(t, NoNums, g.ConflictingNumerals(RowOf(2)))
	require.True(t, BlankGrid().BrokenLocations().IsEmpty())
}

func TestGridMissingNumerals(t *testing.T) {
	g, err := GridFromString("123" + strings.Repeat(".", 78))
	require.NoError(t, err)

	require.Equal(t, NewNumSet(4, 5, 6, 7, 8, 9), g.MissingNumerals(RowOf(1)))
	require.Equal(t, NewNumSet(4, 5, 6, 7, 8, 9), g.MissingNumerals(BlockOf(1)))
	require.Equal(t, AllNums.Without(NumeralOf(2)), g.MissingNumerals(ColumnOf(2)))
	require.Equal(t, AllNums, g.MissingNumerals(RowOf(9)))
}

func TestGridBuilder(t *testing.T) {
	b := NewGridBuilder().
		Put(LocationOf(1, 1), NumeralOf(1)).
		Put(LocationOf(2, 2), NumeralOf(2))
	require.Equal(t, 2, b.Size())
	require.True(t, b.Has(LocationOf(1, 1)))

	g := b.Build()
	require.Equal(t, "1" + strings.Repeat(".", 9) + "2" + strings.Repeat(".", 70), g.FlatString())

	// Build leaves the builder usable and the built grid detached.
	b.Put(LocationOf(3, 3), NumeralOf(3))
	require.False(t, g.Has(LocationOf(3, 3)))
	require.Equal(t, 3, b.Build().Size())

	require.Equal(t, 0, b.Clear().Size())
	require.Equal(t, g, b.Reset(g).Build())

	overwritten := g.Builder().Put(LocationOf(1, 1), NumeralOf(9)).Build()
	num, ok := overwritten.Get(LocationOf(1, 1))
	require.True(t, ok)
	require.Equal(t, NumeralOf(9), num)

	all := NewGridBuilder().PutAll(g.Assignments()).Build()
	require.Equal(t, g, all)
}

func TestGridString(t *testing.T) {
	g, err := GridFromString("123" + strings.Repeat(".", 78))
	require.NoError(t, err)

	s := g.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, " 1 2 3 | . . . | . . .", lines[0])
	require.Equal(t, "-------+-------+-------", lines[3])
}
