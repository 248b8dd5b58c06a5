package sudoku

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func genNumSet() gopter.Gen {
	return gen.UInt16Range(0, allBits).Map(func(bits uint16) NumSet {
		return NumSetOfBits(bits)
	})
}

func TestNumSetAlgebra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)
	properties.Property("a.And(b).Or(a.And(b.Not())) == a", prop.ForAll(
		func(a, b NumSet) bool {
			return a.And(b).Or(a.And(b.Not())) == a
		},
		genNumSet(), genNumSet(),
	))

	properties.Property("a.Not().Not() == a", prop.ForAll(
		func(a NumSet) bool {
			return a.Not().Not() == a
		},
		genNumSet(),
	))

	properties.Property("size(a.Or(b)) + size(a.And(b)) == size(a) + size(b)", prop.ForAll(
		func(a, b NumSet) bool {
			return a.Or(b).Size()+a.And(b).Size() == a.Size()+b.Size()
		},
		genNumSet(), genNumSet(),
	))

	properties.Property("a.Minus(b) == a.And(b.Not())", prop.ForAll(
		func(a, b NumSet) bool {
			return a.Minus(b) == a.And(b.Not())
		},
		genNumSet(), genNumSet(),
	))

	properties.Property("a.Xor(b) == a.Or(b).Minus(a.And(b))", prop.ForAll(
		func(a, b NumSet) bool {
			return a.Xor(b) == a.Or(b).Minus(a.And(b))
		},
		genNumSet(), genNumSet(),
	))

	properties.Property("Numerals is sorted and matches Contains", prop.ForAll(
		func(a NumSet) bool {
			nums := a.Numerals()
			if len(nums) != a.Size() {
				return false
			}
			for i, n := range nums {
				if !a.Contains(n) || a.Get(i) != n {
					return false
				}
				if i > 0 && nums[i-1] >= n {
					return false
				}
			}
			return true
		},
		genNumSet(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNumSetBasics(t *testing.T) {
	s := NewNumSet(NumeralOf(2), NumeralOf(5), NumeralOf(7))
	require.Equal(t, 3, s.Size())
	require.False(t, s.IsEmpty())
	require.True(t, s.Contains(NumeralOf(5)))
	require.False(t, s.Contains(NumeralOf(4)))
	require.Equal(t, uint16(0b001010010), s.Bits())
	require.Equal(t, []Numeral{2, 5, 7}, s.Numerals())
	require.Equal(t, NumeralOf(7), s.Get(2))

	require.Equal(t, s.With(NumeralOf(4)).Without(NumeralOf(4)), s)
	require.Equal(t, s, s.With(NumeralOf(5)))
	require.Equal(t, 6, s.Not().Size())
	require.True(t, s.And(s.Not()).IsEmpty())
	require.Equal(t, AllNums, s.Or(s.Not()))
}

func TestNumSetString(t *testing.T) {
	require.Equal(t, "[]", NumSet(0).String())
	require.Equal(t, "[1, 4, 9]", NewNumSet(1, 4, 9).String())
	require.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8, 9]", AllNums.String())
}

func TestNumSetGetOutOfRange(t *testing.T) {
	require.Panics(t, func() { NewNumSet(3).Get(1) })
}
