package sudoku

import (
	"math/bits"
	"strings"
)

// allBits is the 9-bit mask with every element present.
const allBits uint16 = 1<<9 - 1

// NumSet is an immutable set of numerals represented as a 9-bit set.
type NumSet uint16

const (
	// NoNums is the empty numeral set.
	NoNums NumSet = 0
	// AllNums is the numeral set holding all nine numerals.
	AllNums NumSet = NumSet(allBits)
)

// NewNumSet returns the set containing the given numerals.
func NewNumSet(nums ...Numeral) NumSet {
	var s NumSet
	for _, n := range nums {
		s |= NumSet(n.Bit())
	}
	return s
}

// NumSetOfBits returns the set corresponding to the given bit set.
func NumSetOfBits(bits uint16) NumSet {
	return NumSet(bits & allBits)
}

// Bits returns the set's underlying bit pattern.
func (s NumSet) Bits() uint16 { return uint16(s) }

// Not returns the complement of this set.
func (s NumSet) Not() NumSet { return s ^ NumSet(allBits) }

// And returns the intersection of this set and another one.
func (s NumSet) And(t NumSet) NumSet { return s & t }

// Or returns the union of this set and another one.
func (s NumSet) Or(t NumSet) NumSet { return s | t }

// Xor returns the symmetric difference of this set and another one.
func (s NumSet) Xor(t NumSet) NumSet { return s ^ t }

// Minus returns the asymmetric difference of this set and another one.
func (s NumSet) Minus(t NumSet) NumSet { return s &^ t }

// With returns this set plus the given numeral.
func (s NumSet) With(n Numeral) NumSet { return s | NumSet(n.Bit()) }

// Without returns this set minus the given numeral.
func (s NumSet) Without(n Numeral) NumSet { return s &^ NumSet(n.Bit()) }

// Contains tells whether the given numeral is in the set.
func (s NumSet) Contains(n Numeral) bool { return s&NumSet(n.Bit()) != 0 }

// Size returns the number of numerals in the set.
func (s NumSet) Size() int { return bits.OnesCount16(uint16(s)) }

// IsEmpty tells whether the set is empty.
func (s NumSet) IsEmpty() bool { return s == 0 }

// Get returns the numeral at the given index within this set, counting in
// ascending numeral order.
func (s NumSet) Get(index int) Numeral {
	bits := uint16(s)
	for n := Numeral(1); n <= 9; n++ {
		if bits&1 != 0 {
			if index == 0 {
				return n
			}
			index--
		}
		bits >>= 1
	}
	panic("sudoku: NumSet index out of range")
}

// Numerals returns the set's numerals in ascending order.
func (s NumSet) Numerals() []Numeral {
	nums := make([]Numeral, 0, s.Size())
	for n := Numeral(1); n <= 9; n++ {
		if s.Contains(n) {
			nums = append(nums, n)
		}
	}
	return nums
}

func (s NumSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range s.Numerals() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
