package sudoku

import "strconv"

// NumeralCount is the number of distinct numerals.
const NumeralCount = 9

// Numeral is a number from one to nine: the contents of a Sudoku square.
// The zero value is not a valid numeral.
type Numeral uint8

// NumeralOf returns the numeral with the given number, in 1..9.
func NumeralOf(number int) Numeral {
	if number < 1 || number > 9 {
		panic("sudoku: numeral out of range: " + strconv.Itoa(number))
	}
	return Numeral(number)
}

// NumeralOfIndex returns the numeral with the given index, in 0..8.
func NumeralOfIndex(index int) Numeral {
	return NumeralOf(index + 1)
}

// Number returns the numeral's value, in 1..9.
func (n Numeral) Number() int { return int(n) }

// Index returns the numeral's index, one less than its number.
func (n Numeral) Index() int { return int(n) - 1 }

// Bit returns the bit corresponding to the numeral, 1 << index.
func (n Numeral) Bit() uint16 { return 1 << (n - 1) }

// AsSet returns the singleton NumSet holding just this numeral.
func (n Numeral) AsSet() NumSet { return NumSet(n.Bit()) }

func (n Numeral) String() string {
	return strconv.Itoa(int(n))
}

// AllNumerals returns the nine numerals in ascending order.
func AllNumerals() [NumeralCount]Numeral {
	return [NumeralCount]Numeral{1, 2, 3, 4, 5, 6, 7, 8, 9}
}
