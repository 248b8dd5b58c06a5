package sudoku

import "fmt"

// Assignment is a (location, numeral) pair: the atomic fact the engine
// reasons about.
type Assignment struct {
	Location Location
	Numeral  Numeral
}

// NewAssignment returns the assignment of the given numeral to the given
// location.
func NewAssignment(loc Location, num Numeral) Assignment {
	return Assignment{Location: loc, Numeral: num}
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s <- %s", a.Location, a.Numeral)
}

// UnitNumeralCount is the number of distinct (unit, numeral) pairs.
const UnitNumeralCount = UnitCount * NumeralCount

// UnitNumeral is a (unit, numeral) pair.
type UnitNumeral struct {
	Unit    Unit
	Numeral Numeral
}

// NewUnitNumeral returns the pair of the given unit and numeral.
func NewUnitNumeral(unit Unit, num Numeral) UnitNumeral {
	return UnitNumeral{Unit: unit, Numeral: num}
}

// UnitNumeralOfIndex returns the pair with the given index, in 0..242.
func UnitNumeralOfIndex(index int) UnitNumeral {
	return UnitNumeral{Unit: UnitOfIndex(index / 9), Numeral: NumeralOfIndex(index % 9)}
}

// Index returns the pair's index in 0..242.
func (un UnitNumeral) Index() int {
	return un.Unit.Index()*9 + un.Numeral.Index()
}

func (un UnitNumeral) String() string {
	return un.Unit.String() + ":" + un.Numeral.String()
}
