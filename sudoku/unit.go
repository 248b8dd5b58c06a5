package sudoku

import "strconv"

// UnitCount is the number of units: 9 each of rows, columns, and blocks.
const UnitCount = 3 * 9

// UnitSize is the number of locations in every unit.
const UnitSize = 9

// UnitType distinguishes the three kinds of unit.
type UnitType uint8

const (
	RowType UnitType = iota
	ColumnType
	BlockType
)

func (t UnitType) String() string {
	switch t {
	case RowType:
		return "row"
	case ColumnType:
		return "column"
	case BlockType:
		return "block"
	}
	return "unit(" + strconv.Itoa(int(t)) + ")"
}

// Unit is a row, column, or block of a Sudoku grid: a set of 9 locations
// that must all contain different numerals in a valid Sudoku.
//
// Units are indexed 0..26: rows first, then columns, then blocks.
type Unit uint8

// RowOf returns the row with the given number, in 1..9.
func RowOf(number int) Unit { return unitOf(RowType, number) }

// ColumnOf returns the column with the given number, in 1..9.
func ColumnOf(number int) Unit { return unitOf(ColumnType, number) }

// BlockOf returns the block with the given number, in 1..9.  Blocks are
// numbered left to right, top to bottom.
func BlockOf(number int) Unit { return unitOf(BlockType, number) }

// UnitOfIndex returns the unit with the given index, in 0..26.
func UnitOfIndex(index int) Unit {
	if index < 0 || index >= UnitCount {
		panic("sudoku: unit index out of range: " + strconv.Itoa(index))
	}
	return Unit(index)
}

func unitOf(t UnitType, number int) Unit {
	if number < 1 || number > 9 {
		panic("sudoku: unit number out of range: " + strconv.Itoa(number))
	}
	return Unit(int(t)*9 + number - 1)
}

// Index returns the unit's index in 0..26.
func (u Unit) Index() int { return int(u) }

// Type returns the unit's type.
func (u Unit) Type() UnitType { return UnitType(u / 9) }

// Number returns the unit's number within its type, in 1..9.
func (u Unit) Number() int { return int(u)%9 + 1 }

// Location returns the location at the given index within this unit.
func (u Unit) Location(index int) Location {
	return unitLocations[u][index]
}

// Locations returns the unit's 9 locations in unit order.
func (u Unit) Locations() [UnitSize]Location {
	return unitLocations[u]
}

// IndexOf returns the index of the given location within this unit, or -1.
func (u Unit) IndexOf(loc Location) int {
	for i, l := range unitLocations[u] {
		if l == loc {
			return i
		}
	}
	return -1
}

// Contains tells whether the given location belongs to this unit.
func (u Unit) Contains(loc Location) bool {
	return u.IndexOf(loc) >= 0
}

// Intersect returns the subset of this unit's locations that also belong to
// the other unit.
func (u Unit) Intersect(v Unit) UnitSubset {
	var bits uint16
	for i, loc := range unitLocations[u] {
		if v.Contains(loc) {
			bits |= 1 << i
		}
	}
	return UnitSubset{Unit: u, Bits: bits}
}

// Subtract returns the subset of this unit's locations that do not belong
// to the other unit.
func (u Unit) Subtract(v Unit) UnitSubset {
	var bits uint16
	for i, loc := range unitLocations[u] {
		if !v.Contains(loc) {
			bits |= 1 << i
		}
	}
	return UnitSubset{Unit: u, Bits: bits}
}

// AllSubset returns the subset holding every location of this unit.
func (u Unit) AllSubset() UnitSubset {
	return UnitSubset{Unit: u, Bits: allBits}
}

// EmptySubset returns the empty subset of this unit.
func (u Unit) EmptySubset() UnitSubset {
	return UnitSubset{Unit: u}
}

func (u Unit) String() string {
	return u.Type().String() + " " + strconv.Itoa(u.Number())
}

// AllUnits returns the 27 units in index order: rows, columns, blocks.
func AllUnits() [UnitCount]Unit {
	var all [UnitCount]Unit
	for i := range all {
		all[i] = Unit(i)
	}
	return all
}

// unitLocations maps each unit to its 9 locations in unit order.  A variable
// initializer rather than an init function: the location package tables are
// built from it during their own initialization.
var unitLocations = buildUnitLocations()

func buildUnitLocations() [UnitCount][UnitSize]Location {
	var locs [UnitCount][UnitSize]Location
	for n := 0; n < 9; n++ {
		for i := 0; i < 9; i++ {
			locs[n][i] = Location(n*9 + i)                          // row n
			locs[9+n][i] = Location(i*9 + n)                        // column n
			locs[18+n][i] = Location((n/3*3+i/3)*9 + (n%3)*3 + i%3) // block n
		}
	}
	return locs
}
