package sudoku

import (
	"fmt"
	"strconv"
)

// LocationCount is the number of distinct locations.
const LocationCount = 81

// PeerCount is the number of peers of every location: the 20 other locations
// sharing a row, column, or block with it.
const PeerCount = 20

// Location is one of the 81 cells of a Sudoku grid, identified by its
// row-major index in 0..80.
type Location uint8

// LocationOf returns the location with the given row and column numbers,
// both in 1..9.
func LocationOf(rowNumber, columnNumber int) Location {
	return LocationOfIndices(rowNumber-1, columnNumber-1)
}

// LocationOfIndices returns the location with the given row and column
// indices, both in 0..8.
func LocationOfIndices(rowIndex, columnIndex int) Location {
	if rowIndex < 0 || rowIndex > 8 || columnIndex < 0 || columnIndex > 8 {
		panic(fmt.Sprintf("sudoku: location indices out of range: (%d, %d)", rowIndex, columnIndex))
	}
	return Location(rowIndex*9 + columnIndex)
}

// LocationOfIndex returns the location with the given index, in 0..80.
func LocationOfIndex(index int) Location {
	if index < 0 || index >= LocationCount {
		panic("sudoku: location index out of range: " + strconv.Itoa(index))
	}
	return Location(index)
}

// Index returns the location's row-major index in 0..80.
func (l Location) Index() int { return int(l) }

// Row returns the location's row.
func (l Location) Row() Unit { return Unit(l / 9) }

// Column returns the location's column.
func (l Location) Column() Unit { return Unit(9 + l%9) }

// Block returns the location's block.
func (l Location) Block() Unit { return Unit(18 + l/27*3 + l%9/3) }

// Unit returns the location's unit of the given type.
func (l Location) Unit(t UnitType) Unit {
	switch t {
	case RowType:
		return l.Row()
	case ColumnType:
		return l.Column()
	default:
		return l.Block()
	}
}

// UnitSubset returns the singleton subset holding just this location within
// its unit of the given type.
func (l Location) UnitSubset(t UnitType) UnitSubset {
	return locSingletons[l][t]
}

// UnitSubsets returns the location's three singleton subsets, in row,
// column, block order.
func (l Location) UnitSubsets() [3]UnitSubset {
	return locSingletons[l]
}

// Peers returns the 20 locations sharing a unit with this one, not counting
// this one.
func (l Location) Peers() [PeerCount]Location {
	return locPeers[l]
}

// Peer returns the peer at the given index, in 0..19.  Peers are ordered row
// first, then column, then the remaining block locations.
func (l Location) Peer(index int) Location {
	return locPeers[l][index]
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", int(l)/9+1, int(l)%9+1)
}

// AllLocations returns the 81 locations in index order.
func AllLocations() [LocationCount]Location {
	var all [LocationCount]Location
	for i := range all {
		all[i] = Location(i)
	}
	return all
}

var (
	locSingletons [LocationCount][3]UnitSubset
	locPeers      [LocationCount][PeerCount]Location
)

func init() {
	for i := 0; i < LocationCount; i++ {
		loc := Location(i)
		for _, t := range []UnitType{RowType, ColumnType, BlockType} {
			unit := loc.Unit(t)
			locSingletons[i][t] = UnitSubset{Unit: unit, Bits: 1 << unit.IndexOf(loc)}
		}
		n := 0
		var seen [LocationCount]bool
		seen[i] = true
		for _, t := range []UnitType{RowType, ColumnType, BlockType} {
			for _, peer := range loc.Unit(t).Locations() {
				if !seen[peer] {
					seen[peer] = true
					locPeers[i][n] = peer
					n++
				}
			}
		}
	}
}
