package sudoku

import (
	"fmt"
	"strings"
)

// State describes a grid's standing with respect to the rules of the game.
type State int

const (
	// Incomplete means not all filled in, but nothing filled in breaks the rules.
	Incomplete State = iota
	// Broken means something filled in breaks the rules.
	Broken
	// Solved means completely filled in with no rule violations.
	Solved
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Broken:
		return "broken"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// Grid is an immutable Sudoku grid: a mapping from locations to numerals for
// the assigned cells only.  It accepts any numeral at any location; it does
// not enforce the constraints of the game.  The zero value is the blank grid.
type Grid struct {
	squares [LocationCount]uint8
}

// BlankGrid returns the grid with no assignments.
func BlankGrid() Grid { return Grid{} }

// GridFromString parses a flat 81-character grid string, row major, with '.'
// for unassigned locations and '1'..'9' for assigned ones.  It returns an
// error if the string has the wrong length or holds any other character.
func GridFromString(s string) (Grid, error) {
	var g Grid
	if len(s) != LocationCount {
		return g, fmt.Errorf("sudoku: grid string must have %d characters, got %d", LocationCount, len(s))
	}
	for i := 0; i < LocationCount; i++ {
		switch c := s[i]; {
		case c == '.':
		case c >= '1' && c <= '9':
			g.squares[i] = c - '0'
		default:
			return Grid{}, fmt.Errorf("sudoku: invalid grid character %q at index %d", s[i], i)
		}
	}
	return g, nil
}

// Get returns the numeral assigned to the given location, if any.
func (g Grid) Get(loc Location) (Numeral, bool) {
	n := g.squares[loc]
	return Numeral(n), n != 0
}

// Has tells whether the given location is assigned.
func (g Grid) Has(loc Location) bool {
	return g.squares[loc] != 0
}

// Size returns the number of assigned locations.
func (g Grid) Size() int {
	n := 0
	for _, sq := range g.squares {
		if sq != 0 {
			n++
		}
	}
	return n
}

// Assignments returns the grid's assignments in location order.
func (g Grid) Assignments() []Assignment {
	as := make([]Assignment, 0, g.Size())
	for i, sq := range g.squares {
		if sq != 0 {
			as = append(as, Assignment{Location: Location(i), Numeral: Numeral(sq)})
		}
	}
	return as
}

// State scans all 27 units for duplicates and reports the grid's state.
func (g Grid) State() State {
	if !g.BrokenLocations().IsEmpty() {
		return Broken
	}
	if g.Size() < LocationCount {
		return Incomplete
	}
	return Solved
}

// IsSolved tells whether the grid is completely and correctly filled in.
func (g Grid) IsSolved() bool {
	return g.State() == Solved
}

// BrokenLocations returns the locations that duplicate a numeral within some
// unit.
func (g Grid) BrokenLocations() *LocSet {
	broken := NewLocSet()
	for _, unit := range AllUnits() {
		var seen NumSet
		for _, loc := range unit.Locations() {
			num, ok := g.Get(loc)
			if !ok {
				continue
			}
			if seen.Contains(num) {
				broken.Add(loc)
				for _, first := range unit.Locations() {
					if n, ok := g.Get(first); ok && n == num {
						broken.Add(first)
						break
					}
				}
			}
			seen = seen.With(num)
		}
	}
	return broken
}

// ConflictingNumerals returns the numerals assigned more than once within
// the given unit.
func (g Grid) ConflictingNumerals(unit Unit) NumSet {
	var seen, conflicting NumSet
	for _, loc := range unit.Locations() {
		if num, ok := g.Get(loc); ok {
			if seen.Contains(num) {
				conflicting = conflicting.With(num)
			}
			seen = seen.With(num)
		}
	}
	return conflicting
}

// MissingNumerals returns the numerals not assigned within the given unit.
func (g Grid) MissingNumerals(unit Unit) NumSet {
	missing := AllNums
	for _, loc := range unit.Locations() {
		if num, ok := g.Get(loc); ok {
			missing = missing.Without(num)
		}
	}
	return missing
}

// FlatString returns the 81-character string form of the grid, the exact
// inverse of GridFromString.
func (g Grid) FlatString() string {
	var sb strings.Builder
	sb.Grow(LocationCount)
	for _, sq := range g.squares {
		if sq == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + sq)
		}
	}
	return sb.String()
}

// String returns a boxed multi-line rendering of the grid.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sq := g.squares[r*9+c]
			if sq == 0 {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteByte('0' + sq)
			}
			if c == 2 || c == 5 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString("-------+-------+-------\n")
		}
	}
	return sb.String()
}

// Builder returns a mutable copy of this grid.
func (g Grid) Builder() *GridBuilder {
	return &GridBuilder{grid: g}
}

// NewGridBuilder returns a builder starting from the blank grid.
func NewGridBuilder() *GridBuilder {
	return &GridBuilder{}
}

// GridBuilder is a mutable grid under construction.  It is meant for a
// single writer; Build snapshots an immutable Grid.
type GridBuilder struct {
	grid Grid
}

// Build returns an immutable snapshot of the builder's grid.
func (b *GridBuilder) Build() Grid {
	return b.grid
}

// Put sets the numeral for the given location.
func (b *GridBuilder) Put(loc Location, num Numeral) *GridBuilder {
	b.grid.squares[loc] = uint8(num)
	return b
}

// Remove erases the given location.
func (b *GridBuilder) Remove(loc Location) *GridBuilder {
	b.grid.squares[loc] = 0
	return b
}

// PutAll sets all the given assignments.
func (b *GridBuilder) PutAll(as []Assignment) *GridBuilder {
	for _, a := range as {
		b.Put(a.Location, a.Numeral)
	}
	return b
}

// Get returns the numeral currently set for the given location, if any.
func (b *GridBuilder) Get(loc Location) (Numeral, bool) {
	return b.grid.Get(loc)
}

// Has tells whether the given location is currently set.
func (b *GridBuilder) Has(loc Location) bool {
	return b.grid.Has(loc)
}

// Size returns the number of squares filled in.
func (b *GridBuilder) Size() int {
	return b.grid.Size()
}

// Clear resets the builder to the blank grid.
func (b *GridBuilder) Clear() *GridBuilder {
	b.grid = Grid{}
	return b
}

// Reset resets the builder to match the given grid.
func (b *GridBuilder) Reset(g Grid) *GridBuilder {
	b.grid = g
	return b
}
