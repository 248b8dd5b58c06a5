package insight

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sudogic/sudogic/debug"
	"github.com/sudogic/sudogic/sudoku"
)

// Marks keeps track of the possible numerals that could go in each location,
// like the pencil marks some people fill in to Sudoku grids.  It also keeps
// track of the possible locations within each unit that each numeral could
// occupy, and of the insights that led to each elimination.
//
// Marks is immutable; MarksBuilder constructs and extends it.
type Marks struct {
	// data combines 16 bits of information for each location, for each
	// unit-numeral, and for each unit (twice for each unit).  The location
	// data comes first, then the unit-numeral data, then the unit data.
	//
	// Location data is a 9-bit set of the numerals that could be assigned
	// to the location, plus a 4-bit slot for the numeral that is currently
	// assigned (zero means nothing is), plus a single bit that is set when
	// the assignment is explicit.  In addition the top bit of location 0's
	// slot is an error bit: when set, the assignments and eliminations
	// embodied in the marks are not consistent with the rules of Sudoku.
	//
	// Unit-numeral data is a 9-bit subset of the locations within the unit
	// that could hold the numeral, plus a 4-bit slot for the currently
	// assigned location: zero means unassigned, and one through nine mean
	// the index of the assigned location within the unit, plus one.
	//
	// For units we keep two bit-sets each: first the numerals currently
	// unassigned within the unit, then the locations currently unassigned
	// within the unit.
	data [dataSize]uint16

	// eliminations maps eliminated assignments to the insights that
	// disprove them.
	eliminations map[sudoku.Assignment][]Insight

	// unsorted holds the eliminated assignments whose insight lists are
	// not yet in sorted order.  Guarded by mu, as is the lazy sorting of
	// the lists themselves.
	unsorted map[sudoku.Assignment]struct{}
	mu       sync.Mutex
}

const (
	dataSize = sudoku.LocationCount + sudoku.UnitNumeralCount + 2*sudoku.UnitCount

	allDataBits uint16 = 1<<9 - 1
	bitsetMask  uint16 = allDataBits

	locAssignmentShift        = 9
	locAssignmentMask  uint16 = ((1 << 4) - 1) << locAssignmentShift
	locExplicitMask    uint16 = 1 << (9 + 4)
	loc0ErrorBit       uint16 = 1 << 15

	unitnumOffset                 = sudoku.LocationCount
	unitnumAssignmentShift        = 9
	unitnumAssignmentMask  uint16 = ((1 << 4) - 1) << unitnumAssignmentShift

	unitNumsetOffset = unitnumOffset + sudoku.UnitNumeralCount
	unitLocsetOffset = unitNumsetOffset + sudoku.UnitCount
)

// NewMarksBuilder returns a builder whose marks start from the assignments
// of the given grid.
func NewMarksBuilder(grid sudoku.Grid) *MarksBuilder {
	b := &MarksBuilder{marks: newMarks()}
	for _, a := range grid.Assignments() {
		b.Add(NewExplicitAssignment(a))
	}
	return b
}

// MarksOf returns the marks implied by the given grid's assignments.
func MarksOf(grid sudoku.Grid) *Marks {
	return NewMarksBuilder(grid).Build()
}

func newMarks() *Marks {
	m := &Marks{
		eliminations: make(map[sudoku.Assignment][]Insight),
		unsorted:     make(map[sudoku.Assignment]struct{}),
	}
	for i := range m.data {
		m.data[i] = allDataBits
	}
	return m
}

// ToBuilder returns a builder that extends these marks.
func (m *Marks) ToBuilder() *MarksBuilder {
	return &MarksBuilder{marks: m, built: true}
}

// ToGrid returns the grid embodying the marks' assignments.
func (m *Marks) ToGrid() sudoku.Grid {
	return m.ToGridBuilder().Build()
}

// ToGridBuilder returns a grid builder holding the marks' assignments.
func (m *Marks) ToGridBuilder() *sudoku.GridBuilder {
	b := sudoku.NewGridBuilder()
	for _, loc := range sudoku.AllLocations() {
		if num, ok := m.AssignedNumeral(loc); ok {
			b.Put(loc, num)
		}
	}
	return b
}

// HasErrors tells whether one or more of the assignments or eliminations
// made in these marks resulted in the rules of Sudoku being broken.
func (m *Marks) HasErrors() bool {
	return m.data[0]&loc0ErrorBit != 0
}

// PossibleNumerals returns the set of numerals that could go in the given
// location.
func (m *Marks) PossibleNumerals(loc sudoku.Location) sudoku.NumSet {
	return sudoku.NumSetOfBits(m.BitsForPossibleNumerals(loc))
}

// BitsForPossibleNumerals returns the bit-set behind PossibleNumerals.
func (m *Marks) BitsForPossibleNumerals(loc sudoku.Location) uint16 {
	return m.data[loc.Index()] & bitsetMask
}

// OnlyPossibleNumeral returns the single numeral that could go in the given
// location, if there is exactly one.
func (m *Marks) OnlyPossibleNumeral(loc sudoku.Location) (sudoku.Numeral, bool) {
	set := m.PossibleNumerals(loc)
	if set.Size() != 1 {
		return 0, false
	}
	return set.Get(0), true
}

// AssignedNumeral returns the numeral assigned to the given location, if
// any.
func (m *Marks) AssignedNumeral(loc sudoku.Location) (sudoku.Numeral, bool) {
	assigned := (m.data[loc.Index()] & locAssignmentMask) >> locAssignmentShift
	if assigned == 0 {
		return 0, false
	}
	return sudoku.Numeral(assigned), true
}

// ExplicitlyAssignedNumeral returns the numeral explicitly assigned to the
// given location, if any.
func (m *Marks) ExplicitlyAssignedNumeral(loc sudoku.Location) (sudoku.Numeral, bool) {
	v := m.data[loc.Index()]
	assigned := (v & locAssignmentMask) >> locAssignmentShift
	if assigned == 0 || v&locExplicitMask == 0 {
		return 0, false
	}
	return sudoku.Numeral(assigned), true
}

// HasAssignment tells whether the given location has a numeral assigned to
// it.
func (m *Marks) HasAssignment(loc sudoku.Location) bool {
	return m.data[loc.Index()]&locAssignmentMask != 0
}

// AssignedLocations returns the set of locations that have assignments.
func (m *Marks) AssignedLocations() *sudoku.LocSet {
	set := sudoku.NewLocSet()
	for _, loc := range sudoku.AllLocations() {
		if m.HasAssignment(loc) {
			set.Add(loc)
		}
	}
	return set
}

// NumAssignments returns the number of locations that have been assigned
// numerals.
func (m *Marks) NumAssignments() int {
	n := 0
	for _, loc := range sudoku.AllLocations() {
		if m.HasAssignment(loc) {
			n++
		}
	}
	return n
}

// NumOpenLocations returns the number of locations that have not been
// assigned numerals.
func (m *Marks) NumOpenLocations() int {
	return sudoku.LocationCount - m.NumAssignments()
}

// NumOpenLocationsIn returns the number of unassigned locations within the
// given unit.
func (m *Marks) NumOpenLocationsIn(unit sudoku.Unit) int {
	n := 0
	for _, loc := range unit.Locations() {
		if !m.HasAssignment(loc) {
			n++
		}
	}
	return n
}

// IsSolved tells whether the marks embody a correctly solved grid.
func (m *Marks) IsSolved() bool {
	return m.NumOpenLocations() == 0 && !m.HasErrors()
}

// PossibleLocations returns the set of locations within the given unit that
// could hold the given numeral.
func (m *Marks) PossibleLocations(un sudoku.UnitNumeral) sudoku.UnitSubset {
	return sudoku.SubsetOfBits(un.Unit, m.BitsForPossibleLocations(un))
}

// BitsForPossibleLocations returns the bit-set behind PossibleLocations.
func (m *Marks) BitsForPossibleLocations(un sudoku.UnitNumeral) uint16 {
	return m.data[unitnumOffset+un.Index()] & bitsetMask
}

// SizeOfPossibleLocations returns the size of the set PossibleLocations
// would return.
func (m *Marks) SizeOfPossibleLocations(un sudoku.UnitNumeral) int {
	return sudoku.BitsSize(m.BitsForPossibleLocations(un))
}

// OnlyPossibleLocation returns the single location within the unit that
// could hold the numeral, if there is exactly one.
func (m *Marks) OnlyPossibleLocation(un sudoku.UnitNumeral) (sudoku.Location, bool) {
	set := sudoku.NumSetOfBits(m.BitsForPossibleLocations(un))
	if set.Size() != 1 {
		return 0, false
	}
	return un.Unit.Location(set.Get(0).Index()), true
}

// AssignedLocation returns the location assigned to the given numeral in the
// given unit, if any.
func (m *Marks) AssignedLocation(un sudoku.UnitNumeral) (sudoku.Location, bool) {
	assigned := (m.data[unitnumOffset+un.Index()] & unitnumAssignmentMask) >> unitnumAssignmentShift
	if assigned == 0 {
		return 0, false
	}
	return un.Unit.Location(int(assigned) - 1), true
}

// HasAssignmentIn tells whether the given numeral is assigned somewhere
// within the given unit.
func (m *Marks) HasAssignmentIn(un sudoku.UnitNumeral) bool {
	_, ok := m.AssignedLocation(un)
	return ok
}

// BitsForUnassignedNumerals returns a bit-set of the numerals that do not
// yet have an assigned location within the given unit.
func (m *Marks) BitsForUnassignedNumerals(unit sudoku.Unit) uint16 {
	return m.data[unitNumsetOffset+unit.Index()] & bitsetMask
}

// UnassignedNumerals returns the set of numerals currently unassigned within
// the given unit.
func (m *Marks) UnassignedNumerals(unit sudoku.Unit) sudoku.NumSet {
	return sudoku.NumSetOfBits(m.BitsForUnassignedNumerals(unit))
}

// BitsForUnassignedLocations returns a bit-set of the locations within the
// given unit that are not currently assigned a numeral.
func (m *Marks) BitsForUnassignedLocations(unit sudoku.Unit) uint16 {
	return m.data[unitLocsetOffset+unit.Index()] & bitsetMask
}

// UnassignedLocations returns the subset of the given unit's locations that
// are not currently assigned a numeral.
func (m *Marks) UnassignedLocations(unit sudoku.Unit) sudoku.UnitSubset {
	return sudoku.SubsetOfBits(unit, m.BitsForUnassignedLocations(unit))
}

// IsPossibleAssignment tells whether the given numeral could be assigned to
// the given location.
func (m *Marks) IsPossibleAssignment(loc sudoku.Location, num sudoku.Numeral) bool {
	return m.data[loc.Index()]&num.Bit() != 0
}

// IsEliminatedByAssignment tells whether the given location-numeral pair has
// been eliminated as a possible assignment by another assignment.
func (m *Marks) IsEliminatedByAssignment(loc sudoku.Location, num sudoku.Numeral) bool {
	if already, ok := m.AssignedNumeral(loc); ok {
		return already != num
	}
	for _, us := range loc.UnitSubsets() {
		un := sudoku.NewUnitNumeral(us.Unit, num)
		if already, ok := m.AssignedLocation(un); ok {
			return already != loc
		}
	}
	return false
}

// EliminationInsights returns the insights that imply the given assignment
// is not possible.  The returned list is sorted in a deterministic order
// dominated by cost; see Compare.
func (m *Marks) EliminationInsights(elimination sudoku.Assignment) []Insight {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Insight(nil), m.eliminationInsightsLocked(elimination)...)
}

// AssignmentInsight returns the insight corresponding to the given
// assignment, or nil if there isn't one.
func (m *Marks) AssignmentInsight(assignment sudoku.Assignment) Insight {
	m.mu.Lock()
	defer m.mu.Unlock()
	peerElim := sudoku.NewAssignment(assignment.Location.Peer(0), assignment.Numeral)
	for _, ins := range m.eliminationInsightsLocked(peerElim) {
		if a, ok := ins.Assignment(); ok && a == assignment {
			return ins
		}
	}
	return nil
}

func (m *Marks) eliminationInsightsLocked(elimination sudoku.Assignment) []Insight {
	list := m.eliminations[elimination]
	if len(list) > 1 {
		if _, ok := m.unsorted[elimination]; ok {
			delete(m.unsorted, elimination)
			sort.Slice(list, func(i, j int) bool { return m.Compare(list[i], list[j]) < 0 })
		}
	}
	return list
}

// CollectAntecedents finds a set of insights that collectively eliminate all
// the assignments in the cross product of the given sets of locations and
// numerals.
func (m *Marks) CollectAntecedents(us sudoku.UnitSubset, ns sudoku.NumSet) []Insight {
	var lists [][]Insight
	m.mu.Lock()
	for _, loc := range us.Locations() {
		for _, num := range ns.Numerals() {
			// Skip explicitly assigned locations unless we're looking
			// for eliminations of the actual assigned numeral.
			if n, ok := m.ExplicitlyAssignedNumeral(loc); ok && n != num {
				continue
			}
			if list := m.eliminationInsightsLocked(sudoku.NewAssignment(loc, num)); len(list) > 0 {
				lists = append(lists, list)
			}
		}
	}
	m.mu.Unlock()
	return m.collectAntecedentsLists(lists)
}

// collectAntecedentsLists greedily covers the given elimination lists: the
// most expensive lists' heads are chosen first, and any list that is covered
// by a chosen insight is dropped.
func (m *Marks) collectAntecedentsLists(lists [][]Insight) []Insight {
	sort.Slice(lists, func(i, j int) bool {
		return m.Compare(lists[i][0], lists[j][0]) < 0
	})
	var result []Insight
	for len(lists) > 0 {
		last := len(lists) - 1
		ins := lists[last][0]
		result = append(result, ins)
		remaining := lists[:0]
		for _, list := range lists[:last] {
			if !containsInsight(list, ins) {
				remaining = append(remaining, list)
			}
		}
		lists = remaining
	}
	return result
}

func containsInsight(list []Insight, ins Insight) bool {
	for _, i := range list {
		if Equal(i, ins) {
			return true
		}
	}
	return false
}

// Compare orders two insights, with cost the dominant comparison.  It is
// used to order the insights that eliminated a given assignment, with
// cheaper and easier to see insights coming first.
func (m *Marks) Compare(a, b Insight) int {
	if r := intCompare(a.Cost(), b.Cost()); r != 0 {
		return r
	}
	if r := intCompare(int(a.Type()), int(b.Type())); r != 0 {
		return r
	}
	a, b = a.Nub(), b.Nub()
	if r := intCompare(int(a.Type()), int(b.Type())); r != 0 {
		return r
	}
	switch {
	case a.Type().IsAssignment():
		return m.compareAssignments(a, b)
	case a.Type() == TypeOverlap:
		return m.compareUnits(a.(*Overlap).Unit(), b.(*Overlap).Unit())
	case a.Type() == TypeLockedSet:
		return m.compareSets(a.(*LockedSet), b.(*LockedSet))
	}
	return 0
}

func (m *Marks) compareAssignments(a, b Insight) int {
	result := 0
	if a.Type() == TypeForcedLocation {
		result = compareBlocksFirst(a.(*ForcedLoc).Unit(), b.(*ForcedLoc).Unit())
	}
	aa, _ := a.Assignment()
	ba, _ := b.Assignment()
	la, lb := aa.Location, ba.Location
	if result == 0 && la != lb {
		// Puts assignments from crowded units first.
		result = compareCounts(m.smallestUnitOpenCounts(la), m.smallestUnitOpenCounts(lb))
	}
	if result == 0 {
		// Last chance, choose something deterministic.
		result = intCompare(int(la), int(lb))
	}
	return result
}

// smallestUnitOpenCounts returns the number of unassigned locations in each
// of the given location's units, ordered numerically.
func (m *Marks) smallestUnitOpenCounts(loc sudoku.Location) [3]int {
	counts := [3]int{
		m.NumOpenLocationsIn(loc.Block()),
		m.NumOpenLocationsIn(loc.Row()),
		m.NumOpenLocationsIn(loc.Column()),
	}
	sort.Ints(counts[:])
	return counts
}

func (m *Marks) compareSets(a, b *LockedSet) int {
	result := intCompare(a.Size(), b.Size())
	if result == 0 {
		// Hidden before naked.
		result = boolCompare(a.IsNakedSet(), b.IsNakedSet())
	}
	if result == 0 {
		result = m.compareUnits(a.Unit(), b.Unit())
	}
	return result
}

func (m *Marks) compareUnits(a, b sudoku.Unit) int {
	result := compareBlocksFirst(a, b)
	if result == 0 {
		result = intCompare(m.NumOpenLocationsIn(a), m.NumOpenLocationsIn(b))
	}
	if result == 0 {
		result = intCompare(int(a), int(b))
	}
	return result
}

// compareBlocksFirst puts blocks before lines.
func compareBlocksFirst(a, b sudoku.Unit) int {
	return boolCompare(a.Type() != sudoku.BlockType, b.Type() != sudoku.BlockType)
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

func compareCounts(a, b [3]int) int {
	for i := range a {
		if r := intCompare(a[i], b[i]); r != 0 {
			return r
		}
	}
	return 0
}

// String renders the marks as a boxed grid of possible numerals, with an
// exclamation point after each assigned numeral and a question mark for
// locations with no possibilities left.
func (m *Marks) String() string {
	width := 1
	for _, loc := range sudoku.AllLocations() {
		if n := m.PossibleNumerals(loc).Size(); n > width {
			width = n
		}
		if width == 1 && m.HasAssignment(loc) {
			width = 2
		}
	}
	var sb strings.Builder
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			loc := sudoku.LocationOf(r, c)
			sb.WriteByte(' ')
			appendMarksCell(&sb, m.PossibleNumerals(loc), m.HasAssignment(loc), width)
			if c == 3 || c == 6 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if r == 3 || r == 6 {
			rule := strings.Repeat("-", 3*width+4)
			sb.WriteString(rule + "+" + rule + "+" + rule + "\n")
		}
	}
	return sb.String()
}

func appendMarksCell(sb *strings.Builder, nums sudoku.NumSet, assigned bool, width int) {
	size := nums.Size()
	if size < 1 {
		size = 1
	}
	if assigned {
		size++
	}
	left := (width - size) / 2
	sb.WriteString(strings.Repeat(" ", left))
	if nums.IsEmpty() {
		sb.WriteByte('?')
	} else {
		for _, num := range nums.Numerals() {
			sb.WriteByte('0' + byte(num))
		}
		if assigned {
			sb.WriteByte('!')
		}
	}
	sb.WriteString(strings.Repeat(" ", width-size-left))
}

// MarksFromString builds marks from a string in the same format String
// produces: 81 whitespace-separated words, each either the digits that are
// possible at the location, a single digit followed by '!' for an explicit
// assignment, or '?' for a location with no possibilities left.  Box-drawing
// characters are ignored.
func MarksFromString(s string) (*Marks, error) {
	var words []string
	var word strings.Builder
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9', c == '?', c == '!':
			word.WriteRune(c)
		default:
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
		}
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	if len(words) != sudoku.LocationCount {
		return nil, fmt.Errorf("insight: marks string must have %d words, got %d", sudoku.LocationCount, len(words))
	}

	b := &MarksBuilder{marks: newMarks()}
	for i, w := range words {
		loc := sudoku.LocationOfIndex(i)
		if w == "?" {
			for _, num := range sudoku.AllNumerals() {
				b.eliminate(sudoku.NewAssignment(loc, num), nil)
			}
			continue
		}
		if strings.HasSuffix(w, "!") {
			if len(w) != 2 || w[0] < '1' || w[0] > '9' {
				return nil, fmt.Errorf("insight: invalid marks word %q at index %d", w, i)
			}
			num := sudoku.NumeralOf(int(w[0] - '0'))
			b.Add(NewExplicitAssignment(sudoku.NewAssignment(loc, num)))
			continue
		}
		var nums sudoku.NumSet
		for j := 0; j < len(w); j++ {
			if w[j] < '1' || w[j] > '9' {
				return nil, fmt.Errorf("insight: invalid marks word %q at index %d", w, i)
			}
			nums = nums.With(sudoku.NumeralOf(int(w[j] - '0')))
		}
		for _, num := range nums.Not().Numerals() {
			b.eliminate(sudoku.NewAssignment(loc, num), nil)
		}
	}
	return b.Build(), nil
}

// MarksBuilder accumulates assignments and eliminations into a Marks.  It is
// meant for a single goroutine; Build snapshots an immutable Marks that may
// be shared freely.
type MarksBuilder struct {
	marks *Marks
	built bool
}

// Build returns the marks built so far.  The builder remains usable; any
// further change copies the state first.
func (b *MarksBuilder) Build() *Marks {
	if debug.Debug {
		debug.Assert(b.marks.consistent(), "insight: marks location and unit views out of sync")
	}
	b.built = true
	return b.marks
}

// consistent reports whether the per-location and per-unit views agree on
// every open location's possibilities.
func (m *Marks) consistent() bool {
	for _, loc := range sudoku.AllLocations() {
		if m.HasAssignment(loc) {
			continue
		}
		for _, num := range sudoku.AllNumerals() {
			possible := m.PossibleNumerals(loc).Contains(num)
			for _, us := range loc.UnitSubsets() {
				un := sudoku.NewUnitNumeral(us.Unit, num)
				if m.PossibleLocations(un).Contains(loc) != possible {
					return false
				}
			}
		}
	}
	return true
}

// mutable returns the marks the builder may write to, copying the published
// snapshot if there is one.
func (b *MarksBuilder) mutable() *Marks {
	if b.built {
		old := b.marks
		fresh := &Marks{
			data:         old.data,
			eliminations: make(map[sudoku.Assignment][]Insight, len(old.eliminations)),
			unsorted:     make(map[sudoku.Assignment]struct{}, len(old.unsorted)),
		}
		old.mu.Lock()
		for k, v := range old.eliminations {
			fresh.eliminations[k] = append([]Insight(nil), v...)
		}
		for k := range old.unsorted {
			fresh.unsorted[k] = struct{}{}
		}
		old.mu.Unlock()
		b.marks = fresh
		b.built = false
	}
	return b.marks
}

// ToGrid returns the grid embodying the assignments made so far.
func (b *MarksBuilder) ToGrid() sudoku.Grid {
	return b.marks.ToGrid()
}

// PossibleNumerals returns the set of numerals that could go in the given
// location.
func (b *MarksBuilder) PossibleNumerals(loc sudoku.Location) sudoku.NumSet {
	return b.marks.PossibleNumerals(loc)
}

// BitsForPossibleNumerals returns the bit-set behind PossibleNumerals.
func (b *MarksBuilder) BitsForPossibleNumerals(loc sudoku.Location) uint16 {
	return b.marks.BitsForPossibleNumerals(loc)
}

// PossibleLocations returns the set of locations within the given unit that
// could hold the given numeral.
func (b *MarksBuilder) PossibleLocations(un sudoku.UnitNumeral) sudoku.UnitSubset {
	return b.marks.PossibleLocations(un)
}

// BitsForPossibleLocations returns the bit-set behind PossibleLocations.
func (b *MarksBuilder) BitsForPossibleLocations(un sudoku.UnitNumeral) uint16 {
	return b.marks.BitsForPossibleLocations(un)
}

// HasErrors tells whether the marks built so far are inconsistent with the
// rules of Sudoku.
func (b *MarksBuilder) HasErrors() bool {
	return b.marks.HasErrors()
}

// Add applies the given insight to the builder, assigning or eliminating as
// needed.
func (b *MarksBuilder) Add(ins Insight) *MarksBuilder {
	if IsAssignment(ins) {
		b.assign(ins)
	} else if IsElimination(ins) {
		for _, a := range ins.Eliminations() {
			b.eliminate(a, ins)
		}
	}
	return b
}

// Assign explicitly assigns the given numeral to the given location and
// reports whether the marks remain consistent with the rules of Sudoku.
func (b *MarksBuilder) Assign(loc sudoku.Location, num sudoku.Numeral) bool {
	ok := b.marks.IsPossibleAssignment(loc, num)
	b.Add(NewExplicitAssignment(sudoku.NewAssignment(loc, num)))
	return ok && !b.HasErrors()
}

// Eliminate explicitly rules the given numeral out of the given location and
// reports whether the marks remain consistent with the rules of Sudoku.
func (b *MarksBuilder) Eliminate(loc sudoku.Location, num sudoku.Numeral) bool {
	b.Add(NewExplicitElimination(sudoku.NewAssignment(loc, num)))
	return !b.HasErrors()
}

// assign applies the given assignment insight.  Sets the error bit if the
// assignment is inconsistent with the rules of Sudoku.
func (b *MarksBuilder) assign(ins Insight) {
	a, _ := ins.Assignment()
	m := b.mutable()
	loc, num := a.Location, a.Numeral

	ok := true

	// Remove this numeral from the location's peers, marking the
	// eliminations with the insight.
	for _, peer := range loc.Peers() {
		ok = b.eliminate(sudoku.NewAssignment(peer, num), ins) && ok
	}

	// Remove the other numerals from this location, marking with the
	// insight only if it is not an explicit assignment.
	others := m.PossibleNumerals(loc).Without(num)
	explicit := ins.Type() == TypeExplicitAssignment
	var elimIns Insight
	if !explicit {
		elimIns = ins
	}
	for _, other := range others.Numerals() {
		ok = b.eliminate(sudoku.NewAssignment(loc, other), elimIns) && ok
	}

	// Save the numeral in the location's data slot.
	v := m.data[loc.Index()]
	v &^= locAssignmentMask
	v |= uint16(num.Number()) << locAssignmentShift
	if explicit {
		v |= locExplicitMask
	}
	m.data[loc.Index()] = v

	// Save the location in the three unit-numeral slots, and reduce the
	// sets of available numerals and locations in each unit.
	for _, us := range loc.UnitSubsets() {
		idx := unitnumOffset + sudoku.NewUnitNumeral(us.Unit, num).Index()
		v = m.data[idx]
		v &^= unitnumAssignmentMask
		v |= uint16(us.GetIndex(0)+1) << unitnumAssignmentShift
		m.data[idx] = v

		m.data[unitNumsetOffset+us.Unit.Index()] &^= num.Bit()
		m.data[unitLocsetOffset+us.Unit.Index()] &^= us.Bits
	}

	if ok {
		ok = m.BitsForPossibleNumerals(loc) == num.Bit()
	}
	if !ok {
		b.setError()
	}
}

func (b *MarksBuilder) setError() {
	b.mutable().data[0] |= loc0ErrorBit
}

// eliminate rules the given assignment out.  Sets the error bit, and returns
// false, if this is inconsistent with the rules of Sudoku.
func (b *MarksBuilder) eliminate(a sudoku.Assignment, ins Insight) bool {
	m := b.mutable()
	loc, num := a.Location, a.Numeral
	ok := true

	m.data[loc.Index()] &^= num.Bit()
	if m.data[loc.Index()]&bitsetMask == 0 {
		ok = false // this location has no possibilities left
	}

	for _, us := range loc.UnitSubsets() {
		idx := unitnumOffset + sudoku.NewUnitNumeral(us.Unit, num).Index()
		m.data[idx] &^= us.Bits
		if m.data[idx] == 0 {
			ok = false // this numeral has no possible locations left in this unit
		}
	}

	if ins != nil {
		list := append(m.eliminations[a], ins)
		m.eliminations[a] = list
		if len(list) > 1 {
			m.unsorted[a] = struct{}{}
		}
	}

	if !ok {
		b.setError()
	}
	return ok
}
