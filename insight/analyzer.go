package insight

import (
	"context"
	"errors"
	"sort"

	"github.com/sudogic/sudogic/logger"
	"github.com/sudogic/sudogic/sudoku"
)

// ErrStop is returned by a Callback to cut an analysis short.
var ErrStop = errors.New("insight: analysis stopped")

// Callback receives each insight found by Analyze.  Returning ErrStop ends
// the analysis early; any other error aborts it as well.
type Callback func(Insight) error

// Analyze scans the given marks, providing found insights to the callback,
// and returns true if it finished without being stopped or cancelled.
// Eliminations found along the way are folded back in and the scan repeated,
// so the insights reported reflect a fixed point of the overlap and
// locked-set rules.
func Analyze(ctx context.Context, marks *Marks, callback Callback) bool {
	log := logger.Logger().With().Str("component", "analyzer").Logger()

	err := findInsights(ctx, marks, callback, make(map[string]struct{}))
	if err != nil {
		if errors.Is(err, ErrStop) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Debug().Err(err).Msg("analysis interrupted")
			return false
		}
		log.Debug().Err(err).Msg("analysis aborted by callback")
		return false
	}
	log.Debug().Int("open", marks.NumOpenLocations()).Bool("errors", marks.HasErrors()).Msg("analysis complete")
	return true
}

func findInsights(ctx context.Context, marks *Marks, callback Callback, index map[string]struct{}) error {
	c := &collector{marks: marks, delegate: callback, index: index}

	for {
		for {
			if err := FindOverlaps(marks, c.take); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if c.builder == nil {
				break // no overlaps found
			}
			marks = c.builder.Build()
			c = &collector{marks: marks, delegate: callback, index: index}
		}

		if err := FindSets(marks, c.take); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.builder == nil {
			break // no sets found
		}
		marks = c.builder.Build()
		c = &collector{marks: marks, delegate: callback, index: index}
	}

	if marks.HasErrors() {
		if err := FindErrors(marks, c.take); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	if err := FindSingletonLocations(marks, c.take); err != nil {
		return err
	}
	if err := FindSingletonNumerals(marks, c.take); err != nil {
		return err
	}
	return ctx.Err()
}

// collector deduplicates insights, wraps them with their antecedents, and
// folds eliminations into a pending builder so the scan can be repeated
// against the reduced marks.
type collector struct {
	marks    *Marks
	delegate Callback
	index    map[string]struct{}
	builder  *MarksBuilder
}

func (c *collector) take(ins Insight) error {
	k := ins.key()
	if _, seen := c.index[k]; seen {
		return nil
	}
	c.index[k] = struct{}{}
	if ants := ins.collectAntecedents(c.marks); len(ants) > 0 {
		ins = NewImplication(ants, ins)
	}
	if err := c.delegate(ins); err != nil {
		return err
	}
	if IsElimination(ins) {
		if c.builder == nil {
			c.builder = c.marks.ToBuilder()
		}
		c.builder.Add(ins)
	}
	return nil
}

// overlapBits holds the bit patterns for unit subsets of overlapping units
// with 2 or 3 locations, for rows or columns overlapping with blocks, and
// for blocks overlapping with rows.  overlapBits2 is the same for blocks
// overlapping with columns.  Both are kept sorted for binary search.
var overlapBits = []uint16{
	0b000_000_111, 0b000_000_110, 0b000_000_101, 0b000_000_011,
	0b000_111_000, 0b000_110_000, 0b000_101_000, 0b000_011_000,
	0b111_000_000, 0b110_000_000, 0b101_000_000, 0b011_000_000,
}

var overlapBits2 = []uint16{
	0b001_001_001, 0b001_001_000, 0b001_000_001, 0b000_001_001,
	0b010_010_010, 0b010_010_000, 0b010_000_010, 0b000_010_010,
	0b100_100_100, 0b100_100_000, 0b100_000_100, 0b000_100_100,
}

func init() {
	sort.Slice(overlapBits, func(i, j int) bool { return overlapBits[i] < overlapBits[j] })
	sort.Slice(overlapBits2, func(i, j int) bool { return overlapBits2[i] < overlapBits2[j] })
}

func bitsInTable(table []uint16, bits uint16) bool {
	i := sort.Search(len(table), func(i int) bool { return table[i] >= bits })
	return i < len(table) && table[i] == bits
}

const maxSetSize = 4

func firstSubset(size int, indices []int) {
	for i := 0; i < size; i++ {
		indices[i] = i
	}
}

func nextSubset(size int, indices []int, count int) bool {
	for i := size; i > 0; count-- {
		i--
		indices[i]++
		if indices[i] < count {
			for i++; i < size; i++ {
				indices[i] = 1 + indices[i-1]
			}
			return true
		}
	}
	return false
}

// FindOverlaps reports each overlap in the given marks to the callback.
func FindOverlaps(m *Marks, callback Callback) error {
	for _, num := range sudoku.AllNumerals() {
		if err := findOverlaps(m, callback, num, sudoku.BlockType, sudoku.RowType, overlapBits); err != nil {
			return err
		}
		if err := findOverlaps(m, callback, num, sudoku.BlockType, sudoku.ColumnType, overlapBits2); err != nil {
			return err
		}
		if err := findOverlaps(m, callback, num, sudoku.RowType, sudoku.BlockType, overlapBits); err != nil {
			return err
		}
		if err := findOverlaps(m, callback, num, sudoku.ColumnType, sudoku.BlockType, overlapBits); err != nil {
			return err
		}
	}
	return nil
}

// FindOverlappingUnit looks to see whether the given unit subset belongs to
// a single different unit as well, and returns that unit if so.
func FindOverlappingUnit(set sudoku.UnitSubset) (sudoku.Unit, bool) {
	if set.Size() < 2 || set.Size() > 3 {
		return 0, false
	}
	if set.Unit.Type() == sudoku.BlockType {
		if bitsInTable(overlapBits, set.Bits) {
			return set.Get(0).Row(), true
		}
		if bitsInTable(overlapBits2, set.Bits) {
			return set.Get(0).Column(), true
		}
	} else if bitsInTable(overlapBits, set.Bits) {
		return set.Get(0).Block(), true
	}
	return 0, false
}

func findOverlaps(m *Marks, callback Callback, num sudoku.Numeral,
	unitType, overlappingType sudoku.UnitType, table []uint16) error {
	for n := 1; n <= 9; n++ {
		unit := sudoku.UnitOfIndex(int(unitType)*9 + n - 1)
		un := sudoku.NewUnitNumeral(unit, num)
		bits := m.BitsForPossibleLocations(un)
		if !bitsInTable(table, bits) && sudoku.BitsSize(bits) != 1 {
			continue
		}
		set := sudoku.SubsetOfBits(unit, bits)
		if set.IsEmpty() {
			continue
		}
		overlappingUnit := set.Get(0).Unit(overlappingType)
		oun := sudoku.NewUnitNumeral(overlappingUnit, num)
		overlappingSet := m.PossibleLocations(oun)
		if overlappingSet.Size() <= set.Size() {
			continue // nothing to eliminate
		}
		eliminated := subsetMinusLocations(overlappingSet, set)
		if set.Size() > 1 {
			if err := callback(NewOverlap(unit, num, eliminated)); err != nil {
				return err
			}
			continue
		}
		ants, ok := overlapAntecedentsForForcedLocation(m, num, unit, set, overlappingUnit)
		if ok {
			if err := callback(newOverlapWithAntecedents(unit, num, eliminated, ants)); err != nil {
				return err
			}
		}
	}
	return nil
}

// subsetMinusLocations returns the locations of s that are not in t, where t
// may belong to a different unit.
func subsetMinusLocations(s, t sudoku.UnitSubset) sudoku.UnitSubset {
	bits := s.Bits
	for i := 0; i < sudoku.UnitSize; i++ {
		if bits&(1<<i) != 0 && t.Contains(s.Unit.Location(i)) {
			bits &^= 1 << i
		}
	}
	return sudoku.SubsetOfBits(s.Unit, bits)
}

// overlapAntecedentsForForcedLocation looks for a reduced set of antecedents
// for a forced location that still result in the given overlap.  It reports
// false if no such reduced set is found.
func overlapAntecedentsForForcedLocation(m *Marks, num sudoku.Numeral,
	unit sudoku.Unit, set sudoku.UnitSubset, overlappingUnit sudoku.Unit) ([]Insight, bool) {

	intersection := unit.Intersect(overlappingUnit)
	unassigned := m.UnassignedLocations(unit)
	// Possibles has the currently eliminated locations within the
	// intersection.  These do not need to be eliminated for an overlap.
	possibles := intersection.And(unassigned).Minus(set)
	if possibles.IsEmpty() {
		return nil, false
	}

	// There is more than one unassigned location, so it might include an
	// overlap.  We count it as an overlap if removing the insights that
	// eliminate 2 or more of the overlapping locations still leaves all of
	// the remaining open locations eliminated.
	//
	// Arriving here implies that there is exactly one possible location
	// for the numeral within the unit, so one of the 3 locations in the
	// intersection is not currently eliminated.  We can therefore examine
	// the insights that eliminate the other locations in isolation.
	//
	// Required has all the unassigned locations not in the intersection.
	// These still need to be eliminated for an overlap.
	required := unassigned.Minus(intersection)
	requiredLocs := required.Locations()
	var requiredInsights [][]Insight

	getRequired := func(j int) []Insight {
		if requiredInsights == nil {
			return m.EliminationInsights(sudoku.NewAssignment(requiredLocs[j], num))
		}
		return requiredInsights[j]
	}

	for _, possible := range possibles.Locations() {
		insights := make(map[string]struct{})
		for _, ins := range m.EliminationInsights(sudoku.NewAssignment(possible, num)) {
			insights[ins.key()] = struct{}{}
		}
		failed := false
		for j := range requiredLocs {
			if containsAllInsights(insights, getRequired(j)) {
				// Dropping all of these insights would leave this
				// required location no longer eliminated, so this
				// possible location can't be reinstated.
				failed = true
				break
			}
		}
		if failed {
			continue
		}
		// This currently eliminated location in the intersection could
		// have all of its eliminating insights removed without restoring
		// any of the other unassigned locations in the unit: a
		// non-obvious elimination.  Remove its insights from each
		// required location's insights.
		next := make([][]Insight, len(requiredLocs))
		for j := range requiredLocs {
			next[j] = copyWithoutInsights(getRequired(j), insights)
		}
		requiredInsights = next
	}

	if requiredInsights == nil {
		return nil, false
	}
	lists := make([][]Insight, 0, len(requiredInsights))
	for _, list := range requiredInsights {
		if len(list) > 0 {
			lists = append(lists, list)
		}
	}
	return m.collectAntecedentsLists(lists), true
}

func containsAllInsights(set map[string]struct{}, list []Insight) bool {
	for _, ins := range list {
		if _, ok := set[ins.key()]; !ok {
			return false
		}
	}
	return true
}

func copyWithoutInsights(list []Insight, skip map[string]struct{}) []Insight {
	var out []Insight
	for _, ins := range list {
		if _, ok := skip[ins.key()]; !ok {
			out = append(out, ins)
		}
	}
	return out
}

// FindSets reports each locked set in the given marks to the callback.
func FindSets(m *Marks, callback Callback) error {
	indices := make([]int, maxSetSize)
	for _, unit := range sudoku.AllUnits() {
		for size := 2; size <= maxSetSize; size++ {
			if err := findHiddenSets(m, callback, unit, size, indices); err != nil {
				return err
			}
			if err := findNakedSets(m, callback, unit, size, indices); err != nil {
				return err
			}
		}
	}
	return nil
}

func findNakedSets(m *Marks, callback Callback, unit sudoku.Unit, size int, indices []int) error {
	unassignedBits := m.BitsForUnassignedLocations(unit)
	if sudoku.BitsSize(unassignedBits) < size {
		return nil
	}
	var bitsToCheck uint16
	for i := 0; i < sudoku.UnitSize; i++ {
		bit := uint16(1) << i
		if bit&unassignedBits == 0 {
			continue
		}
		possibleSize := m.PossibleNumerals(unit.Location(i)).Size()
		if possibleSize > 1 && possibleSize <= size {
			// Disallow all singletons for naked sets.
			bitsToCheck |= bit
		}
	}
	if sudoku.BitsSize(bitsToCheck) < size {
		return nil
	}
	toCheck := sudoku.SubsetOfBits(unit, bitsToCheck)
	firstSubset(size, indices)
	for {
		var bits uint16
		for i := 0; i < size; i++ {
			bits |= m.BitsForPossibleNumerals(toCheck.Get(indices[i]))
		}
		nums := sudoku.NumSetOfBits(bits)
		if nums.Size() == size {
			locs := unit.EmptySubset()
			for i := 0; i < size; i++ {
				locs = locs.With(toCheck.Get(indices[i]))
			}
			overlap, hasOverlap := FindOverlappingUnit(locs)
			// Block and line naked sets have identical results; only
			// emit the line version.
			if !hasOverlap || overlap.Type() != sudoku.BlockType {
				eliminations := makeLockedSetEliminations(nums, locs, true, overlap, hasOverlap, m)
				if len(eliminations) > 0 {
					err := callback(newLockedSetWithEliminations(nums, locs, true, overlap, hasOverlap, eliminations))
					if err != nil {
						return err
					}
				}
			}
		}
		if !nextSubset(size, indices, toCheck.Size()) {
			return nil
		}
	}
}

func findHiddenSets(m *Marks, callback Callback, unit sudoku.Unit, size int, indices []int) error {
	unassignedBits := m.BitsForUnassignedNumerals(unit)
	if sudoku.NumSetOfBits(unassignedBits).Size() < size {
		return nil
	}
	toCheck := sudoku.NoNums
	singletonIncluded := false
	for _, num := range sudoku.AllNumerals() {
		if num.Bit()&unassignedBits == 0 {
			continue
		}
		possibleSize := sudoku.BitsSize(m.BitsForPossibleLocations(sudoku.NewUnitNumeral(unit, num)))
		if possibleSize > size {
			continue
		}
		if possibleSize == 1 {
			if singletonIncluded {
				continue // only allow one singleton per set
			}
			singletonIncluded = true
		}
		toCheck = toCheck.With(num)
	}
	if toCheck.Size() < size {
		return nil
	}
	firstSubset(size, indices)
	for {
		var bits uint16
		for i := 0; i < size; i++ {
			bits |= m.BitsForPossibleLocations(sudoku.NewUnitNumeral(unit, toCheck.Get(indices[i])))
		}
		if sudoku.BitsSize(bits) == size {
			locs := sudoku.SubsetOfBits(unit, bits)
			nums := sudoku.NoNums
			for i := 0; i < size; i++ {
				nums = nums.With(toCheck.Get(indices[i]))
			}
			overlap, hasOverlap := FindOverlappingUnit(locs)
			eliminations := makeLockedSetEliminations(nums, locs, false, overlap, hasOverlap, m)
			if len(eliminations) > 0 {
				err := callback(newLockedSetWithEliminations(nums, locs, false, overlap, hasOverlap, eliminations))
				if err != nil {
					return err
				}
			}
		}
		if !nextSubset(size, indices, toCheck.Size()) {
			return nil
		}
	}
}

// FindErrors reports each conflict, barred numeral, and barred location in
// the given marks to the callback.
func FindErrors(m *Marks, callback Callback) error {
	// First look for actual conflicting assignments.
	conflictFound := false
	for _, unit := range sudoku.AllUnits() {
		seen, conflicting := sudoku.NoNums, sudoku.NoNums
		for _, loc := range unit.Locations() {
			if num, ok := m.AssignedNumeral(loc); ok {
				if seen.Contains(num) {
					conflicting = conflicting.With(num)
				}
				seen = seen.With(num)
			}
		}
		for _, num := range conflicting.Numerals() {
			locs := unit.EmptySubset()
			for _, loc := range unit.Locations() {
				if n, ok := m.AssignedNumeral(loc); ok && n == num {
					locs = locs.With(loc)
				}
			}
			if err := callback(NewConflict(num, locs)); err != nil {
				return err
			}
			conflictFound = true
		}
	}

	// Then look for numerals that have no possible locations left in each
	// unit.
	for _, unit := range sudoku.AllUnits() {
		for _, num := range sudoku.AllNumerals() {
			un := sudoku.NewUnitNumeral(unit, num)
			if m.SizeOfPossibleLocations(un) == 0 &&
				// Skip if the numeral is already assigned, if there was a conflict.
				(!conflictFound || !m.HasAssignmentIn(un)) {
				if err := callback(NewBarredNum(un)); err != nil {
					return err
				}
			}
		}
	}

	// Finally, look for locations that have no possible numerals left.
	for _, loc := range sudoku.AllLocations() {
		if m.PossibleNumerals(loc).IsEmpty() &&
			// Skip if the location is already assigned, if there was a conflict.
			(!conflictFound || !m.HasAssignment(loc)) {
			if err := callback(NewBarredLoc(loc)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindSingletonLocations reports a forced location for each unit-numeral
// with exactly one possible location left.
func FindSingletonLocations(m *Marks, callback Callback) error {
	for i := 0; i < sudoku.UnitNumeralCount; i++ {
		un := sudoku.UnitNumeralOfIndex(i)
		if loc, ok := m.OnlyPossibleLocation(un); ok && !m.HasAssignment(loc) {
			if err := callback(NewForcedLoc(un.Unit, un.Numeral, loc)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindSingletonNumerals reports a forced numeral for each open location with
// exactly one possible numeral left.
func FindSingletonNumerals(m *Marks, callback Callback) error {
	for _, loc := range sudoku.AllLocations() {
		if m.HasAssignment(loc) {
			continue
		}
		if set := m.PossibleNumerals(loc); set.Size() == 1 {
			if err := callback(NewForcedNum(loc, set.Get(0))); err != nil {
				return err
			}
		}
	}
	return nil
}
