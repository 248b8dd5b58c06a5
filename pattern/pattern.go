package pattern

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sudogic/sudogic/sudoku"
)

// Kind identifies the pattern categories, mirroring the insight types that
// can appear in a solution path.
type Kind int

const (
	KindConflict Kind = iota
	KindBarredLocation
	KindBarredNumeral
	KindForcedLocation
	KindForcedNumeral
	KindOverlap
	KindLockedSet
	KindImplication
)

// Name returns the kind's wire name.
func (k Kind) Name() string {
	switch k {
	case KindConflict:
		return "c"
	case KindBarredLocation:
		return "bl"
	case KindBarredNumeral:
		return "bn"
	case KindForcedLocation:
		return "fl"
	case KindForcedNumeral:
		return "fn"
	case KindOverlap:
		return "o"
	case KindLockedSet:
		return "s"
	case KindImplication:
		return "i"
	}
	return "?"
}

func kindFromName(name string) (Kind, error) {
	switch name {
	case "c":
		return KindConflict, nil
	case "bl":
		return KindBarredLocation, nil
	case "bn":
		return KindBarredNumeral, nil
	case "fl":
		return KindForcedLocation, nil
	case "fn":
		return KindForcedNumeral, nil
	case "o":
		return KindOverlap, nil
	case "s":
		return KindLockedSet, nil
	case "i":
		return KindImplication, nil
	}
	return 0, fmt.Errorf("pattern: unknown kind name %q", name)
}

// UnitCategory distinguishes blocks from lines: a given pattern is generally
// easier to see for a block than for a row or column.
type UnitCategory int

const (
	Block UnitCategory = iota
	Line
)

// CategoryForUnit returns the category of the given unit.
func CategoryForUnit(unit sudoku.Unit) UnitCategory {
	if unit.Type() == sudoku.BlockType {
		return Block
	}
	return Line
}

func (c UnitCategory) String() string {
	if c == Block {
		return "b"
	}
	return "l"
}

func categoryFromString(s string) (UnitCategory, error) {
	switch s {
	case "b":
		return Block, nil
	case "l":
		return Line, nil
	}
	return 0, fmt.Errorf("pattern: invalid unit category %q", s)
}

// MoveKind is a finer-grained classification of moves, serialized by
// ordinal.  NoMoveKind stands for patterns with no such classification.
type MoveKind int

const NoMoveKind MoveKind = -1

const (
	MoveConflictBlock MoveKind = iota
	MoveConflictLine
	MoveBarredLoc
	MoveBarredNumBlock
	MoveBarredNumLine
	MoveForcedLocBlock
	MoveForcedLocLine
	MoveForcedNum
	MoveOverlapBlock
	MoveOverlapLine
	MoveLockedSetNakedBlock
	MoveLockedSetNakedLine
	MoveLockedSetHiddenBlock
	MoveLockedSetHiddenLine

	moveKindCount
)

func moveKindFromOrdinal(n int) (MoveKind, error) {
	if n < 0 {
		return NoMoveKind, nil
	}
	if n >= int(moveKindCount) {
		return 0, fmt.Errorf("pattern: move kind ordinal %d out of range", n)
	}
	return MoveKind(n), nil
}

// Pattern is a category of insight.  Patterns of the same kind with the
// same parameters are equal, and all patterns order deterministically; see
// Compare.
//
// The interface is sealed: the concrete types in this package are the only
// implementations.
type Pattern interface {
	// Kind returns the pattern's category.
	Kind() Kind

	// SameNumeral tells whether the pattern involves the same numeral as
	// the move it helps explain.
	SameNumeral() bool

	// MoveKind returns the finer-grained move classification, or
	// NoMoveKind.
	MoveKind() MoveKind

	// Nub returns the ultimate consequent pattern, unwrapping
	// implications.
	Nub() Pattern

	String() string

	appendGuts(sb *strings.Builder)
	compareGuts(other Pattern) int
}

// IsDirectAssignment tells whether the pattern itself names an assignment.
func IsDirectAssignment(p Pattern) bool {
	switch p.Kind() {
	case KindForcedLocation, KindForcedNumeral:
		return true
	}
	return false
}

// IsAssignment tells whether the pattern's nub names an assignment.
func IsAssignment(p Pattern) bool {
	return IsDirectAssignment(p.Nub())
}

// Equal tells whether two patterns are the same category.
func Equal(a, b Pattern) bool {
	return a.String() == b.String()
}

// Compare orders two patterns: by kind, then with same-numeral patterns
// first, then by each kind's own parameters.
func Compare(a, b Pattern) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	if a.SameNumeral() != b.SameNumeral() {
		// Same numeral sorts first.
		if a.SameNumeral() {
			return -1
		}
		return 1
	}
	return a.compareGuts(b)
}

func appendPattern(sb *strings.Builder, p Pattern) {
	sb.WriteString(p.Kind().Name())
	sb.WriteByte(':')
	if p.SameNumeral() {
		sb.WriteByte('!')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.Itoa(int(p.MoveKind())))
	sb.WriteByte(':')
	p.appendGuts(sb)
}

func patternString(p Pattern) string {
	var sb strings.Builder
	appendPattern(&sb, p)
	return sb.String()
}

// FromString parses the string form of a pattern, the exact inverse of
// String.
func FromString(s string) (Pattern, error) {
	pieces := strings.SplitN(s, ":", 3)
	if len(pieces) != 3 {
		return nil, fmt.Errorf("pattern: malformed pattern string %q", s)
	}
	kind, err := kindFromName(pieces[0])
	if err != nil {
		return nil, err
	}
	flag := pieces[1]
	if len(flag) < 2 || (flag[0] != '!' && flag[0] != '-') {
		return nil, fmt.Errorf("pattern: malformed flag in %q", s)
	}
	sameNumeral := flag[0] == '!'
	ordinal, err := strconv.Atoi(flag[1:])
	if err != nil {
		return nil, fmt.Errorf("pattern: malformed move kind in %q: %w", s, err)
	}
	// The move kind is carried on the wire but is implied by the rest of
	// the pattern; parse it only to validate it.
	if _, err := moveKindFromOrdinal(ordinal); err != nil {
		return nil, err
	}
	guts := pieces[2]

	switch kind {
	case KindConflict:
		cat, err := categoryFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewConflict(sameNumeral, cat), nil
	case KindBarredLocation:
		metrics, err := PeerMetricsFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewBarredLocation(metrics), nil
	case KindBarredNumeral:
		cat, err := categoryFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewBarredNumeral(sameNumeral, cat), nil
	case KindForcedLocation:
		cat, err := categoryFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewForcedLocation(sameNumeral, cat), nil
	case KindForcedNumeral:
		metrics, err := PeerMetricsFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewForcedNumeral(sameNumeral, metrics), nil
	case KindOverlap:
		cat, err := categoryFromString(guts)
		if err != nil {
			return nil, err
		}
		return NewOverlap(sameNumeral, cat), nil
	case KindLockedSet:
		return lockedSetFromString(sameNumeral, guts)
	case KindImplication:
		return implicationFromString(guts)
	}
	return nil, fmt.Errorf("pattern: unsupported kind in %q", s)
}

// unitBased is the common part of patterns that rely entirely on the
// category of unit they pertain to.
type unitBased struct {
	kind        Kind
	sameNumeral bool
	move        MoveKind
	category    UnitCategory
}

func (p *unitBased) Kind() Kind             { return p.kind }
func (p *unitBased) SameNumeral() bool      { return p.sameNumeral }
func (p *unitBased) MoveKind() MoveKind     { return p.move }
func (p *unitBased) Category() UnitCategory { return p.category }

func (p *unitBased) appendGuts(sb *strings.Builder) {
	sb.WriteString(p.category.String())
}

func (p *unitBased) compareGuts(other Pattern) int {
	o := other.(interface{ Category() UnitCategory }).Category()
	if p.category != o {
		if p.category < o {
			return -1
		}
		return 1
	}
	return 0
}

// Conflict is the pattern of an actual conflict on the board.
type Conflict struct{ unitBased }

// NewConflict returns the conflict pattern for the given unit category.
func NewConflict(sameNumeral bool, category UnitCategory) *Conflict {
	move := MoveConflictBlock
	if category == Line {
		move = MoveConflictLine
	}
	return &Conflict{unitBased{KindConflict, sameNumeral, move, category}}
}

// NewConflictIn returns the conflict pattern for the given unit.
func NewConflictIn(sameNumeral bool, unit sudoku.Unit) *Conflict {
	return NewConflict(sameNumeral, CategoryForUnit(unit))
}

func (p *Conflict) Nub() Pattern   { return p }
func (p *Conflict) String() string { return patternString(p) }

// BarredNumeral is the pattern of a numeral with no possible locations left
// in a unit.
type BarredNumeral struct{ unitBased }

// NewBarredNumeral returns the barred numeral pattern for the given unit
// category.
func NewBarredNumeral(sameNumeral bool, category UnitCategory) *BarredNumeral {
	move := MoveBarredNumBlock
	if category == Line {
		move = MoveBarredNumLine
	}
	return &BarredNumeral{unitBased{KindBarredNumeral, sameNumeral, move, category}}
}

func (p *BarredNumeral) Nub() Pattern   { return p }
func (p *BarredNumeral) String() string { return patternString(p) }

// ForcedLocation is the pattern of a numeral with a single possible
// location in a unit.
type ForcedLocation struct{ unitBased }

// NewForcedLocation returns the forced location pattern for the given unit
// category.
func NewForcedLocation(sameNumeral bool, category UnitCategory) *ForcedLocation {
	move := MoveForcedLocBlock
	if category == Line {
		move = MoveForcedLocLine
	}
	return &ForcedLocation{unitBased{KindForcedLocation, sameNumeral, move, category}}
}

func (p *ForcedLocation) Nub() Pattern   { return p }
func (p *ForcedLocation) String() string { return patternString(p) }

// Overlap is the pattern of a numeral whose only possible locations in one
// unit overlap another unit.
type Overlap struct{ unitBased }

// NewOverlap returns the overlap pattern for the given unit category.
func NewOverlap(sameNumeral bool, category UnitCategory) *Overlap {
	move := MoveOverlapBlock
	if category == Line {
		move = MoveOverlapLine
	}
	return &Overlap{unitBased{KindOverlap, sameNumeral, move, category}}
}

func (p *Overlap) Nub() Pattern   { return p }
func (p *Overlap) String() string { return patternString(p) }

// LockedSet is the pattern of a set of locations within a unit whose only
// possible assignments are to a set of numerals of the same size.
type LockedSet struct {
	unitBased
	setSize      int
	isNaked      bool
	isOverlapped bool
}

// NewLockedSet returns the locked set pattern with the given parameters.
// Overlapped means that the set arises from assignments in overlapping
// units.
func NewLockedSet(sameNumeral bool, category UnitCategory, setSize int, isNaked, isOverlapped bool) *LockedSet {
	var move MoveKind
	switch {
	case isNaked && category == Block:
		move = MoveLockedSetNakedBlock
	case isNaked:
		move = MoveLockedSetNakedLine
	case category == Block:
		move = MoveLockedSetHiddenBlock
	default:
		move = MoveLockedSetHiddenLine
	}
	return &LockedSet{
		unitBased:    unitBased{KindLockedSet, sameNumeral, move, category},
		setSize:      setSize,
		isNaked:      isNaked,
		isOverlapped: isOverlapped,
	}
}

// SetSize returns the number of numerals (and locations) in the set.
func (p *LockedSet) SetSize() int { return p.setSize }

// IsNaked tells whether the set is naked rather than hidden.
func (p *LockedSet) IsNaked() bool { return p.isNaked }

// IsOverlapped tells whether the set arises from assignments in overlapping
// units.
func (p *LockedSet) IsOverlapped() bool { return p.isOverlapped }

func (p *LockedSet) Nub() Pattern   { return p }
func (p *LockedSet) String() string { return patternString(p) }

func (p *LockedSet) appendGuts(sb *strings.Builder) {
	p.unitBased.appendGuts(sb)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(p.setSize))
	sb.WriteByte(':')
	if p.isNaked {
		sb.WriteByte('n')
	} else {
		sb.WriteByte('h')
	}
	sb.WriteByte(':')
	if p.isOverlapped {
		sb.WriteByte('o')
	} else {
		sb.WriteByte('d')
	}
}

func (p *LockedSet) compareGuts(other Pattern) int {
	o := other.(*LockedSet)
	if r := p.unitBased.compareGuts(other); r != 0 {
		return r
	}
	if p.setSize != o.setSize {
		if p.setSize < o.setSize {
			return -1
		}
		return 1
	}
	if p.isNaked != o.isNaked {
		if o.isNaked {
			return -1
		}
		return 1
	}
	if p.isOverlapped != o.isOverlapped {
		if o.isOverlapped {
			return -1
		}
		return 1
	}
	return 0
}

func lockedSetFromString(sameNumeral bool, s string) (*LockedSet, error) {
	pieces := strings.Split(s, ":")
	if len(pieces) != 4 {
		return nil, fmt.Errorf("pattern: malformed locked set %q", s)
	}
	category, err := categoryFromString(pieces[0])
	if err != nil {
		return nil, err
	}
	setSize, err := strconv.Atoi(pieces[1])
	if err != nil {
		return nil, fmt.Errorf("pattern: malformed locked set size in %q: %w", s, err)
	}
	var isNaked bool
	switch pieces[2] {
	case "n":
		isNaked = true
	case "h":
		isNaked = false
	default:
		return nil, fmt.Errorf("pattern: malformed locked set flavor %q", pieces[2])
	}
	var isOverlapped bool
	switch pieces[3] {
	case "o":
		isOverlapped = true
	case "d":
		isOverlapped = false
	default:
		return nil, fmt.Errorf("pattern: malformed locked set overlap flag %q", pieces[3])
	}
	return NewLockedSet(sameNumeral, category, setSize, isNaked, isOverlapped), nil
}

// Implication is a collection of antecedent patterns leading to a
// consequent pattern.
type Implication struct {
	antecedents []Pattern
	consequent  Pattern
}

// NewImplication returns the implication of the given consequent by the
// given antecedents.  The antecedents must be nonempty, must not themselves
// be implications, and are kept in sorted order.
func NewImplication(antecedents []Pattern, consequent Pattern) (*Implication, error) {
	if len(antecedents) == 0 {
		return nil, fmt.Errorf("pattern: implication requires antecedents")
	}
	sorted := append([]Pattern(nil), antecedents...)
	sort.SliceStable(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })
	for _, a := range sorted {
		if a.Kind() == KindImplication {
			return nil, fmt.Errorf("pattern: implication antecedents must not be implications")
		}
	}
	if consequent == nil {
		return nil, fmt.Errorf("pattern: implication requires a consequent")
	}
	return &Implication{antecedents: sorted, consequent: consequent}, nil
}

// Antecedents returns the antecedent patterns in sorted order.
func (p *Implication) Antecedents() []Pattern { return p.antecedents }

// Consequent returns the consequent pattern.
func (p *Implication) Consequent() Pattern { return p.consequent }

func (p *Implication) Kind() Kind         { return KindImplication }
func (p *Implication) SameNumeral() bool  { return true }
func (p *Implication) MoveKind() MoveKind { return NoMoveKind }
func (p *Implication) Nub() Pattern       { return p.consequent.Nub() }
func (p *Implication) String() string     { return patternString(p) }

// HasSimpleAntecedents tells whether every antecedent, all the way down the
// implication chain, is an overlap or a small hidden block set.
func (p *Implication) HasSimpleAntecedents() bool {
	for imp := p; imp != nil; {
		for _, a := range imp.antecedents {
			switch a.Kind() {
			case KindOverlap:
			case KindLockedSet:
				l := a.(*LockedSet)
				if l.IsNaked() || l.Category() == Line || l.SetSize() > 3 {
					return false
				}
			default:
				return false
			}
		}
		imp, _ = imp.consequent.(*Implication)
	}
	return true
}

func (p *Implication) appendGuts(sb *strings.Builder) {
	for i, a := range p.antecedents {
		if i > 0 {
			sb.WriteByte('+')
		}
		appendPattern(sb, a)
	}
	sb.WriteByte('=')
	appendPattern(sb, p.consequent)
}

func (p *Implication) compareGuts(other Pattern) int {
	o := other.(*Implication)
	for i := 0; i < len(p.antecedents) && i < len(o.antecedents); i++ {
		if r := Compare(p.antecedents[i], o.antecedents[i]); r != 0 {
			return r
		}
	}
	if len(p.antecedents) != len(o.antecedents) {
		if len(p.antecedents) < len(o.antecedents) {
			return -1
		}
		return 1
	}
	return Compare(p.consequent, o.consequent)
}

func implicationFromString(s string) (*Implication, error) {
	pieces := strings.SplitN(s, "=", 2)
	if len(pieces) != 2 {
		return nil, fmt.Errorf("pattern: malformed implication %q", s)
	}
	var antecedents []Pattern
	for _, a := range strings.Split(pieces[0], "+") {
		p, err := FromString(a)
		if err != nil {
			return nil, err
		}
		antecedents = append(antecedents, p)
	}
	consequent, err := FromString(pieces[1])
	if err != nil {
		return nil, err
	}
	return NewImplication(antecedents, consequent)
}

// Coll is an ordered collection of patterns seen together.
type Coll struct {
	Patterns []Pattern
}

// AreAllImplications tells whether every pattern in the collection is an
// implication.
func (c Coll) AreAllImplications() bool {
	for _, p := range c.Patterns {
		if p.Kind() != KindImplication {
			return false
		}
	}
	return true
}

func (c Coll) String() string {
	var sb strings.Builder
	appendColl(&sb, c)
	return sb.String()
}

func appendColl(sb *strings.Builder, c Coll) {
	for i, p := range c.Patterns {
		if i > 0 {
			sb.WriteByte(',')
		}
		appendPattern(sb, p)
	}
}

// CollsToString joins the string forms of the given collections with
// semicolons.
func CollsToString(colls []Coll) string {
	var sb strings.Builder
	for i, c := range colls {
		if i > 0 {
			sb.WriteByte(';')
		}
		appendColl(&sb, c)
	}
	return sb.String()
}

// CollFromString parses a comma-separated collection of patterns.
func CollFromString(s string) (Coll, error) {
	var c Coll
	for _, piece := range strings.Split(s, ",") {
		if piece == "" {
			continue
		}
		p, err := FromString(piece)
		if err != nil {
			return Coll{}, err
		}
		c.Patterns = append(c.Patterns, p)
	}
	return c, nil
}

// CollsFromString parses a semicolon-separated list of pattern collections.
func CollsFromString(s string) ([]Coll, error) {
	var colls []Coll
	for _, piece := range strings.Split(s, ";") {
		if piece == "" {
			continue
		}
		c, err := CollFromString(piece)
		if err != nil {
			return nil, err
		}
		colls = append(colls, c)
	}
	return colls, nil
}
