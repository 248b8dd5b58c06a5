package pattern

import (
	"fmt"
	"strings"

	"github.com/sudogic/sudogic/insight"
	"github.com/sudogic/sudogic/sudoku"
)

// PeerMetrics captures the disposition of a location's peers at the time an
// insight about the location was found.  For each location in each of the
// target's three units, in block then row then column order, one category
// byte tells whether the peer is open or, if assigned, which of the target's
// units the assigned numeral is a duplicate of.
type PeerMetrics [27]byte

// Peer category values.  An assigned peer's category combines the unit bits
// of every one of the target's units that already contains its numeral.
const (
	PeerUnset     byte = 0
	PeerBlockBit  byte = 1
	PeerRowBit    byte = 2
	PeerColumnBit byte = 4
	PeerTarget    byte = 8
)

// metricsUnitOrder fixes the serialization order of the three units.
var metricsUnitOrder = [3]sudoku.UnitType{sudoku.BlockType, sudoku.RowType, sudoku.ColumnType}

func metricsOffset(t sudoku.UnitType) int {
	for i, u := range metricsUnitOrder {
		if u == t {
			return i * sudoku.UnitSize
		}
	}
	panic("pattern: unknown unit type")
}

// PeerMetricsAt computes the metrics of the given location's peers in the
// given marks.
func PeerMetricsAt(m *insight.Marks, loc sudoku.Location) PeerMetrics {
	var unitNums [3]sudoku.NumSet
	for i, t := range metricsUnitOrder {
		for _, peer := range loc.Unit(t).Locations() {
			if peer == loc {
				continue
			}
			if num, ok := m.AssignedNumeral(peer); ok {
				unitNums[i] = unitNums[i].With(num)
			}
		}
	}
	var pm PeerMetrics
	idx := 0
	for _, t := range metricsUnitOrder {
		for _, peer := range loc.Unit(t).Locations() {
			var category byte
			if peer == loc {
				category = PeerTarget
			} else if num, ok := m.AssignedNumeral(peer); ok {
				for i := range metricsUnitOrder {
					if unitNums[i].Contains(num) {
						category |= 1 << i
					}
				}
			}
			pm[idx] = category
			idx++
		}
	}
	return pm
}

// UnitCategories returns the nine category bytes of the given unit type.
func (pm PeerMetrics) UnitCategories(t sudoku.UnitType) [sudoku.UnitSize]byte {
	var out [sudoku.UnitSize]byte
	copy(out[:], pm[metricsOffset(t):])
	return out
}

// LocationCategory returns the category byte for the location at the given
// index of the given unit type.
func (pm PeerMetrics) LocationCategory(t sudoku.UnitType, index int) byte {
	return pm[metricsOffset(t)+index]
}

// Compare orders metrics lexicographically over their category bytes.
func (pm PeerMetrics) Compare(other PeerMetrics) int {
	for i := range pm {
		if pm[i] != other[i] {
			if pm[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (pm PeerMetrics) String() string {
	var sb strings.Builder
	pm.append(&sb)
	return sb.String()
}

func (pm PeerMetrics) append(sb *strings.Builder) {
	for i, c := range pm {
		if i > 0 && i%sudoku.UnitSize == 0 {
			sb.WriteByte(':')
		}
		sb.WriteByte('0' + c)
	}
}

// PeerMetricsFromString parses the string form of peer metrics, the exact
// inverse of String.
func PeerMetricsFromString(s string) (PeerMetrics, error) {
	var pm PeerMetrics
	pieces := strings.Split(s, ":")
	if len(pieces) != 3 {
		return pm, fmt.Errorf("pattern: malformed peer metrics %q", s)
	}
	idx := 0
	for _, piece := range pieces {
		if len(piece) != sudoku.UnitSize {
			return pm, fmt.Errorf("pattern: malformed peer metrics %q", s)
		}
		for i := 0; i < len(piece); i++ {
			c := piece[i]
			if c < '0' || c > '8' {
				return pm, fmt.Errorf("pattern: invalid peer category %q in %q", c, s)
			}
			pm[idx] = c - '0'
			idx++
		}
	}
	return pm, nil
}

// metricsBased is the common part of patterns that rely on the metrics of a
// location's peers.
type metricsBased struct {
	kind        Kind
	sameNumeral bool
	move        MoveKind
	metrics     PeerMetrics
}

func (p *metricsBased) Kind() Kind           { return p.kind }
func (p *metricsBased) SameNumeral() bool    { return p.sameNumeral }
func (p *metricsBased) MoveKind() MoveKind   { return p.move }
func (p *metricsBased) Metrics() PeerMetrics { return p.metrics }

func (p *metricsBased) appendGuts(sb *strings.Builder) {
	p.metrics.append(sb)
}

func (p *metricsBased) compareGuts(other Pattern) int {
	o := other.(interface{ Metrics() PeerMetrics }).Metrics()
	return p.metrics.Compare(o)
}

// BarredLocation is the pattern of a location with no possible numerals
// left.
type BarredLocation struct{ metricsBased }

// NewBarredLocation returns the barred location pattern with the given peer
// metrics.  The numeral flag is forced on: every peer numeral contributes to
// barring the location.
func NewBarredLocation(metrics PeerMetrics) *BarredLocation {
	return &BarredLocation{metricsBased{KindBarredLocation, true, MoveBarredLoc, metrics}}
}

func (p *BarredLocation) Nub() Pattern   { return p }
func (p *BarredLocation) String() string { return patternString(p) }

// ForcedNumeral is the pattern of a location with a single possible numeral
// left.
type ForcedNumeral struct{ metricsBased }

// NewForcedNumeral returns the forced numeral pattern with the given peer
// metrics.
func NewForcedNumeral(sameNumeral bool, metrics PeerMetrics) *ForcedNumeral {
	return &ForcedNumeral{metricsBased{KindForcedNumeral, sameNumeral, MoveForcedNum, metrics}}
}

func (p *ForcedNumeral) Nub() Pattern   { return p }
func (p *ForcedNumeral) String() string { return patternString(p) }
