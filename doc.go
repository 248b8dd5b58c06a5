// Package sudogic provides a Sudoku constraint-propagation and
// insight-derivation engine.
//
// Given a partially filled 9x9 grid, the engine deduces every numeral that is
// logically forced (singles, locked sets, overlaps), detects contradictions
// (conflicts, barred locations and numerals), and explains each deduction by
// the set of prior insights it follows from.
//
// The entry points are:
//   - sudoku: board primitives, bitset containers and the Grid type
//   - insight: the Marks constraint state, the Insight model and the Analyzer
//   - pattern: the compact textual form of insights used for logging
package sudogic

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.2.0")
