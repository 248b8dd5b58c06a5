// Package insight derives facts about Sudoku board states.
//
// Marks tracks, for every open location, the numerals still possible there,
// and for every (unit, numeral) pair, the locations still able to hold the
// numeral.  The Analyzer scans a Marks for everything currently deducible --
// forced assignments, overlaps, locked sets, and contradictions -- and
// reports each finding as an Insight carrying the prior insights that
// justify it.
package insight
