// Package layout computes cursor-relative layout for a single line.
//
// Lines are slices of atomic units (bytes, runes, grapheme clusters: the
// caller decides). Nothing here inspects or measures the units themselves,
// and every call works on a private snapshot of the line and cursor.
//
// The cursor is an index in [0, len(line)]; it sits in front of the unit it
// indexes.
package layout
