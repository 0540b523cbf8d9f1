// elPrep alphabets: sequence alphabet types for elPrep.
// Copyright (c) 2024 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package alphabet

import "log"

// A Table holds the two lookup tables a table-driven alphabet is
// generated from, plus the derived table of valid characters.
//
// Tables are created once, during package initialisation, and are
// never modified afterwards.
type Table struct {
	rankToChar []byte
	charToRank [256]uint8
	valid      [256]bool
}

// NewTable creates a table from the canonical character of each rank
// and a total mapping from all byte values to ranks.
//
// NewTable panics if the alphabet has fewer than 2 or more than 256
// values, if two ranks share the same character, or if charToRank
// contains a rank out of range.
func NewTable(rankToChar string, charToRank [256]uint8) *Table {
	size := len(rankToChar)
	if size < 2 || size > 256 {
		log.Panicf("invalid alphabet size %v for table %q", size, rankToChar)
	}
	var seen [256]bool
	for i := 0; i < size; i++ {
		c := rankToChar[i]
		if seen[c] {
			log.Panicf("duplicate character %q in table %q", c, rankToChar)
		}
		seen[c] = true
	}
	t := &Table{
		rankToChar: []byte(rankToChar),
		charToRank: charToRank,
	}
	for c, r := range charToRank {
		if int(r) >= size {
			log.Panicf("character %q maps to rank %v in table %q of size %v", byte(c), r, rankToChar, size)
		}
		t.valid[c] = rankToChar[r] == byte(c)
	}
	return t
}

// Size returns the number of ranks in the table.
func (t *Table) Size() uint {
	return uint(len(t.rankToChar))
}

// Char returns the canonical character for rank r.
func (t *Table) Char(r uint8) byte {
	return t.rankToChar[r]
}

// Rank returns the rank for the character c.
func (t *Table) Rank(c byte) uint8 {
	return t.charToRank[c]
}

// Valid reports whether c maps to a rank whose canonical character is
// c again.
func (t *Table) Valid(c byte) bool {
	return t.valid[c]
}

// Chars returns the canonical characters of all ranks, in rank order.
func (t *Table) Chars() string {
	return string(t.rankToChar)
}

// CharToRankTable returns the inverse of rankToChar as a total table:
// each canonical character maps to its rank, every other byte maps to
// fallback. If foldCase is true, the lower-case variant of each
// canonical letter maps to the same rank as well.
//
// The result is meant to be adjusted further, for example to map
// ambiguity codes, before it is passed to NewTable.
func CharToRankTable(rankToChar string, fallback uint8, foldCase bool) (table [256]uint8) {
	for c := range table {
		table[c] = fallback
	}
	for r := 0; r < len(rankToChar); r++ {
		c := rankToChar[r]
		table[c] = uint8(r)
		if foldCase {
			table[ToLower(c)] = uint8(r)
		}
	}
	return table
}

// Alias makes each of the given characters, and their lower-case
// variants, map to the same rank as target.
func Alias(table *[256]uint8, target byte, chars string) {
	r := table[target]
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		table[c] = r
		table[ToLower(c)] = r
	}
}

// IsUpper reports whether c is an ASCII upper-case letter.
func IsUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// IsLower reports whether c is an ASCII lower-case letter.
func IsLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// ToLower converts ASCII upper-case letters to lower case and leaves
// all other bytes unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpper converts ASCII lower-case letters to upper case and leaves
// all other bytes unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}
