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

// Spec is implemented by the zero-size types that select the lookup
// tables of a table-driven alphabet. Table must always return the
// same table.
type Spec interface {
	Table() *Table
}

// Base implements a complete writable alphabet from the tables
// selected by S. Concrete alphabets embed a Base and add domain
// specific methods:
//
//	type dna4Spec struct{}
//
//	func (dna4Spec) Table() *alphabet.Table { return dna4Table }
//
//	type DNA4 struct{ alphabet.Base[dna4Spec] }
//
// A Base stores nothing but its rank, so two values are equal with
// == exactly when their ranks are equal.
type Base[S Spec] struct {
	rank uint8
}

func table[S Spec]() *Table {
	var s S
	return s.Table()
}

// AlphabetSize returns the number of values of the alphabet.
func (Base[S]) AlphabetSize() uint {
	return table[S]().Size()
}

// Rank returns the rank of b.
func (b Base[S]) Rank() uint {
	return uint(b.rank)
}

// Char returns the canonical character of b.
func (b Base[S]) Char() byte {
	return table[S]().rankToChar[b.rank]
}

// AssignChar sets b to the value for c. Characters without a
// representation are converted as defined by the table.
func (b *Base[S]) AssignChar(c byte) {
	b.rank = table[S]().charToRank[c]
}

// AssignRank sets b to the value with rank r, which must be smaller
// than the alphabet size.
func (b *Base[S]) AssignRank(r uint) {
	CheckRank(r, table[S]().Size())
	b.rank = uint8(r)
}

// CharIsValid reports whether c is the canonical character of some
// rank.
func (Base[S]) CharIsValid(c byte) bool {
	return table[S]().valid[c]
}

// String returns the canonical character of b as a string.
func (b Base[S]) String() string {
	return string(b.Char())
}
