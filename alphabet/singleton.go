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

// SingletonSpec selects the only character of a single-value
// alphabet.
type SingletonSpec interface {
	Char() byte
}

// Singleton implements an alphabet with exactly one value. It
// occupies no storage: its rank is always 0, assignments only check
// their argument, and all values are equal.
type Singleton[S SingletonSpec] struct{}

// AlphabetSize returns 1.
func (Singleton[S]) AlphabetSize() uint {
	return 1
}

// Rank returns 0.
func (Singleton[S]) Rank() uint {
	return 0
}

// Char returns the only character of the alphabet.
func (Singleton[S]) Char() byte {
	var s S
	return s.Char()
}

// AssignChar does nothing; every character converts to the only value.
func (*Singleton[S]) AssignChar(byte) {}

// AssignRank checks that r is 0.
func (*Singleton[S]) AssignRank(r uint) {
	CheckRank(r, 1)
}

// CharIsValid reports whether c is the only character of the alphabet.
func (s Singleton[S]) CharIsValid(c byte) bool {
	return c == s.Char()
}

// String returns the only character of the alphabet as a string.
func (s Singleton[S]) String() string {
	return string(s.Char())
}
