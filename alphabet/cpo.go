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

import (
	"log"

	"github.com/exascience/elalphabet/internal"
)

// Size returns the number of values of the alphabet T.
func Size[T Semialphabet]() uint {
	var v T
	return v.AlphabetSize()
}

// ToRank returns the rank of v.
func ToRank[T Semialphabet](v T) uint {
	return v.Rank()
}

// AssignRankTo assigns the rank r to v and returns the result.
//
// r must be smaller than Size[T]().
func AssignRankTo[T Semialphabet, PT WritableSemialphabet[T]](r uint, v T) T {
	PT(&v).AssignRank(r)
	return v
}

// FromRank returns the value of T with rank r.
func FromRank[T Semialphabet, PT WritableSemialphabet[T]](r uint) T {
	var v T
	PT(&v).AssignRank(r)
	return v
}

// ToChar returns the character representation of v.
func ToChar[T Alphabet](v T) byte {
	return v.Char()
}

// AssignCharTo assigns the character c to v and returns the result.
// Characters that the alphabet cannot represent are converted to
// some value of T; AssignCharTo never fails.
func AssignCharTo[T Alphabet, PT WritableAlphabet[T]](c byte, v T) T {
	PT(&v).AssignChar(c)
	return v
}

// FromChar returns the value of T for the character c.
func FromChar[T Alphabet, PT WritableAlphabet[T]](c byte) T {
	var v T
	PT(&v).AssignChar(c)
	return v
}

// CharIsValidFor reports whether c has a lossless representation in
// T, that is whether assigning c and converting back yields c again.
//
// When T implements CharValidator, its CharIsValid method decides.
func CharIsValidFor[T Alphabet, PT WritableAlphabet[T]](c byte) bool {
	var v T
	if validator, ok := any(v).(CharValidator); ok {
		return validator.CharIsValid(c)
	}
	PT(&v).AssignChar(c)
	return v.Char() == c
}

// Compare returns -1, 0, or +1 depending on whether the rank of a is
// smaller than, equal to, or larger than the rank of b.
//
// The order is the rank order, which is not necessarily the order of
// the characters.
func Compare[T Semialphabet](a, b T) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Less reports whether the rank of a is smaller than the rank of b.
func Less[T Semialphabet](a, b T) bool {
	return a.Rank() < b.Rank()
}

// CheckRank panics if r is not a valid rank for an alphabet of the
// given size. The check is compiled away with the unchecked build tag.
func CheckRank(r, size uint) {
	if internal.CheckMode && r >= size {
		log.Panicf("rank %v out of range for alphabet of size %v", r, size)
	}
}

// Checked reports whether rank assignments are checked in this build.
func Checked() bool {
	return internal.CheckMode
}
