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

// Semialphabet is implemented by alphabet values that expose a rank.
//
// AlphabetSize must return the same constant for every value of a
// type, including the zero value, and must be at least 1. Rank must
// return a value in [0, AlphabetSize()).
type Semialphabet interface {
	AlphabetSize() uint
	Rank() uint
}

// Alphabet is a Semialphabet with a character representation.
type Alphabet interface {
	Semialphabet
	Char() byte
}

// RankAssigner is implemented by pointers to writable semialphabets.
type RankAssigner interface {
	AssignRank(r uint)
}

// CharAssigner is implemented by pointers to writable alphabets.
type CharAssigner interface {
	AssignChar(c byte)
}

// CharValidator is optionally implemented by alphabets that know
// which characters they represent without loss. See CharIsValidFor.
type CharValidator interface {
	CharIsValid(c byte) bool
}

// WritableSemialphabet constrains PT to be a pointer to T that can
// assign ranks. It is meant to be used as the second type parameter
// of a generic function whose first type parameter is T, so that
// type inference fills it in:
//
//	func F[T Semialphabet, PT WritableSemialphabet[T]](v T) T
type WritableSemialphabet[T any] interface {
	*T
	Semialphabet
	RankAssigner
}

// WritableAlphabet constrains PT to be a pointer to T that can assign
// both ranks and characters.
type WritableAlphabet[T any] interface {
	*T
	Alphabet
	RankAssigner
	CharAssigner
}

// IsSemialphabet reports whether T models Semialphabet.
func IsSemialphabet[T any]() bool {
	var v T
	_, ok := any(v).(Semialphabet)
	return ok
}

// IsAlphabet reports whether T models Alphabet.
func IsAlphabet[T any]() bool {
	var v T
	_, ok := any(v).(Alphabet)
	return ok
}

// IsWritableSemialphabet reports whether T models Semialphabet and
// *T can assign ranks.
func IsWritableSemialphabet[T any]() bool {
	if !IsSemialphabet[T]() {
		return false
	}
	_, ok := any(new(T)).(RankAssigner)
	return ok
}

// IsWritableAlphabet reports whether T models Alphabet and *T can
// assign both ranks and characters.
func IsWritableAlphabet[T any]() bool {
	if !IsAlphabet[T]() || !IsWritableSemialphabet[T]() {
		return false
	}
	_, ok := any(new(T)).(CharAssigner)
	return ok
}
