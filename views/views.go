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

// Package views provides lazy sequence adaptors over alphabet values,
// built on iter.Seq. Adaptors never allocate per element and can be
// chained freely:
//
//	for c := range views.Chars(views.Complement(slices.Values(seq))) {
//		...
//	}
package views

import (
	"iter"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
)

// Chars yields the characters of seq.
func Chars[T alphabet.Alphabet](seq iter.Seq[T]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for v := range seq {
			if !yield(v.Char()) {
				return
			}
		}
	}
}

// Ranks yields the ranks of seq.
func Ranks[T alphabet.Semialphabet](seq iter.Seq[T]) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for v := range seq {
			if !yield(v.Rank()) {
				return
			}
		}
	}
}

// CharsTo yields the values of T for the characters of chars.
// Characters T cannot represent are converted; see ValidateChars to
// reject them instead.
func CharsTo[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](chars iter.Seq[byte]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range chars {
			if !yield(alphabet.FromChar[T, PT](c)) {
				return
			}
		}
	}
}

// RanksTo yields the values of T for the given ranks, which must all
// be smaller than the alphabet size.
func RanksTo[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](ranks iter.Seq[uint]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range ranks {
			if !yield(alphabet.FromRank[T, PT](r)) {
				return
			}
		}
	}
}

// Convert yields the values of seq converted to To by way of their
// characters.
func Convert[To alphabet.Alphabet, PTo alphabet.WritableAlphabet[To], From alphabet.Alphabet](seq iter.Seq[From]) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range seq {
			if !yield(alphabet.ConvertThroughChar[To, PTo](v)) {
				return
			}
		}
	}
}

// Complement yields the complements of seq.
func Complement[T nucleotide.Nucleotide[T]](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Complement()) {
				return
			}
		}
	}
}

// ReverseComplement yields the complements of seq from back to front.
func ReverseComplement[T nucleotide.Nucleotide[T]](seq []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(seq) - 1; i >= 0; i-- {
			if !yield(seq[i].Complement()) {
				return
			}
		}
	}
}

// Hash returns a hash of seq that combines the ranks in mixed radix:
// h = h*size + rank. For sequences short enough that the result does
// not wrap around, equal hashes mean equal sequences.
func Hash[T alphabet.Semialphabet](seq iter.Seq[T]) uint64 {
	size := uint64(alphabet.Size[T]())
	var h uint64
	for v := range seq {
		h = h*size + uint64(v.Rank())
	}
	return h
}
