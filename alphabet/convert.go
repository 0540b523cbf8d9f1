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

// FromString converts each character of s to a value of T.
func FromString[T Alphabet, PT WritableAlphabet[T]](s string) []T {
	result := make([]T, len(s))
	for i := 0; i < len(s); i++ {
		PT(&result[i]).AssignChar(s[i])
	}
	return result
}

// FromBytes converts each character of s to a value of T.
func FromBytes[T Alphabet, PT WritableAlphabet[T]](s []byte) []T {
	result := make([]T, len(s))
	for i, c := range s {
		PT(&result[i]).AssignChar(c)
	}
	return result
}

// AppendChars appends the characters of seq to buf.
func AppendChars[T Alphabet](buf []byte, seq []T) []byte {
	for _, v := range seq {
		buf = append(buf, v.Char())
	}
	return buf
}

// String returns the characters of seq as a string.
func String[T Alphabet](seq []T) string {
	return string(AppendChars(make([]byte, 0, len(seq)), seq))
}

// Ranks returns the ranks of seq.
func Ranks[T Semialphabet](seq []T) []uint {
	result := make([]uint, len(seq))
	for i, v := range seq {
		result[i] = v.Rank()
	}
	return result
}

// ConvertThroughChar converts v to To by way of its character. This
// is the lossy conversion between alphabets of different sizes, for
// example from an ambiguity-code alphabet to one without ambiguity
// codes.
func ConvertThroughChar[To Alphabet, PTo WritableAlphabet[To], From Alphabet](v From) To {
	var result To
	PTo(&result).AssignChar(v.Char())
	return result
}

// ConvertThroughRank converts v to To by keeping its rank. The rank of
// v must be smaller than Size[To]().
func ConvertThroughRank[To Semialphabet, PTo WritableSemialphabet[To], From Semialphabet](v From) To {
	var result To
	PTo(&result).AssignRank(v.Rank())
	return result
}
