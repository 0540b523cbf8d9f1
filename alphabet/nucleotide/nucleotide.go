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

/*
Package nucleotide provides the DNA and RNA alphabets: DNA4/RNA4
(A, C, G, T/U), DNA5/RNA5 (with N) and DNA15/RNA15 (all IUPAC
ambiguity codes).

All of them read characters case-insensitively, accept U for T in the
DNA alphabets and T for U in the RNA alphabets, and convert
characters they cannot represent in a fixed, documented way instead
of failing. Every nucleotide alphabet has a Complement method.
*/
package nucleotide

import "github.com/exascience/elalphabet/alphabet"

// Nucleotide is an alphabet whose values have a complement in the
// same alphabet.
type Nucleotide[T any] interface {
	alphabet.Alphabet
	Complement() T
}

// Complement returns the complement of v.
func Complement[T Nucleotide[T]](v T) T {
	return v.Complement()
}

var iupacComplement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

// complementRanks computes, for each rank of t, the rank of the
// complementary character.
func complementRanks(t *alphabet.Table) []uint8 {
	size := t.Size()
	ranks := make([]uint8, size)
	for r := uint(0); r < size; r++ {
		c := iupacComplement[t.Char(uint8(r))]
		if c == 0 {
			c = 'N'
		}
		ranks[r] = t.Rank(c)
	}
	return ranks
}

func fromRank[T any, PT alphabet.WritableSemialphabet[T]](r uint8) T {
	var v T
	PT(&v).AssignRank(uint(r))
	return v
}
