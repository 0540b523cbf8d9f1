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

package nucleotide

import "github.com/exascience/elalphabet/alphabet"

// IUPAC ambiguity codes are converted to the first base they stand
// for, in alphabetical order. All other unknown characters become A.
func dna4CharToRank() [256]uint8 {
	table := alphabet.CharToRankTable("ACGT", 0, true)
	alphabet.Alias(&table, 'T', "U")
	alphabet.Alias(&table, 'A', "RWMDHVN")
	alphabet.Alias(&table, 'C', "YSB")
	alphabet.Alias(&table, 'G', "K")
	return table
}

var (
	dna4Table = alphabet.NewTable("ACGT", dna4CharToRank())
	rna4Table = alphabet.NewTable("ACGU", dna4CharToRank())
)

type dna4Spec struct{}

func (dna4Spec) Table() *alphabet.Table { return dna4Table }

type rna4Spec struct{}

func (rna4Spec) Table() *alphabet.Table { return rna4Table }

// DNA4 is the four letter DNA alphabet of A, C, G and T.
type DNA4 struct {
	alphabet.Base[dna4Spec]
}

// Complement returns the complement of d.
func (d DNA4) Complement() DNA4 {
	return fromRank[DNA4](uint8(d.Rank() ^ 0b11))
}

// ToRNA converts d to the RNA4 value with the same rank.
func (d DNA4) ToRNA() RNA4 {
	return fromRank[RNA4](uint8(d.Rank()))
}

// RNA4 is the four letter RNA alphabet of A, C, G and U.
type RNA4 struct {
	alphabet.Base[rna4Spec]
}

// Complement returns the complement of r.
func (r RNA4) Complement() RNA4 {
	return fromRank[RNA4](uint8(r.Rank() ^ 0b11))
}

// ToDNA converts r to the DNA4 value with the same rank.
func (r RNA4) ToDNA() DNA4 {
	return fromRank[DNA4](uint8(r.Rank()))
}
