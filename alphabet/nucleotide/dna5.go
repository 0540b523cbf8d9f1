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

// All characters other than A, C, G, T, U and N are converted to N.
func dna5CharToRank() [256]uint8 {
	table := alphabet.CharToRankTable("ACGTN", 4, true)
	alphabet.Alias(&table, 'T', "U")
	return table
}

var (
	dna5Table = alphabet.NewTable("ACGTN", dna5CharToRank())
	rna5Table = alphabet.NewTable("ACGUN", dna5CharToRank())

	dna5Complement = complementRanks(dna5Table)
	rna5Complement = complementRanks(rna5Table)
)

type dna5Spec struct{}

func (dna5Spec) Table() *alphabet.Table { return dna5Table }

type rna5Spec struct{}

func (rna5Spec) Table() *alphabet.Table { return rna5Table }

// DNA5 is the five letter DNA alphabet of A, C, G, T and the unknown
// character N.
type DNA5 struct {
	alphabet.Base[dna5Spec]
}

// Complement returns the complement of d. The complement of N is N.
func (d DNA5) Complement() DNA5 {
	return fromRank[DNA5](dna5Complement[d.Rank()])
}

// ToRNA converts d to the RNA5 value with the same rank.
func (d DNA5) ToRNA() RNA5 {
	return fromRank[RNA5](uint8(d.Rank()))
}

// RNA5 is the five letter RNA alphabet of A, C, G, U and the unknown
// character N.
type RNA5 struct {
	alphabet.Base[rna5Spec]
}

// Complement returns the complement of r. The complement of N is N.
func (r RNA5) Complement() RNA5 {
	return fromRank[RNA5](rna5Complement[r.Rank()])
}

// ToDNA converts r to the DNA5 value with the same rank.
func (r RNA5) ToDNA() DNA5 {
	return fromRank[DNA5](uint8(r.Rank()))
}
