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

const (
	dna15Chars = "ABCDGHKMNRSTVWY"
	rna15Chars = "ABCDGHKMNRSUVWY"
)

// The ranks follow the alphabetical order of the IUPAC codes. Unknown
// characters are converted to N.
func dna15CharToRank() [256]uint8 {
	table := alphabet.CharToRankTable(dna15Chars, 8, true)
	alphabet.Alias(&table, 'T', "U")
	return table
}

var (
	dna15Table = alphabet.NewTable(dna15Chars, dna15CharToRank())
	rna15Table = alphabet.NewTable(rna15Chars, dna15CharToRank())

	dna15Complement = complementRanks(dna15Table)
	rna15Complement = complementRanks(rna15Table)
)

type dna15Spec struct{}

func (dna15Spec) Table() *alphabet.Table { return dna15Table }

type rna15Spec struct{}

func (rna15Spec) Table() *alphabet.Table { return rna15Table }

// DNA15 is the DNA alphabet of A, C, G, T and the eleven IUPAC
// ambiguity codes B, D, H, K, M, N, R, S, V, W and Y.
type DNA15 struct {
	alphabet.Base[dna15Spec]
}

// Complement returns the IUPAC complement of d, for example Y for R.
func (d DNA15) Complement() DNA15 {
	return fromRank[DNA15](dna15Complement[d.Rank()])
}

// ToRNA converts d to the RNA15 value with the same rank.
func (d DNA15) ToRNA() RNA15 {
	return fromRank[RNA15](uint8(d.Rank()))
}

// RNA15 is the RNA counterpart of DNA15, with U in place of T.
type RNA15 struct {
	alphabet.Base[rna15Spec]
}

// Complement returns the IUPAC complement of r.
func (r RNA15) Complement() RNA15 {
	return fromRank[RNA15](rna15Complement[r.Rank()])
}

// ToDNA converts r to the DNA15 value with the same rank.
func (r RNA15) ToDNA() DNA15 {
	return fromRank[DNA15](uint8(r.Rank()))
}
