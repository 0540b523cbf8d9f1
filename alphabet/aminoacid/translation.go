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

package aminoacid

import "github.com/exascience/elalphabet/alphabet"

// Standard genetic code, indexed by 16*first + 4*second + third with
// A=0, C=1, G=2, T=3.
const standardCode = "KNKNTTTTRSRSIIMIQHQHPPPPRRRRLLLLEDEDAAAAGGGGVVVV*Y*YSSSS*CWCLFLF"

var (
	codonTable [64]AA27
	unknown    = alphabet.FromChar[AA27]('X')
)

func init() {
	for i := range codonTable {
		codonTable[i].AssignChar(standardCode[i])
	}
}

// bases lists, for each nucleotide character, the unambiguous bases it
// stands for as 2-bit codes.
var bases = func() (table [256][]uint8) {
	codes := map[byte]string{
		'A': "A", 'C': "C", 'G': "G", 'T': "T", 'U': "T",
		'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT", 'K': "GT", 'M': "AC",
		'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG", 'N': "ACGT",
	}
	code := map[byte]uint8{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	for c, expansion := range codes {
		for i := 0; i < len(expansion); i++ {
			table[c] = append(table[c], code[expansion[i]])
			table[alphabet.ToLower(c)] = table[c]
		}
	}
	return table
}()

// TranslateTriplet translates a codon of three nucleotides into an
// amino acid, using the standard genetic code.
//
// Ambiguous nucleotides are resolved when all codons they stand for
// translate to the same amino acid (GCN is A). Otherwise, and for
// characters that are not nucleotides, the result is X.
func TranslateTriplet[N alphabet.Alphabet](n1, n2, n3 N) AA27 {
	b1, b2, b3 := bases[n1.Char()], bases[n2.Char()], bases[n3.Char()]
	if len(b1) == 0 || len(b2) == 0 || len(b3) == 0 {
		return unknown
	}
	result := codonTable[16*b1[0]+4*b2[0]+b3[0]]
	for _, x := range b1 {
		for _, y := range b2 {
			for _, z := range b3 {
				if codonTable[16*x+4*y+z] != result {
					return unknown
				}
			}
		}
	}
	return result
}
