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

const aa10MurphyChars = "ABCFGHIKPS"

func aa10MurphyCharToRank() [256]uint8 {
	table := alphabet.CharToRankTable(aa10MurphyChars, 9, true)
	alphabet.Alias(&table, 'B', "DENQZ")
	alphabet.Alias(&table, 'I', "JLMV")
	alphabet.Alias(&table, 'K', "OR")
	alphabet.Alias(&table, 'S', "TX")
	alphabet.Alias(&table, 'C', "U")
	alphabet.Alias(&table, 'F', "WY*")
	return table
}

var aa10MurphyTable = alphabet.NewTable(aa10MurphyChars, aa10MurphyCharToRank())

type aa10MurphySpec struct{}

func (aa10MurphySpec) Table() *alphabet.Table { return aa10MurphyTable }

// AA10Murphy is the reduced amino acid alphabet of Murphy et al. (2000),
// which groups amino acids with similar properties:
//
//	A      A
//	B      D E N Q (and B, Z)
//	C      C (and U)
//	F      F W Y (and *)
//	G      G
//	H      H
//	I      I L M V (and J)
//	K      K R (and O)
//	P      P
//	S      S T (and X)
type AA10Murphy struct {
	Base[aa10MurphySpec]
}
