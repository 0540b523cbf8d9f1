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

const aa20Chars = "ACDEFGHIKLMNPQRSTVWY"

func aa20CharToRank() [256]uint8 {
	// unknown characters become S, the most frequent amino acid
	table := alphabet.CharToRankTable(aa20Chars, 15, true)
	alphabet.Alias(&table, 'D', "B")
	alphabet.Alias(&table, 'L', "JO")
	alphabet.Alias(&table, 'C', "U")
	alphabet.Alias(&table, 'S', "X")
	alphabet.Alias(&table, 'E', "Z")
	// UGA, the most common stop codon, is closest to tryptophan
	alphabet.Alias(&table, 'W', "*")
	return table
}

var aa20Table = alphabet.NewTable(aa20Chars, aa20CharToRank())

type aa20Spec struct{}

func (aa20Spec) Table() *alphabet.Table { return aa20Table }

// AA20 is the alphabet of the 20 canonical amino acids. Ambiguity
// codes are converted to their most frequent member, non-canonical
// amino acids to their closest canonical one.
type AA20 struct {
	Base[aa20Spec]
}
