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

const aa27Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ*"

// Unknown characters are converted to X.
var aa27Table = alphabet.NewTable(aa27Chars, alphabet.CharToRankTable(aa27Chars, 23, true))

type aa27Spec struct{}

func (aa27Spec) Table() *alphabet.Table { return aa27Table }

// AA27 is the alphabet of the 20 canonical amino acids, the two
// non-canonical ones (O, U), the ambiguity codes B, J, Z, the unknown
// amino acid X and the terminator *.
type AA27 struct {
	Base[aa27Spec]
}

// Terminator returns the stop codon value *.
func Terminator() AA27 {
	return alphabet.FromChar[AA27]('*')
}
