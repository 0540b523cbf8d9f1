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

// Package aminoacid provides the amino acid alphabets AA27, AA20 and
// AA10Murphy, and translation of nucleotide triplets.
package aminoacid

import "github.com/exascience/elalphabet/alphabet"

// Aminoacid is an alphabet of amino acids.
type Aminoacid interface {
	alphabet.Alphabet
	IsAminoacid() bool
}

// Base is alphabet.Base for amino acid alphabets.
type Base[S alphabet.Spec] struct {
	alphabet.Base[S]
}

// IsAminoacid returns true.
func (Base[S]) IsAminoacid() bool {
	return true
}
