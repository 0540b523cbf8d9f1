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

// Byte adapts a raw byte to the alphabet interface. It has 256
// values, its rank is its numeric value, and every character is valid.
type Byte byte

// AlphabetSize returns 256.
func (Byte) AlphabetSize() uint {
	return 256
}

// Rank returns the numeric value of b.
func (b Byte) Rank() uint {
	return uint(b)
}

// Char returns b unchanged.
func (b Byte) Char() byte {
	return byte(b)
}

// AssignChar sets b to c.
func (b *Byte) AssignChar(c byte) {
	*b = Byte(c)
}

// AssignRank sets b to r, which must be smaller than 256.
func (b *Byte) AssignRank(r uint) {
	CheckRank(r, 256)
	*b = Byte(r)
}

// CharIsValid returns true.
func (Byte) CharIsValid(byte) bool {
	return true
}
