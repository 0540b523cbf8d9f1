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

// Package mask provides the Mask semialphabet and the Masked
// composite, which marks sequence letters as masked by writing them in
// lower case.
package mask

import (
	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/composite"
)

// Mask is a semialphabet with the two values Off and On. It
// has no character representation.
type Mask struct {
	rank uint8
}

// The two values of Mask.
var (
	Off = Mask{0}
	On  = Mask{1}
)

// AlphabetSize returns 2.
func (Mask) AlphabetSize() uint {
	return 2
}

func (m Mask) Rank() uint {
	return uint(m.rank)
}

func (m *Mask) AssignRank(r uint) {
	alphabet.CheckRank(r, 2)
	m.rank = uint8(r)
}

// IsMasked reports whether m is On.
func (m Mask) IsMasked() bool {
	return m.rank == 1
}

// Masked combines a sequence letter of S with a Mask. Masked letters
// are written in lower case. The rank is stored in a single byte, so S
// can have at most 128 values.
type Masked[S alphabet.Alphabet, PS alphabet.WritableAlphabet[S]] struct {
	composite.Tuple2Of[uint8, S, PS, Mask, *Mask]
}

// NewMasked returns the combination of s and m.
func NewMasked[S alphabet.Alphabet, PS alphabet.WritableAlphabet[S]](s S, m Mask) Masked[S, PS] {
	return Masked[S, PS]{composite.NewTuple2Of[uint8, S, PS, Mask, *Mask](s, m)}
}

// Sequence returns the sequence letter.
func (v Masked[S, PS]) Sequence() S {
	return v.First()
}

// Mask returns the mask.
func (v Masked[S, PS]) Mask() Mask {
	return v.Second()
}

// IsMasked reports whether the letter is masked.
func (v Masked[S, PS]) IsMasked() bool {
	return v.Second().IsMasked()
}

// Char returns the character of the sequence letter, in lower case if
// it is masked.
func (v Masked[S, PS]) Char() byte {
	c := v.First().Char()
	if v.IsMasked() {
		return alphabet.ToLower(c)
	}
	return c
}

// AssignChar sets the sequence letter from c, and masks it if c is a
// lower-case letter.
func (v *Masked[S, PS]) AssignChar(c byte) {
	if alphabet.IsLower(c) {
		v.SetFirst(alphabet.FromChar[S, PS](alphabet.ToUpper(c)))
		v.SetSecond(On)
		return
	}
	v.SetFirst(alphabet.FromChar[S, PS](c))
	v.SetSecond(Off)
}

func (v Masked[S, PS]) String() string {
	return string(v.Char())
}
