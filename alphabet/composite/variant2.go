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

package composite

import "github.com/exascience/elalphabet/alphabet"

// Variant2 holds a value of either A or B. The values of A take ranks
// 0 to size(A)-1, the values of B follow, so all values of A order
// before all values of B.
//
// The zero Variant2 holds the zero value of A.
type Variant2[A alphabet.Alphabet, PA alphabet.WritableAlphabet[A], B alphabet.Alphabet, PB alphabet.WritableAlphabet[B]] struct {
	rank uint16
}

func (Variant2[A, PA, B, PB]) sizes() (sa, sb uint) {
	sa, sb = alphabet.Size[A](), alphabet.Size[B]()
	CheckWidth[uint16](sa + sb)
	return
}

// AlphabetSize returns size(A)+size(B).
func (v Variant2[A, PA, B, PB]) AlphabetSize() uint {
	sa, sb := v.sizes()
	return sa + sb
}

func (v Variant2[A, PA, B, PB]) Rank() uint {
	return uint(v.rank)
}

func (v *Variant2[A, PA, B, PB]) AssignRank(r uint) {
	alphabet.CheckRank(r, v.AlphabetSize())
	v.rank = uint16(r)
}

// HoldsFirst reports whether v holds a value of A.
func (v Variant2[A, PA, B, PB]) HoldsFirst() bool {
	sa, _ := v.sizes()
	return uint(v.rank) < sa
}

// First returns the value of A that v holds, if any.
func (v Variant2[A, PA, B, PB]) First() (a A, ok bool) {
	sa, _ := v.sizes()
	if uint(v.rank) >= sa {
		return a, false
	}
	return alphabet.FromRank[A, PA](uint(v.rank)), true
}

// Second returns the value of B that v holds, if any.
func (v Variant2[A, PA, B, PB]) Second() (b B, ok bool) {
	sa, _ := v.sizes()
	if uint(v.rank) < sa {
		return b, false
	}
	return alphabet.FromRank[B, PB](uint(v.rank) - sa), true
}

// SetFirst makes v hold a.
func (v *Variant2[A, PA, B, PB]) SetFirst(a A) {
	v.sizes()
	v.rank = uint16(a.Rank())
}

// SetSecond makes v hold b.
func (v *Variant2[A, PA, B, PB]) SetSecond(b B) {
	sa, _ := v.sizes()
	v.rank = uint16(sa + b.Rank())
}

// Char returns the character of the value v holds.
func (v Variant2[A, PA, B, PB]) Char() byte {
	if a, ok := v.First(); ok {
		return a.Char()
	}
	b, _ := v.Second()
	return b.Char()
}

// AssignChar sets v to the first alternative that represents c
// without loss. If neither does, c is converted to A.
func (v *Variant2[A, PA, B, PB]) AssignChar(c byte) {
	switch {
	case alphabet.CharIsValidFor[A, PA](c):
		v.SetFirst(alphabet.FromChar[A, PA](c))
	case alphabet.CharIsValidFor[B, PB](c):
		v.SetSecond(alphabet.FromChar[B, PB](c))
	default:
		v.SetFirst(alphabet.FromChar[A, PA](c))
	}
}

// CharIsValid reports whether either alternative represents c
// without loss.
func (Variant2[A, PA, B, PB]) CharIsValid(c byte) bool {
	return alphabet.CharIsValidFor[A, PA](c) || alphabet.CharIsValidFor[B, PB](c)
}

func (v Variant2[A, PA, B, PB]) String() string {
	return string(v.Char())
}
