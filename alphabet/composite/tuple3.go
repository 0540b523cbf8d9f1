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

// Tuple3 is the composite of three semialphabets, with rank
// rank(a) + rank(b)*size(A) + rank(c)*size(A)*size(B), stored in 32
// bits.
type Tuple3[A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B], C alphabet.Semialphabet, PC alphabet.WritableSemialphabet[C]] struct {
	rank uint32
}

// NewTuple3 returns the composite of a, b and c.
func NewTuple3[A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B], C alphabet.Semialphabet, PC alphabet.WritableSemialphabet[C]](a A, b B, c C) Tuple3[A, PA, B, PB, C, PC] {
	var t Tuple3[A, PA, B, PB, C, PC]
	sizes := t.sizes()
	t.rank = Encode[uint32](sizes[:], []uint{a.Rank(), b.Rank(), c.Rank()})
	return t
}

func (Tuple3[A, PA, B, PB, C, PC]) sizes() [3]uint {
	sizes := [3]uint{alphabet.Size[A](), alphabet.Size[B](), alphabet.Size[C]()}
	CheckWidth[uint32](sizes[:]...)
	return sizes
}

func (t Tuple3[A, PA, B, PB, C, PC]) AlphabetSize() uint {
	sizes := t.sizes()
	return sizes[0] * sizes[1] * sizes[2]
}

func (t Tuple3[A, PA, B, PB, C, PC]) Rank() uint {
	return uint(t.rank)
}

func (t *Tuple3[A, PA, B, PB, C, PC]) AssignRank(r uint) {
	alphabet.CheckRank(r, t.AlphabetSize())
	t.rank = uint32(r)
}

func (t Tuple3[A, PA, B, PB, C, PC]) First() A {
	return alphabet.FromRank[A, PA](t.ComponentRank(0))
}

func (t Tuple3[A, PA, B, PB, C, PC]) Second() B {
	return alphabet.FromRank[B, PB](t.ComponentRank(1))
}

func (t Tuple3[A, PA, B, PB, C, PC]) Third() C {
	return alphabet.FromRank[C, PC](t.ComponentRank(2))
}

func (t *Tuple3[A, PA, B, PB, C, PC]) SetFirst(a A) {
	t.AssignComponentRank(0, a.Rank())
}

func (t *Tuple3[A, PA, B, PB, C, PC]) SetSecond(b B) {
	t.AssignComponentRank(1, b.Rank())
}

func (t *Tuple3[A, PA, B, PB, C, PC]) SetThird(c C) {
	t.AssignComponentRank(2, c.Rank())
}

// ComponentRank returns the rank of component i, which is 0, 1 or 2.
func (t Tuple3[A, PA, B, PB, C, PC]) ComponentRank(i int) uint {
	checkComponent(i, 3)
	sizes := t.sizes()
	return Decode(t.rank, sizes[:], i)
}

// AssignComponentRank sets the rank of component i and keeps the
// other components.
func (t *Tuple3[A, PA, B, PB, C, PC]) AssignComponentRank(i int, r uint) {
	checkComponent(i, 3)
	sizes := t.sizes()
	t.rank = reencode(t.rank, sizes[:], i, r)
}
