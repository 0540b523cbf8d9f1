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

import (
	"github.com/exascience/elalphabet/alphabet"
	"golang.org/x/exp/constraints"
)

// Tuple2Of is the composite of two semialphabets A and B. Its rank is
// rank(a) + rank(b)*size(A), stored in R. Constructing or using a
// Tuple2Of whose size product does not fit in R panics in checked
// builds.
//
// PA and PB are the pointer types of A and B, which Go usually
// infers.
type Tuple2Of[R constraints.Unsigned, A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B]] struct {
	rank R
}

// Tuple2 is a Tuple2Of with a 16-bit rank, which fits the composite of
// any two alphabets of at most 256 values.
//
//	t := composite.NewTuple2(nucleotide.DNA4{}, quality.Phred42{})
type Tuple2[A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B]] = Tuple2Of[uint16, A, PA, B, PB]

// NewTuple2Of returns the composite of a and b with rank type R.
func NewTuple2Of[R constraints.Unsigned, A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B]](a A, b B) Tuple2Of[R, A, PA, B, PB] {
	var t Tuple2Of[R, A, PA, B, PB]
	t.SetFirst(a)
	t.SetSecond(b)
	return t
}

// NewTuple2 returns the composite of a and b.
func NewTuple2[A alphabet.Semialphabet, PA alphabet.WritableSemialphabet[A], B alphabet.Semialphabet, PB alphabet.WritableSemialphabet[B]](a A, b B) Tuple2[A, PA, B, PB] {
	return NewTuple2Of[uint16, A, PA, B, PB](a, b)
}

func (Tuple2Of[R, A, PA, B, PB]) sizes() [2]uint {
	sizes := [2]uint{alphabet.Size[A](), alphabet.Size[B]()}
	CheckWidth[R](sizes[:]...)
	return sizes
}

// AlphabetSize returns size(A)*size(B).
func (t Tuple2Of[R, A, PA, B, PB]) AlphabetSize() uint {
	sizes := t.sizes()
	return sizes[0] * sizes[1]
}

func (t Tuple2Of[R, A, PA, B, PB]) Rank() uint {
	return uint(t.rank)
}

func (t *Tuple2Of[R, A, PA, B, PB]) AssignRank(r uint) {
	alphabet.CheckRank(r, t.AlphabetSize())
	t.rank = R(r)
}

// First returns the first component.
func (t Tuple2Of[R, A, PA, B, PB]) First() A {
	sizes := t.sizes()
	return alphabet.FromRank[A, PA](uint(t.rank) % sizes[0])
}

// Second returns the second component.
func (t Tuple2Of[R, A, PA, B, PB]) Second() B {
	sizes := t.sizes()
	return alphabet.FromRank[B, PB](uint(t.rank) / sizes[0])
}

// Components returns both components.
func (t Tuple2Of[R, A, PA, B, PB]) Components() (A, B) {
	return t.First(), t.Second()
}

// SetFirst replaces the first component and keeps the second.
func (t *Tuple2Of[R, A, PA, B, PB]) SetFirst(a A) {
	sizes := t.sizes()
	t.rank = reencode(t.rank, sizes[:], 0, a.Rank())
}

// SetSecond replaces the second component and keeps the first.
func (t *Tuple2Of[R, A, PA, B, PB]) SetSecond(b B) {
	sizes := t.sizes()
	t.rank = reencode(t.rank, sizes[:], 1, b.Rank())
}

// ComponentRank returns the rank of component i, which is 0 or 1.
func (t Tuple2Of[R, A, PA, B, PB]) ComponentRank(i int) uint {
	checkComponent(i, 2)
	sizes := t.sizes()
	return Decode(t.rank, sizes[:], i)
}

// AssignComponentRank sets the rank of component i and keeps the
// other component.
func (t *Tuple2Of[R, A, PA, B, PB]) AssignComponentRank(i int, r uint) {
	checkComponent(i, 2)
	sizes := t.sizes()
	t.rank = reencode(t.rank, sizes[:], i, r)
}
