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

package quality

import (
	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/composite"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
)

// Qualified combines a sequence letter of S with a quality score of Q.
// Its character is the character of the sequence letter, its Phred
// score that of the quality.
type Qualified[S alphabet.Alphabet, PS alphabet.WritableAlphabet[S], Q Quality, PQ WritableQuality[Q]] struct {
	composite.Tuple2[S, PS, Q, PQ]
}

// NewQualified returns the combination of s and q.
func NewQualified[S alphabet.Alphabet, PS alphabet.WritableAlphabet[S], Q Quality, PQ WritableQuality[Q]](s S, q Q) Qualified[S, PS, Q, PQ] {
	return Qualified[S, PS, Q, PQ]{composite.NewTuple2[S, PS, Q, PQ](s, q)}
}

// Sequence returns the sequence letter.
func (v Qualified[S, PS, Q, PQ]) Sequence() S {
	return v.First()
}

// Quality returns the quality score.
func (v Qualified[S, PS, Q, PQ]) Quality() Q {
	return v.Second()
}

// Char returns the character of the sequence letter.
func (v Qualified[S, PS, Q, PQ]) Char() byte {
	return v.First().Char()
}

// AssignChar replaces the sequence letter and keeps the quality.
func (v *Qualified[S, PS, Q, PQ]) AssignChar(c byte) {
	v.SetFirst(alphabet.FromChar[S, PS](c))
}

// CharIsValid reports whether the sequence alphabet represents c
// without loss.
func (Qualified[S, PS, Q, PQ]) CharIsValid(c byte) bool {
	return alphabet.CharIsValidFor[S, PS](c)
}

// Phred returns the Phred score of the quality.
func (v Qualified[S, PS, Q, PQ]) Phred() int {
	return v.Second().Phred()
}

// AssignPhred replaces the quality and keeps the sequence letter.
func (v *Qualified[S, PS, Q, PQ]) AssignPhred(p int) {
	v.SetSecond(FromPhred[Q, PQ](p))
}

// QualityChar returns the character of the quality.
func (v Qualified[S, PS, Q, PQ]) QualityChar() byte {
	return v.Second().Char()
}

func (v Qualified[S, PS, Q, PQ]) String() string {
	return string([]byte{v.Char(), v.QualityChar()})
}

// ComplementQualified returns v with its nucleotide complemented and
// its quality unchanged.
func ComplementQualified[S nucleotide.Nucleotide[S], PS alphabet.WritableAlphabet[S], Q Quality, PQ WritableQuality[Q]](v Qualified[S, PS, Q, PQ]) Qualified[S, PS, Q, PQ] {
	v.SetFirst(v.First().Complement())
	return v
}

// Qualified alphabets with Phred42 scores.
type (
	DNA4Q  = Qualified[nucleotide.DNA4, *nucleotide.DNA4, Phred42, *Phred42]
	DNA5Q  = Qualified[nucleotide.DNA5, *nucleotide.DNA5, Phred42, *Phred42]
	DNA15Q = Qualified[nucleotide.DNA15, *nucleotide.DNA15, Phred42, *Phred42]
	RNA4Q  = Qualified[nucleotide.RNA4, *nucleotide.RNA4, Phred42, *Phred42]
	RNA5Q  = Qualified[nucleotide.RNA5, *nucleotide.RNA5, Phred42, *Phred42]
	RNA15Q = Qualified[nucleotide.RNA15, *nucleotide.RNA15, Phred42, *Phred42]
	AA27Q  = Qualified[aminoacid.AA27, *aminoacid.AA27, Phred42, *Phred42]
)
