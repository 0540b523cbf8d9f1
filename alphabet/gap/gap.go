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

// Package gap provides the gap symbol and the Gapped alphabets used in
// alignments.
package gap

import (
	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/composite"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
)

type gapSpec struct{}

func (gapSpec) Char() byte { return '-' }

// Gap is the single-value alphabet of the gap symbol '-'.
type Gap struct {
	alphabet.Singleton[gapSpec]
}

// Gapped extends the alphabet A with a gap. Gaps order after all
// values of A.
type Gapped[A alphabet.Alphabet, PA alphabet.WritableAlphabet[A]] struct {
	composite.Variant2[A, PA, Gap, *Gap]
}

// Letter returns a Gapped value holding a.
func Letter[A alphabet.Alphabet, PA alphabet.WritableAlphabet[A]](a A) Gapped[A, PA] {
	var g Gapped[A, PA]
	g.SetFirst(a)
	return g
}

// Of returns a Gapped value holding a gap.
func Of[A alphabet.Alphabet, PA alphabet.WritableAlphabet[A]]() Gapped[A, PA] {
	var g Gapped[A, PA]
	g.SetSecond(Gap{})
	return g
}

// IsGap reports whether g holds a gap.
func (g Gapped[A, PA]) IsGap() bool {
	return !g.HoldsFirst()
}

// Letter returns the letter g holds, if any.
func (g Gapped[A, PA]) Letter() (A, bool) {
	return g.First()
}

// Gapped alphabets for alignments.
type (
	GappedDNA4  = Gapped[nucleotide.DNA4, *nucleotide.DNA4]
	GappedDNA5  = Gapped[nucleotide.DNA5, *nucleotide.DNA5]
	GappedDNA15 = Gapped[nucleotide.DNA15, *nucleotide.DNA15]
	GappedRNA4  = Gapped[nucleotide.RNA4, *nucleotide.RNA4]
	GappedRNA5  = Gapped[nucleotide.RNA5, *nucleotide.RNA5]
	GappedAA27  = Gapped[aminoacid.AA27, *aminoacid.AA27]
)
