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

package nucleotide

import (
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/alphabettest"
	"github.com/stretchr/testify/assert"
)

func TestAlphabetLaws(t *testing.T) {
	t.Run("DNA4", alphabettest.CheckAlphabet[DNA4])
	t.Run("RNA4", alphabettest.CheckAlphabet[RNA4])
	t.Run("DNA5", alphabettest.CheckAlphabet[DNA5])
	t.Run("RNA5", alphabettest.CheckAlphabet[RNA5])
	t.Run("DNA15", alphabettest.CheckAlphabet[DNA15])
	t.Run("RNA15", alphabettest.CheckAlphabet[RNA15])
}

func TestSizes(t *testing.T) {
	assert.Equal(t, uint(4), alphabet.Size[DNA4]())
	assert.Equal(t, uint(4), alphabet.Size[RNA4]())
	assert.Equal(t, uint(5), alphabet.Size[DNA5]())
	assert.Equal(t, uint(5), alphabet.Size[RNA5]())
	assert.Equal(t, uint(15), alphabet.Size[DNA15]())
	assert.Equal(t, uint(15), alphabet.Size[RNA15]())
}

func TestDNA5(t *testing.T) {
	assert.Equal(t, uint(3), alphabet.FromChar[DNA5]('T').Rank())
	assert.Equal(t, uint(3), alphabet.FromChar[DNA5]('t').Rank())
	assert.Equal(t, uint(4), alphabet.FromChar[DNA5]('R').Rank())
	assert.Equal(t, byte('N'), alphabet.FromRank[DNA5](4).Char())
	assert.Equal(t, "ACGTTNNNN", alphabet.String(alphabet.FromString[DNA5]("acgtURY!-")))
	assert.False(t, alphabet.CharIsValidFor[DNA5]('t'))
	assert.False(t, alphabet.CharIsValidFor[DNA5]('U'))
	assert.True(t, alphabet.CharIsValidFor[DNA5]('N'))
}

func TestRNA5(t *testing.T) {
	assert.Equal(t, "ACGUUNNNN", alphabet.String(alphabet.FromString[RNA5]("ACGTU!RYn")))
	assert.Equal(t, byte('U'), alphabet.FromChar[RNA5]('T').Char())
	assert.True(t, alphabet.CharIsValidFor[RNA5]('U'))
	assert.False(t, alphabet.CharIsValidFor[RNA5]('T'))
}

func TestDNA4(t *testing.T) {
	// IUPAC codes become the first base they stand for
	assert.Equal(t, "AAACGCCCGTTA", alphabet.String(alphabet.FromString[DNA4]("NRWCGYSBKTUx")))
	assert.Equal(t, "ACGU", alphabet.String(alphabet.FromString[RNA4]("acgt")))
}

func TestDNA15(t *testing.T) {
	alphabettest.CheckSequence[DNA15](t, "ABCDGHKMNRSTVWY")
	alphabettest.CheckSequence[RNA15](t, "ABCDGHKMNRSUVWY")
	assert.Equal(t, "TNN", alphabet.String(alphabet.FromString[DNA15]("uXe")))
	assert.Equal(t, uint(8), alphabet.FromChar[DNA15]('N').Rank())
}

func complementString[T Nucleotide[T]](seq []T) string {
	result := make([]T, len(seq))
	for i, v := range seq {
		result[i] = Complement(v)
	}
	return alphabet.String(result)
}

func TestComplement(t *testing.T) {
	assert.Equal(t, "TGCA", complementString(alphabet.FromString[DNA4]("ACGT")))
	assert.Equal(t, "UGCA", complementString(alphabet.FromString[RNA4]("ACGU")))
	assert.Equal(t, "TGCAN", complementString(alphabet.FromString[DNA5]("ACGTN")))
	assert.Equal(t, "UGCAN", complementString(alphabet.FromString[RNA5]("ACGUN")))
	assert.Equal(t, "TVGHCDMKNYSABWR", complementString(alphabet.FromString[DNA15]("ABCDGHKMNRSTVWY")))
	assert.Equal(t, "UVGHCDMKNYSABWR", complementString(alphabet.FromString[RNA15]("ABCDGHKMNRSUVWY")))
}

func checkInvolution[T Nucleotide[T], PT alphabet.WritableAlphabet[T]](t *testing.T) {
	for r := uint(0); r < alphabet.Size[T](); r++ {
		v := alphabet.FromRank[T, PT](r)
		assert.Equal(t, v, v.Complement().Complement())
	}
}

func TestComplementInvolution(t *testing.T) {
	checkInvolution[DNA4](t)
	checkInvolution[RNA4](t)
	checkInvolution[DNA5](t)
	checkInvolution[RNA5](t)
	checkInvolution[DNA15](t)
	checkInvolution[RNA15](t)
}

func TestDNARNAConversion(t *testing.T) {
	for r := uint(0); r < 4; r++ {
		d := alphabet.FromRank[DNA4](r)
		assert.Equal(t, r, d.ToRNA().Rank())
		assert.Equal(t, d, d.ToRNA().ToDNA())
	}
	assert.Equal(t, byte('U'), alphabet.FromChar[DNA5]('T').ToRNA().Char())
	assert.Equal(t, byte('T'), alphabet.FromChar[RNA15]('U').ToDNA().Char())
	assert.Equal(t, byte('Y'), alphabet.FromChar[DNA15]('Y').ToRNA().Char())
}

func TestConvertThroughChar(t *testing.T) {
	dna15 := alphabet.FromString[DNA15]("ACYGTN")
	dna5 := make([]DNA5, len(dna15))
	for i, v := range dna15 {
		dna5[i] = alphabet.ConvertThroughChar[DNA5](v)
	}
	assert.Equal(t, "ACNGTN", alphabet.String(dna5))

	assert.Equal(t, byte('A'), alphabet.ConvertThroughChar[DNA4](alphabet.FromChar[DNA5]('N')).Char())
	assert.Equal(t, byte('U'), alphabet.ConvertThroughChar[RNA5](alphabet.FromChar[DNA4]('T')).Char())
}
