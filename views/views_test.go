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

package views

import (
	"errors"
	"slices"
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dna4(s string) []nucleotide.DNA4 {
	return alphabet.FromString[nucleotide.DNA4](s)
}

func TestChars(t *testing.T) {
	seq := dna4("GATTACA")
	assert.Equal(t, []byte("GATTACA"), slices.Collect(Chars(slices.Values(seq))))
	assert.Equal(t, []uint{2, 0, 3, 3, 0, 1, 0}, slices.Collect(Ranks(slices.Values(seq))))

	back := slices.Collect(CharsTo[nucleotide.DNA4](slices.Values([]byte("gattaca"))))
	assert.Equal(t, seq, back)
	assert.Equal(t, seq, slices.Collect(RanksTo[nucleotide.DNA4](slices.Values([]uint{2, 0, 3, 3, 0, 1, 0}))))
}

func TestEarlyExit(t *testing.T) {
	seq := dna4("ACGTACGT")
	var chars []byte
	for c := range Chars(Complement(slices.Values(seq))) {
		if len(chars) == 3 {
			break
		}
		chars = append(chars, c)
	}
	assert.Equal(t, "TGC", string(chars))

	var rc []byte
	for v := range ReverseComplement(seq) {
		rc = append(rc, v.Char())
		if len(rc) == 2 {
			break
		}
	}
	assert.Equal(t, "AC", string(rc))
}

func TestConvert(t *testing.T) {
	dna15 := alphabet.FromString[nucleotide.DNA15]("ACRGTN")
	dna5 := slices.Collect(Convert[nucleotide.DNA5](slices.Values(dna15)))
	assert.Equal(t, "ACNGTN", alphabet.String(dna5))

	rna := slices.Collect(Convert[nucleotide.RNA4](slices.Values(dna4("ACGT"))))
	assert.Equal(t, "ACGU", alphabet.String(rna))
}

func TestComplement(t *testing.T) {
	seq := alphabet.FromString[nucleotide.DNA5]("AACGTN")
	assert.Equal(t, "TTGCAN", alphabet.String(slices.Collect(Complement(slices.Values(seq)))))
	assert.Equal(t, "NACGTT", alphabet.String(slices.Collect(ReverseComplement(seq))))
	assert.Empty(t, slices.Collect(ReverseComplement([]nucleotide.DNA5{})))

	twice := slices.Collect(ReverseComplement(slices.Collect(ReverseComplement(seq))))
	assert.Equal(t, seq, twice)
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint64(27), Hash(slices.Values(dna4("ACGT"))))
	assert.Equal(t, uint64(0), Hash(slices.Values(dna4(""))))
	assert.NotEqual(t, Hash(slices.Values(dna4("ACGT"))), Hash(slices.Values(dna4("ACGA"))))
	assert.Equal(t,
		Hash(slices.Values(dna4("GATTACA"))),
		Hash(CharsTo[nucleotide.DNA4](slices.Values([]byte("GATTACA")))))
}

func TestValidateChars(t *testing.T) {
	require.NoError(t, ValidateChars[nucleotide.DNA5]([]byte("ACGTN")))

	err := ValidateChars[nucleotide.DNA5]([]byte("ACGXTN"))
	var charErr *InvalidCharError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, 3, charErr.Position)
	assert.Equal(t, byte('X'), charErr.Char)
	assert.Equal(t, "nucleotide.DNA5", charErr.Alphabet)
	assert.Contains(t, err.Error(), "'X'")

	assert.Error(t, ValidateChars[nucleotide.DNA4]([]byte("acgt")))
	assert.NoError(t, ValidateChars[alphabet.Byte]([]byte{0, 255, 'x'}))
}

func TestInvalidPositions(t *testing.T) {
	chars := []byte("AXCXGXT")
	assert.Equal(t, []int{1, 3, 5}, InvalidPositions[nucleotide.DNA4](chars, -1))
	assert.Equal(t, []int{1, 3}, InvalidPositions[nucleotide.DNA4](chars, 2))
	assert.Empty(t, InvalidPositions[nucleotide.DNA4](chars, 0))
	assert.Empty(t, InvalidPositions[nucleotide.DNA15]([]byte("ACGTRYN"), -1))
}

func TestParseTranslationFrames(t *testing.T) {
	for name, expected := range map[string]TranslationFrames{
		"fwd":       Fwd,
		"rev":       Rev,
		"fwdrev0":   FwdRev0,
		"fwdrev1":   FwdRev1,
		"fwdrev2":   FwdRev2,
		"six":       SixFrame,
		"FwdFrame1": FwdFrame1,
		"RevFrame2": RevFrame2,
	} {
		frames, ok := ParseTranslationFrames(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, frames, name)
	}
	_, ok := ParseTranslationFrames("seven")
	assert.False(t, ok)

	assert.Equal(t, 6, SixFrame.Count())
	assert.Equal(t, 2, FwdRev0.Count())
	assert.Equal(t, []TranslationFrames{FwdFrame0, RevFrame0}, FwdRev0.Frames())
	assert.Equal(t, "FwdFrame0|RevFrame0", FwdRev0.String())
	assert.Equal(t, "FwdFrame0|FwdFrame1|FwdFrame2", Fwd.String())
}

func aminoacids(frames [][]aminoacid.AA27) (result []string) {
	for _, frame := range frames {
		result = append(result, alphabet.String(frame))
	}
	return result
}

func TestTranslate(t *testing.T) {
	seq := dna4("ACGTACGTACGTA")
	assert.Equal(t,
		[]string{"TYVR", "RTYV", "VRT", "YVRT", "TYVR", "RTY"},
		aminoacids(Translate(seq, SixFrame)))
	assert.Equal(t, []string{"TYVR", "YVRT"}, aminoacids(Translate(seq, FwdRev0)))
	assert.Equal(t, []string{"RTY"}, aminoacids(Translate(seq, RevFrame2)))

	rna := alphabet.FromString[nucleotide.RNA5]("AUGGCNUAA")
	assert.Equal(t, []string{"MA*"}, aminoacids(Translate(rna, FwdFrame0)))
	assert.Equal(t, "MA*", alphabet.String(TranslateFrame(rna, 0)))
	assert.Empty(t, TranslateFrame(rna, 9))
	assert.Empty(t, TranslateFrame(rna[:2], 0))
}
