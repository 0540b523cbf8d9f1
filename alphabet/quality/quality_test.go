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
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/alphabettest"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityLaws(t *testing.T) {
	t.Run("Phred42", alphabettest.CheckAlphabet[Phred42])
	t.Run("Phred63", alphabettest.CheckAlphabet[Phred63])
	t.Run("Phred94", alphabettest.CheckAlphabet[Phred94])
	t.Run("Phred68Legacy", alphabettest.CheckAlphabet[Phred68Legacy])
}

func TestSizes(t *testing.T) {
	assert.Equal(t, uint(42), alphabet.Size[Phred42]())
	assert.Equal(t, uint(63), alphabet.Size[Phred63]())
	assert.Equal(t, uint(94), alphabet.Size[Phred94]())
	assert.Equal(t, uint(68), alphabet.Size[Phred68Legacy]())
}

func TestPhred(t *testing.T) {
	assert.Equal(t, 0, Phred(alphabet.FromChar[Phred42]('!')))
	assert.Equal(t, 40, Phred(alphabet.FromChar[Phred42]('I')))
	assert.Equal(t, 41, Phred(alphabet.FromChar[Phred42]('J')))
	assert.Equal(t, 62, Phred(alphabet.FromChar[Phred63]('_')))
	assert.Equal(t, 93, Phred(alphabet.FromChar[Phred94]('~')))

	assert.Equal(t, -5, Phred(alphabet.FromChar[Phred68Legacy](';')))
	assert.Equal(t, 0, Phred(alphabet.FromChar[Phred68Legacy]('@')))
	assert.Equal(t, 62, Phred(alphabet.FromChar[Phred68Legacy]('~')))

	assert.Equal(t, byte('?'), FromPhred[Phred42](30).Char())
	assert.Equal(t, byte('@'), FromPhred[Phred68Legacy](0).Char())
	for p := 0; p < 94; p++ {
		assert.Equal(t, p, FromPhred[Phred94](p).Phred())
	}
}

func TestClamping(t *testing.T) {
	assert.Equal(t, byte('J'), alphabet.FromChar[Phred42]('~').Char())
	assert.Equal(t, byte('!'), alphabet.FromChar[Phred42](' ').Char())
	assert.Equal(t, byte('!'), alphabet.FromChar[Phred42](0).Char())
	assert.False(t, alphabet.CharIsValidFor[Phred42]('K'))
	assert.True(t, alphabet.CharIsValidFor[Phred42]('J'))

	assert.Equal(t, 41, FromPhred[Phred42](50).Phred())
	assert.Equal(t, 0, FromPhred[Phred42](-3).Phred())
	assert.Equal(t, -5, FromPhred[Phred68Legacy](-10).Phred())
	assert.Equal(t, 62, FromPhred[Phred68Legacy](100).Phred())

	var q Phred63
	q.AssignPhred(1000)
	assert.Equal(t, byte('_'), q.Char())
}

func TestNewTable(t *testing.T) {
	table := NewTable('A', 3)
	assert.Equal(t, "ABC", table.Chars())
	assert.Equal(t, uint8(0), table.Rank('!'))
	assert.Equal(t, uint8(2), table.Rank('z'))
	assert.Panics(t, func() { NewTable('!', 250) })
}

func TestQualifiedLaws(t *testing.T) {
	t.Run("DNA4Q", alphabettest.CheckSemialphabet[DNA4Q])
	t.Run("DNA4Q chars", alphabettest.CheckChars[DNA4Q])
	t.Run("DNA5Q", alphabettest.CheckSemialphabet[DNA5Q])
	t.Run("RNA4Q chars", alphabettest.CheckChars[RNA4Q])
	t.Run("AA27Q chars", alphabettest.CheckChars[AA27Q])
}

func TestQualified(t *testing.T) {
	assert.Equal(t, uint(168), alphabet.Size[DNA4Q]())
	assert.Equal(t, uint(210), alphabet.Size[DNA5Q]())
	assert.Equal(t, uint(15*42), alphabet.Size[DNA15Q]())

	v := NewQualified(alphabet.FromChar[nucleotide.DNA4]('G'), alphabet.FromRank[Phred42](10))
	assert.Equal(t, uint(42), v.Rank())
	assert.Equal(t, byte('G'), v.Char())
	assert.Equal(t, 10, v.Phred())
	assert.Equal(t, byte('+'), v.QualityChar())
	assert.Equal(t, "G+", v.String())

	w := alphabet.FromRank[DNA4Q](42)
	assert.Equal(t, v, w)
	assert.Equal(t, byte('G'), w.Sequence().Char())
	assert.Equal(t, uint(10), w.Quality().Rank())
}

func TestQualifiedAssignment(t *testing.T) {
	var v DNA5Q
	v.AssignPhred(40)
	v.AssignChar('N')
	assert.Equal(t, "NI", v.String())
	v.AssignChar('c')
	assert.Equal(t, "CI", v.String())
	v.AssignPhred(99)
	assert.Equal(t, "CJ", v.String())

	assert.True(t, v.CharIsValid('N'))
	assert.False(t, v.CharIsValid('n'))
	assert.False(t, v.CharIsValid('I'))
	assert.Equal(t, 41, Phred(v))
}

func TestQualifiedAllRanks(t *testing.T) {
	const sizeS, sizeQ = 4, 42
	for r := uint(0); r < sizeS*sizeQ; r++ {
		v := alphabet.FromRank[DNA4Q](r)
		require.Equal(t, r, v.Rank())
		rs, rq := r%sizeS, r/sizeS
		require.Equal(t, rs, v.Sequence().Rank())
		require.Equal(t, int(rq), v.Phred())
		require.Equal(t, v, NewQualified(v.Sequence(), v.Quality()))

		for s := uint(0); s < sizeS; s++ {
			w := v
			w.AssignChar(alphabet.FromRank[nucleotide.DNA4](s).Char())
			require.Equal(t, s+rq*sizeS, w.Rank(), "rank %v, letter %v", r, s)
			require.Equal(t, v.Quality(), w.Quality(), "rank %v, letter %v", r, s)
		}
		for q := 0; q < sizeQ; q++ {
			w := v
			w.AssignPhred(q)
			require.Equal(t, rs+uint(q)*sizeS, w.Rank(), "rank %v, phred %v", r, q)
			require.Equal(t, v.Sequence(), w.Sequence(), "rank %v, phred %v", r, q)
			require.Equal(t, v.Char(), w.Char())
		}
	}
}

func TestComplementQualified(t *testing.T) {
	v := NewQualified(alphabet.FromChar[nucleotide.DNA4]('A'), FromPhred[Phred42](30))
	c := ComplementQualified(v)
	assert.Equal(t, "T?", c.String())
	assert.Equal(t, v, ComplementQualified(c))

	r := NewQualified(alphabet.FromChar[nucleotide.RNA5]('G'), FromPhred[Phred42](2))
	assert.Equal(t, "C#", ComplementQualified(r).String())
}
