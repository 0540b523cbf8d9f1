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

package alphabet_test

import (
	"testing"
	"unsafe"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/alphabettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coin is an alphabet defined without any help from the alphabet
// package, the way a third party would.
type coin struct {
	tails bool
}

func (coin) AlphabetSize() uint { return 2 }

func (c coin) Rank() uint {
	if c.tails {
		return 1
	}
	return 0
}

func (c coin) Char() byte {
	if c.tails {
		return 'T'
	}
	return 'H'
}

func (c *coin) AssignRank(r uint) {
	alphabet.CheckRank(r, 2)
	c.tails = r == 1
}

func (c *coin) AssignChar(ch byte) {
	c.tails = ch == 'T' || ch == 't'
}

// bits is an alphabet built on alphabet.Base with its own table.
var bitsTable = alphabet.NewTable("01", alphabet.CharToRankTable("01", 0, false))

type bitsSpec struct{}

func (bitsSpec) Table() *alphabet.Table { return bitsTable }

type bits struct {
	alphabet.Base[bitsSpec]
}

type starSpec struct{}

func (starSpec) Char() byte { return '*' }

type star struct {
	alphabet.Singleton[starSpec]
}

// ranked has ranks but no characters.
type ranked struct {
	rank uint8
}

func (ranked) AlphabetSize() uint { return 3 }
func (r ranked) Rank() uint       { return uint(r.rank) }

func (r *ranked) AssignRank(n uint) {
	alphabet.CheckRank(n, 3)
	r.rank = uint8(n)
}

func TestThirdPartyAlphabet(t *testing.T) {
	alphabettest.CheckAlphabet[coin](t)
	assert.Equal(t, "HTTH", alphabet.String(alphabet.FromString[coin]("HTtX")))
	assert.False(t, alphabet.CharIsValidFor[coin]('t'))
	assert.True(t, alphabet.CharIsValidFor[coin]('T'))
}

func TestBase(t *testing.T) {
	alphabettest.CheckAlphabet[bits](t)
	alphabettest.CheckSequence[bits](t, "0110")
	assert.Equal(t, []uint{0, 1, 1, 0, 0}, alphabet.Ranks(alphabet.FromString[bits]("0110x")))
	assert.Equal(t, "1", alphabet.FromChar[bits]('1').String())
	assert.Equal(t, unsafe.Sizeof(uint8(0)), unsafe.Sizeof(bits{}))
}

func TestByte(t *testing.T) {
	alphabettest.CheckAlphabet[alphabet.Byte](t)
	for c := 0; c < 256; c++ {
		assert.True(t, alphabet.CharIsValidFor[alphabet.Byte](byte(c)))
	}
}

func TestSingleton(t *testing.T) {
	alphabettest.CheckAlphabet[star](t)
	assert.Equal(t, uint(1), alphabet.Size[star]())
	assert.Equal(t, uintptr(0), unsafe.Sizeof(star{}))
	assert.Equal(t, star{}, alphabet.FromChar[star]('x'))
	assert.Equal(t, uint(0), alphabet.FromChar[star]('x').Rank())
	assert.Equal(t, byte('*'), alphabet.FromChar[star]('x').Char())
	assert.True(t, alphabet.CharIsValidFor[star]('*'))
	assert.False(t, alphabet.CharIsValidFor[star]('x'))
}

func TestSemialphabet(t *testing.T) {
	alphabettest.CheckSemialphabet[ranked](t)
}

func TestPredicates(t *testing.T) {
	assert.True(t, alphabet.IsSemialphabet[ranked]())
	assert.True(t, alphabet.IsWritableSemialphabet[ranked]())
	assert.False(t, alphabet.IsAlphabet[ranked]())
	assert.False(t, alphabet.IsWritableAlphabet[ranked]())

	assert.True(t, alphabet.IsAlphabet[coin]())
	assert.True(t, alphabet.IsWritableAlphabet[coin]())

	assert.False(t, alphabet.IsSemialphabet[int]())
	assert.False(t, alphabet.IsSemialphabet[string]())
}

func TestConversions(t *testing.T) {
	assert.Equal(t, coin{}, alphabet.ConvertThroughChar[coin](alphabet.FromChar[bits]('1')))
	assert.Equal(t, coin{tails: true}, alphabet.ConvertThroughRank[coin](alphabet.FromChar[bits]('1')))
	assert.Equal(t, alphabet.FromRank[bits](1), alphabet.ConvertThroughRank[bits](coin{tails: true}))
}

func TestNewTable(t *testing.T) {
	var identity [256]uint8
	assert.Panics(t, func() { alphabet.NewTable("A", identity) }, "size 1")
	assert.Panics(t, func() { alphabet.NewTable("AA", identity) }, "duplicate")
	identity['B'] = 2
	assert.Panics(t, func() { alphabet.NewTable("AB", identity) }, "rank out of range")

	table := alphabet.CharToRankTable("AB", 1, true)
	alphabet.Alias(&table, 'A', "X")
	tab := alphabet.NewTable("AB", table)
	assert.Equal(t, uint(2), tab.Size())
	assert.Equal(t, "AB", tab.Chars())
	assert.Equal(t, uint8(0), tab.Rank('a'))
	assert.Equal(t, uint8(0), tab.Rank('x'))
	assert.Equal(t, uint8(1), tab.Rank('?'))
	assert.True(t, tab.Valid('A'))
	assert.False(t, tab.Valid('a'))
	assert.False(t, tab.Valid('?'))
}

func TestCheckRank(t *testing.T) {
	if !alphabet.Checked() {
		t.Skip("rank checks are disabled")
	}
	require.NotPanics(t, func() { alphabet.CheckRank(3, 4) })
	assert.Panics(t, func() { alphabet.CheckRank(4, 4) })
	assert.Panics(t, func() { alphabet.FromRank[bits](2) })
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, byte('a'), alphabet.ToLower('A'))
	assert.Equal(t, byte('A'), alphabet.ToUpper('a'))
	assert.Equal(t, byte('*'), alphabet.ToLower('*'))
	assert.Equal(t, byte('*'), alphabet.ToUpper('*'))
	assert.True(t, alphabet.IsUpper('Z'))
	assert.False(t, alphabet.IsUpper('z'))
	assert.True(t, alphabet.IsLower('z'))
}
