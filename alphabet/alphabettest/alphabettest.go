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

// Package alphabettest checks that alphabet implementations satisfy
// the laws every alphabet must obey. It is meant to be called from the
// tests of alphabet packages, including third-party ones:
//
//	func TestMyAlphabet(t *testing.T) {
//		alphabettest.CheckAlphabet[MyAlphabet](t)
//	}
package alphabettest

import (
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CheckSemialphabet checks the rank laws of T: a constant size of at
// least 1, exact rank round trips, and an order that agrees with the
// ranks.
func CheckSemialphabet[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](t *testing.T) {
	t.Helper()
	require.True(t, alphabet.IsWritableSemialphabet[T](), "%T is not a writable semialphabet", *new(T))
	size := alphabet.Size[T]()
	require.GreaterOrEqual(t, size, uint(1))

	var previous T
	for r := uint(0); r < size; r++ {
		v := alphabet.FromRank[T, PT](r)
		require.Equal(t, r, alphabet.ToRank(v), "rank round trip")
		require.Equal(t, size, v.AlphabetSize(), "size depends on the value")
		require.Equal(t, v, alphabet.AssignRankTo[T, PT](r, previous), "assignment depends on the previous value")
		if r > 0 {
			assert.True(t, alphabet.Less(previous, v))
			assert.False(t, alphabet.Less(v, previous))
			assert.Equal(t, -1, alphabet.Compare(previous, v))
			assert.Equal(t, 1, alphabet.Compare(v, previous))
			assert.NotEqual(t, previous, v)
		}
		assert.Equal(t, 0, alphabet.Compare(v, v))
		previous = v
	}

	if alphabet.Checked() {
		assert.Panics(t, func() { alphabet.FromRank[T, PT](size) }, "rank out of range")
	}
}

// CheckAlphabet checks the rank laws of T and the character laws of
// CheckChars and CheckCanonicalChars.
func CheckAlphabet[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](t *testing.T) {
	t.Helper()
	CheckSemialphabet[T, PT](t)
	CheckChars[T, PT](t)
	CheckCanonicalChars[T, PT](t)
}

// CheckChars checks that every byte converts to a value of T, and that
// CharIsValidFor holds exactly for the characters that convert back
// to themselves.
func CheckChars[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](t *testing.T) {
	t.Helper()
	require.True(t, alphabet.IsWritableAlphabet[T](), "%T is not a writable alphabet", *new(T))
	size := alphabet.Size[T]()
	for c := 0; c < 256; c++ {
		v := alphabet.FromChar[T, PT](byte(c))
		require.Less(t, alphabet.ToRank(v), size, "char %q", byte(c))
		assert.Equal(t, alphabet.ToChar(v) == byte(c), alphabet.CharIsValidFor[T, PT](byte(c)), "validity of char %q", byte(c))
	}
}

// CheckCanonicalChars checks that the character of each rank converts
// back to that rank. Composites that attach data without a character,
// like quality scores, do not satisfy this.
func CheckCanonicalChars[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](t *testing.T) {
	t.Helper()
	size := alphabet.Size[T]()
	for r := uint(0); r < size; r++ {
		c := alphabet.ToChar(alphabet.FromRank[T, PT](r))
		v := alphabet.FromChar[T, PT](c)
		assert.Equal(t, r, alphabet.ToRank(v), "char %q of rank %v", c, r)
		assert.True(t, alphabet.CharIsValidFor[T, PT](c), "canonical char %q", c)
	}
}

// CheckSequence checks that s converts to T and back unchanged.
func CheckSequence[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](t *testing.T, s string) {
	t.Helper()
	assert.Equal(t, s, alphabet.String(alphabet.FromString[T, PT](s)))
}
