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
	"fmt"

	"github.com/exascience/elalphabet/alphabet"
)

// InvalidCharError reports a character that an alphabet cannot
// represent without loss.
type InvalidCharError struct {
	Position int
	Char     byte
	Alphabet string
}

func (err *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %v for alphabet %v", err.Char, err.Position, err.Alphabet)
}

// AlphabetName returns the name of the alphabet T, as used in error
// messages.
func AlphabetName[T any]() string {
	var v T
	return fmt.Sprintf("%T", v)
}

// ValidateChars checks that every character of chars is valid for T,
// and returns an *InvalidCharError for the first one that is not.
func ValidateChars[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](chars []byte) error {
	for i, c := range chars {
		if !alphabet.CharIsValidFor[T, PT](c) {
			return &InvalidCharError{Position: i, Char: c, Alphabet: AlphabetName[T]()}
		}
	}
	return nil
}

// InvalidPositions returns the positions of at most limit characters
// of chars that are not valid for T. A negative limit means no limit.
func InvalidPositions[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](chars []byte, limit int) (positions []int) {
	for i, c := range chars {
		if limit >= 0 && len(positions) >= limit {
			break
		}
		if !alphabet.CharIsValidFor[T, PT](c) {
			positions = append(positions, i)
		}
	}
	return positions
}
