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

/*
Package quality provides Phred quality score alphabets and the
Qualified composite that attaches a quality score to a sequence
letter.

A quality alphabet of size n represents the Phred scores
OffsetPhred() to OffsetPhred()+n-1 with the characters OffsetChar to
OffsetChar+n-1. Characters and scores outside that range are clamped
to the nearest representable value.
*/
package quality

import (
	"log"

	"github.com/exascience/elalphabet/alphabet"
)

// Quality is an alphabet with a Phred score.
type Quality interface {
	alphabet.Alphabet
	Phred() int
}

// WritableQuality constrains PT to be a pointer to T that can assign
// ranks, characters and Phred scores.
type WritableQuality[T any] interface {
	alphabet.WritableAlphabet[T]
	AssignPhred(p int)
}

// Spec selects the table and the Phred offset of a quality alphabet.
type Spec interface {
	alphabet.Spec
	OffsetPhred() int
}

// Base implements a quality alphabet on top of alphabet.Base.
type Base[S Spec] struct {
	alphabet.Base[S]
}

// Phred returns the Phred score of q.
func (q Base[S]) Phred() int {
	var s S
	return int(q.Rank()) + s.OffsetPhred()
}

// AssignPhred sets q to the value for the Phred score p, clamped to
// the range of the alphabet.
func (q *Base[S]) AssignPhred(p int) {
	var s S
	r := p - s.OffsetPhred()
	if r < 0 {
		r = 0
	} else if size := int(q.AlphabetSize()); r >= size {
		r = size - 1
	}
	q.AssignRank(uint(r))
}

// NewTable creates the table for a quality alphabet of the given size
// whose characters start at offsetChar. Characters below the range
// map to the lowest score, characters above it to the highest.
func NewTable(offsetChar byte, size int) *alphabet.Table {
	if int(offsetChar)+size > 256 {
		log.Panicf("quality alphabet of size %v does not fit above offset %q", size, offsetChar)
	}
	chars := make([]byte, size)
	for r := range chars {
		chars[r] = offsetChar + byte(r)
	}
	var charToRank [256]uint8
	for c := range charToRank {
		switch r := c - int(offsetChar); {
		case r < 0:
			charToRank[c] = 0
		case r >= size:
			charToRank[c] = uint8(size - 1)
		default:
			charToRank[c] = uint8(r)
		}
	}
	return alphabet.NewTable(string(chars), charToRank)
}

// Phred returns the Phred score of q.
func Phred[Q Quality](q Q) int {
	return q.Phred()
}

// FromPhred returns the value of Q for the Phred score p.
func FromPhred[Q Quality, PQ WritableQuality[Q]](p int) Q {
	var q Q
	PQ(&q).AssignPhred(p)
	return q
}
