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

package fasta

import (
	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/mask"
	"github.com/exascience/elalphabet/intervals"
	"github.com/exascience/pargo/parallel"
)

// SoftMask normalizes seq in place to T, writing the positions covered
// by regions and the positions that were already lower case in lower
// case. regions must be flattened; positions beyond the end of seq are
// ignored.
func SoftMask[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](seq []byte, regions []intervals.Interval) {
	var v mask.Masked[T, PT]
	for i, c := range seq {
		v.AssignChar(c)
		seq[i] = v.Char()
	}
	for _, region := range intervals.Clip(regions, int32(len(seq))) {
		for i := region.Start; i < region.End; i++ {
			v.AssignChar(seq[i])
			v.SetSecond(mask.On)
			seq[i] = v.Char()
		}
	}
}

// HardMask replaces the positions of seq covered by regions with c.
// regions must be flattened.
func HardMask(seq []byte, regions []intervals.Interval, c byte) {
	for _, region := range intervals.Clip(regions, int32(len(seq))) {
		for i := region.Start; i < region.End; i++ {
			seq[i] = c
		}
	}
}

// MaskAll masks the records in parallel with the regions for their
// names, normalizing soft-masked sequences to T. If hard is set, the
// covered positions are replaced by the canonical character of c in T
// instead. It returns the number of masked positions.
func MaskAll[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record, regions map[string][]intervals.Interval, hard bool, c byte) int {
	hardChar := alphabet.FromChar[T, PT](c).Char()
	return parallel.RangeReduceInt(0, len(records), 0, func(low, high int) int {
		count := 0
		for i := low; i < high; i++ {
			seq := records[i].Seq
			r := intervals.Clip(regions[records[i].Name], int32(len(seq)))
			if hard {
				Normalize[T, PT](seq)
				HardMask(seq, r, hardChar)
			} else {
				SoftMask[T, PT](seq, r)
			}
			count += intervals.Coverage(r)
		}
		return count
	}, func(x, y int) int {
		return x + y
	})
}
