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
Package composite combines alphabets into larger ones.

A tuple composite holds one value of each component alphabet and
encodes them in a single mixed-radix rank. A variant composite holds
exactly one value of one of its alternatives, with the ranks of the
alternatives laid out one after the other.

Composites store nothing but their rank, so they can be compared with
== and used in packed containers like any other alphabet.
*/
package composite

import (
	"log"

	"github.com/exascience/elalphabet/alphabet"
	"golang.org/x/exp/constraints"
)

// CumulativeSizes returns the mixed-radix place values for the given
// component sizes: cum[0] is 1 and cum[i] is the product of all
// sizes before i.
func CumulativeSizes(sizes ...uint) []uint {
	cum := make([]uint, len(sizes))
	product := uint(1)
	for i, size := range sizes {
		cum[i] = product
		product *= size
	}
	return cum
}

// CheckWidth panics if the product of sizes does not fit in a rank of
// type R. The check is skipped in unchecked builds.
func CheckWidth[R constraints.Unsigned](sizes ...uint) {
	if !alphabet.Checked() {
		return
	}
	product := uint64(1)
	for _, size := range sizes {
		product *= uint64(size)
	}
	if product == 0 || product-1 > uint64(^R(0)) {
		log.Panicf("composite of sizes %v does not fit in %T", sizes, R(0))
	}
}

// Encode combines the component ranks into a single mixed-radix rank.
// Each rank must be smaller than the corresponding size.
func Encode[R constraints.Unsigned](sizes, ranks []uint) R {
	var rank, cum uint = 0, 1
	for i, size := range sizes {
		alphabet.CheckRank(ranks[i], size)
		rank += ranks[i] * cum
		cum *= size
	}
	return R(rank)
}

// Decode extracts the rank of component i from a mixed-radix rank.
func Decode[R constraints.Unsigned](rank R, sizes []uint, i int) uint {
	cum := uint(1)
	for _, size := range sizes[:i] {
		cum *= size
	}
	return (uint(rank) / cum) % sizes[i]
}

// reencode replaces the rank of component i in a mixed-radix rank.
func reencode[R constraints.Unsigned](rank R, sizes []uint, i int, r uint) R {
	alphabet.CheckRank(r, sizes[i])
	cum := uint(1)
	for _, size := range sizes[:i] {
		cum *= size
	}
	old := (uint(rank) / cum) % sizes[i]
	return R(uint(rank) - old*cum + r*cum)
}

func checkComponent(i, n int) {
	if i < 0 || i >= n {
		log.Panicf("component index %v out of range for composite of %v components", i, n)
	}
}
