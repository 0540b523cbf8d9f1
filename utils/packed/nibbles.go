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

// Package packed provides bit-compressed sequences of alphabet values.
//
// Both containers store ranks only. Nibbles uses 4 bits per value and
// supports slicing without copying, like a Go slice. Vector uses the
// smallest number of bits the alphabet needs.
package packed

import (
	"fmt"
	"log"
	"math/bits"

	"github.com/exascience/elalphabet/alphabet"
	"golang.org/x/exp/constraints"
)

// BitsFor returns the number of bits needed to store the ranks of an
// alphabet of the given size. An alphabet of size 1 needs no bits.
func BitsFor[N constraints.Unsigned](size N) uint {
	if size == 0 {
		log.Panic("alphabet size 0")
	}
	return uint(bits.Len64(uint64(size - 1)))
}

// Nibbles is a slice-like data structure for storing sequences of
// alphabet values with at most 16 ranks, two per byte.
type Nibbles[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]] struct {
	info  int
	bytes []byte
}

func checkNibbleAlphabet[T alphabet.Semialphabet]() {
	if size := alphabet.Size[T](); size > 16 {
		log.Panicf("alphabet of size %v does not fit in a nibble", size)
	}
}

// Len returns the number of values stored in these nibbles.
func (n Nibbles[T, PT]) Len() int {
	return n.info >> 1
}

// Cap returns the capacity of these nibbles.
func (n Nibbles[T, PT]) Cap() int {
	return cap(n.bytes) << 1
}

func (n Nibbles[T, PT]) offset() int {
	return n.info & 1
}

// MakeNibbles creates nibbles of the given length, holding the value
// with rank 0.
func MakeNibbles[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](length int) Nibbles[T, PT] {
	checkNibbleAlphabet[T]()
	return Nibbles[T, PT]{
		info:  length << 1,
		bytes: make([]byte, (length+1)>>1),
	}
}

// MakeNibbles2 creates nibbles of the given length and capacity.
func MakeNibbles2[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](length, capacity int) Nibbles[T, PT] {
	checkNibbleAlphabet[T]()
	return Nibbles[T, PT]{
		info:  length << 1,
		bytes: make([]byte, (length+1)>>1, (capacity+1)>>1),
	}
}

// NibblesOf packs the given values.
func NibblesOf[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](values []T) Nibbles[T, PT] {
	n := MakeNibbles[T, PT](len(values))
	for i, v := range values {
		n.setRank(i, byte(v.Rank()))
	}
	return n
}

// ReflectNibbles creates nibbles of the given length, offset, and raw
// byte slice.
func ReflectNibbles[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](length, offset int, bytes []byte) Nibbles[T, PT] {
	checkNibbleAlphabet[T]()
	return Nibbles[T, PT]{
		info:  (length << 1) | (offset & 1),
		bytes: bytes,
	}
}

// ReflectValue returns the underlying representation of the nibbles.
func (n Nibbles[T, PT]) ReflectValue() (length, offset int, bytes []byte) {
	return n.Len(), n.offset(), n.bytes
}

func (n Nibbles[T, PT]) rank(index int) byte {
	index += n.offset()
	return 0xF & (n.bytes[index>>1] >> uint((1^(index&1))<<2))
}

func (n Nibbles[T, PT]) setRank(index int, r byte) {
	index += n.offset()
	i := index >> 1
	bit := index & 1
	n.bytes[i] = ((0xF << uint(bit<<2)) & n.bytes[i]) | ((0xF & r) << uint((1^bit)<<2))
}

// Expand returns the values as an unpacked slice.
func (n Nibbles[T, PT]) Expand() []T {
	result := make([]T, n.Len())
	for k := range result {
		PT(&result[k]).AssignRank(uint(n.rank(k)))
	}
	return result
}

// Get returns the value at the given index.
func (n Nibbles[T, PT]) Get(index int) T {
	if index < 0 || index >= n.Len() {
		log.Panic("index out of range")
	}
	var v T
	PT(&v).AssignRank(uint(n.rank(index)))
	return v
}

// Set sets the value at the given index.
func (n Nibbles[T, PT]) Set(index int, value T) {
	if index < 0 || index >= n.Len() {
		log.Panic("index out of range")
	}
	n.setRank(index, byte(value.Rank()))
}

// String returns the ranks of the nibbles.
func (n Nibbles[T, PT]) String() string {
	return fmt.Sprint(alphabet.Ranks(n.Expand()))
}

// Slice returns a subsequence of the given nibbles, sharing storage.
func (n Nibbles[T, PT]) Slice(low, high int) Nibbles[T, PT] {
	offset := n.offset()
	return Nibbles[T, PT]{
		info:  ((high - low) << 1) | (offset ^ (low & 1)),
		bytes: n.bytes[(low+offset)>>1 : (high+offset+1)>>1],
	}
}

// Append appends the given value.
func (n Nibbles[T, PT]) Append(value T) Nibbles[T, PT] {
	length := n.Len()
	offset := n.offset()
	r := byte(value.Rank())
	if index := length + offset; index&1 == 1 {
		i := index >> 1
		n.bytes[i] = ((0xF << 4) & n.bytes[i]) | (0xF & r)
		return Nibbles[T, PT]{
			info:  ((length + 1) << 1) | offset,
			bytes: n.bytes,
		}
	}
	return Nibbles[T, PT]{
		info:  ((length + 1) << 1) | offset,
		bytes: append(n.bytes, (0xF&r)<<4),
	}
}

// AppendSlice appends the given nibbles.
func (n Nibbles[T, PT]) AppendSlice(m Nibbles[T, PT]) Nibbles[T, PT] {
	mLen := m.Len()
	if mLen == 0 {
		return n
	}
	length := n.Len()
	offset := n.offset()
	if (length+offset)&1 == 0 && m.offset() == 0 {
		return Nibbles[T, PT]{
			info:  ((length + mLen) << 1) | offset,
			bytes: append(n.bytes, m.bytes[:(mLen+1)>>1]...),
		}
	}
	for i := 0; i < mLen; i++ {
		n = n.Append(m.Get(i))
	}
	return n
}

// Copy copies values from m into n, and returns the number of values
// copied, which is the minimum of n.Len() and m.Len().
func (n Nibbles[T, PT]) Copy(m Nibbles[T, PT]) int {
	copyLen := min(n.Len(), m.Len())
	if n.offset() == 0 && m.offset() == 0 {
		index := copyLen >> 1
		copy(n.bytes[:index], m.bytes[:index])
		if copyLen&1 == 1 {
			n.bytes[index] = (0xF & n.bytes[index]) | ((0xF << 4) & m.bytes[index])
		}
		return copyLen
	}
	for i := 0; i < copyLen; i++ {
		n.setRank(i, m.rank(i))
	}
	return copyLen
}
