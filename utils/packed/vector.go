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

package packed

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/willf/bitset"
)

// Vector stores a sequence of alphabet values in BitsFor(size) bits
// each: 2 bits for DNA4, 5 bits for AA27, no bits at all for a
// single-value alphabet.
//
// The zero Vector is an empty vector ready to use.
type Vector[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]] struct {
	bits   *bitset.BitSet
	length int
}

func width[T alphabet.Semialphabet]() uint {
	return BitsFor(alphabet.Size[T]())
}

// NewVector creates a vector of the given length, holding the value
// with rank 0.
func NewVector[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](length int) *Vector[T, PT] {
	return &Vector[T, PT]{
		bits:   bitset.New(uint(length) * width[T]()),
		length: length,
	}
}

// VectorOf packs the given values.
func VectorOf[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](values []T) *Vector[T, PT] {
	v := NewVector[T, PT](len(values))
	for i, value := range values {
		v.setRank(i, value.Rank())
	}
	return v
}

// Len returns the number of values in v.
func (v *Vector[T, PT]) Len() int {
	return v.length
}

func (v *Vector[T, PT]) rank(index int) uint {
	if v.bits == nil {
		return 0
	}
	w := width[T]()
	base := uint(index) * w
	var r uint
	for b := uint(0); b < w; b++ {
		if v.bits.Test(base + b) {
			r |= 1 << b
		}
	}
	return r
}

func (v *Vector[T, PT]) setRank(index int, r uint) {
	w := width[T]()
	if v.bits == nil {
		v.bits = bitset.New(uint(v.length) * w)
	}
	base := uint(index) * w
	for b := uint(0); b < w; b++ {
		if r&(1<<b) != 0 {
			v.bits.Set(base + b)
		} else {
			v.bits.Clear(base + b)
		}
	}
}

func (v *Vector[T, PT]) checkIndex(index int) {
	if index < 0 || index >= v.length {
		log.Panic("index out of range")
	}
}

// Get returns the value at the given index.
func (v *Vector[T, PT]) Get(index int) T {
	v.checkIndex(index)
	var result T
	PT(&result).AssignRank(v.rank(index))
	return result
}

// Set sets the value at the given index.
func (v *Vector[T, PT]) Set(index int, value T) {
	v.checkIndex(index)
	v.setRank(index, value.Rank())
}

// Append appends the given values.
func (v *Vector[T, PT]) Append(values ...T) {
	for _, value := range values {
		v.length++
		v.setRank(v.length-1, value.Rank())
	}
}

// Expand returns the values as an unpacked slice.
func (v *Vector[T, PT]) Expand() []T {
	result := make([]T, v.length)
	for i := range result {
		PT(&result[i]).AssignRank(v.rank(i))
	}
	return result
}

// Equal reports whether v and w hold the same values.
func (v *Vector[T, PT]) Equal(w *Vector[T, PT]) bool {
	if v.length != w.length {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.rank(i) != w.rank(i) {
			return false
		}
	}
	return true
}

// Count returns the number of occurrences of value in v.
func (v *Vector[T, PT]) Count(value T) int {
	r := value.Rank()
	count := 0
	for i := 0; i < v.length; i++ {
		if v.rank(i) == r {
			count++
		}
	}
	return count
}

// ByteSize returns the number of bytes the packed values occupy.
func (v *Vector[T, PT]) ByteSize() int {
	return int((uint(v.length)*width[T]() + 7) / 8)
}

// WriteTo writes the number of values in v as a uvarint, followed by
// the bits of v in the bitset stream encoding.
func (v *Vector[T, PT]) WriteTo(w io.Writer) (int64, error) {
	var buf [binary.MaxVarintLen64]byte
	n, err := w.Write(buf[:binary.PutUvarint(buf[:], uint64(v.length))])
	if err != nil {
		return int64(n), err
	}
	bits := v.bits
	if bits == nil {
		bits = bitset.New(uint(v.length) * width[T]())
	}
	m, err := bits.WriteTo(w)
	return int64(n) + m, err
}

// ReadVector reads a vector written by WriteTo.
func ReadVector[T alphabet.Semialphabet, PT alphabet.WritableSemialphabet[T]](r *bufio.Reader) (*Vector[T, PT], error) {
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if length > math.MaxInt32 {
		return nil, fmt.Errorf("packed vector length %v out of range", length)
	}
	header, err := r.Peek(8)
	if err != nil {
		return nil, err
	}
	if nbits, maxBits := binary.BigEndian.Uint64(header), length*uint64(width[T]()); nbits > maxBits {
		return nil, fmt.Errorf("packed vector of %v values holds %v bits, at most %v expected", length, nbits, maxBits)
	}
	bits := new(bitset.BitSet)
	if _, err := bits.ReadFrom(r); err != nil {
		return nil, err
	}
	return &Vector[T, PT]{bits: bits, length: int(length)}, nil
}
