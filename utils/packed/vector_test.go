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
	"bytes"
	"encoding/binary"
	"math/rand"
	"slices"
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/gap"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
)

func makeRandomAA27(length int) []aminoacid.AA27 {
	result := make([]aminoacid.AA27, length)
	for i := range result {
		result[i] = alphabet.FromRank[aminoacid.AA27](uint(rand.Intn(27)))
	}
	return result
}

func TestVector(t *testing.T) {
	seq := makeRandomAA27(333)
	v := VectorOf(seq)
	if v.Len() != len(seq) {
		t.Fatal("VectorOf length failed")
	}
	if !slices.Equal(v.Expand(), seq) {
		t.Error("VectorOf round trip failed")
	}
	for i, aa := range seq {
		if v.Get(i) != aa {
			t.Errorf("Get %v failed", i)
		}
	}
	if v.ByteSize() != (333*5+7)/8 {
		t.Errorf("ByteSize failed: %v", v.ByteSize())
	}

	x := aminoacid.Terminator()
	v.Set(100, x)
	seq[100] = x
	if v.Get(100) != x || v.Get(99) != seq[99] || v.Get(101) != seq[101] {
		t.Error("Set failed")
	}
	count := 0
	for _, aa := range seq {
		if aa == x {
			count++
		}
	}
	if v.Count(x) != count {
		t.Error("Count failed")
	}
	if !v.Equal(VectorOf(seq)) {
		t.Error("Equal failed")
	}
	if v.Equal(VectorOf(seq[1:])) {
		t.Error("Equal on different lengths failed")
	}
}

func TestZeroVector(t *testing.T) {
	var v Vector[nucleotide.DNA4, *nucleotide.DNA4]
	if v.Len() != 0 || len(v.Expand()) != 0 {
		t.Error("zero Vector is not empty")
	}
	seq := alphabet.FromString[nucleotide.DNA4]("GATTACA")
	v.Append(seq...)
	if !slices.Equal(v.Expand(), seq) {
		t.Error("Append failed")
	}
	if v.ByteSize() != 2 {
		t.Errorf("ByteSize failed: %v", v.ByteSize())
	}
	v.Set(0, seq[1])
	if alphabet.String(v.Expand()) != "AATTACA" {
		t.Error("Set after Append failed")
	}
}

func TestSingleValueVector(t *testing.T) {
	v := NewVector[gap.Gap](5)
	if v.ByteSize() != 0 {
		t.Error("single-value alphabet uses storage")
	}
	v.Append(gap.Gap{})
	if v.Len() != 6 || v.Get(5) != (gap.Gap{}) || v.Count(gap.Gap{}) != 6 {
		t.Error("single-value Vector failed")
	}
}

func TestVectorPanics(t *testing.T) {
	v := NewVector[nucleotide.DNA4](2)
	expectPanic(t, "Get 2", func() { v.Get(2) })
	expectPanic(t, "Set -1", func() { v.Set(-1, nucleotide.DNA4{}) })
}

func TestVectorWriteTo(t *testing.T) {
	seq := makeRandomAA27(1000)
	var buf bytes.Buffer
	var empty Vector[aminoacid.AA27, *aminoacid.AA27]
	for _, v := range []*Vector[aminoacid.AA27, *aminoacid.AA27]{VectorOf(seq), &empty, VectorOf(seq[:1])} {
		if _, err := v.WriteTo(&buf); err != nil {
			t.Fatal(err)
		}
	}
	r := bufio.NewReader(&buf)
	for _, expected := range [][]aminoacid.AA27{seq, {}, seq[:1]} {
		v, err := ReadVector[aminoacid.AA27](r)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(v.Expand(), expected) {
			t.Errorf("ReadVector of %v values failed", len(expected))
		}
	}
	if _, err := ReadVector[aminoacid.AA27](r); err == nil {
		t.Error("ReadVector past the end succeeded")
	}
}

func TestVectorWriteToGrown(t *testing.T) {
	var v Vector[nucleotide.DNA4, *nucleotide.DNA4]
	v.Append(alphabet.FromString[nucleotide.DNA4]("GATTACA")...)
	var buf bytes.Buffer
	if _, err := v.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	w, err := ReadVector[nucleotide.DNA4](bufio.NewReader(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(w) {
		t.Errorf("ReadVector failed: %v", alphabet.String(w.Expand()))
	}
}

func TestReadVectorErrors(t *testing.T) {
	var buf bytes.Buffer
	if _, err := VectorOf(alphabet.FromString[nucleotide.DNA4]("ACGT")).WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	tooManyBits := slices.Clone(data)
	binary.BigEndian.PutUint64(tooManyBits[1:9], 1<<40)
	if _, err := ReadVector[nucleotide.DNA4](bufio.NewReader(bytes.NewReader(tooManyBits))); err == nil {
		t.Error("ReadVector accepted a bit count larger than the length allows")
	}

	if _, err := ReadVector[nucleotide.DNA4](bufio.NewReader(bytes.NewReader(data[:len(data)-1]))); err == nil {
		t.Error("ReadVector accepted a truncated vector")
	}

	huge := binary.AppendUvarint(nil, 1<<40)
	if _, err := ReadVector[nucleotide.DNA4](bufio.NewReader(bytes.NewReader(huge))); err == nil {
		t.Error("ReadVector accepted a huge length")
	}
}
