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
	"bufio"
	"bytes"
	"path/filepath"
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packedRoundTrip[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](t *testing.T, name string, records []Record) []Record {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WritePacked[T, PT](&buf, name, records))
	r := bufio.NewReader(&buf)
	header, err := ReadPackedHeader(r)
	require.NoError(t, err)
	assert.Equal(t, name, header)
	result, err := ReadPackedRecords[T, PT](r)
	require.NoError(t, err)
	return result
}

func TestPackedDNA4(t *testing.T) {
	rs := makeRecords("ACGTacgtN", "", "GATTACA")
	rs[0].Description = "first record"
	result := packedRoundTrip[nucleotide.DNA4](t, "dna4", rs)
	require.Len(t, result, 3)
	assert.Equal(t, "a", result[0].Name)
	assert.Equal(t, "first record", result[0].Description)
	assert.Equal(t, "ACGTACGTA", string(result[0].Seq))
	assert.Empty(t, result[1].Seq)
	assert.Equal(t, "GATTACA", string(result[2].Seq))
}

func TestPackedAA27(t *testing.T) {
	rs := makeRecords("MKV*LLX", "ACDEFGHIKLMNPQRSTVWYBJOUXZ*")
	result := packedRoundTrip[aminoacid.AA27](t, "aa27", rs)
	require.Len(t, result, 2)
	for i, record := range rs {
		assert.Equal(t, string(record.Seq), string(result[i].Seq))
	}
}

func TestPackUnpack(t *testing.T) {
	rs := makeRecords("ACGTN", "nnacg")
	vectors := Pack[nucleotide.DNA5](rs)
	require.Len(t, vectors, 2)
	assert.Equal(t, 5, vectors[0].Len())
	assert.Equal(t, 2, vectors[0].ByteSize())
	assert.Equal(t, [][]byte{[]byte("ACGTN"), []byte("NNACG")}, Unpack(vectors))
}

func TestReadPackedErrors(t *testing.T) {
	_, err := ReadPackedHeader(bufio.NewReader(bytes.NewReader([]byte(">chr1\nACGT\n"))))
	assert.Error(t, err)
	_, err = ReadPackedHeader(bufio.NewReader(bytes.NewReader(PackedMagic)))
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePacked[nucleotide.DNA5](&buf, "dna5", makeRecords("ACGTACGTACGT", "TTTT")))
	data := buf.Bytes()
	for _, n := range []int{len(data) - 1, len(data) / 2, len(PackedMagic) + len("dna5\n") + 1} {
		r := bufio.NewReader(bytes.NewReader(data[:n]))
		_, err := ReadPackedHeader(r)
		require.NoError(t, err)
		_, err = ReadPackedRecords[nucleotide.DNA5](r)
		assert.Error(t, err, n)
	}
}

func TestPackedElfasta(t *testing.T) {
	rs := makeRecords("ACGTRYKMacgtN", "", "T")
	filename := filepath.Join(t.TempDir(), "sample.elfasta")
	ToPackedElfasta[nucleotide.DNA15](rs, "dna15", filename)

	mapped := OpenElfasta(filename)
	assert.Equal(t, "dna15", mapped.Alphabet())
	assert.True(t, mapped.Packed())
	require.Len(t, mapped.Records(), 3)
	for i, record := range mapped.Records() {
		assert.Equal(t, rs[i].Name, record.Name)
		assert.Nil(t, record.Seq)
	}

	nibbles, ok := ElfastaNibbles[nucleotide.DNA15](mapped, "a")
	require.True(t, ok)
	assert.Equal(t, "ACGTRYKMACGTN", alphabet.String(nibbles.Expand()))
	nibbles, ok = ElfastaNibbles[nucleotide.DNA15](mapped, "b")
	require.True(t, ok)
	assert.Equal(t, 0, nibbles.Len())
	nibbles, ok = ElfastaNibbles[nucleotide.DNA15](mapped, "c")
	require.True(t, ok)
	assert.Equal(t, byte('T'), nibbles.Get(0).Char())
	_, ok = ElfastaNibbles[nucleotide.DNA15](mapped, "z")
	assert.False(t, ok)
	mapped.Close()
}

func TestElfastaNotPacked(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sample.elfasta")
	ToElfasta(makeRecords("ACGT"), "dna5", filename)
	mapped := OpenElfasta(filename)
	assert.False(t, mapped.Packed())
	_, ok := ElfastaNibbles[nucleotide.DNA5](mapped, "a")
	assert.False(t, ok)
	mapped.Close()
}
