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
	"errors"
	"path/filepath"
	"testing"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/exascience/elalphabet/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(seqs ...string) []Record {
	result := make([]Record, len(seqs))
	for i, seq := range seqs {
		result[i] = Record{Name: string(rune('a' + i)), Seq: []byte(seq)}
	}
	return result
}

func TestNormalize(t *testing.T) {
	seq := []byte("acgtRYn")
	Normalize[nucleotide.DNA5](seq)
	assert.Equal(t, "ACGTNNN", string(seq))

	seq = []byte("acgtRYn")
	Normalize[nucleotide.DNA15](seq)
	assert.Equal(t, "ACGTRYN", string(seq))

	rs := makeRecords("acgu", "xyz*")
	NormalizeAll[aminoacid.AA27](rs)
	assert.Equal(t, "ACGU", string(rs[0].Seq))
	assert.Equal(t, "XYZ*", string(rs[1].Seq))
}

func TestEncodeDecode(t *testing.T) {
	rs := makeRecords("GATTACA", "", "acgn")
	encoded := Encode[nucleotide.DNA5](rs)
	require.Len(t, encoded, 3)
	assert.Equal(t, []uint{2, 0, 3, 3, 0, 1, 0}, alphabet.Ranks(encoded[0]))
	assert.Empty(t, encoded[1])
	assert.Equal(t, Record{Name: "x", Seq: []byte("ACGN")}, Decode("x", encoded[2]))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate[nucleotide.DNA4](makeRecords("ACGT", "", "TTTT")))

	err := Validate[nucleotide.DNA4](makeRecords("ACGT", "ACXT", "NNN"))
	require.Error(t, err)
	var recordErr *RecordError
	require.True(t, errors.As(err, &recordErr))
	assert.Equal(t, "b", recordErr.Record)
	assert.Equal(t, 2, recordErr.Err.Position)
	assert.Contains(t, err.Error(), "record c")

	var charErr *views.InvalidCharError
	require.True(t, errors.As(recordErr, &charErr))
	assert.Equal(t, byte('X'), charErr.Char)
}

func TestCountInvalid(t *testing.T) {
	assert.Equal(t, 0, CountInvalid[nucleotide.DNA15](makeRecords("ACGTN", "RYKM")))
	assert.Equal(t, 5, CountInvalid[nucleotide.DNA4](makeRecords("ACGN", "acgt", "")))
	assert.Equal(t, 0, CountInvalid[nucleotide.DNA4](nil))
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "NACGTT", string(ReverseComplement[nucleotide.DNA5]([]byte("AACGTN"))))
	assert.Equal(t, "CGTT", string(ReverseComplement[nucleotide.DNA5]([]byte("aacg"))))
	assert.Equal(t, "YNR", string(ReverseComplement[nucleotide.DNA15]([]byte("YNR"))))
	assert.Equal(t, "ACGU", string(ReverseComplement[nucleotide.RNA4]([]byte("ACGU"))))
	assert.Empty(t, ReverseComplement[nucleotide.DNA4](nil))
}

func TestDigest(t *testing.T) {
	d := Digest[nucleotide.DNA5]([]byte("ACGTN"))
	assert.Len(t, d, 64)
	assert.Equal(t, d, Digest[nucleotide.DNA5]([]byte("acgtn")))
	assert.Equal(t, d, Digest[nucleotide.DNA5]([]byte("acgtR")))
	assert.NotEqual(t, d, Digest[nucleotide.DNA5]([]byte("ACGTA")))
	assert.NotEqual(t, d, Digest[nucleotide.DNA15]([]byte("ACGTR")))

	seq := []byte("acgt")
	Digest[nucleotide.DNA4](seq)
	assert.Equal(t, "acgt", string(seq))

	rs := makeRecords("ACGTN", "acgtn", "A")
	digests := DigestAll[nucleotide.DNA5](rs)
	assert.Equal(t, []string{d, d, Digest[nucleotide.DNA5]([]byte("A"))}, digests)
}

func TestElfasta(t *testing.T) {
	rs := makeRecords("ACGTACGT", "", "NNNNNNNNNNNN", "T")
	filename := filepath.Join(t.TempDir(), "sample.elfasta")
	ToElfasta(rs, "dna5", filename)

	mapped := OpenElfasta(filename)
	assert.Equal(t, "dna5", mapped.Alphabet())
	mappedRecords := mapped.Records()
	require.Len(t, mappedRecords, len(rs))
	for i, record := range rs {
		assert.Equal(t, record.Name, mappedRecords[i].Name)
		assert.Equal(t, string(record.Seq), string(mappedRecords[i].Seq))
	}
	assert.Equal(t, "NNNNNNNNNNNN", string(mapped.Seq("c")))
	assert.Nil(t, mapped.Seq("z"))
	mapped.Close()
}
