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

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exascience/elalphabet/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceAlphabets(t *testing.T) {
	for name, a := range sequenceAlphabets {
		assert.Equal(t, name, a.name)
		assert.Contains(t, alphabetHelp, name)
		isNucleotide := strings.HasPrefix(name, "dna") || strings.HasPrefix(name, "rna")
		assert.Equal(t, isNucleotide, a.reverseComplement != nil, name)
		assert.Equal(t, isNucleotide, a.toPackedElfasta != nil, name)
	}
	assert.Len(t, strings.Split(alphabetHelp, ", "), len(sequenceAlphabets))

	a, ok := lookupAlphabet("DNA5")
	require.True(t, ok)
	assert.Equal(t, uint(5), a.size)
	_, ok = lookupAlphabet("dna6")
	assert.False(t, ok)

	records := []fasta.Record{{Name: "x", Seq: []byte("acgtry")}}
	a.normalize(records)
	assert.Equal(t, "ACGTNN", string(records[0].Seq))
	assert.Equal(t, "NNACGT", string(a.reverseComplement(records[0].Seq)))
	assert.NoError(t, a.validate(records))
	assert.Equal(t, 0, a.countInvalid(records))
	assert.Equal(t, []int{4, 5}, sequenceAlphabets["dna4"].invalidPositions(records[0].Seq, -1))
}

func TestTempFilename(t *testing.T) {
	tmp := tempFilename(filepath.Join("out", "result.fa.gz"))
	assert.Equal(t, "out", filepath.Dir(tmp))
	assert.True(t, strings.HasSuffix(tmp, "-result.fa.gz"))
	assert.NotEqual(t, tmp, tempFilename(filepath.Join("out", "result.fa.gz")))
}

func TestWriteAtomically(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "result.fa")
	require.NoError(t, writeAtomically(filename, func(tmp string) error {
		return os.WriteFile(tmp, []byte(">x\nACGT\n"), 0o644)
	}))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, ">x\nACGT\n", string(data))

	failure := errors.New("failed")
	err = writeAtomically(filename, func(tmp string) error {
		_ = os.WriteFile(tmp, []byte("partial"), 0o644)
		return failure
	})
	assert.ErrorIs(t, err, failure)
	data, err = os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, ">x\nACGT\n", string(data))
	entries, err := os.ReadDir(filepath.Dir(filename))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseFasta(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sample.fa")
	require.NoError(t, os.WriteFile(filename, []byte(">chr1\nACGT\nAC\n>chr2\nGG\n"), 0o644))
	records, err := parseFasta(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"chr1", "chr2"}, fasta.Names(records))

	require.NoError(t, os.WriteFile(filename+".fai", []byte("chr1\t6\t6\t4\t5\nchr2\t2\t20\t2\t3\n"), 0o644))
	records, err = parseFasta(filename)
	require.NoError(t, err)
	assert.Equal(t, 6, cap(records[0].Seq))

	require.NoError(t, os.WriteFile(filename+".fai", []byte("chr1\t4\t6\t4\t5\nchr2\t2\t20\t2\t3\n"), 0o644))
	_, err = parseFasta(filename)
	assert.ErrorContains(t, err, "chr1")
}

func TestPackedFiles(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "sample.elpack")
	records := []fasta.Record{{Name: "x", Description: "first", Seq: []byte("MKVLA*")}, {Name: "y", Seq: []byte("WW")}}
	a := sequenceAlphabets["aa27"]
	f, err := os.Create(filename)
	require.NoError(t, err)
	require.NoError(t, a.writePacked(f, records))
	require.NoError(t, f.Close())

	unpacked, err := unpackFile(filename)
	require.NoError(t, err)
	assert.Equal(t, records, unpacked)

	require.NoError(t, os.WriteFile(filename, []byte(">x\nACGT\n"), 0o644))
	_, err = unpackFile(filename)
	assert.ErrorContains(t, err, "sample.elpack")

	elfasta := filepath.Join(dir, "sample.elfasta")
	sequenceAlphabets["dna4"].toPackedElfasta([]fasta.Record{{Name: "x", Seq: []byte("GATTACA")}}, elfasta)
	mapped := fasta.OpenElfasta(elfasta)
	assert.Equal(t, "dna4", mapped.Alphabet())
	assert.True(t, mapped.Packed())
	mapped.Close()
}
