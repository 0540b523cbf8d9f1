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
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/exascience/elalphabet/fasta"
	"github.com/exascience/elalphabet/intervals"
	"github.com/exascience/elalphabet/views"
)

// sequenceAlphabet holds the operations the commands need, instantiated
// for one alphabet.
type sequenceAlphabet struct {
	name              string
	size              uint
	normalize         func([]fasta.Record)
	validate          func([]fasta.Record) error
	countInvalid      func([]fasta.Record) int
	invalidPositions  func(seq []byte, limit int) []int
	digest            func([]fasta.Record) []string
	reverseComplement func(seq []byte) []byte
	mask              func(records []fasta.Record, regions map[string][]intervals.Interval, hard bool, c byte) int
	writePacked       func(w io.Writer, records []fasta.Record) error
	readPacked        func(r *bufio.Reader) ([]fasta.Record, error)
	toPackedElfasta   func(records []fasta.Record, filename string)
}

func sequenceAlphabetFor[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](name string) *sequenceAlphabet {
	return &sequenceAlphabet{
		name:             name,
		size:             alphabet.Size[T](),
		normalize:        fasta.NormalizeAll[T, PT],
		validate:         fasta.Validate[T, PT],
		countInvalid:     fasta.CountInvalid[T, PT],
		invalidPositions: views.InvalidPositions[T, PT],
		digest:           fasta.DigestAll[T, PT],
		mask:             fasta.MaskAll[T, PT],
		writePacked: func(w io.Writer, records []fasta.Record) error {
			return fasta.WritePacked[T, PT](w, name, records)
		},
		readPacked: fasta.ReadPackedRecords[T, PT],
	}
}

func nucleotideAlphabetFor[T nucleotide.Nucleotide[T], PT alphabet.WritableAlphabet[T]](name string) *sequenceAlphabet {
	a := sequenceAlphabetFor[T, PT](name)
	a.reverseComplement = fasta.ReverseComplement[T, PT]
	a.toPackedElfasta = func(records []fasta.Record, filename string) {
		fasta.ToPackedElfasta[T, PT](records, name, filename)
	}
	return a
}

var sequenceAlphabets = map[string]*sequenceAlphabet{
	"dna4":       nucleotideAlphabetFor[nucleotide.DNA4]("dna4"),
	"dna5":       nucleotideAlphabetFor[nucleotide.DNA5]("dna5"),
	"dna15":      nucleotideAlphabetFor[nucleotide.DNA15]("dna15"),
	"rna4":       nucleotideAlphabetFor[nucleotide.RNA4]("rna4"),
	"rna5":       nucleotideAlphabetFor[nucleotide.RNA5]("rna5"),
	"rna15":      nucleotideAlphabetFor[nucleotide.RNA15]("rna15"),
	"aa20":       sequenceAlphabetFor[aminoacid.AA20]("aa20"),
	"aa27":       sequenceAlphabetFor[aminoacid.AA27]("aa27"),
	"aa10murphy": sequenceAlphabetFor[aminoacid.AA10Murphy]("aa10murphy"),
}

// alphabetHelp lists the accepted alphabet names for the help strings.
const alphabetHelp = "dna4, dna5, dna15, rna4, rna5, rna15, aa20, aa27, aa10murphy"

func lookupAlphabet(name string) (*sequenceAlphabet, bool) {
	a, ok := sequenceAlphabets[strings.ToLower(name)]
	if !ok {
		log.Printf("Error: Invalid alphabet %v, must be one of %v.\n", name, alphabetHelp)
	}
	return a, ok
}
