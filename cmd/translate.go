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
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/exascience/elalphabet/fasta"
	"github.com/exascience/elalphabet/views"
)

// TranslateHelp is the help string for this command.
const TranslateHelp = "\ntranslate parameters:\n" +
	"elalphabet translate fasta-file output-file\n" +
	"[--frames fwd|rev|fwdrev0|fwdrev1|fwdrev2|six|FwdFrame0|...|RevFrame2]\n" +
	"[--alphabet dna|rna]\n" +
	"[--line-width n]\n" +
	"[--nr-of-threads n]\n" +
	"[--log-path path]\n"

func translateRecords[N nucleotide.Nucleotide[N], PN alphabet.WritableAlphabet[N]](records []fasta.Record, frames views.TranslationFrames) []fasta.Record {
	singleFrames := frames.Frames()
	seqs := fasta.Encode[N, PN](records)
	result := make([]fasta.Record, 0, len(records)*len(singleFrames))
	for i, seq := range seqs {
		for j, peptide := range views.Translate(seq, frames) {
			name := fmt.Sprintf("%v_%v", records[i].Name, singleFrames[j])
			result = append(result, fasta.Decode[aminoacid.AA27](name, peptide))
		}
	}
	return result
}

// Translate implements the elalphabet translate command.
func Translate() error {
	var (
		framesName, alphabetName string
		lineWidth, nrOfThreads   int
		logPath                  string
	)

	var flags flag.FlagSet
	flags.StringVar(&framesName, "frames", "fwdrev0", "the reading frames to translate")
	flags.StringVar(&alphabetName, "alphabet", "dna", "read the input as dna or rna")
	flags.IntVar(&lineWidth, "line-width", fasta.DefaultLineWidth, "wrap sequences after the given number of characters, 0 for no wrapping")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 4, TranslateHelp)

	input := getFilename(os.Args[2], TranslateHelp)
	output := getFilename(os.Args[3], TranslateHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if !checkThreads(nrOfThreads) {
		sanityChecksFailed = true
	}
	frames, ok := views.ParseTranslationFrames(framesName)
	if !ok {
		sanityChecksFailed = true
		log.Println("Error: Invalid frames: ", framesName)
	}
	switch alphabetName {
	case "dna", "rna":
	default:
		sanityChecksFailed = true
		log.Println("Error: Invalid alphabet, must be dna or rna: ", alphabetName)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, TranslateHelp)
		os.Exit(1)
	}

	records, err := parseFasta(input)
	if err != nil {
		return err
	}
	var peptides []fasta.Record
	if alphabetName == "rna" {
		peptides = translateRecords[nucleotide.RNA15](records, frames)
	} else {
		peptides = translateRecords[nucleotide.DNA15](records, frames)
	}
	return writeAtomically(output, func(tmp string) error {
		return fasta.WriteFile(tmp, peptides, lineWidth)
	})
}
