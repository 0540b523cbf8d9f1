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

	"github.com/exascience/elalphabet/fasta"
)

// FastaToElfastaHelp is the help string for this command.
const FastaToElfastaHelp = "\nfasta-to-elfasta parameters:\n" +
	"elalphabet fasta-to-elfasta fasta-file elfasta-file\n" +
	"[--alphabet name]\n" +
	"[--packed]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n" +
	"--packed stores two values per byte and needs a nucleotide alphabet.\n"

// FastaToElfasta implements the elalphabet fasta-to-elfasta command.
func FastaToElfasta() error {
	var (
		alphabetName, logPath string
		packed                bool
	)

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "normalize sequences to the given alphabet")
	flags.BoolVar(&packed, "packed", false, "pack sequences as nibbles")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 4, FastaToElfastaHelp)

	input := getFilename(os.Args[2], FastaToElfastaHelp)
	output := getFilename(os.Args[3], FastaToElfastaHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	a, ok := lookupAlphabet(alphabetName)
	if !ok {
		sanityChecksFailed = true
	} else if packed && a.toPackedElfasta == nil {
		sanityChecksFailed = true
		log.Printf("Error: Cannot use --packed with alphabet %v.\n", a.name)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, FastaToElfastaHelp)
		os.Exit(1)
	}

	records, err := parseFasta(input)
	if err != nil {
		return err
	}
	if packed {
		return writeAtomically(output, func(tmp string) error {
			a.toPackedElfasta(records, tmp)
			return nil
		})
	}
	a.normalize(records)
	return writeAtomically(output, func(tmp string) error {
		fasta.ToElfasta(records, a.name, tmp)
		return nil
	})
}
