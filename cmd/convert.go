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

// ConvertHelp is the help string for this command.
const ConvertHelp = "\nconvert parameters:\n" +
	"elalphabet convert fasta-file output-file\n" +
	"[--alphabet name]\n" +
	"[--reverse-complement]\n" +
	"[--line-width n]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n" +
	"The output is compressed if its name ends in .gz, .bgz or .xz.\n"

// Convert implements the elalphabet convert command.
func Convert() error {
	var (
		alphabetName      string
		reverseComplement bool
		lineWidth         int
		nrOfThreads       int
		timed             bool
		profile, logPath  string
	)

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "normalize sequences to the given alphabet")
	flags.BoolVar(&reverseComplement, "reverse-complement", false, "write the reverse complement of each sequence")
	flags.IntVar(&lineWidth, "line-width", fasta.DefaultLineWidth, "wrap sequences after the given number of characters, 0 for no wrapping")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 4, ConvertHelp)

	input := getFilename(os.Args[2], ConvertHelp)
	output := getFilename(os.Args[3], ConvertHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}
	if !checkThreads(nrOfThreads) {
		sanityChecksFailed = true
	}
	if lineWidth < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid line-width: ", lineWidth)
	}
	a, ok := lookupAlphabet(alphabetName)
	if !ok {
		sanityChecksFailed = true
	} else if reverseComplement && a.reverseComplement == nil {
		sanityChecksFailed = true
		log.Printf("Error: Cannot use --reverse-complement with alphabet %v.\n", a.name)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ConvertHelp)
		os.Exit(1)
	}

	var records []fasta.Record
	err := timedRun(timed, profile, "Reading FASTA file.", 1, func() (err error) {
		records, err = parseFasta(input)
		return err
	})
	if err != nil {
		return err
	}
	err = timedRun(timed, profile, "Converting sequences.", 2, func() error {
		a.normalize(records)
		if reverseComplement {
			for i := range records {
				records[i].Seq = a.reverseComplement(records[i].Seq)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return timedRun(timed, profile, "Writing FASTA file.", 3, func() error {
		return writeAtomically(output, func(tmp string) error {
			return fasta.WriteFile(tmp, records, lineWidth)
		})
	})
}
