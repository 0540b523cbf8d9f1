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
	"github.com/exascience/elalphabet/intervals"
)

// MaskHelp is the help string for this command.
const MaskHelp = "\nmask parameters:\n" +
	"elalphabet mask fasta-file bed-file output-file\n" +
	"[--alphabet name]\n" +
	"[--hard]\n" +
	"[--mask-char c]\n" +
	"[--line-width n]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n" +
	"Soft masking writes the regions of the BED file in lower case, hard\n" +
	"masking replaces them by the mask character (default N).\n"

// Mask implements the elalphabet mask command.
func Mask() error {
	var (
		alphabetName     string
		hard             bool
		maskChar         string
		lineWidth        int
		nrOfThreads      int
		timed            bool
		profile, logPath string
	)

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "normalize sequences to the given alphabet")
	flags.BoolVar(&hard, "hard", false, "replace masked positions instead of writing them in lower case")
	flags.StringVar(&maskChar, "mask-char", "N", "character for hard-masked positions")
	flags.IntVar(&lineWidth, "line-width", fasta.DefaultLineWidth, "wrap sequences after the given number of characters, 0 for no wrapping")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 5, MaskHelp)

	input := getFilename(os.Args[2], MaskHelp)
	bedFile := getFilename(os.Args[3], MaskHelp)
	output := getFilename(os.Args[4], MaskHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkExist("", bedFile) {
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
	if len(maskChar) != 1 {
		sanityChecksFailed = true
		log.Println("Error: --mask-char must be a single character: ", maskChar)
	}
	a, ok := lookupAlphabet(alphabetName)
	if !ok {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, MaskHelp)
		os.Exit(1)
	}

	var (
		records []fasta.Record
		regions map[string][]intervals.Interval
	)
	err := timedRun(timed, profile, "Reading FASTA and BED files.", 1, func() (err error) {
		if records, err = parseFasta(input); err != nil {
			return err
		}
		regions, err = intervals.FromBedFile(bedFile)
		return err
	})
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(records))
	for _, name := range fasta.Names(records) {
		names[name] = true
	}
	for chrom := range regions {
		if !names[chrom] {
			log.Printf("Warning: BED file %v has regions for %v, which is not in %v.\n", bedFile, chrom, input)
		}
	}
	err = timedRun(timed, profile, "Masking sequences.", 2, func() error {
		n := a.mask(records, regions, hard, maskChar[0])
		log.Printf("Masked %v positions.\n", n)
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
