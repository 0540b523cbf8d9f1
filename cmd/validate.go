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
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/exascience/elalphabet/intervals"
)

// ValidateHelp is the help string for this command.
const ValidateHelp = "\nvalidate parameters:\n" +
	"elalphabet validate fasta-file\n" +
	"[--alphabet name]\n" +
	"[--max-positions n]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n"

// ErrInvalidSequences is returned by Validate when a sequence
// contains characters the alphabet cannot represent.
var ErrInvalidSequences = errors.New("invalid sequences found")

// Validate implements the elalphabet validate command.
func Validate() error {
	var (
		alphabetName string
		maxPositions int
		logPath      string
	)

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "validate sequences against the given alphabet")
	flags.IntVar(&maxPositions, "max-positions", 10, "report at most this many invalid positions per sequence")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 3, ValidateHelp)

	input := getFilename(os.Args[2], ValidateHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	a, ok := lookupAlphabet(alphabetName)
	if !ok {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ValidateHelp)
		os.Exit(1)
	}

	records, err := parseFasta(input)
	if err != nil {
		return err
	}
	if err := a.validate(records); err == nil {
		log.Printf("All %v sequences are valid %v sequences (%v letters).\n", len(records), a.name, a.size)
		return nil
	}
	for _, record := range records {
		if positions := a.invalidPositions(record.Seq, maxPositions); len(positions) > 0 {
			var runs []string
			for _, run := range intervals.FromPositions(positions) {
				runs = append(runs, fmt.Sprintf("%v-%v %q", run.Start, run.End, record.Seq[run.Start:run.End]))
			}
			log.Printf("Sequence %v: invalid characters at %v.\n", record.Name, strings.Join(runs, ", "))
		}
	}
	log.Printf("%v invalid characters in total for %v (%v letters).\n", a.countInvalid(records), a.name, a.size)
	return ErrInvalidSequences
}
