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
	"os"
)

// DigestHelp is the help string for this command.
const DigestHelp = "\ndigest parameters:\n" +
	"elalphabet digest fasta-file\n" +
	"[--alphabet name]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n" +
	"Prints the BLAKE3 digest of each normalized sequence.\n"

// Digest implements the elalphabet digest command.
func Digest() error {
	var alphabetName, logPath string

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "normalize sequences to the given alphabet before hashing")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 3, DigestHelp)

	input := getFilename(os.Args[2], DigestHelp)

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
		fmt.Fprint(os.Stderr, DigestHelp)
		os.Exit(1)
	}

	records, err := parseFasta(input)
	if err != nil {
		return err
	}
	for i, digest := range a.digest(records) {
		fmt.Printf("%v\t%v\t%v\n", records[i].Name, len(records[i].Seq), digest)
	}
	return nil
}
