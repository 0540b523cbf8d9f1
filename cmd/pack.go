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
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/exascience/elalphabet/fasta"
)

// PackHelp is the help string for this command.
const PackHelp = "\npack parameters:\n" +
	"elalphabet pack fasta-file elpack-file\n" +
	"[--alphabet name]\n" +
	"[--log-path path]\n" +
	"Alphabets: " + alphabetHelp + " (default dna5).\n" +
	"Stores each sequence in as few bits per value as the alphabet needs.\n"

// UnpackHelp is the help string for this command.
const UnpackHelp = "\nunpack parameters:\n" +
	"elalphabet unpack elpack-file fasta-file\n" +
	"[--line-width n]\n" +
	"[--log-path path]\n" +
	"The output is compressed if its name ends in .gz, .bgz or .xz.\n"

// Pack implements the elalphabet pack command.
func Pack() error {
	var alphabetName, logPath string

	var flags flag.FlagSet
	flags.StringVar(&alphabetName, "alphabet", "dna5", "pack sequences in the given alphabet")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 4, PackHelp)

	input := getFilename(os.Args[2], PackHelp)
	output := getFilename(os.Args[3], PackHelp)

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
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, PackHelp)
		os.Exit(1)
	}

	records, err := parseFasta(input)
	if err != nil {
		return err
	}
	if invalid := a.countInvalid(records); invalid > 0 {
		log.Printf("Warning: %v characters are not %v characters and are packed as converted.\n", invalid, a.name)
	}
	return writeAtomically(output, func(tmp string) (err error) {
		f, err := os.Create(tmp)
		if err != nil {
			return err
		}
		defer func() {
			if nerr := f.Close(); err == nil {
				err = nerr
			}
		}()
		return a.writePacked(f, records)
	})
}

// Unpack implements the elalphabet unpack command.
func Unpack() error {
	var (
		lineWidth int
		logPath   string
	)

	var flags flag.FlagSet
	flags.IntVar(&lineWidth, "line-width", fasta.DefaultLineWidth, "wrap sequences after the given number of characters, 0 for no wrapping")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 4, UnpackHelp)

	input := getFilename(os.Args[2], UnpackHelp)
	output := getFilename(os.Args[3], UnpackHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if lineWidth < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid line-width: ", lineWidth)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, UnpackHelp)
		os.Exit(1)
	}

	records, err := unpackFile(input)
	if err != nil {
		return err
	}
	return writeAtomically(output, func(tmp string) error {
		return fasta.WriteFile(tmp, records, lineWidth)
	})
}

// unpackFile reads an .elpack file in the alphabet named in its header.
func unpackFile(filename string) (records []fasta.Record, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	r := bufio.NewReader(f)
	name, err := fasta.ReadPackedHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	a, ok := sequenceAlphabets[name]
	if !ok {
		return nil, fmt.Errorf("%v: unknown alphabet %v", filename, name)
	}
	if records, err = a.readPacked(r); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	log.Printf("Unpacked %v %v sequences.\n", len(records), a.name)
	return records, nil
}
