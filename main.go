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

// elalphabet converts, validates, masks, translates, packs and digests
// FASTA files using the sequence alphabets of the alphabet package and
// its subpackages.
//
// Please see https://github.com/exascience/elalphabet for a
// documentation of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/elalphabet/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: convert, validate, mask, translate, digest, pack, unpack, fasta-to-elfasta")
	fmt.Fprint(os.Stderr, cmd.ConvertHelp)
	fmt.Fprint(os.Stderr, cmd.ValidateHelp)
	fmt.Fprint(os.Stderr, cmd.MaskHelp)
	fmt.Fprint(os.Stderr, cmd.TranslateHelp)
	fmt.Fprint(os.Stderr, cmd.DigestHelp)
	fmt.Fprint(os.Stderr, cmd.PackHelp)
	fmt.Fprint(os.Stderr, cmd.UnpackHelp)
	fmt.Fprint(os.Stderr, cmd.FastaToElfastaHelp)
}

func main() {
	fmt.Fprint(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = cmd.Convert()
	case "validate":
		err = cmd.Validate()
	case "mask":
		err = cmd.Mask()
	case "translate":
		err = cmd.Translate()
	case "digest":
		err = cmd.Digest()
	case "pack":
		err = cmd.Pack()
	case "unpack":
		err = cmd.Unpack()
	case "fasta-to-elfasta":
		err = cmd.FastaToElfasta()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
