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

package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/exascience/elalphabet/utils"
)

// A Record is one sequence of a FASTA file.
type Record struct {
	Name        string
	Description string
	Seq         []byte
}

// maxLineLength bounds the length of a single line. Genome assemblies
// are commonly written unwrapped, with whole chromosomes on one line.
const maxLineLength = 1 << 30

func splitHeader(b []byte) (name, description string) {
	b = bytes.TrimSpace(b[1:])
	if i := bytes.IndexAny(b, " \t"); i >= 0 {
		return string(b[:i]), string(bytes.TrimSpace(b[i+1:]))
	}
	return string(b), ""
}

func initSeq(name string, fai map[string]FaiReference) []byte {
	if fai != nil {
		if ref, ok := fai[name]; ok {
			return make([]byte, 0, ref.Length)
		}
	}
	return nil
}

// ParseReader sequentially parses FASTA data, in file order. Blank
// lines and comment lines starting with ';' are skipped.
//
// If fai is given, the sequences are pre-allocated to reduce pressure
// on the garbage collector, and checked against the index afterwards.
func ParseReader(r io.Reader, fai map[string]FaiReference) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var records []Record
	current := -1
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimRight(scanner.Bytes(), "\r")
		switch {
		case len(b) == 0 || b[0] == ';':
			continue
		case b[0] == '>':
			name, description := splitHeader(b)
			records = append(records, Record{Name: name, Description: description, Seq: initSeq(name, fai)})
			current = len(records) - 1
		case current < 0:
			return nil, fmt.Errorf("line %v: sequence data before first header", line)
		default:
			records[current].Seq = append(records[current].Seq, b...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("no FASTA records found")
	}
	if fai != nil {
		if err := CheckFai(records, fai); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Parse parses a FASTA file, which may be BGZF, gzip, or xz compressed.
func Parse(filename string, fai map[string]FaiReference) (records []Record, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	r, err := utils.HandleCompressed(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	defer func() {
		if nerr := r.Close(); err == nil {
			err = nerr
		}
	}()
	records, err = ParseReader(r, fai)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return records, nil
}

// Names returns the names of the records, in order.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.Name
	}
	return names
}

// Lookup returns the sequence of the record with the given name.
func Lookup(records []Record, name string) ([]byte, bool) {
	for _, record := range records {
		if record.Name == name {
			return record.Seq, true
		}
	}
	return nil, false
}
