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

// Package fasta reads and writes FASTA files and converts their
// sequences to and from alphabet values.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// FaiReference represents an entry in an FAI index, as written by
// samtools faidx.
type FaiReference struct {
	Length    int32
	Offset    int64
	LineBases int32
	LineWidth int32
}

// ParseFaiReader parses FAI index lines. Each line has five tab
// separated fields: name, length, offset, bases per line and bytes
// per line.
func ParseFaiReader(r io.Reader) (map[string]FaiReference, error) {
	fai := make(map[string]FaiReference)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 5 {
			return nil, fmt.Errorf("line %v: expected 5 fields, got %v", line, len(fields))
		}
		var ints [4]int64
		for i, field := range fields[1:] {
			bitSize := 32
			if i == 1 {
				bitSize = 64
			}
			n, err := strconv.ParseInt(field, 10, bitSize)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %v: invalid field %q", line, field)
			}
			ints[i] = n
		}
		if _, ok := fai[fields[0]]; ok {
			return nil, fmt.Errorf("line %v: duplicate sequence name %v", line, fields[0])
		}
		fai[fields[0]] = FaiReference{
			Length:    int32(ints[0]),
			Offset:    ints[1],
			LineBases: int32(ints[2]),
			LineWidth: int32(ints[3]),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fai, nil
}

// ParseFai parses an FAI file.
func ParseFai(filename string) (fai map[string]FaiReference, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	if fai, err = ParseFaiReader(f); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return fai, nil
}

// LoadFai parses the index next to a FASTA file, fastaFile + ".fai".
// It returns nil without an error when there is no index.
func LoadFai(fastaFile string) (map[string]FaiReference, error) {
	fai, err := ParseFai(fastaFile + ".fai")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return fai, err
}

// CheckFai reports an error when records and index disagree on the
// set of sequence names or on any sequence length.
func CheckFai(records []Record, fai map[string]FaiReference) error {
	for _, record := range records {
		ref, ok := fai[record.Name]
		if !ok {
			return fmt.Errorf("sequence %v missing from FAI index", record.Name)
		}
		if int(ref.Length) != len(record.Seq) {
			return fmt.Errorf("sequence %v has length %v, FAI index says %v", record.Name, len(record.Seq), ref.Length)
		}
	}
	if len(fai) != len(records) {
		return fmt.Errorf("FAI index lists %v sequences, FASTA has %v", len(fai), len(records))
	}
	return nil
}
