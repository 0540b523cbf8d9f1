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
	"io"
	"os"

	"github.com/exascience/elalphabet/internal"
	"github.com/exascience/elalphabet/utils"
)

// DefaultLineWidth is the number of sequence characters per line that
// Write uses when no width is given.
const DefaultLineWidth = 60

func appendRecord(buf []byte, record Record, lineWidth int) []byte {
	buf = append(buf, '>')
	buf = append(buf, record.Name...)
	if record.Description != "" {
		buf = append(buf, ' ')
		buf = append(buf, record.Description...)
	}
	buf = append(buf, '\n')
	seq := record.Seq
	if lineWidth <= 0 {
		buf = append(buf, seq...)
		return append(buf, '\n')
	}
	for len(seq) > lineWidth {
		buf = append(buf, seq[:lineWidth]...)
		buf = append(buf, '\n')
		seq = seq[lineWidth:]
	}
	if len(seq) > 0 {
		buf = append(buf, seq...)
		buf = append(buf, '\n')
	}
	return buf
}

// Write writes records in FASTA format, wrapping sequences after
// lineWidth characters. A lineWidth of 0 or less writes each sequence
// on a single line.
func Write(w io.Writer, records []Record, lineWidth int) error {
	buf := internal.ReserveByteBuffer()
	defer internal.ReleaseByteBuffer(buf)
	for _, record := range records {
		*buf = appendRecord((*buf)[:0], record, lineWidth)
		if _, err := w.Write(*buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes records to a FASTA file, compressed as BGZF if the
// filename ends in .gz or .bgz, or as xz if it ends in .xz.
func WriteFile(filename string, records []Record, lineWidth int) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	buffered := bufio.NewWriter(f)
	w, err := utils.CompressedWriter(buffered, filename)
	if err != nil {
		return err
	}
	if err = Write(w, records, lineWidth); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return buffered.Flush()
}
