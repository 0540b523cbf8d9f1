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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/utils/packed"
	"github.com/exascience/pargo/parallel"
)

// PackedMagic is the magic byte sequence that every .elpack file
// starts with.
var PackedMagic = []byte{0x31, 0xFA, 0x57, 0xB1}

// maxPackedString bounds the names and descriptions read from .elpack
// files.
const maxPackedString = 1 << 20

// Pack converts the sequences of all records to packed vectors in
// parallel. Characters the alphabet does not know are converted as by
// AssignChar.
func Pack[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) []*packed.Vector[T, PT] {
	result := make([]*packed.Vector[T, PT], len(records))
	parallel.Range(0, len(records), 0, func(low, high int) {
		for i := low; i < high; i++ {
			seq := records[i].Seq
			v := packed.NewVector[T, PT](len(seq))
			for j, c := range seq {
				v.Set(j, alphabet.FromChar[T, PT](c))
			}
			result[i] = v
		}
	})
	return result
}

// Unpack converts packed vectors back to the canonical characters of
// their values, in parallel.
func Unpack[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](vectors []*packed.Vector[T, PT]) [][]byte {
	result := make([][]byte, len(vectors))
	parallel.Range(0, len(vectors), 0, func(low, high int) {
		for i := low; i < high; i++ {
			result[i] = alphabet.AppendChars(make([]byte, 0, vectors[i].Len()), vectors[i].Expand())
		}
	})
	return result
}

func putUvarint(w *bufio.Writer, x uint64) {
	var buf [binary.MaxVarintLen64]byte
	_, _ = w.Write(buf[:binary.PutUvarint(buf[:], x)])
}

func putString(w *bufio.Writer, s string) {
	putUvarint(w, uint64(len(s)))
	_, _ = w.WriteString(s)
}

// WritePacked writes records in the .elpack format: the magic bytes,
// the alphabet name and a newline, the number of records, and for each
// record its name, its description and its sequence as a packed
// vector. Strings and counts are uvarint prefixed.
//
// Packing converts every sequence to T, so lower case and unknown
// characters do not survive the round trip.
func WritePacked[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](w io.Writer, alphabetName string, records []Record) error {
	vectors := Pack[T, PT](records)
	out := bufio.NewWriter(w)
	_, _ = out.Write(PackedMagic)
	_, _ = out.WriteString(alphabetName)
	_ = out.WriteByte('\n')
	putUvarint(out, uint64(len(records)))
	for i, record := range records {
		putString(out, record.Name)
		putString(out, record.Description)
		if _, err := vectors[i].WriteTo(out); err != nil {
			return err
		}
	}
	return out.Flush()
}

// ReadPackedHeader checks the magic bytes of an .elpack stream and
// returns the name of the alphabet its sequences are packed in.
func ReadPackedHeader(r *bufio.Reader) (string, error) {
	magic := make([]byte, len(PackedMagic))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, PackedMagic) {
		return "", errors.New("not an .elpack file - invalid magic byte sequence")
	}
	name, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("missing alphabet name in .elpack file: %w", err)
	}
	return name[:len(name)-1], nil
}

func readString(r *bufio.Reader) (string, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return "", err
	}
	if n > maxPackedString {
		return "", fmt.Errorf("string of %v bytes in .elpack file", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadPackedRecords reads the records that follow the header of an
// .elpack stream. T must be the alphabet named in the header.
func ReadPackedRecords[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](r *bufio.Reader) ([]Record, error) {
	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading .elpack record count: %w", err)
	}
	records := make([]Record, 0, min(count, 1<<16))
	var vectors []*packed.Vector[T, PT]
	for i := uint64(0); i < count; i++ {
		var record Record
		if record.Name, err = readString(r); err != nil {
			return nil, fmt.Errorf("reading .elpack record %v: %w", i, err)
		}
		if record.Description, err = readString(r); err != nil {
			return nil, fmt.Errorf("reading .elpack record %v: %w", record.Name, err)
		}
		v, err := packed.ReadVector[T, PT](r)
		if err != nil {
			return nil, fmt.Errorf("reading .elpack record %v: %w", record.Name, err)
		}
		records = append(records, record)
		vectors = append(vectors, v)
	}
	for i, seq := range Unpack(vectors) {
		records[i].Seq = seq
	}
	return records, nil
}
