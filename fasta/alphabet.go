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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/exascience/elalphabet/internal"
	"github.com/exascience/elalphabet/views"
	"github.com/exascience/pargo/parallel"
	"github.com/zeebo/blake3"
)

// Normalize replaces every character of seq in place by the canonical
// character of its value in T. For example, normalizing to DNA5 turns
// "acgtRYn" into "ACGTNNN".
func Normalize[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](seq []byte) {
	var v T
	for i, c := range seq {
		PT(&v).AssignChar(c)
		seq[i] = v.Char()
	}
}

// NormalizeAll normalizes the sequences of all records in parallel.
func NormalizeAll[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) {
	parallel.Range(0, len(records), 0, func(low, high int) {
		for i := low; i < high; i++ {
			Normalize[T, PT](records[i].Seq)
		}
	})
}

// Encode converts the sequences of all records to values of T in
// parallel.
func Encode[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) [][]T {
	result := make([][]T, len(records))
	parallel.Range(0, len(records), 0, func(low, high int) {
		for i := low; i < high; i++ {
			result[i] = alphabet.FromBytes[T, PT](records[i].Seq)
		}
	})
	return result
}

// Decode returns a record with the given name and the characters of
// seq.
func Decode[T alphabet.Alphabet](name string, seq []T) Record {
	return Record{Name: name, Seq: alphabet.AppendChars(make([]byte, 0, len(seq)), seq)}
}

// A RecordError reports an invalid character in a record.
type RecordError struct {
	Record string
	Err    *views.InvalidCharError
}

func (err *RecordError) Error() string {
	return fmt.Sprintf("record %v: %v", err.Record, err.Err)
}

func (err *RecordError) Unwrap() error {
	return err.Err
}

// Validate checks the sequences of all records in parallel, and
// returns a *RecordError for the first invalid character of each
// invalid record, in record order, joined with errors.Join.
func Validate[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) error {
	errs := make([]error, len(records))
	parallel.Range(0, len(records), 0, func(low, high int) {
		for i := low; i < high; i++ {
			if err := views.ValidateChars[T, PT](records[i].Seq); err != nil {
				errs[i] = &RecordError{Record: records[i].Name, Err: err.(*views.InvalidCharError)}
			}
		}
	})
	return errors.Join(errs...)
}

// CountInvalid returns the total number of characters in all records
// that T cannot represent without loss.
func CountInvalid[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) int {
	return parallel.RangeReduceInt(0, len(records), 0, func(low, high int) int {
		count := 0
		for _, record := range records[low:high] {
			count += len(views.InvalidPositions[T, PT](record.Seq, -1))
		}
		return count
	}, func(x, y int) int {
		return x + y
	})
}

// ReverseComplement returns the reverse complement of seq in the
// canonical characters of T.
func ReverseComplement[T nucleotide.Nucleotide[T], PT alphabet.WritableAlphabet[T]](seq []byte) []byte {
	result := make([]byte, len(seq))
	var v T
	for i, c := range seq {
		PT(&v).AssignChar(c)
		result[len(seq)-1-i] = v.Complement().Char()
	}
	return result
}

// Digest returns the hexadecimal BLAKE3 digest of seq after
// normalization to T. Sequences that only differ in case or in
// characters T does not distinguish have the same digest.
func Digest[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](seq []byte) string {
	buf := internal.ReserveByteBuffer()
	defer internal.ReleaseByteBuffer(buf)
	*buf = append((*buf)[:0], seq...)
	Normalize[T, PT](*buf)
	sum := blake3.Sum256(*buf)
	return hex.EncodeToString(sum[:])
}

// DigestAll computes the digests of all records in parallel.
func DigestAll[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record) []string {
	digests := make([]string, len(records))
	parallel.Range(0, len(records), 0, func(low, high int) {
		for i := low; i < high; i++ {
			digests[i] = Digest[T, PT](records[i].Seq)
		}
	})
	return digests
}
