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
	"bytes"
	"encoding/binary"
	"log"
	"os"
	"sync"

	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/internal"
	"github.com/exascience/elalphabet/utils/packed"
	"golang.org/x/sys/unix"
)

type offsetTableEntry struct {
	record int
	offset int
}

var (
	// ElfastaMagic is the magic byte sequence that every .elfasta file starts with.
	ElfastaMagic = []byte{0x31, 0xFA, 0x57, 0xA2} // 31FA57A2 => ELFASTA2

	// PackedElfastaMagic starts .elfasta files whose sequences are
	// packed two values per byte.
	PackedElfastaMagic = []byte{0x31, 0xFA, 0x57, 0xA4}
)

// ToElfasta stores records into an mmappable .elfasta file. The
// sequences should be normalized to the named alphabet, which is
// recorded in the file.
//
// The layout is the magic bytes, the alphabet name and a newline, one
// entry per record with its name, a tab, and the offset and length of
// its sequence as fixed-width varints, a newline, and then the
// sequences back to back.
func ToElfasta(records []Record, alphabetName string, filename string) {
	writeElfasta(ElfastaMagic, records, alphabetName, filename, func(seq []byte) []byte {
		return seq
	})
}

// ToPackedElfasta stores records like ToElfasta, but converts each
// sequence to T and packs it as nibbles. The recorded length is the
// number of values. T must have at most 16 values.
func ToPackedElfasta[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](records []Record, alphabetName string, filename string) {
	writeElfasta(PackedElfastaMagic, records, alphabetName, filename, func(seq []byte) []byte {
		nibbles := packed.MakeNibbles[T, PT](len(seq))
		for i, c := range seq {
			nibbles.Set(i, alphabet.FromChar[T, PT](c))
		}
		_, _, data := nibbles.ReflectValue()
		return data
	})
}

func writeElfasta(magic []byte, records []Record, alphabetName string, filename string, encode func([]byte) []byte) {
	file := internal.FileCreate(filename)
	defer internal.Close(file)
	offset := internal.Write(file, magic)
	offset += internal.WriteString(file, alphabetName)
	offset += internal.WriteString(file, "\n")
	var offsetTable []offsetTableEntry
	var padding [2 * binary.MaxVarintLen64]byte
	for i, record := range records {
		offset += internal.WriteString(file, record.Name)
		offset += internal.WriteString(file, "\t")
		offsetTable = append(offsetTable, offsetTableEntry{record: i, offset: offset})
		offset += internal.Write(file, padding[:])
	}
	offset += internal.WriteString(file, "\n")
	seqOffsets := make([]int, len(records))
	for i, record := range records {
		seqOffsets[i] = offset
		offset += internal.Write(file, encode(record.Seq))
	}
	data, err := unix.Mmap(int(file.Fd()), 0, offset, unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		log.Panic(err)
	}
	defer func() {
		if err := unix.Munmap(data); err != nil {
			log.Panic(err)
		}
	}()
	for _, entry := range offsetTable {
		binary.PutVarint(data[entry.offset:entry.offset+binary.MaxVarintLen64], int64(seqOffsets[entry.record]))
		binary.PutVarint(data[entry.offset+binary.MaxVarintLen64:entry.offset+2*binary.MaxVarintLen64], int64(len(records[entry.record].Seq)))
	}
}

// MappedFasta represents the contents of an .elfasta file.
type MappedFasta struct {
	wait     sync.WaitGroup
	alphabet string
	records  []Record
	isPacked bool
	packed   [][]byte
	lengths  []int
	data     []byte
	file     *os.File
}

// OpenElfasta opens a .elfasta file. The file is mapped in the
// background; the accessors wait until it is ready.
func OpenElfasta(filename string) (result *MappedFasta) {
	result = new(MappedFasta)
	result.wait.Add(1)
	go func() {
		defer result.wait.Done()
		file := internal.FileOpen(filename)
		stat, err := file.Stat()
		if err != nil {
			_ = file.Close()
			log.Panic(err)
		}
		data, err := unix.Mmap(int(file.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
		if err != nil {
			_ = file.Close()
			log.Panic(err)
		}
		fail := func(format string) {
			_ = unix.Munmap(data)
			_ = file.Close()
			log.Panicf(format, filename)
		}
		var isPacked bool
		switch {
		case bytes.HasPrefix(data, ElfastaMagic):
		case bytes.HasPrefix(data, PackedElfastaMagic):
			isPacked = true
		default:
			fail("%v is not a .elfasta file - invalid magic byte sequence")
		}
		index := len(ElfastaMagic)
		end := bytes.IndexByte(data[index:], '\n')
		if end < 0 {
			fail("missing alphabet name in elfasta file %v")
		}
		result.alphabet = string(data[index : index+end])
		index += end + 1
		for index < len(data) && data[index] != '\n' {
			tab := bytes.IndexByte(data[index:], '\t')
			if tab < 0 || index+tab+1+2*binary.MaxVarintLen64 > len(data) {
				fail("truncated record table in elfasta file %v")
			}
			name := string(data[index : index+tab])
			index += tab + 1
			offset, n := binary.Varint(data[index : index+binary.MaxVarintLen64])
			if n <= 0 {
				fail("bad number of bytes while parsing offset in elfasta file %v")
			}
			size, n := binary.Varint(data[index+binary.MaxVarintLen64 : index+2*binary.MaxVarintLen64])
			if n <= 0 {
				fail("bad number of bytes while parsing size in elfasta file %v")
			}
			nbytes := size
			if isPacked {
				nbytes = (size + 1) >> 1
			}
			if offset < 0 || nbytes < 0 || offset+nbytes > int64(len(data)) {
				fail("sequence out of bounds in elfasta file %v")
			}
			seq := data[int(offset):int(offset+nbytes)]
			if isPacked {
				result.records = append(result.records, Record{Name: name})
				result.packed = append(result.packed, seq)
				result.lengths = append(result.lengths, int(size))
			} else {
				result.records = append(result.records, Record{Name: name, Seq: seq})
			}
			index += 2 * binary.MaxVarintLen64
		}
		if index >= len(data) {
			fail("truncated record table in elfasta file %v")
		}
		result.isPacked = isPacked
		result.data = data
		result.file = file
	}()
	return result
}

// Close closes the .elfasta file. Sequences obtained from it must not
// be used afterwards.
func (fasta *MappedFasta) Close() {
	fasta.wait.Wait()
	err := unix.Munmap(fasta.data)
	fasta.data = nil
	if nerr := fasta.file.Close(); err == nil {
		err = nerr
	}
	fasta.file = nil
	fasta.records = nil
	fasta.packed = nil
	fasta.lengths = nil
	if err != nil {
		log.Panic(err)
	}
}

// Alphabet returns the name of the alphabet the sequences are
// normalized to.
func (fasta *MappedFasta) Alphabet() string {
	fasta.wait.Wait()
	return fasta.alphabet
}

// Packed reports whether the sequences are packed as nibbles. Their
// records then have no Seq; use ElfastaNibbles instead.
func (fasta *MappedFasta) Packed() bool {
	fasta.wait.Wait()
	return fasta.isPacked
}

// Records returns the records of the .elfasta file, in file order.
// The sequences point into the mapped file and are read-only.
func (fasta *MappedFasta) Records() []Record {
	fasta.wait.Wait()
	return fasta.records
}

// Seq fetches a sequence for the given record name
// from the .elfasta file.
func (fasta *MappedFasta) Seq(name string) []byte {
	fasta.wait.Wait()
	seq, _ := Lookup(fasta.records, name)
	return seq
}

// ElfastaNibbles returns the packed sequence for the given record name
// of a packed .elfasta file. The nibbles point into the mapped file and
// are read-only. T must be the alphabet the file was packed in.
func ElfastaNibbles[T alphabet.Alphabet, PT alphabet.WritableAlphabet[T]](fasta *MappedFasta, name string) (packed.Nibbles[T, PT], bool) {
	fasta.wait.Wait()
	if fasta.isPacked {
		for i, record := range fasta.records {
			if record.Name == name {
				return packed.ReflectNibbles[T, PT](fasta.lengths[i], 0, fasta.packed[i]), true
			}
		}
	}
	return packed.Nibbles[T, PT]{}, false
}
