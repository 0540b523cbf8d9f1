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

package quality

import "github.com/exascience/elalphabet/alphabet"

var (
	phred42Table       = NewTable('!', 42)
	phred63Table       = NewTable('!', 63)
	phred94Table       = NewTable('!', 94)
	phred68LegacyTable = NewTable(';', 68)
)

type phred42Spec struct{}

func (phred42Spec) Table() *alphabet.Table { return phred42Table }
func (phred42Spec) OffsetPhred() int       { return 0 }

// Phred42 represents the Phred scores 0 to 41 with the characters '!'
// to 'J', the Sanger and Illumina 1.8+ encoding.
type Phred42 struct {
	Base[phred42Spec]
}

type phred63Spec struct{}

func (phred63Spec) Table() *alphabet.Table { return phred63Table }
func (phred63Spec) OffsetPhred() int       { return 0 }

// Phred63 represents the Phred scores 0 to 62 with the characters '!'
// to '_'.
type Phred63 struct {
	Base[phred63Spec]
}

type phred94Spec struct{}

func (phred94Spec) Table() *alphabet.Table { return phred94Table }
func (phred94Spec) OffsetPhred() int       { return 0 }

// Phred94 represents the Phred scores 0 to 93 with the characters '!'
// to '~', the full printable range. It is used for PacBio and
// Nanopore reads.
type Phred94 struct {
	Base[phred94Spec]
}

type phred68LegacySpec struct{}

func (phred68LegacySpec) Table() *alphabet.Table { return phred68LegacyTable }
func (phred68LegacySpec) OffsetPhred() int       { return -5 }

// Phred68Legacy represents the Solexa scores -5 to 62 with the
// characters ';' to '~', the encoding of Illumina 1.0 to 1.3.
type Phred68Legacy struct {
	Base[phred68LegacySpec]
}
