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

// Package structure provides RNA secondary structure alphabets and the
// StructuredRNA composite of a nucleotide with its structure.
package structure

import (
	"github.com/exascience/elalphabet/alphabet"
	"github.com/exascience/elalphabet/alphabet/composite"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
)

// RNAStructure is an alphabet of RNA secondary structure annotations.
type RNAStructure interface {
	alphabet.Alphabet
	IsPairOpen() bool
	IsPairClose() bool
	IsUnpaired() bool
	MaxPseudoknotDepth() uint
}

// Unknown characters are unpaired.
var dotBracket3Table = alphabet.NewTable(".()", alphabet.CharToRankTable(".()", 0, false))

type dotBracket3Spec struct{}

func (dotBracket3Spec) Table() *alphabet.Table { return dotBracket3Table }

// DotBracket3 is the dot-bracket notation without pseudoknots: '.'
// for an unpaired base, '(' and ')' for the two ends of a pair.
type DotBracket3 struct {
	alphabet.Base[dotBracket3Spec]
}

func (d DotBracket3) IsPairOpen() bool {
	return d.Char() == '('
}

func (d DotBracket3) IsPairClose() bool {
	return d.Char() == ')'
}

func (d DotBracket3) IsUnpaired() bool {
	return d.Char() == '.'
}

// MaxPseudoknotDepth returns 1; dot-bracket notation cannot express
// pseudoknots.
func (DotBracket3) MaxPseudoknotDepth() uint {
	return 1
}

// StructuredRNA combines a nucleotide of S with a structure annotation
// of St. Its character is the character of the nucleotide.
type StructuredRNA[S nucleotide.Nucleotide[S], PS alphabet.WritableAlphabet[S], St RNAStructure, PSt alphabet.WritableAlphabet[St]] struct {
	composite.Tuple2[S, PS, St, PSt]
}

// NewStructuredRNA returns the combination of s and st.
func NewStructuredRNA[S nucleotide.Nucleotide[S], PS alphabet.WritableAlphabet[S], St RNAStructure, PSt alphabet.WritableAlphabet[St]](s S, st St) StructuredRNA[S, PS, St, PSt] {
	return StructuredRNA[S, PS, St, PSt]{composite.NewTuple2[S, PS, St, PSt](s, st)}
}

// Sequence returns the nucleotide.
func (v StructuredRNA[S, PS, St, PSt]) Sequence() S {
	return v.First()
}

// Structure returns the structure annotation.
func (v StructuredRNA[S, PS, St, PSt]) Structure() St {
	return v.Second()
}

func (v StructuredRNA[S, PS, St, PSt]) Char() byte {
	return v.First().Char()
}

// AssignChar replaces the nucleotide and keeps the structure.
func (v *StructuredRNA[S, PS, St, PSt]) AssignChar(c byte) {
	v.SetFirst(alphabet.FromChar[S, PS](c))
}

func (StructuredRNA[S, PS, St, PSt]) CharIsValid(c byte) bool {
	return alphabet.CharIsValidFor[S, PS](c)
}

func (v StructuredRNA[S, PS, St, PSt]) IsPairOpen() bool  { return v.Second().IsPairOpen() }
func (v StructuredRNA[S, PS, St, PSt]) IsPairClose() bool { return v.Second().IsPairClose() }
func (v StructuredRNA[S, PS, St, PSt]) IsUnpaired() bool  { return v.Second().IsUnpaired() }

// Complement returns v with its nucleotide complemented and its
// structure unchanged.
func (v StructuredRNA[S, PS, St, PSt]) Complement() StructuredRNA[S, PS, St, PSt] {
	v.SetFirst(v.First().Complement())
	return v
}

// RNA4DotBracket3 is RNA4 with dot-bracket structure, the most common
// structured RNA alphabet.
type RNA4DotBracket3 = StructuredRNA[nucleotide.RNA4, *nucleotide.RNA4, DotBracket3, *DotBracket3]
