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

/*
Package alphabet defines the concept surface shared by all sequence
alphabets: small, closed value types with a fixed number of values
that convert to and from a rank (their zero-based index) and, for
most of them, a printable character.

An alphabet is any type with the right methods. Generic code is
written against the interfaces and constraints in this package and
calls the free functions (Size, ToRank, AssignRankTo, ToChar,
AssignCharTo, CharIsValidFor), which dispatch statically to the
methods of the concrete type. Types defined elsewhere become
alphabets by declaring the methods on their own types; there is no
registry.

Most concrete alphabets are generated from two lookup tables through
Base, and alphabets with a single value through Singleton. The
sub-packages provide the nucleotide, amino acid, quality, gap, mask
and structure alphabets, and the composite package combines
alphabets into tuples and variants.

Assigning a character never fails: every byte maps to some value.
Assigning a rank outside [0, size) is a programming error that is
reported with a panic, unless the module is built with the unchecked
build tag.
*/
package alphabet
