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

package views

import (
	"math/bits"

	"github.com/exascience/elalphabet/alphabet/aminoacid"
	"github.com/exascience/elalphabet/alphabet/nucleotide"
	"github.com/exascience/pargo/parallel"
)

// TranslationFrames selects reading frames for Translate.
type TranslationFrames uint8

// Reading frames. The reverse frames are read from the reverse
// complement.
const (
	FwdFrame0 TranslationFrames = 1 << iota
	FwdFrame1
	FwdFrame2
	RevFrame0
	RevFrame1
	RevFrame2

	Fwd      = FwdFrame0 | FwdFrame1 | FwdFrame2
	Rev      = RevFrame0 | RevFrame1 | RevFrame2
	FwdRev0  = FwdFrame0 | RevFrame0
	FwdRev1  = FwdFrame1 | RevFrame1
	FwdRev2  = FwdFrame2 | RevFrame2
	SixFrame = Fwd | Rev
)

var frameNames = []string{"FwdFrame0", "FwdFrame1", "FwdFrame2", "RevFrame0", "RevFrame1", "RevFrame2"}

// ParseTranslationFrames parses a frame name as used on the command
// line: one of the single frame names, or fwd, rev, fwdrev0, fwdrev1,
// fwdrev2, six.
func ParseTranslationFrames(name string) (TranslationFrames, bool) {
	switch name {
	case "fwd":
		return Fwd, true
	case "rev":
		return Rev, true
	case "fwdrev0":
		return FwdRev0, true
	case "fwdrev1":
		return FwdRev1, true
	case "fwdrev2":
		return FwdRev2, true
	case "six":
		return SixFrame, true
	}
	for i, frameName := range frameNames {
		if name == frameName {
			return TranslationFrames(1) << i, true
		}
	}
	return 0, false
}

// Count returns the number of selected frames.
func (frames TranslationFrames) Count() int {
	return bits.OnesCount8(uint8(frames & SixFrame))
}

// Frames returns the selected single frames, in the order FwdFrame0
// to RevFrame2.
func (frames TranslationFrames) Frames() (result []TranslationFrames) {
	for i := range frameNames {
		if frame := TranslationFrames(1) << i; frames&frame != 0 {
			result = append(result, frame)
		}
	}
	return result
}

func (frames TranslationFrames) String() string {
	var s string
	for i, name := range frameNames {
		if frames&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	return s
}

// TranslateFrame translates seq from the given offset on, one amino
// acid per complete codon.
func TranslateFrame[N nucleotide.Nucleotide[N]](seq []N, offset int) []aminoacid.AA27 {
	if offset >= len(seq) {
		return nil
	}
	result := make([]aminoacid.AA27, (len(seq)-offset)/3)
	for i := range result {
		j := offset + 3*i
		result[i] = aminoacid.TranslateTriplet(seq[j], seq[j+1], seq[j+2])
	}
	return result
}

// Translate translates seq in each of the selected frames, in the
// order FwdFrame0 to RevFrame2. The frames are translated in
// parallel.
func Translate[N nucleotide.Nucleotide[N]](seq []N, frames TranslationFrames) [][]aminoacid.AA27 {
	selected := frames.Frames()
	var revcomp []N
	if frames&Rev != 0 {
		revcomp = make([]N, 0, len(seq))
		for v := range ReverseComplement(seq) {
			revcomp = append(revcomp, v)
		}
	}
	result := make([][]aminoacid.AA27, len(selected))
	parallel.Range(0, len(selected), 0, func(low, high int) {
		for i := low; i < high; i++ {
			offset := bits.TrailingZeros8(uint8(selected[i]))
			if offset < 3 {
				result[i] = TranslateFrame(seq, offset)
			} else {
				result[i] = TranslateFrame(revcomp, offset-3)
			}
		}
	})
	return result
}
