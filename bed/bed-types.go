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

// Package bed reads BED files, which list regions of reference
// sequences, for example the regions to mask in a FASTA file.
package bed

import (
	"fmt"
	"slices"
	"strconv"
)

// A Bed maps sequence names onto their regions, in file order.
type Bed struct {
	RegionMap map[string][]*Region
}

// A Region is a line of a BED file. Start and End are zero-based and
// End is exclusive. See https://genome.ucsc.edu/FAQ/FAQformat.html#format1
type Region struct {
	Chrom      string
	Start, End int32
	// The optional fields; Score is -1 and Strand is 0 when absent.
	Name   string
	Score  int
	Strand byte
	// Any further fields, unparsed.
	Extra []string
}

// Valid region optional fields.
const (
	brName = iota
	brScore
	brStrand
)

// NewRegion allocates and initializes a new Region. Optional fields
// are given in order.
func NewRegion(chrom string, start, end int32, fields []string) (*Region, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("invalid region %v:%v-%v", chrom, start, end)
	}
	region := &Region{Chrom: chrom, Start: start, End: end, Score: -1}
	for i, val := range fields {
		switch i {
		case brName:
			region.Name = val
		case brScore:
			if val == "." {
				continue
			}
			score, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("invalid Score field: %w", err)
			}
			if score < 0 || score > 1000 {
				return nil, fmt.Errorf("invalid Score field: %v out of 0-1000", score)
			}
			region.Score = score
		case brStrand:
			switch val {
			case "+", "-":
				region.Strand = val[0]
			case ".":
			default:
				return nil, fmt.Errorf("invalid Strand field: %v", val)
			}
		default:
			region.Extra = fields[i:]
			return region, nil
		}
	}
	return region, nil
}

// NewBed allocates and initializes an empty bed.
func NewBed() *Bed {
	return &Bed{RegionMap: make(map[string][]*Region)}
}

// AddRegion adds a region to the bed region map.
func (bed *Bed) AddRegion(region *Region) {
	bed.RegionMap[region.Chrom] = append(bed.RegionMap[region.Chrom], region)
}

// Chroms returns the sequence names with regions, sorted.
func (bed *Bed) Chroms() []string {
	chroms := make([]string, 0, len(bed.RegionMap))
	for chrom := range bed.RegionMap {
		chroms = append(chroms, chrom)
	}
	slices.Sort(chroms)
	return chroms
}

// Len returns the total number of regions.
func (bed *Bed) Len() (n int) {
	for _, regions := range bed.RegionMap {
		n += len(regions)
	}
	return n
}
