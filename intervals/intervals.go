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

// Package intervals provides sorted sets of half-open sequence
// intervals, as read from BED files or derived from sequence
// positions.
package intervals

import (
	"sort"

	"github.com/exascience/elalphabet/bed"
	"github.com/exascience/pargo/parallel"
	psort "github.com/exascience/pargo/sort"
)

// Interval is the range of sequence positions from Start up to but not
// including End.
type Interval struct {
	Start, End int32
}

// Len returns the number of positions in the interval.
func (interval Interval) Len() int {
	return int(interval.End - interval.Start)
}

// SortByStart sorts a slice of Interval by Start position.
func SortByStart(intervals []Interval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
}

type stableIntervalSorter []Interval

func (s stableIntervalSorter) SequentialSort(i, j int) {
	SortByStart(s[i:j])
}

func (s stableIntervalSorter) NewTemp() psort.StableSorter {
	return stableIntervalSorter(make([]Interval, len(s)))
}

func (s stableIntervalSorter) Len() int {
	return len(s)
}

func (s stableIntervalSorter) Less(i, j int) bool {
	return s[i].Start < s[j].Start
}

func (s stableIntervalSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(stableIntervalSorter)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// ParallelSortByStart sorts a slice of Interval by Start position
// using a parallel stable sort.
func ParallelSortByStart(intervals []Interval) {
	psort.StableSort(stableIntervalSorter(intervals))
}

// Extend grows interval1 to cover interval2 if they overlap or touch,
// and reports whether they did. interval2.Start must not be smaller
// than interval1.Start.
func (interval1 *Interval) Extend(interval2 Interval) bool {
	if interval2.Start > interval1.End {
		return false
	}
	interval1.End = max(interval1.End, interval2.End)
	return true
}

// Flatten merges overlapping and adjacent intervals. intervals must be
// sorted by Start. The result is sorted by Start, no two of its
// intervals overlap or touch, and it shares memory with intervals.
func Flatten(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return intervals
	}
	i := 0
	for _, next := range intervals[1:] {
		if !intervals[i].Extend(next) {
			i++
			intervals[i] = next
		}
	}
	return intervals[:i+1]
}

const parallelFlattenGrainSize = 0x1000

// ParallelFlatten is Flatten with a parallel divide-and-conquer
// algorithm for large inputs.
func ParallelFlatten(intervals []Interval) []Interval {
	if len(intervals) < parallelFlattenGrainSize {
		return Flatten(intervals)
	}
	half := len(intervals) >> 1
	left, right := intervals[:half], intervals[half:]
	parallel.Do(
		func() { left = ParallelFlatten(left) },
		func() { right = ParallelFlatten(right) },
	)
	for len(right) > 0 && left[len(left)-1].Extend(right[0]) {
		right = right[1:]
	}
	return append(left, right...)
}

// Overlap reports whether any of the intervals overlaps the range
// from start up to end. intervals must be flattened.
func Overlap(intervals []Interval, start, end int32) bool {
	return len(Intersect(intervals, start, end)) > 0
}

// Intersect returns the intervals that overlap the range from start up
// to end. intervals must be flattened. The result shares memory with
// intervals.
func Intersect(intervals []Interval, start, end int32) []Interval {
	if start >= end {
		return nil
	}
	n := len(intervals)
	low := sort.Search(n, func(i int) bool {
		return intervals[i].End > start
	})
	high := sort.Search(n, func(i int) bool {
		return intervals[i].Start >= end
	})
	if low >= high {
		return nil
	}
	return intervals[low:high]
}

// Clip restricts flattened intervals to the positions of a sequence of
// the given length, dropping intervals that end up empty. The result
// shares memory with intervals unless its last interval is shortened.
func Clip(intervals []Interval, length int32) []Interval {
	result := Intersect(intervals, 0, length)
	if n := len(result); n > 0 && result[n-1].End > length {
		result = append(result[:n-1:n-1], Interval{result[n-1].Start, length})
	}
	return result
}

// Coverage returns the number of positions that flattened intervals
// cover.
func Coverage(intervals []Interval) (n int) {
	for _, interval := range intervals {
		n += interval.Len()
	}
	return n
}

// FromPositions returns the flattened intervals that cover exactly the
// given positions, which must be sorted in increasing order.
func FromPositions(positions []int) (result []Interval) {
	for _, p := range positions {
		if n := len(result); n > 0 && result[n-1].End == int32(p) {
			result[n-1].End++
		} else {
			result = append(result, Interval{int32(p), int32(p) + 1})
		}
	}
	return result
}

// FromBed returns the flattened intervals of the regions of a BED
// file, per sequence name.
func FromBed(bed *bed.Bed) map[string][]Interval {
	result := make(map[string][]Interval, len(bed.RegionMap))
	for chrom, regions := range bed.RegionMap {
		intervals := make([]Interval, 0, len(regions))
		for _, region := range regions {
			if region.Start < region.End {
				intervals = append(intervals, Interval{region.Start, region.End})
			}
		}
		if len(intervals) > 1 {
			ParallelSortByStart(intervals)
		}
		result[chrom] = ParallelFlatten(intervals)
	}
	return result
}

// FromBedFile parses a BED file and returns its flattened intervals.
func FromBedFile(filename string) (map[string][]Interval, error) {
	b, err := bed.ParseBed(filename)
	if err != nil {
		return nil, err
	}
	return FromBed(b), nil
}
