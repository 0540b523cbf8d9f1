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

package bed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/exascience/elalphabet/utils"
)

func parseCoordinate(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}

// ParseReader parses BED data. Header, track, and browser lines are
// skipped. Fields are separated by tabs, or by spaces if a line has no
// tabs.
func ParseReader(r io.Reader) (*Bed, error) {
	bed := NewBed()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" ||
			strings.HasPrefix(text, "#") ||
			strings.HasPrefix(text, "track") ||
			strings.HasPrefix(text, "browser") {
			continue
		}
		var data []string
		if strings.IndexByte(text, '\t') >= 0 {
			data = strings.Split(text, "\t")
		} else {
			data = strings.Fields(text)
		}
		if len(data) < 3 {
			return nil, fmt.Errorf("line %v: expected at least 3 fields, got %v", line, len(data))
		}
		start, err := parseCoordinate(data[1])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid start: %w", line, err)
		}
		end, err := parseCoordinate(data[2])
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid end: %w", line, err)
		}
		region, err := NewRegion(data[0], start, end, data[3:])
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		bed.AddRegion(region)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bed, nil
}

// ParseBed parses a BED file, which may be BGZF, gzip, or xz
// compressed.
func ParseBed(filename string) (bed *Bed, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	r, err := utils.HandleCompressed(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	defer func() {
		if nerr := r.Close(); err == nil {
			err = nerr
		}
	}()
	if bed, err = ParseReader(r); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return bed, nil
}
