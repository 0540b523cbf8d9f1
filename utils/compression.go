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

package utils

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/exascience/elalphabet/utils/bgzf"
	"github.com/ulikunitz/xz"
)

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// HandleCompressed checks whether buf holds BGZF, gzip or xz
// compressed data by looking at its first bytes, and returns a reader
// for the uncompressed contents. Uncompressed input is returned
// unchanged. Closing the result does not close buf.
func HandleCompressed(buf *bufio.Reader) (io.ReadCloser, error) {
	if ok, err := bgzf.IsBGZF(buf); err != nil {
		return nil, err
	} else if ok {
		return bgzf.NewReader(buf)
	}
	if ok, err := bgzf.IsGzip(buf); err != nil {
		return nil, err
	} else if ok {
		gz, err := gzip.NewReader(buf)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return gz, nil
	}
	if magic, _ := buf.Peek(len(xzMagic)); bytes.Equal(magic, xzMagic) {
		r, err := xz.NewReader(buf)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		return io.NopCloser(r), nil
	}
	return io.NopCloser(buf), nil
}

// CompressedWriter wraps w in a compressing writer chosen by the
// extension of filename: BGZF for .gz and .bgz, xz for .xz. Other
// filenames get w wrapped in a no-op closer. Closing the result
// flushes the compressed stream but does not close w.
func CompressedWriter(w io.Writer, filename string) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(filename, ".gz"), strings.HasSuffix(filename, ".bgz"):
		return bgzf.NewWriter(w, gzip.DefaultCompression), nil
	case strings.HasSuffix(filename, ".xz"):
		return xz.NewWriter(w)
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
