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

// Package bgzf reads and writes BGZF files, the blocked gzip format
// used for bgzip-compressed FASTA files. Blocks are compressed and
// decompressed in parallel.
//
// A BGZF file is a valid multi-member gzip file, so plain gzip readers
// can read it too, only sequentially.
package bgzf

import (
	"bufio"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sync"

	"github.com/exascience/pargo/pipeline"
)

// MaxBlockSize is the maximum size of a BGZF block, compressed or not.
const MaxBlockSize = 65536

// header is the fixed part of a BGZF block header, up to and including
// the BC subfield. The last two bytes hold the block size minus 1.
var header = [18]byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0x06, 0x00,
	'B', 'C', 0x02, 0x00, 0x00, 0x00,
}

// eofBlock is the empty block that terminates every BGZF file.
var eofBlock = []byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0x06, 0x00,
	'B', 'C', 0x02, 0x00, 0x1b, 0x00,
	0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// IsGzip reports whether buf starts with the gzip magic number. It
// does not consume any input.
func IsGzip(buf *bufio.Reader) (bool, error) {
	magic, err := buf.Peek(2)
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

// IsBGZF reports whether buf starts with a BGZF block header. It does
// not consume any input.
func IsBGZF(buf *bufio.Reader) (bool, error) {
	start, err := buf.Peek(len(header))
	if err == io.EOF || errors.Is(err, bufio.ErrBufferFull) {
		return false, nil
	} else if err != nil && len(start) < len(header) {
		return false, nil
	}
	return bytes.Equal(start[:4], header[:4]) && start[12] == 'B' && start[13] == 'C', nil
}

var errMalformedBlock = errors.New("malformed BGZF block")

type block struct {
	data  []byte
	crc32 uint32
	size  uint32
}

var blockPool = sync.Pool{New: func() any {
	return &block{data: make([]byte, 0, MaxBlockSize)}
}}

type (
	// Reader decompresses the blocks of a BGZF file in parallel and
	// delivers them in order.
	Reader struct {
		err     error
		r       flate.Reader
		gz      *gzip.Reader
		p       pipeline.Pipeline
		wait    sync.WaitGroup
		blocks  chan *block
		ctx     context.Context
		cancel  context.CancelFunc
		fetched *block
		current *block
		index   int
	}

	blockSource Reader
)

// nextBlock reads the compressed payload of the block whose header gz
// has just parsed, and advances gz to the header of the next block.
func (src *blockSource) nextBlock() (*block, error) {
	extra := src.gz.Extra
	for i := 0; i+4 <= len(extra); {
		slen := int(binary.LittleEndian.Uint16(extra[i+2 : i+4]))
		if i+4+slen > len(extra) {
			return nil, errMalformedBlock
		}
		if extra[i] == 'B' && extra[i+1] == 'C' && slen == 2 {
			bsize := int(binary.LittleEndian.Uint16(extra[i+4 : i+6]))
			size := bsize - len(extra) - 19
			if size < 0 {
				return nil, errMalformedBlock
			}
			b := blockPool.Get().(*block)
			if cap(b.data) < size {
				b.data = make([]byte, size)
			}
			b.data = b.data[:size]
			if _, err := io.ReadFull(src.r, b.data); err != nil {
				return nil, err
			}
			var tail [8]byte
			if _, err := io.ReadFull(src.r, tail[:]); err != nil {
				return nil, err
			}
			b.crc32 = binary.LittleEndian.Uint32(tail[0:4])
			b.size = binary.LittleEndian.Uint32(tail[4:8])
			if b.size > MaxBlockSize {
				return nil, errMalformedBlock
			}
			if err := src.gz.Reset(src.r); err == io.EOF {
				if !bytes.Equal(b.data, eofBlock[18:20]) || b.crc32 != 0 || b.size != 0 {
					return nil, errors.New("invalid BGZF file: missing EOF marker")
				}
				return b, io.EOF
			} else if err != nil {
				return nil, fmt.Errorf("reading BGZF block header: %w", err)
			}
			return b, nil
		}
		i += 4 + slen
	}
	return nil, errors.New("missing BC subfield in BGZF block header")
}

func (src *blockSource) Err() error {
	if src.err != io.EOF {
		return src.err
	}
	return nil
}

func (src *blockSource) Prepare(_ context.Context) int {
	return -1
}

func (src *blockSource) Fetch(int) int {
	if src.err != nil || src.ctx.Err() != nil {
		return 0
	}
	b, err := src.nextBlock()
	src.err = err
	if err != nil && err != io.EOF {
		src.p.SetErr(err)
	}
	src.fetched = b
	if b == nil {
		return 0
	}
	return 1
}

func (src *blockSource) Data() any {
	return src.fetched
}

var flateReaders sync.Pool

func inflate(b *block) (*block, error) {
	compressed := bytes.NewReader(b.data)
	defer blockPool.Put(b)
	var fr io.ReadCloser
	if pooled, ok := flateReaders.Get().(io.ReadCloser); ok && pooled.(flate.Resetter).Reset(compressed, nil) == nil {
		fr = pooled
	} else {
		fr = flate.NewReader(compressed)
	}
	defer flateReaders.Put(fr)
	result := blockPool.Get().(*block)
	if cap(result.data) < int(b.size) {
		result.data = make([]byte, b.size)
	}
	result.data = result.data[:int(b.size)]
	if _, err := io.ReadFull(fr, result.data); err == io.EOF {
		return result, io.ErrUnexpectedEOF
	} else if err != nil {
		return result, err
	}
	if crc32.ChecksumIEEE(result.data) != b.crc32 {
		return result, errors.New("invalid CRC-32 checksum in BGZF block")
	}
	return result, fr.Close()
}

// NewReader returns a Reader that decompresses r.
func NewReader(r flate.Reader) (*Reader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening BGZF stream: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	reader := &Reader{
		r:      r,
		gz:     gz,
		blocks: make(chan *block, 1),
		ctx:    ctx,
		cancel: cancel,
	}
	reader.p.Source((*blockSource)(reader))
	reader.p.Add(
		pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data any) any {
			result, err := inflate(data.(*block))
			if err != nil {
				reader.p.SetErr(err)
			}
			return result
		})),
		pipeline.StrictOrd(pipeline.ReceiveAndFinalize(func(_ int, data any) any {
			select {
			case <-reader.ctx.Done():
			case reader.blocks <- data.(*block):
			}
			return nil
		}, func() {
			close(reader.blocks)
		})),
	)
	reader.wait.Add(1)
	go func() {
		defer reader.wait.Done()
		reader.p.RunWithContext(reader.ctx, reader.cancel)
	}()
	return reader, nil
}

// Close stops decompression and releases the resources of the reader.
// It does not close the underlying reader.
func (reader *Reader) Close() error {
	reader.cancel()
	reader.wait.Wait()
	if err := reader.gz.Close(); err != nil {
		return err
	}
	return reader.p.Err()
}

func (reader *Reader) nextBlock() error {
	select {
	case <-reader.ctx.Done():
		if err := reader.p.Err(); err != nil {
			return err
		}
		return reader.ctx.Err()
	case b, ok := <-reader.blocks:
		if !ok {
			if err := reader.p.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		reader.current = b
		reader.index = 0
		return nil
	}
}

// Read implements io.Reader.
func (reader *Reader) Read(p []byte) (int, error) {
	for reader.current == nil || reader.index == len(reader.current.data) {
		if reader.current != nil {
			blockPool.Put(reader.current)
			reader.current = nil
		}
		if err := reader.nextBlock(); err != nil {
			return 0, err
		}
	}
	n := copy(p, reader.current.data[reader.index:])
	reader.index += n
	return n, nil
}
