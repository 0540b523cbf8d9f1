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

package bgzf

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sync"

	"github.com/exascience/pargo/pipeline"
)

type (
	// Writer compresses its input into BGZF blocks in parallel and
	// writes them in order.
	Writer struct {
		w       io.Writer
		level   int
		p       pipeline.Pipeline
		ctx     context.Context
		cancel  context.CancelFunc
		wait    sync.WaitGroup
		pending *block
		blocks  chan *block
		fetched *block
	}

	blockSink Writer
)

func (sink *blockSink) Err() error {
	return nil
}

func (sink *blockSink) Prepare(_ context.Context) int {
	return -1
}

func (sink *blockSink) Fetch(int) int {
	b, ok := <-sink.blocks
	sink.fetched = b
	if !ok {
		return 0
	}
	return 1
}

func (sink *blockSink) Data() any {
	return sink.fetched
}

var flateWriters sync.Pool

func deflate(b *block, level int) (*block, error) {
	defer func() {
		b.data = b.data[:0]
		blockPool.Put(b)
	}()
	result := blockPool.Get().(*block)
	buf := bytes.NewBuffer(result.data[:0])
	buf.Write(header[:])
	fw, ok := flateWriters.Get().(*flate.Writer)
	if ok {
		fw.Reset(buf)
	} else {
		var err error
		if fw, err = flate.NewWriter(buf, level); err != nil {
			return result, err
		}
	}
	defer flateWriters.Put(fw)
	if _, err := fw.Write(b.data); err != nil {
		return result, err
	}
	if err := fw.Close(); err != nil {
		return result, err
	}
	var tail [8]byte
	binary.LittleEndian.PutUint32(tail[0:4], crc32.ChecksumIEEE(b.data))
	binary.LittleEndian.PutUint32(tail[4:8], uint32(len(b.data)))
	buf.Write(tail[:])
	result.data = buf.Bytes()
	if len(result.data) > MaxBlockSize {
		return result, fmt.Errorf("compressed BGZF block of %v bytes exceeds maximum size", len(result.data))
	}
	binary.LittleEndian.PutUint16(result.data[16:18], uint16(len(result.data)-1))
	return result, nil
}

// NewWriter returns a Writer that compresses into w with the given
// compression level, as defined by compress/flate.
func NewWriter(w io.Writer, level int) *Writer {
	ctx, cancel := context.WithCancel(context.Background())
	writer := &Writer{
		w:       w,
		level:   level,
		ctx:     ctx,
		cancel:  cancel,
		pending: blockPool.Get().(*block),
		blocks:  make(chan *block, 1),
	}
	writer.pending.data = writer.pending.data[:0]
	writer.p.Source((*blockSink)(writer))
	writer.p.Add(
		pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data any) any {
			result, err := deflate(data.(*block), level)
			if err != nil {
				writer.p.SetErr(err)
			}
			return result
		})),
		pipeline.StrictOrd(pipeline.Receive(func(_ int, data any) any {
			b := data.(*block)
			if _, err := w.Write(b.data); err != nil {
				writer.p.SetErr(err)
			}
			b.data = b.data[:0]
			blockPool.Put(b)
			return nil
		})),
	)
	writer.wait.Add(1)
	go func() {
		defer writer.wait.Done()
		writer.p.RunWithContext(writer.ctx, writer.cancel)
	}()
	return writer
}

// uncompressedBlockSize leaves room for the header and trailer when a
// block does not compress at all.
const uncompressedBlockSize = MaxBlockSize - 1024

// send hands the pending block to the pipeline. It gives up once the
// pipeline has failed, because nothing fetches blocks anymore.
func (writer *Writer) send() (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = errors.New(fmt.Sprint(x))
		}
	}()
	select {
	case <-writer.ctx.Done():
		return writer.p.Err()
	case writer.blocks <- writer.pending:
	}
	writer.pending = blockPool.Get().(*block)
	writer.pending.data = writer.pending.data[:0]
	return nil
}

// Write implements io.Writer. After the underlying writer has failed,
// Write returns that error.
func (writer *Writer) Write(p []byte) (int, error) {
	if err := writer.p.Err(); err != nil {
		return 0, err
	}
	n := len(p)
	for len(p) > 0 {
		data := writer.pending.data
		k := min(len(p), uncompressedBlockSize-len(data))
		writer.pending.data = append(data, p[:k]...)
		p = p[k:]
		if len(writer.pending.data) == uncompressedBlockSize {
			if err := writer.send(); err != nil {
				return n - len(p) - k, err
			}
		}
	}
	return n, nil
}

// Close flushes the last block and writes the BGZF end-of-file
// marker. It does not close the underlying writer.
func (writer *Writer) Close() error {
	defer writer.cancel()
	if len(writer.pending.data) > 0 && writer.p.Err() == nil {
		if err := writer.send(); err != nil {
			close(writer.blocks)
			writer.wait.Wait()
			return err
		}
	}
	close(writer.blocks)
	writer.wait.Wait()
	if err := writer.p.Err(); err != nil {
		return err
	}
	_, err := writer.w.Write(eofBlock)
	return err
}
