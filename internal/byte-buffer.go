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

package internal

import "sync"

const initialBufferSize = 64 * 1024

var bufPool = sync.Pool{New: func() any {
	buf := make([]byte, 0, initialBufferSize)
	return &buf
}}

// ReserveByteBuffer fetches an empty byte slice from an internal
// sync.Pool, or makes a new one. Return it with ReleaseByteBuffer.
func ReserveByteBuffer() *[]byte {
	buf := bufPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// ReleaseByteBuffer returns the given byte slice to the internal
// sync.Pool. The slice must not be used afterwards.
func ReleaseByteBuffer(buf *[]byte) {
	bufPool.Put(buf)
}
