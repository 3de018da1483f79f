// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package directbuf provides a "direct" (off-heap) byte buffer,
// the Go analogue of java.nio.ByteBuffer.allocateDirect.
//
// A Buffer owns memory obtained outside the Go heap via an anonymous
// mmap on platforms that support it (see direct_unix.go); elsewhere it
// falls back to an ordinary heap slice (see direct_other.go). Either
// way the Buffer must be released with Close once it is no longer
// needed.
package directbuf

// Buffer is a fixed-capacity off-heap byte buffer with a read/write
// position, mirroring the subset of java.nio.ByteBuffer that the
// conversion graph needs: Put, the backing Bytes, Remaining, Advance,
// and Flip to move from write mode to read mode.
type Buffer struct {
	mem []byte
	pos int
	lim int
}

// Alloc allocates a new direct buffer with the given capacity.
func Alloc(n int) (*Buffer, error) {
	mem, err := allocDirect(n)
	if err != nil {
		return nil, err
	}
	return &Buffer{mem: mem, pos: 0, lim: n}, nil
}

// Put copies src into the buffer starting at the current position
// and advances the position by len(src). It panics if src does not
// fit; callers are expected to size the buffer with Alloc(n) first,
// exactly as the built-in converters in this module do.
func (b *Buffer) Put(src []byte) {
	n := copy(b.mem[b.pos:b.lim], src)
	if n != len(src) {
		panic("directbuf: Put overflows buffer capacity")
	}
	b.pos += n
}

// Flip prepares the buffer for reading: the limit becomes the
// current position, and the position resets to zero.
func (b *Buffer) Flip() {
	b.lim = b.pos
	b.pos = 0
}

// Bytes returns the backing storage from the start up to the limit
// (after Flip, everything that was written). Callers that want only
// the readable remainder should use Remaining.
func (b *Buffer) Bytes() []byte { return b.mem[:b.lim] }

// Remaining returns the bytes between the current position and the
// limit, i.e. what is left to read (after Flip) or the room left to
// write (before Flip).
func (b *Buffer) Remaining() []byte { return b.mem[b.pos:b.lim] }

// Position returns the current position.
func (b *Buffer) Position() int { return b.pos }

// Advance moves the position forward by n, as if n bytes had just
// been read from Remaining(). It panics if n exceeds the number of
// remaining bytes.
func (b *Buffer) Advance(n int) {
	if b.pos+n > b.lim {
		panic("directbuf: Advance past limit")
	}
	b.pos += n
}

// Len returns the buffer's capacity.
func (b *Buffer) Len() int { return len(b.mem) }

// Close releases the underlying memory. Close is idempotent.
func (b *Buffer) Close() error {
	if b.mem == nil {
		return nil
	}
	err := freeDirect(b.mem)
	b.mem = nil
	return err
}
