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

// Package bytesrc implements the three minimal capability contracts
// from spec.md §3 -- ByteSource, ByteSink, Closeable -- plus the
// adapters that let the generic pump in package xfer drive ordinary
// Go I/O types (io.Reader, io.Writer, net.Conn, *bytes.Buffer,
// *directbuf.Buffer) through them.
package bytesrc

import (
	"bytes"
	"io"

	"github.com/SnellerInc/byteconv/directbuf"
	"github.com/SnellerInc/byteconv/opts"
)

// ByteSource supports pulling a chunk of up to n bytes. It returns
// (nil, nil) at end-of-stream. Per the two-stage EOF rule resolved in
// SPEC_FULL.md §12 item 1, a short, non-nil chunk on the read that
// first observes EOF is not itself end-of-stream; only a subsequent
// nil return is.
type ByteSource interface {
	TakeBytes(n int, o opts.Options) ([]byte, error)
}

// ByteSink supports pushing a chunk of bytes.
type ByteSink interface {
	SendBytes(b []byte, o opts.Options) error
}

// Closeable is anything with an idempotent Close.
type Closeable interface {
	Close() error
}

// readerSource adapts an io.Reader into a ByteSource that fully
// fills the requested chunk size by looping Read until either the
// buffer is full or EOF, mirroring the teacher's own pattern of
// looping a partial read to completion (see aws/s3.Uploader's part
// accounting in the teacher repo for the same "loop until full or
// EOF" shape applied to HTTP bodies).
type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a ByteSource backed by r, playing the role
// of "InputStream as ByteSource" in spec.md §4.F.
func NewReaderSource(r io.Reader) ByteSource {
	return readerSource{r: r}
}

func (s readerSource) TakeBytes(n int, _ opts.Options) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	total := 0
	for total < n {
		k, err := s.r.Read(buf[total:])
		total += k
		if err != nil {
			if err == io.EOF {
				if total == 0 {
					return nil, nil
				}
				out := make([]byte, total)
				copy(out, buf[:total])
				return out, nil
			}
			return nil, err
		}
		if k == 0 {
			// a well-behaved Reader shouldn't do this
			// without also returning io.EOF, but guard
			// against spinning forever if one does.
			break
		}
	}
	return buf[:total], nil
}

// connSource adapts a "readable channel"-like type (anything with a
// plain Read, treated as making partial progress per call rather
// than being looped to completion) into a ByteSource, playing the
// role of "ReadableByteChannel as ByteSource" in spec.md §4.F:
// allocate an n-byte buffer, read once, return the prefix actually
// filled (or nil at EOF with no bytes read).
type connSource struct {
	r io.Reader
}

// NewConnSource returns a ByteSource that performs a single Read per
// TakeBytes call rather than looping to fill n, for channel-like
// sources where a short read is progress, not EOF.
func NewConnSource(r io.Reader) ByteSource {
	return connSource{r: r}
}

func (s connSource) TakeBytes(n int, _ opts.Options) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	k, err := s.r.Read(buf)
	if k > 0 {
		return buf[:k], nil
	}
	if err == nil || err == io.EOF {
		return nil, nil
	}
	return nil, err
}

// bufferSource adapts a *bytes.Buffer into a ByteSource: return a
// sliced view of at most n remaining bytes, advancing position.
type bufferSource struct {
	b *bytes.Buffer
}

func NewBufferSource(b *bytes.Buffer) ByteSource { return bufferSource{b: b} }

func (s bufferSource) TakeBytes(n int, _ opts.Options) ([]byte, error) {
	if s.b.Len() == 0 {
		return nil, nil
	}
	if n > s.b.Len() {
		n = s.b.Len()
	}
	return s.b.Next(n), nil
}

// directBufferSource adapts a *directbuf.Buffer into a ByteSource
// the same way, over its Remaining() window.
type directBufferSource struct {
	b *directbuf.Buffer
}

func NewDirectBufferSource(b *directbuf.Buffer) ByteSource { return directBufferSource{b: b} }

func (s directBufferSource) TakeBytes(n int, _ opts.Options) ([]byte, error) {
	rem := s.b.Remaining()
	if len(rem) == 0 {
		return nil, nil
	}
	if n > len(rem) {
		n = len(rem)
	}
	out := append([]byte(nil), rem[:n]...)
	s.b.Advance(n)
	return out, nil
}

// writerSink adapts any io.Writer into a ByteSink, playing the role
// of "OutputStream/WritableByteChannel as ByteSink" in spec.md §4.F.
type writerSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) ByteSink { return writerSink{w: w} }

func (s writerSink) SendBytes(b []byte, _ opts.Options) error {
	_, err := s.w.Write(b)
	return err
}
