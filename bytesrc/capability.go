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

package bytesrc

import (
	"bytes"
	"io"
	"net"

	"github.com/SnellerInc/byteconv/channel"
	"github.com/SnellerInc/byteconv/directbuf"
)

// AsSource adapts v into a ByteSource if it is, or carries, one: a
// value that already implements ByteSource is returned as-is; a
// *bytes.Buffer or *directbuf.Buffer gets the position-advancing
// adapters above; a *channel.Readable, or a net.Conn, gets the
// single-read-per-call channel adapter ("ReadableByteChannel as
// ByteSource" in spec.md §4.F); any other io.Reader gets the
// fill-to-n adapter. This is the direct (non-graph) capability
// dispatch described in spec.md §4.F.
func AsSource(v any) (ByteSource, bool) {
	switch t := v.(type) {
	case ByteSource:
		return t, true
	case *bytes.Buffer:
		return NewBufferSource(t), true
	case *directbuf.Buffer:
		return NewDirectBufferSource(t), true
	case *channel.Readable:
		return NewConnSource(t), true
	case net.Conn:
		return NewConnSource(t), true
	case io.Reader:
		return NewReaderSource(t), true
	}
	return nil, false
}

// AsSink adapts v into a ByteSink.
func AsSink(v any) (ByteSink, bool) {
	switch t := v.(type) {
	case ByteSink:
		return t, true
	case *channel.Writable:
		return NewWriterSink(t), true
	case io.Writer:
		return NewWriterSink(t), true
	}
	return nil, false
}

// AsCloseable reports whether v implements Closeable.
func AsCloseable(v any) (Closeable, bool) {
	c, ok := v.(Closeable)
	return c, ok
}

// Close closes v if it implements Closeable, otherwise it is a no-op.
// It is used by the transfer driver's closing discipline (spec.md
// §5, "Closing discipline").
func Close(v any) error {
	if c, ok := AsCloseable(v); ok {
		return c.Close()
	}
	return nil
}
