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

// Package iostream gives the "input-stream" Kind a concrete Go
// representation: a named wrapper around whatever io.Reader is
// actually backing it (an in-memory []byte via bytes.NewReader, a
// net.Conn, another stream, ...). The wrapper exists only so that
// kind.KindOf can tell "a value deliberately converted into the
// input-stream role" apart from a bare io.Reader that merely happens
// to satisfy the interface.
package iostream

import "io"

// Stream is the concrete representation of the "input-stream" Kind.
type Stream struct {
	io.Reader
}

// Wrap adapts any io.Reader into a Stream.
func Wrap(r io.Reader) *Stream {
	return &Stream{Reader: r}
}
