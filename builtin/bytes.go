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

package builtin

import (
	"bytes"

	"github.com/SnellerInc/byteconv/directbuf"
	"github.com/SnellerInc/byteconv/iostream"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
	"github.com/SnellerInc/byteconv/seq"
)

// registerBytes wires the bytes/byte-buffer/direct-byte-buffer/
// input-stream edges from the spec.md §4.F table.
func registerBytes(reg *registry.Registry) {
	// bytes -> byte-buffer: wrap without copy.
	reg.RegisterConversion(kind.Bytes, kind.Buffer, func(v any, _ opts.Options) (any, error) {
		b := v.([]byte)
		return bytes.NewBuffer(b), nil
	})

	// bytes -> direct-byte-buffer: allocate len direct, copy, position <- 0.
	reg.RegisterConversion(kind.Bytes, kind.DirectBuffer, func(v any, _ opts.Options) (any, error) {
		b := v.([]byte)
		buf, err := directbuf.Alloc(len(b))
		if err != nil {
			return nil, err
		}
		buf.Put(b)
		buf.Flip()
		return buf, nil
	})

	// bytes -> input-stream: wrap as an in-memory stream.
	reg.RegisterConversion(kind.Bytes, kind.InputStream, func(v any, _ opts.Options) (any, error) {
		b := v.([]byte)
		return iostream.Wrap(bytes.NewReader(b)), nil
	})

	// byte-buffer -> bytes: the backing array of a *bytes.Buffer
	// fully covers its own Bytes() view, so this is a zero-copy
	// peek; Bytes() does not advance the buffer's read offset, so
	// the buffer's position is left untouched, per spec.md §4.F.
	reg.RegisterConversion(kind.Buffer, kind.Bytes, func(v any, _ opts.Options) (any, error) {
		b := v.(*bytes.Buffer)
		return b.Bytes(), nil
	})

	// Many(byte-buffer) -> byte-buffer: sum remaining lengths,
	// allocate, copy-put each, flip. This is the dedicated reducer
	// called out in the design notes -- it is not a Many(·) lift.
	reg.RegisterConversion(kind.Many(kind.Buffer), kind.Buffer, func(v any, o opts.Options) (any, error) {
		s, err := seq.From(v)
		if err != nil {
			return nil, err
		}
		bufs, err := seq.Collect(s)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, b := range bufs {
			total += b.(*bytes.Buffer).Len()
		}
		out := bytes.NewBuffer(make([]byte, 0, total))
		for _, b := range bufs {
			buf := b.(*bytes.Buffer)
			if _, err := out.Write(buf.Bytes()); err != nil {
				return nil, err
			}
		}
		return out, nil
	})

	// direct-byte-buffer -> bytes: copy Remaining() into a tight
	// slice; the direct buffer's own position advances to its limit,
	// unlike the byte-buffer edge above, which leaves its position
	// untouched.
	reg.RegisterConversion(kind.DirectBuffer, kind.Bytes, func(v any, _ opts.Options) (any, error) {
		b := v.(*directbuf.Buffer)
		rem := b.Remaining()
		out := make([]byte, len(rem))
		copy(out, rem)
		b.Advance(len(rem))
		return out, nil
	})
}
