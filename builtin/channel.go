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
	"io"
	"os"

	"github.com/SnellerInc/byteconv/bytesrc"
	"github.com/SnellerInc/byteconv/channel"
	"github.com/SnellerInc/byteconv/iostream"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
	"github.com/SnellerInc/byteconv/seq"
)

// registerChannel wires the readable-channel/writable-channel edges
// from spec.md §4.F. Go has no single ReadableByteChannel/
// WritableByteChannel type; package channel supplies the named
// wrappers these edges target (see its doc comment).
func registerChannel(reg *registry.Registry) {
	// readable-channel -> input-stream: platform bridge; both are
	// just a named wrapper around an io.Reader in this module.
	reg.RegisterConversion(kind.ReadableChannel, kind.InputStream, func(v any, _ opts.Options) (any, error) {
		c := v.(*channel.Readable)
		return iostream.Wrap(c), nil
	})

	// input-stream -> readable-channel: platform bridge, the other
	// direction.
	reg.RegisterConversion(kind.InputStream, kind.ReadableChannel, func(v any, _ opts.Options) (any, error) {
		s := v.(*iostream.Stream)
		return channel.WrapReadable(s), nil
	})

	// readable-channel -> Many(byte-buffer): lazy; while the channel
	// is open, pull one chunk of chunk-size and recurse. Terminates
	// when the channel closes (TakeBytes returns nil).
	reg.RegisterConversion(kind.ReadableChannel, kind.Many(kind.Buffer), func(v any, o opts.Options) (any, error) {
		c := v.(*channel.Readable)
		src := bytesrc.NewConnSource(c)
		chunk := o.ChunkSizeOr(opts.DefaultSeqChunkSize)
		return seq.New(kind.Buffer, func() (any, bool, error) {
			b, err := src.TakeBytes(chunk, o)
			if err != nil {
				return nil, false, err
			}
			if b == nil {
				return nil, false, nil
			}
			return bytes.NewBuffer(b), true, nil
		}), nil
	})

	// Many(byte-buffer) -> readable-channel: open a pipe; a single
	// background producer writes each buffer to the sink side until
	// the sequence ends or the sink closes, then closes its end.
	// Backpressure comes from io.Pipe's synchronous rendezvous.
	reg.RegisterConversion(kind.Many(kind.Buffer), kind.ReadableChannel, func(v any, o opts.Options) (any, error) {
		s, err := seq.From(v)
		if err != nil {
			return nil, err
		}
		pr, pw := io.Pipe()
		logger := o.Logger()
		go func() {
			for {
				elem, ok, err := s.Next()
				if err != nil {
					pw.CloseWithError(err)
					return
				}
				if !ok {
					pw.Close()
					return
				}
				buf := elem.(*bytes.Buffer)
				if _, err := pw.Write(buf.Bytes()); err != nil {
					logger.Printf("byteconv: pipe producer stopping early: %s", err)
					pw.CloseWithError(err)
					return
				}
			}
		}()
		return channel.WrapReadable(pr), nil
	})

	// file -> readable-channel / file -> writable-channel: in the
	// source library these open the underlying file; in Go, File is
	// already an open *os.File (the caller chose the open mode via
	// os.Open/os.OpenFile), so these edges re-expose the same handle
	// under the channel Kind rather than opening it a second time.
	// append? is therefore the caller's concern at os.OpenFile time,
	// not this converter's (see DESIGN.md).
	reg.RegisterConversion(kind.File, kind.ReadableChannel, func(v any, _ opts.Options) (any, error) {
		f := v.(*os.File)
		return channel.WrapReadable(f), nil
	})
	reg.RegisterConversion(kind.File, kind.WritableChannel, func(v any, _ opts.Options) (any, error) {
		f := v.(*os.File)
		return channel.WrapWritable(f), nil
	})
}
