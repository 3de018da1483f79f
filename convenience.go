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

package byteconv

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/SnellerInc/byteconv/bytesrc"
	"github.com/SnellerInc/byteconv/channel"
	"github.com/SnellerInc/byteconv/directbuf"
	"github.com/SnellerInc/byteconv/iostream"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/seq"
)

// ToByteBuffer converts x to a *bytes.Buffer.
func ToByteBuffer(x any, o ...Options) (*bytes.Buffer, error) {
	v, err := Convert(x, kind.Buffer, o...)
	if err != nil {
		return nil, err
	}
	return v.(*bytes.Buffer), nil
}

// ToByteArray converts x to a []byte.
func ToByteArray(x any, o ...Options) ([]byte, error) {
	v, err := Convert(x, kind.Bytes, o...)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// ToInputStream converts x to an *iostream.Stream.
func ToInputStream(x any, o ...Options) (*iostream.Stream, error) {
	v, err := Convert(x, kind.InputStream, o...)
	if err != nil {
		return nil, err
	}
	return v.(*iostream.Stream), nil
}

// ToReadableChannel converts x to a *channel.Readable.
func ToReadableChannel(x any, o ...Options) (*channel.Readable, error) {
	v, err := Convert(x, kind.ReadableChannel, o...)
	if err != nil {
		return nil, err
	}
	return v.(*channel.Readable), nil
}

// ToDirectByteBuffer converts x to a *directbuf.Buffer.
func ToDirectByteBuffer(x any, o ...Options) (*directbuf.Buffer, error) {
	v, err := Convert(x, kind.DirectBuffer, o...)
	if err != nil {
		return nil, err
	}
	return v.(*directbuf.Buffer), nil
}

// ToByteSource adapts x into a bytesrc.ByteSource, converting through
// the graph if x does not already satisfy it directly.
func ToByteSource(x any, o ...Options) (bytesrc.ByteSource, error) {
	if s, ok := bytesrc.AsSource(x); ok {
		return s, nil
	}
	v, err := Convert(x, kind.ByteSource, o...)
	if err != nil {
		return nil, err
	}
	s, ok := bytesrc.AsSource(v)
	if !ok {
		return nil, &kindMismatchError{want: kind.ByteSource, got: kind.KindOf(v)}
	}
	return s, nil
}

// ToByteSink adapts x into a bytesrc.ByteSink, converting through the
// graph if x does not already satisfy it directly.
func ToByteSink(x any, o ...Options) (bytesrc.ByteSink, error) {
	if s, ok := bytesrc.AsSink(x); ok {
		return s, nil
	}
	v, err := Convert(x, kind.ByteSink, o...)
	if err != nil {
		return nil, err
	}
	s, ok := bytesrc.AsSink(v)
	if !ok {
		return nil, &kindMismatchError{want: kind.ByteSink, got: kind.KindOf(v)}
	}
	return s, nil
}

// ToLineSeq materializes x as a lazy sequence of newline-delimited
// strings, via a reader: x is first converted to the "reader" Kind,
// then pulled one line at a time. The trailing newline (and a
// preceding carriage return, if present) is stripped from each line.
func ToLineSeq(x any, o ...Options) (*seq.Seq, error) {
	v, err := Convert(x, kind.BufioReader, o...)
	if err != nil {
		return nil, err
	}
	br := v.(*bufio.Reader)
	return seq.New(kind.String, func() (any, bool, error) {
		line, err := br.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, false, err
			}
			if line == "" {
				return nil, false, nil
			}
		}
		return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true, nil
	}), nil
}

type kindMismatchError struct {
	want, got kind.Kind
}

func (e *kindMismatchError) Error() string {
	return "byteconv: converted to " + e.got.String() + " but it does not implement " + e.want.String()
}
