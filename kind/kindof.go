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

package kind

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"reflect"

	"github.com/SnellerInc/byteconv/channel"
	"github.com/SnellerInc/byteconv/directbuf"
	"github.com/SnellerInc/byteconv/iostream"
)

// manyValue is satisfied by any lazy sequence implementation (see
// package seq) without kind needing to import it back; this is the
// structural half of the open type-dispatch model described in the
// design notes.
type manyValue interface {
	ElemKind() Kind
}

var bytesSliceType = reflect.TypeOf([]byte(nil))

// KindOf returns the Kind of v. If v is an in-memory ordered
// sequence (anything satisfying manyValue, or a non-[]byte slice),
// KindOf returns Many(KindOf(first element)) without forcing the
// sequence beyond that first element.
func KindOf(v any) Kind {
	if v == nil {
		return Concrete("nil")
	}
	if m, ok := v.(manyValue); ok {
		return Many(m.ElemKind())
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type() != bytesSliceType {
		if rv.Len() == 0 {
			return Many(Concrete("unknown"))
		}
		return Many(KindOf(rv.Index(0).Interface()))
	}
	switch v.(type) {
	case []byte:
		return Bytes
	case string:
		return String
	case *bytes.Buffer:
		return Buffer
	case *directbuf.Buffer:
		return DirectBuffer
	case *os.File:
		return File
	case *bufio.Reader:
		return BufioReader
	case *iostream.Stream:
		return InputStream
	case *channel.Readable:
		return ReadableChannel
	case *channel.Writable:
		return WritableChannel
	}
	if _, ok := v.(io.ReadCloser); ok {
		return ReadCloser
	}
	if _, ok := v.(io.Reader); ok {
		return Reader
	}
	if _, ok := v.(io.Writer); ok {
		return Writer
	}
	return Concrete(reflect.TypeOf(v).String())
}
