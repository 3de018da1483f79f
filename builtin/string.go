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
	"bufio"
	"io"
	"strings"

	"github.com/SnellerInc/byteconv/iostream"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
)

func checkEncoding(o opts.Options) error {
	enc := o.String(opts.Encoding, opts.DefaultEncoding)
	if enc != "utf-8" && enc != "UTF-8" && enc != "utf8" {
		return &EncodingError{Encoding: enc}
	}
	return nil
}

// registerString wires the string/bytes/reader/char-sequence edges
// from spec.md §4.F. Only "utf-8" is implemented (see EncodingError);
// Go strings and []byte are already UTF-8, so encode/decode here is
// a validity check plus a conversion, never a real transcode.
func registerString(reg *registry.Registry) {
	// string -> bytes: encode under encoding.
	reg.RegisterConversion(kind.String, kind.Bytes, func(v any, o opts.Options) (any, error) {
		if err := checkEncoding(o); err != nil {
			return nil, err
		}
		return []byte(v.(string)), nil
	})

	// bytes -> string: decode under encoding.
	reg.RegisterConversion(kind.Bytes, kind.String, func(v any, o opts.Options) (any, error) {
		if err := checkEncoding(o); err != nil {
			return nil, err
		}
		return string(v.([]byte)), nil
	})

	// input-stream -> reader: a buffered reader over the decoding
	// stream. encoding is validated the same way; the byte-level
	// framing bufio.Reader provides is encoding-independent once
	// utf-8 is the only supported table.
	reg.RegisterConversion(kind.InputStream, kind.BufioReader, func(v any, o opts.Options) (any, error) {
		if err := checkEncoding(o); err != nil {
			return nil, err
		}
		s := v.(*iostream.Stream)
		return bufio.NewReader(s), nil
	})

	// reader -> char-sequence: pull 1024-character chunks into a
	// builder until EOF.
	reg.RegisterConversion(kind.BufioReader, kind.RuneSeq, func(v any, _ opts.Options) (any, error) {
		r := v.(*bufio.Reader)
		var b strings.Builder
		chunk := make([]rune, 0, 1024)
		for {
			chunk = chunk[:0]
			for i := 0; i < 1024; i++ {
				ru, _, err := r.ReadRune()
				if err != nil {
					if err == io.EOF {
						break
					}
					return nil, err
				}
				chunk = append(chunk, ru)
			}
			if len(chunk) == 0 {
				break
			}
			for _, ru := range chunk {
				b.WriteRune(ru)
			}
			if len(chunk) < 1024 {
				break
			}
		}
		return b.String(), nil
	})

	// char-sequence -> string: materialize. RuneSeq's Go
	// representation already is a string (see SPEC_FULL.md §13), so
	// this is the identity pass the Kind split still requires an
	// explicit edge for.
	reg.RegisterConversion(kind.RuneSeq, kind.String, func(v any, _ opts.Options) (any, error) {
		return v.(string), nil
	})
}
