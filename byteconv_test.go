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
	"bytes"
	"testing"

	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
)

func TestConvertStringToBytes(t *testing.T) {
	out, err := Convert("hello", kind.Bytes)
	if err != nil {
		t.Fatalf("Convert: %s", err)
	}
	if string(out.([]byte)) != "hello" {
		t.Fatalf("got %q", out)
	}
}

func TestConvertBytesToString(t *testing.T) {
	out, err := Convert([]byte("hello"), kind.String)
	if err != nil {
		t.Fatalf("Convert: %s", err)
	}
	if out.(string) != "hello" {
		t.Fatalf("got %q", out)
	}
}

func TestConvertAcceptsOptionalOptions(t *testing.T) {
	_, err := Convert("hi", kind.Bytes, Options{opts.Encoding: "not-a-real-encoding"})
	if err == nil {
		t.Fatalf("expected an encoding error to propagate through the top-level Convert")
	}
}

func TestTransferBetweenBuffers(t *testing.T) {
	src := bytes.NewBuffer([]byte("move me"))
	var dst bytes.Buffer
	if err := Transfer(src, &dst); err != nil {
		t.Fatalf("Transfer: %s", err)
	}
	if dst.String() != "move me" {
		t.Fatalf("got %q", dst.String())
	}
}

func TestPossibleConversionsFromStringCoversBuiltins(t *testing.T) {
	dsts := PossibleConversions(kind.String)
	want := []kind.Kind{kind.Bytes, kind.Buffer, kind.DirectBuffer, kind.InputStream}
	for _, w := range want {
		found := false
		for _, d := range dsts {
			if d.Equal(w) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("PossibleConversions(String) missing %s, got %v", w, dsts)
		}
	}
}

func TestPossibleConversionsAcceptsAValueToo(t *testing.T) {
	dsts := PossibleConversions("a string value")
	found := false
	for _, d := range dsts {
		if d.Equal(kind.Bytes) {
			found = true
		}
	}
	if !found {
		t.Fatalf("PossibleConversions(value) should behave like PossibleConversions(KindOf(value))")
	}
}

func TestConversionPathDirectEdge(t *testing.T) {
	path, ok := ConversionPath(kind.String, kind.Bytes)
	if !ok || len(path) != 2 {
		t.Fatalf("expected a direct 2-node path, got %v, %v", path, ok)
	}
}

func TestRegisterConversionExtendsTheGraph(t *testing.T) {
	src, dst := kind.Concrete("test-only-src"), kind.Concrete("test-only-dst")
	if _, ok := ConversionPath(src, dst); ok {
		t.Fatalf("path should not exist before registration")
	}
	RegisterConversion(src, dst, func(v any, _ opts.Options) (any, error) {
		return "converted", nil
	})

	path, ok := ConversionPath(src, dst)
	if !ok || len(path) != 2 {
		t.Fatalf("expected the newly registered edge to resolve, got %v, %v", path, ok)
	}
}

func TestRegisterTransferExtendsTheGraph(t *testing.T) {
	src, dst := kind.Concrete("xfer-test-src"), kind.Concrete("xfer-test-dst")
	called := false
	RegisterTransfer(src, dst, func(_, _ any, _ opts.Options) error {
		called = true
		return nil
	})
	fn, ok := defaultReg.Transfer(src, dst)
	if !ok {
		t.Fatalf("expected the transfer to be registered")
	}
	if err := fn(nil, nil, nil); err != nil {
		t.Fatalf("transfer fn: %s", err)
	}
	if !called {
		t.Fatalf("expected the registered transfer function to run")
	}
}
