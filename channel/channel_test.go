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

package channel

import (
	"bytes"
	"io"
	"testing"
)

func TestWrapReadablePreservesRealCloser(t *testing.T) {
	rc := &countingReadCloser{Reader: bytes.NewReader([]byte("abc"))}
	w := WrapReadable(rc)
	if _, err := io.ReadAll(w); err != nil {
		t.Fatalf("ReadAll: %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
	if rc.closed != 1 {
		t.Fatalf("WrapReadable should forward Close to the underlying ReadCloser, got %d calls", rc.closed)
	}
}

func TestWrapReadableNopClosesBareReader(t *testing.T) {
	w := WrapReadable(bytes.NewReader([]byte("abc")))
	if err := w.Close(); err != nil {
		t.Fatalf("Close on a bare io.Reader should be a no-op, got %s", err)
	}
}

func TestWrapWritablePreservesRealCloser(t *testing.T) {
	var buf bytes.Buffer
	wc := &countingWriteCloser{Buffer: &buf}
	w := WrapWritable(wc)
	if _, err := w.Write([]byte("xyz")); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
	if buf.String() != "xyz" {
		t.Fatalf("got %q", buf.String())
	}
	if wc.closed != 1 {
		t.Fatalf("WrapWritable should forward Close, got %d calls", wc.closed)
	}
}

func TestWrapWritableNopClosesBareWriter(t *testing.T) {
	var buf bytes.Buffer
	w := WrapWritable(&buf)
	if err := w.Close(); err != nil {
		t.Fatalf("Close on a bare io.Writer should be a no-op, got %s", err)
	}
}

type countingReadCloser struct {
	*bytes.Reader
	closed int
}

func (c *countingReadCloser) Close() error { c.closed++; return nil }

type countingWriteCloser struct {
	*bytes.Buffer
	closed int
}

func (c *countingWriteCloser) Close() error { c.closed++; return nil }
