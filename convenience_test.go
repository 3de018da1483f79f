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
	"io"
	"testing"
)

func TestToByteBuffer(t *testing.T) {
	buf, err := ToByteBuffer("hello")
	if err != nil {
		t.Fatalf("ToByteBuffer: %s", err)
	}
	if buf.String() != "hello" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestToByteArray(t *testing.T) {
	b, err := ToByteArray(bytes.NewBuffer([]byte("buf")))
	if err != nil {
		t.Fatalf("ToByteArray: %s", err)
	}
	if string(b) != "buf" {
		t.Fatalf("got %q", b)
	}
}

func TestToInputStream(t *testing.T) {
	s, err := ToInputStream([]byte("stream me"))
	if err != nil {
		t.Fatalf("ToInputStream: %s", err)
	}
	got, err := io.ReadAll(s)
	if err != nil || string(got) != "stream me" {
		t.Fatalf("got %q, err %v", got, err)
	}
}

func TestToReadableChannel(t *testing.T) {
	rc, err := ToReadableChannel([]byte("channel me"))
	if err != nil {
		t.Fatalf("ToReadableChannel: %s", err)
	}
	got, err := io.ReadAll(rc)
	if err != nil || string(got) != "channel me" {
		t.Fatalf("got %q, err %v", got, err)
	}
}

func TestToDirectByteBuffer(t *testing.T) {
	db, err := ToDirectByteBuffer([]byte("direct"))
	if err != nil {
		t.Fatalf("ToDirectByteBuffer: %s", err)
	}
	defer db.Close()
	if string(db.Remaining()) != "direct" {
		t.Fatalf("got %q", db.Remaining())
	}
}

func TestToByteSourceDirectAndConverted(t *testing.T) {
	// *bytes.Buffer already satisfies ByteSource directly.
	src, err := ToByteSource(bytes.NewBuffer([]byte("direct-src")))
	if err != nil {
		t.Fatalf("ToByteSource: %s", err)
	}
	b, err := src.TakeBytes(100, nil)
	if err != nil || string(b) != "direct-src" {
		t.Fatalf("got %q, err %v", b, err)
	}

	// a string must first be converted through the graph.
	src2, err := ToByteSource("converted-src")
	if err != nil {
		t.Fatalf("ToByteSource: %s", err)
	}
	b2, err := src2.TakeBytes(100, nil)
	if err != nil || string(b2) != "converted-src" {
		t.Fatalf("got %q, err %v", b2, err)
	}
}

func TestToByteSinkDirect(t *testing.T) {
	var buf bytes.Buffer
	sink, err := ToByteSink(&buf)
	if err != nil {
		t.Fatalf("ToByteSink: %s", err)
	}
	if err := sink.SendBytes([]byte("sunk"), nil); err != nil {
		t.Fatalf("SendBytes: %s", err)
	}
	if buf.String() != "sunk" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestToLineSeqSplitsOnNewlines(t *testing.T) {
	s, err := ToLineSeq("one\ntwo\r\nthree")
	if err != nil {
		t.Fatalf("ToLineSeq: %s", err)
	}
	var lines []string
	for {
		v, ok, err := s.Next()
		if err != nil {
			t.Fatalf("Next: %s", err)
		}
		if !ok {
			break
		}
		lines = append(lines, v.(string))
	}
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
