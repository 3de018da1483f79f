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

package directbuf

import "testing"

func TestPutFlipRemaining(t *testing.T) {
	b, err := Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %s", err)
	}
	defer b.Close()

	b.Put([]byte("abcd"))
	if b.Position() != 4 {
		t.Fatalf("Position after Put = %d, want 4", b.Position())
	}
	b.Flip()
	if b.Position() != 0 {
		t.Fatalf("Position after Flip = %d, want 0", b.Position())
	}
	if string(b.Remaining()) != "abcd" {
		t.Fatalf("Remaining = %q, want %q", b.Remaining(), "abcd")
	}
}

func TestAdvance(t *testing.T) {
	b, _ := Alloc(4)
	defer b.Close()
	b.Put([]byte("abcd"))
	b.Flip()
	b.Advance(2)
	if string(b.Remaining()) != "cd" {
		t.Fatalf("Remaining after Advance(2) = %q, want %q", b.Remaining(), "cd")
	}
}

func TestAdvancePastLimitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Advance past the limit to panic")
		}
	}()
	b, _ := Alloc(2)
	defer b.Close()
	b.Put([]byte("ab"))
	b.Flip()
	b.Advance(3)
}

func TestPutOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Put beyond capacity to panic")
		}
	}()
	b, _ := Alloc(2)
	defer b.Close()
	b.Put([]byte("abc"))
}

func TestCloseIsIdempotent(t *testing.T) {
	b, _ := Alloc(4)
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %s", err)
	}
}

func TestLenIsCapacityNotRemaining(t *testing.T) {
	b, _ := Alloc(10)
	defer b.Close()
	b.Put([]byte("abc"))
	b.Flip()
	if b.Len() != 10 {
		t.Fatalf("Len = %d, want 10 (capacity, independent of position/limit)", b.Len())
	}
}
