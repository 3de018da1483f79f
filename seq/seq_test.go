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

package seq

import (
	"testing"

	"github.com/SnellerInc/byteconv/kind"
)

func TestFromSlice(t *testing.T) {
	s := FromSlice(kind.String, []any{"a", "b", "c"})
	got, err := Collect(s)
	if err != nil {
		t.Fatalf("Collect: %s", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("unexpected collected values: %v", got)
	}
}

func TestFromPlainSlice(t *testing.T) {
	s, err := From([]string{"x", "y"})
	if err != nil {
		t.Fatalf("From: %s", err)
	}
	if !s.ElemKind().Equal(kind.String) {
		t.Fatalf("ElemKind = %s, want string", s.ElemKind())
	}
}

func TestFromRejectsNonSlice(t *testing.T) {
	if _, err := From(42); err == nil {
		t.Fatalf("From(non-slice) should error")
	}
}

func TestMapIsLazy(t *testing.T) {
	pulls := 0
	s := New(kind.String, func() (any, bool, error) {
		pulls++
		if pulls > 5 {
			return nil, false, nil
		}
		return pulls, true, nil
	})
	mapped := Map(s, kind.String, func(v any) (any, error) {
		return v.(int) * 2, nil
	})

	// Force only the first two elements; the underlying sequence
	// must not have been pulled more than twice.
	v1, ok1, err1 := mapped.Next()
	v2, ok2, err2 := mapped.Next()
	if err1 != nil || err2 != nil || !ok1 || !ok2 {
		t.Fatalf("unexpected error/ok pulling first two elements")
	}
	if v1 != 2 || v2 != 4 {
		t.Fatalf("unexpected mapped values: %v, %v", v1, v2)
	}
	if pulls != 2 {
		t.Fatalf("Map forced %d underlying pulls for 2 consumed elements, want 2", pulls)
	}
}

func TestCollectPropagatesError(t *testing.T) {
	boom := errBoom{}
	s := New(kind.Bytes, func() (any, bool, error) {
		return nil, false, boom
	})
	_, err := Collect(s)
	if err != boom {
		t.Fatalf("Collect should surface the pull error, got %v", err)
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
