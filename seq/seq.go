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

// Package seq implements Many(K): a lazy, forward-only sequence of
// values of a single Kind. Elements are boxed as any so that the
// conversion driver can lift an A->B converter to a Many(A)->Many(B)
// converter uniformly, without generating a copy of every converter
// per element type (see spec.md's design notes on "Many(·) lifting").
package seq

import (
	"fmt"
	"reflect"

	"github.com/SnellerInc/byteconv/kind"
)

// NextFunc produces the next element of a sequence. It returns
// ok=false (with a nil error) at a clean end of sequence, or a
// non-nil error if the pull itself failed.
type NextFunc func() (v any, ok bool, err error)

// Seq is a lazy cursor over values of a single Kind. It satisfies the
// structural "manyValue" contract that kind.KindOf uses to recognize
// Many(·) values.
type Seq struct {
	elem kind.Kind
	next NextFunc
}

// New constructs a Seq whose elements have Kind elem, pulled lazily
// via next.
func New(elem kind.Kind, next NextFunc) *Seq {
	return &Seq{elem: elem, next: next}
}

// ElemKind returns the Kind of the sequence's elements; kind.KindOf
// reports such a value's own Kind as Many(ElemKind()).
func (s *Seq) ElemKind() kind.Kind { return s.elem }

// Next pulls the next element.
func (s *Seq) Next() (any, bool, error) { return s.next() }

// Map lazily applies f to every element of s, producing a sequence of
// Kind dstElem. Forcing the first k elements of the result consumes
// at most k elements of s, matching the streaming invariant in
// spec.md §8 item 3.
func Map(s *Seq, dstElem kind.Kind, f func(any) (any, error)) *Seq {
	return New(dstElem, func() (any, bool, error) {
		v, ok, err := s.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		out, err := f(v)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	})
}

// FromSlice adapts an already-in-memory []any (each of Kind elem)
// into a Seq, for interop with the "generic object-array-like
// container" case in kind.KindOf.
func FromSlice(elem kind.Kind, xs []any) *Seq {
	i := 0
	return New(elem, func() (any, bool, error) {
		if i >= len(xs) {
			return nil, false, nil
		}
		v := xs[i]
		i++
		return v, true, nil
	})
}

// From adapts v into a *Seq: a value already of that type is
// returned unchanged (preserving its laziness); any other slice is
// wrapped via FromSlice, boxing its elements without forcing more
// than the first one to determine the element Kind. From reports an
// error if v is neither a *Seq nor a slice.
func From(v any) (*Seq, error) {
	if s, ok := v.(*Seq); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("seq: %T is not a Many(·) value", v)
	}
	elemKind := kind.Concrete("unknown")
	if rv.Len() > 0 {
		elemKind = kind.KindOf(rv.Index(0).Interface())
	}
	xs := make([]any, rv.Len())
	for i := range xs {
		xs[i] = rv.Index(i).Interface()
	}
	return FromSlice(elemKind, xs), nil
}

// Collect drains s into a slice. Intended for tests and for the
// dedicated Many(byte-buffer)->byte-buffer reducer, which is not a
// lift and needs every element.
func Collect(s *Seq) ([]any, error) {
	var out []any
	for {
		v, ok, err := s.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
