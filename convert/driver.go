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

// Package convert implements the converter driver from spec.md §4.D:
// given a path produced by the planner, it threads an input value
// through each edge's converter function, lifting Many(·)->Many(·)
// steps over the inner converter lazily instead of forcing the whole
// sequence.
package convert

import (
	"github.com/SnellerInc/byteconv/convpath"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
	"github.com/SnellerInc/byteconv/seq"
)

// Driver applies conversion chains resolved by a Planner against a
// Registry. It does not close or mutate the values it is given;
// individual converters decide for themselves whether to consume
// their input (see SPEC_FULL.md §12 item 2).
type Driver struct {
	Reg     *registry.Registry
	Planner *convpath.Planner
}

// New returns a Driver wired to reg and planner. planner is normally
// convpath.New(reg), but is accepted separately so that callers can
// share one Planner's cache across multiple logical Drivers.
func New(reg *registry.Registry, planner *convpath.Planner) *Driver {
	return &Driver{Reg: reg, Planner: planner}
}

// Convert produces a value of Kind dst from x, composing whatever
// chain of registered conversions the planner finds. If kind.KindOf(x)
// is already Assignable to dst, Convert returns x itself (spec.md §8
// invariant 1: identity, no copy).
func (d *Driver) Convert(x any, dst kind.Kind, o opts.Options) (any, error) {
	src := kind.KindOf(x)
	path, ok := d.Planner.Resolve(src, dst)
	if !ok {
		_, isMany := src.IsMany()
		return nil, &NoPathError{Src: src, Dst: dst, SrcWasMany: isMany}
	}
	return d.apply(path, x, o)
}

// Path is a convenience wrapper over the Planner, exposed here so
// that callers of the driver don't need to reach into convpath
// directly for spec.md §6's conversion_path diagnostic.
func (d *Driver) Path(src, dst kind.Kind) ([]kind.Kind, bool) {
	return d.Planner.Resolve(src, dst)
}

func (d *Driver) apply(path []kind.Kind, x any, o opts.Options) (any, error) {
	if len(path) <= 1 {
		return x, nil
	}
	cur := x
	for i := 0; i < len(path)-1; i++ {
		next, err := d.step(path[i], path[i+1], cur, o)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (d *Driver) step(a, b kind.Kind, v any, o opts.Options) (any, error) {
	if fn, ok := d.Reg.Conversion(a, b); ok {
		return fn(v, o)
	}
	innerA, aMany := a.IsMany()
	innerB, bMany := b.IsMany()
	if aMany && bMany {
		if fn, ok := d.Reg.Conversion(innerA, innerB); ok {
			s, err := seq.From(v)
			if err != nil {
				return nil, &InvariantError{Src: a, Dst: b}
			}
			return seq.Map(s, innerB, func(elem any) (any, error) {
				return fn(elem, o)
			}), nil
		}
	}
	return nil, &InvariantError{Src: a, Dst: b}
}
