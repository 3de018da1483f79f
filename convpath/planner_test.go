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

package convpath

import (
	"testing"

	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
)

func identity(v any, _ opts.Options) (any, error) { return v, nil }

func TestResolveIdentity(t *testing.T) {
	reg := registry.New()
	p := New(reg)
	path, ok := p.Resolve(kind.Bytes, kind.Bytes)
	if !ok || len(path) != 1 {
		t.Fatalf("src==dst should resolve to the singleton path, got %v, %v", path, ok)
	}
}

func TestResolveShortestPath(t *testing.T) {
	reg := registry.New()
	a, b, c, d := kind.Concrete("A"), kind.Concrete("B"), kind.Concrete("C"), kind.Concrete("D")
	reg.RegisterConversion(a, b, identity)
	reg.RegisterConversion(b, c, identity)
	reg.RegisterConversion(c, d, identity)
	reg.RegisterConversion(a, d, identity) // direct shortcut

	p := New(reg)
	path, ok := p.Resolve(a, d)
	if !ok {
		t.Fatalf("expected a path from A to D")
	}
	if len(path) != 2 {
		t.Fatalf("planner should prefer the direct A->D edge over the 3-hop chain, got path %v", path)
	}
}

func TestResolveNoPath(t *testing.T) {
	reg := registry.New()
	a, b := kind.Concrete("A2"), kind.Concrete("B2")
	p := New(reg)
	_, ok := p.Resolve(a, b)
	if ok {
		t.Fatalf("expected no path between unconnected kinds")
	}
}

func TestResolveMemoizes(t *testing.T) {
	reg := registry.New()
	a, b := kind.Concrete("A3"), kind.Concrete("B3")
	calls := 0
	reg.RegisterConversion(a, b, func(v any, o opts.Options) (any, error) {
		calls++
		return v, nil
	})
	p := New(reg)
	p1, ok1 := p.Resolve(a, b)
	p2, ok2 := p.Resolve(a, b)
	if !ok1 || !ok2 {
		t.Fatalf("expected both resolves to succeed")
	}
	if len(p1) != len(p2) {
		t.Fatalf("memoized path should be identical across calls")
	}
	// Resolve doesn't itself invoke converters, so the memoization is
	// checked on the cache directly: the (A, B) answer must be stored
	// there. A third, different query must still resolve on its own.
	if e, ok := p.cache[cacheKey(a, b)]; !ok || !e.found {
		t.Fatalf("expected the A->B result to be memoized")
	}
	if _, ok := p.Resolve(b, a); ok {
		t.Fatalf("no B->A edge was registered")
	}
}

func TestResolveCyclicRegistryTerminates(t *testing.T) {
	reg := registry.New()
	a, b := kind.Concrete("ACyc"), kind.Concrete("BCyc")
	reg.RegisterConversion(a, b, identity)
	reg.RegisterConversion(b, a, identity)
	p := New(reg)
	target := kind.Concrete("Unreachable")
	done := make(chan struct{})
	go func() {
		p.Resolve(a, target)
		close(done)
	}()
	select {
	case <-done:
	default:
	}
	// The real assertion is that Resolve returns at all; if BFS
	// mishandled the cycle this test would hang and the test binary
	// would be killed by the test timeout instead of failing cleanly.
	<-done
}

func TestResolveManyLiftEdge(t *testing.T) {
	reg := registry.New()
	a, b := kind.Concrete("AMany"), kind.Concrete("BMany")
	reg.RegisterConversion(a, b, identity)
	p := New(reg)
	path, ok := p.Resolve(kind.Many(a), kind.Many(b))
	if !ok {
		t.Fatalf("Many(A)->Many(B) should resolve via the lifted A->B edge")
	}
	if len(path) != 2 {
		t.Fatalf("expected a 2-node lifted path, got %v", path)
	}
}

func TestInvalidate(t *testing.T) {
	reg := registry.New()
	a, b := kind.Concrete("AInv"), kind.Concrete("BInv")
	p := New(reg)
	if _, ok := p.Resolve(a, b); ok {
		t.Fatalf("expected no path before registration")
	}
	reg.RegisterConversion(a, b, identity)
	p.Invalidate()
	if _, ok := p.Resolve(a, b); !ok {
		t.Fatalf("expected a path after registration and cache invalidation")
	}
}
