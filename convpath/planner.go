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

// Package convpath implements the path planner from spec.md §4.C: it
// resolves a (src, dst) Kind pair into the shortest chain of
// registered conversion edges, searching over the "effective"
// endpoints produced by assignability and capability expansion, and
// memoizing results for the lifetime of the Planner.
package convpath

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/registry"
)

// Planner resolves (src, dst) pairs into conversion chains against a
// fixed Registry, caching the result of every query it has already
// answered. The zero value is not usable; construct one with New.
type Planner struct {
	reg *registry.Registry

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	path  []kind.Kind
	found bool
}

// New returns a Planner over reg. Because reg is expected to be
// effectively frozen during normal operation (spec.md §5, "Shared
// resources"), the Planner's cache is valid for its own lifetime; if
// reg changes dynamically, construct a fresh Planner or call
// Invalidate.
func New(reg *registry.Registry) *Planner {
	return &Planner{reg: reg, cache: make(map[string]cacheEntry)}
}

// Invalidate drops the memoization cache. Call this after a dynamic
// registration against the same underlying Registry.
func (p *Planner) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]cacheEntry)
}

func cacheKey(src, dst kind.Kind) string {
	return src.Key() + "->" + dst.Key()
}

// Resolve returns the shortest chain of Kinds [k0, k1, ..., kn] with
// k0 assignable from src and kn reachable as dst, such that each
// adjacent pair is connected by a registered conversion edge (direct,
// or a Many(·) lifting of one). If src is directly assignable to
// dst, Resolve returns the singleton path [src] (the driver performs
// an identity pass in that case). Resolve reports found=false if no
// path exists.
func (p *Planner) Resolve(src, dst kind.Kind) (path []kind.Kind, found bool) {
	key := cacheKey(src, dst)
	p.mu.Lock()
	if e, ok := p.cache[key]; ok {
		p.mu.Unlock()
		return e.path, e.found
	}
	p.mu.Unlock()

	path, found = p.resolveUncached(src, dst)

	p.mu.Lock()
	p.cache[key] = cacheEntry{path: path, found: found}
	p.mu.Unlock()
	return path, found
}

func (p *Planner) resolveUncached(src, dst kind.Kind) ([]kind.Kind, bool) {
	if kind.Assignable(src, dst) {
		return []kind.Kind{src}, true
	}

	candidates := p.reg.Nodes()
	slices.SortFunc(candidates, func(a, b kind.Kind) bool { return a.Key() < b.Key() })

	sources := kind.ValidSources(src, candidates)
	dests := kind.ValidDestinations(dst)
	slices.SortFunc(sources, func(a, b kind.Kind) bool { return a.Key() < b.Key() })
	slices.SortFunc(dests, func(a, b kind.Kind) bool { return a.Key() < b.Key() })

	var best []kind.Kind
	for _, s := range sources {
		for _, d := range dests {
			path, ok := bfsPath(p.reg, s, d)
			if !ok {
				continue
			}
			if best == nil || len(path) < len(best) {
				best = path
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// neighbors returns the nodes directly reachable from u via a
// registered conversion edge: the keys of conversions[u], plus -- if
// u is Many(v) -- the keys of conversions[v], each wrapped in
// Many(·), per spec.md §4.C step 2.
func neighbors(reg *registry.Registry, u kind.Kind) []kind.Kind {
	out := reg.ConversionNeighbors(u)
	if inner, ok := u.IsMany(); ok {
		for _, n := range reg.ConversionNeighbors(inner) {
			out = append(out, kind.Many(n))
		}
	}
	return out
}

// bfsPath finds the shortest node sequence from start to target using
// breadth-first search over the conversion graph, refusing to
// revisit nodes already explored so that cyclic registries still
// terminate.
func bfsPath(reg *registry.Registry, start, target kind.Kind) ([]kind.Kind, bool) {
	if start.Equal(target) {
		return []kind.Kind{start}, true
	}
	visited := map[string]bool{start.Key(): true}
	parent := make(map[string]kind.Kind)
	queue := []kind.Kind{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighbors(reg, u) {
			vk := v.Key()
			if visited[vk] {
				continue
			}
			visited[vk] = true
			parent[vk] = u
			if v.Equal(target) {
				return reconstruct(parent, start, v), true
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}

func reconstruct(parent map[string]kind.Kind, start, target kind.Kind) []kind.Kind {
	path := []kind.Kind{target}
	cur := target
	for !cur.Equal(start) {
		p := parent[cur.Key()]
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path
}
