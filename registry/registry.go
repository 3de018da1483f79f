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

// Package registry holds the append-only mapping of direct
// conversion and transfer entries described in spec.md §3-4.B: a
// pair of (src-kind, dst-kind) -> function tables. Entries are
// registered at construction time; registration is idempotent on an
// identical (src, dst) pair, with later registrations replacing
// earlier ones.
package registry

import (
	"sync"

	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
)

// ConvFunc converts a value from one Kind to another.
type ConvFunc func(v any, o opts.Options) (any, error)

// TransferFunc moves bytes from source to sink directly, without an
// intermediate return value.
type TransferFunc func(source, sink any, o opts.Options) error

type edge[F any] struct {
	dst kind.Kind
	fn  F
}

// Registry is the process-wide (or, for tests, a private) store of
// direct converters and transfers. The zero Registry is not usable;
// construct one with New.
type Registry struct {
	mu          sync.RWMutex
	conversions map[string]map[string]edge[ConvFunc]
	transfers   map[string]map[string]edge[TransferFunc]
	nodes       map[string]kind.Kind // every Kind that appears as a src or dst
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		conversions: make(map[string]map[string]edge[ConvFunc]),
		transfers:   make(map[string]map[string]edge[TransferFunc]),
		nodes:       make(map[string]kind.Kind),
	}
}

func (r *Registry) addNode(k kind.Kind) {
	r.nodes[k.Key()] = k
}

// RegisterConversion registers a direct converter from src to dst,
// replacing any existing entry for the same pair.
func (r *Registry) RegisterConversion(src, dst kind.Kind, fn ConvFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addNode(src)
	r.addNode(dst)
	m := r.conversions[src.Key()]
	if m == nil {
		m = make(map[string]edge[ConvFunc])
		r.conversions[src.Key()] = m
	}
	m[dst.Key()] = edge[ConvFunc]{dst: dst, fn: fn}
}

// RegisterTransfer registers a direct transfer from src to dst,
// replacing any existing entry for the same pair.
func (r *Registry) RegisterTransfer(src, dst kind.Kind, fn TransferFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addNode(src)
	r.addNode(dst)
	m := r.transfers[src.Key()]
	if m == nil {
		m = make(map[string]edge[TransferFunc])
		r.transfers[src.Key()] = m
	}
	m[dst.Key()] = edge[TransferFunc]{dst: dst, fn: fn}
}

// Conversion looks up the direct converter for (src, dst), if any.
func (r *Registry) Conversion(src, dst kind.Kind) (ConvFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.conversions[src.Key()]
	if !ok {
		return nil, false
	}
	e, ok := m[dst.Key()]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Transfer looks up the direct transfer for (src, dst), if any.
func (r *Registry) Transfer(src, dst kind.Kind) (TransferFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.transfers[src.Key()]
	if !ok {
		return nil, false
	}
	e, ok := m[dst.Key()]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// ConversionNeighbors returns the destination kinds directly
// reachable from src via a registered conversion.
func (r *Registry) ConversionNeighbors(src kind.Kind) []kind.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.conversions[src.Key()]
	out := make([]kind.Kind, 0, len(m))
	for _, e := range m {
		out = append(out, e.dst)
	}
	return out
}

// TransferNeighbors returns the destination kinds directly reachable
// from src via a registered transfer.
func (r *Registry) TransferNeighbors(src kind.Kind) []kind.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.transfers[src.Key()]
	out := make([]kind.Kind, 0, len(m))
	for _, e := range m {
		out = append(out, e.dst)
	}
	return out
}

// TransferSources returns every Kind registered as the source side
// of at least one direct transfer.
func (r *Registry) TransferSources() []kind.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]kind.Kind, 0, len(r.transfers))
	for key := range r.transfers {
		if n, ok := r.nodes[key]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Nodes returns every Kind that appears as the source or destination
// of at least one registered conversion or transfer.
func (r *Registry) Nodes() []kind.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]kind.Kind, 0, len(r.nodes))
	for _, k := range r.nodes {
		out = append(out, k)
	}
	return out
}
