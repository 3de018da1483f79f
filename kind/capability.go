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

package kind

import "sync"

// capWorld is the process-wide table of which concrete Kinds
// implement which capability Kinds, analogous to a vtable registry
// for an open type-dispatch model (see the design notes on "open
// type dispatch"). It is populated once at startup by the built-in
// converters and is safe for concurrent reads thereafter.
var capWorld = struct {
	mu           sync.RWMutex
	implementors map[string][]Kind // capability.Key() -> concrete kinds
}{implementors: make(map[string][]Kind)}

// RegisterImplements declares that concrete implements capability.
// It is idempotent: registering the same pair twice has no
// additional effect.
func RegisterImplements(concrete, capability Kind) {
	if !concrete.IsConcrete() || !capability.IsCapability() {
		panic("kind: RegisterImplements requires a concrete kind and a capability kind")
	}
	capWorld.mu.Lock()
	defer capWorld.mu.Unlock()
	key := capability.Key()
	for _, k := range capWorld.implementors[key] {
		if k.Equal(concrete) {
			return
		}
	}
	capWorld.implementors[key] = append(capWorld.implementors[key], concrete)
}

// Implementors returns the concrete Kinds registered as implementing
// capability. The returned slice is a copy and safe to mutate.
func Implementors(capability Kind) []Kind {
	capWorld.mu.RLock()
	defer capWorld.mu.RUnlock()
	src := capWorld.implementors[capability.Key()]
	out := make([]Kind, len(src))
	copy(out, src)
	return out
}

// implements reports whether concrete is registered as implementing
// capability.
func implements(concrete, capability Kind) bool {
	for _, k := range Implementors(capability) {
		if k.Equal(concrete) {
			return true
		}
	}
	return false
}
