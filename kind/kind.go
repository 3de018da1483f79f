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

// Package kind implements the tagged-variant type-tag model described
// in the conversion fabric's design notes: a Kind is either a
// concrete type tag, a capability tag backed by a registry of
// implementing concrete tags, or a Many(K) lifting of either.
package kind

import "fmt"

type tag uint8

const (
	tagConcrete tag = iota
	tagCapability
	tagMany
)

// Kind identifies a participant in the conversion graph. The zero
// Kind is not valid; always construct one with Concrete, Capability,
// or Many.
type Kind struct {
	tag   tag
	name  string // set for tagConcrete and tagCapability
	inner *Kind  // set for tagMany
}

// Concrete returns the concrete-type-tag Kind with the given name.
// Two Concrete Kinds with the same name are equal.
func Concrete(name string) Kind {
	return Kind{tag: tagConcrete, name: name}
}

// Capability returns the capability-tag Kind with the given name.
// Capability tags are distinguished from Concrete tags of the same
// name: ByteSource the capability and "ByteSource" a hypothetical
// concrete type would not collide.
func Capability(name string) Kind {
	return Kind{tag: tagCapability, name: name}
}

// Many returns the lifted sequence Kind Many(k). Many never nests:
// Many(Many(k)) collapses back to Many(k), matching the invariant
// that Many composes at most once.
func Many(k Kind) Kind {
	if k.tag == tagMany {
		return k
	}
	return Kind{tag: tagMany, inner: &k}
}

// IsMany reports whether k is a Many(·) wrapper, and if so returns
// its inner Kind.
func (k Kind) IsMany() (Kind, bool) {
	if k.tag != tagMany {
		return Kind{}, false
	}
	return *k.inner, true
}

// IsCapability reports whether k is a capability tag.
func (k Kind) IsCapability() bool { return k.tag == tagCapability }

// IsConcrete reports whether k is a concrete type tag.
func (k Kind) IsConcrete() bool { return k.tag == tagConcrete }

// Equal reports whether k and other denote the same Kind.
func (k Kind) Equal(other Kind) bool {
	if k.tag != other.tag {
		return false
	}
	switch k.tag {
	case tagMany:
		return k.inner.Equal(*other.inner)
	default:
		return k.name == other.name
	}
}

// Key returns a string uniquely identifying k, suitable for use as a
// map key where Kind itself (holding a pointer for Many) is awkward
// to compare directly.
func (k Kind) Key() string {
	switch k.tag {
	case tagConcrete:
		return "C:" + k.name
	case tagCapability:
		return "K:" + k.name
	case tagMany:
		return "M:" + k.inner.Key()
	default:
		return "?"
	}
}

// String renders k for diagnostics and error messages.
func (k Kind) String() string {
	switch k.tag {
	case tagConcrete:
		return k.name
	case tagCapability:
		return k.name
	case tagMany:
		return fmt.Sprintf("Many(%s)", k.inner)
	default:
		return "<invalid kind>"
	}
}

// Valid reports whether k was constructed through Concrete,
// Capability, or Many, as opposed to being a zero value.
func (k Kind) Valid() bool {
	switch k.tag {
	case tagConcrete, tagCapability:
		return k.name != ""
	case tagMany:
		return k.inner != nil && k.inner.Valid()
	default:
		return false
	}
}
