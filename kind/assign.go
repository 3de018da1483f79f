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

// Assignable reports whether a value of kind a is acceptable wherever
// a value of kind b is expected: a ≼ b.
//
//   - concrete-to-concrete: true only for identical concrete kinds,
//     or when a implements the capability b.
//   - Many(a') ≼ Many(b') iff a' ≼ b'.
//   - otherwise: false.
func Assignable(a, b Kind) bool {
	aMany, aIsMany := a.IsMany()
	bMany, bIsMany := b.IsMany()
	if aIsMany && bIsMany {
		return Assignable(aMany, bMany)
	}
	if aIsMany != bIsMany {
		return false
	}
	if a.Equal(b) {
		return true
	}
	if b.IsCapability() && a.IsConcrete() {
		return implements(a, b)
	}
	return false
}

// ValidDestinations enumerates the concrete endpoints that a
// conversion or search targeting k may actually resolve to: a
// concrete Kind maps to itself, a capability Kind expands to its
// implementing concrete Kinds, and Many(K) lifts pointwise over
// ValidDestinations(K).
func ValidDestinations(k Kind) []Kind {
	if inner, ok := k.IsMany(); ok {
		var out []Kind
		for _, d := range ValidDestinations(inner) {
			out = append(out, Many(d))
		}
		return out
	}
	if k.IsCapability() {
		return Implementors(k)
	}
	return []Kind{k}
}

// ValidSources enumerates every kind among candidates that is
// assignable from a value of kind k (i.e. Assignable(k, candidate)),
// plus, when k is Many(inner), the Many liftings of every non-Many
// candidate assignable from inner.
func ValidSources(k Kind, candidates []Kind) []Kind {
	var out []Kind
	for _, c := range candidates {
		if Assignable(k, c) {
			out = append(out, c)
		}
	}
	if inner, ok := k.IsMany(); ok {
		for _, c := range candidates {
			if _, isMany := c.IsMany(); isMany {
				continue
			}
			if Assignable(inner, c) {
				out = append(out, Many(c))
			}
		}
	}
	return out
}
