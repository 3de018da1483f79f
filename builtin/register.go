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

// Package builtin is the seed converter set from spec.md §4.F: it
// populates a Registry with every direct edge in that section's
// table, plus the capability-implementor declarations from
// "Capability implementations", so that a fresh Registry handed to
// Register is immediately connected enough to satisfy spec.md §8
// scenario S6 (possible_conversions(String) reaches bytes,
// byte-buffer, direct-byte-buffer, input-stream, ...).
package builtin

import "github.com/SnellerInc/byteconv/registry"

// Register populates reg with the complete built-in converter and
// transfer set and declares the built-in capability implementors.
// It is safe to call more than once, or against more than one
// Registry: conversions/transfers are idempotent on (src, dst), and
// capability declarations are idempotent on (concrete, capability).
func Register(reg *registry.Registry) {
	registerBytes(reg)
	registerChannel(reg)
	registerString(reg)
	registerSpecializedTransfers(reg)
	registerCapabilities()
}
