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

package builtin

import "github.com/SnellerInc/byteconv/kind"

// registerCapabilities declares which concrete Kinds implement which
// capability Kinds, per the "Capability implementations" list in
// spec.md §4.F. These declarations only drive the planner's
// ValidDestinations/ValidSources expansion (kind.RegisterImplements);
// the actual runtime capability dispatch is the separate, structural
// bytesrc.AsSource/AsSink/AsCloseable used by package xfer.
//
// File deliberately does not implement ByteSource/ByteSink directly:
// a transfer from a File must resolve through ReadableChannel/
// WritableChannel first, matching spec.md §8 scenario S5.
func registerCapabilities() {
	kind.RegisterImplements(kind.ReadableChannel, kind.ByteSource)
	kind.RegisterImplements(kind.ReadableChannel, kind.Closeable)

	kind.RegisterImplements(kind.WritableChannel, kind.ByteSink)
	kind.RegisterImplements(kind.WritableChannel, kind.Closeable)

	kind.RegisterImplements(kind.InputStream, kind.ByteSource)

	kind.RegisterImplements(kind.Buffer, kind.ByteSource)

	kind.RegisterImplements(kind.DirectBuffer, kind.ByteSource)
	kind.RegisterImplements(kind.DirectBuffer, kind.Closeable)

	kind.RegisterImplements(kind.File, kind.Closeable)
}
