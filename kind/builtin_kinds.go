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

// The concrete and capability Kinds that make up the catalog in
// SPEC_FULL.md §13. Built-in converters (package builtin) register
// edges between these; callers may register further Kinds of their
// own with Concrete/Capability.
var (
	Bytes           = Concrete("bytes")
	Buffer          = Concrete("byte-buffer")
	DirectBuffer    = Concrete("direct-byte-buffer")
	File            = Concrete("file")
	ReadableChannel = Concrete("readable-channel")
	WritableChannel = Concrete("writable-channel")
	InputStream     = Concrete("input-stream")
	String          = Concrete("string")
	BufioReader     = Concrete("reader")
	RuneSeq         = Concrete("char-sequence")

	Reader     = Capability("io-reader")
	ReadCloser = Capability("io-read-closer")
	Writer     = Capability("io-writer")

	ByteSource = Capability("byte-source")
	ByteSink   = Capability("byte-sink")
	Closeable  = Capability("closeable")
)
