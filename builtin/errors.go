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

import "fmt"

// EncodingError is returned by the string<->bytes converters when
// asked for a character encoding this module does not carry a table
// for. Per spec.md §1, character-encoding tables are an external
// collaborator the core delegates to; this module only implements
// "utf-8", the one encoding Go's standard library treats natively.
type EncodingError struct {
	Encoding string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("byteconv: unsupported encoding %q", e.Encoding)
}
