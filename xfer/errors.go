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

package xfer

import (
	"fmt"

	"github.com/SnellerInc/byteconv/kind"
)

// NoTransferError is returned when neither a specialized transfer
// nor the generic ByteSource/ByteSink pump can move bytes from Src
// to Dst.
type NoTransferError struct {
	Src, Dst kind.Kind
}

func (e *NoTransferError) Error() string {
	return fmt.Sprintf("don't know how to transfer %s to %s", e.Src, e.Dst)
}
