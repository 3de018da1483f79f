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

package convert

import (
	"fmt"

	"github.com/SnellerInc/byteconv/kind"
)

// NoPathError is returned when the planner cannot find any chain of
// registered conversions from Src to Dst.
type NoPathError struct {
	Src, Dst kind.Kind
	// SrcWasMany records whether the original source value was
	// itself a Many(·) sequence, since that changes which edges
	// the planner was allowed to consider.
	SrcWasMany bool
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("don't know how to convert %s into %s", e.Src, e.Dst)
}

// InvariantError indicates a bug in the planner or driver: the
// planner proposed an edge between two Kinds that the registry does
// not actually know how to satisfy.
type InvariantError struct {
	Src, Dst kind.Kind
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("byteconv: internal error: planner proposed %s -> %s but no converter satisfies it", e.Src, e.Dst)
}
