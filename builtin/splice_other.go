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

//go:build !linux

package builtin

import "github.com/SnellerInc/byteconv/registry"

// registerSpecializedTransfers is a no-op off Linux: splice(2) has no
// portable equivalent, so every transfer falls through to the
// generic pump in package xfer, matching spec.md §9's note that the
// specialized-transfer tier may be omitted without loss of
// observable behavior.
func registerSpecializedTransfers(reg *registry.Registry) {}
