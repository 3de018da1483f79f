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

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package directbuf

// allocDirect falls back to an ordinary heap allocation on platforms
// without an anonymous-mmap syscall (e.g. windows, wasm). The buffer
// is no longer truly off-heap there, but the API contract (owned,
// fixed-capacity, must be Closed) stays the same.
func allocDirect(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func freeDirect(mem []byte) error {
	return nil
}
