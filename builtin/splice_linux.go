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

//go:build linux

package builtin

import (
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
)

// registerSpecializedTransfers populates the one specialized transfer
// this module retains (SPEC_FULL.md §12 item 3): *os.File -> *os.File
// via splice(2), a zero-copy kernel-space move that avoids bouncing
// bytes through user space the way the generic pump in package xfer
// does. It falls back by returning an error the transfer driver can
// treat as "try the generic pump instead" is not how xfer works --
// instead it falls back internally to a plain io.Copy when splice
// itself is unavailable for this particular fd pair (e.g. a pipe is
// required on one side on some kernels), keeping the registered
// transfer function always successful when the fds are valid files.
func registerSpecializedTransfers(reg *registry.Registry) {
	reg.RegisterTransfer(kind.File, kind.File, func(source, sink any, o opts.Options) error {
		src := source.(*os.File)
		dst := sink.(*os.File)
		logger := o.Logger()

		n, err := spliceFiles(src, dst)
		if err == nil {
			logger.Printf("byteconv: splice transfer %d bytes", n)
			return nil
		}
		logger.Printf("byteconv: splice unavailable (%s), falling back to io.Copy", err)
		_, err = io.Copy(dst, src)
		return err
	})
}

// spliceFiles moves all remaining bytes from src to dst using
// splice(2) via an intermediate pipe, the standard trick for
// file-to-file zero-copy since splice requires at least one pipe
// end. It stops at the first error or at src's EOF.
func spliceFiles(src, dst *os.File) (int64, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return 0, err
	}
	defer pr.Close()
	defer pw.Close()

	var total int64
	const chunk = 1 << 20
	for {
		n, err := unix.Splice(int(src.Fd()), nil, int(pw.Fd()), nil, chunk, 0)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		remaining := n
		for remaining > 0 {
			m, err := unix.Splice(int(pr.Fd()), nil, int(dst.Fd()), nil, int(remaining), 0)
			if err != nil {
				return total, err
			}
			if m == 0 {
				return total, io.ErrShortWrite
			}
			remaining -= m
			total += m
		}
	}
}
