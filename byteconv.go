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

// Package byteconv is a universal byte-conversion fabric: given any
// value that carries bytes (a buffer, a file, a stream, a string, a
// sequence of buffers, a channel), Convert produces an equivalent
// value of any other byte-carrying Kind, composing intermediate
// conversions as needed, and Transfer moves bytes in bulk from a
// source to a sink. See SPEC_FULL.md for the full design.
package byteconv

import (
	"sync"

	"github.com/SnellerInc/byteconv/builtin"
	"github.com/SnellerInc/byteconv/convert"
	"github.com/SnellerInc/byteconv/convpath"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
	"github.com/SnellerInc/byteconv/xfer"
)

// Kind re-exports kind.Kind so callers of this package rarely need to
// import the kind subpackage directly.
type Kind = kind.Kind

// Options re-exports opts.Options for the same reason.
type Options = opts.Options

var (
	defaultOnce sync.Once
	defaultReg  *registry.Registry
	defaultPlan *convpath.Planner
	defaultConv *convert.Driver
	defaultXfer *xfer.Planner
)

// initDefault builds the process-wide registry populated with the
// built-in converters and transfers from package builtin, per
// spec.md §5 "Shared resources": process-wide, effectively
// write-once during startup.
func initDefault() {
	defaultOnce.Do(func() {
		defaultReg = registry.New()
		builtin.Register(defaultReg)
		defaultPlan = convpath.New(defaultReg)
		defaultConv = convert.New(defaultReg, defaultPlan)
		defaultXfer = xfer.New(defaultReg, defaultConv)
	})
}

func mergeOptions(o []Options) Options {
	if len(o) == 0 {
		return nil
	}
	return o[0]
}

// Convert produces a value of Kind dst from x, per spec.md §6. If
// kind.KindOf(x) is already assignable to dst, Convert returns x
// itself (no copy). o is an optional Options record; if omitted, the
// empty record is used and every converter falls back to its
// defaults.
func Convert(x any, dst Kind, o ...Options) (any, error) {
	initDefault()
	return defaultConv.Convert(x, dst, mergeOptions(o))
}

// Transfer moves all bytes from source to sink, per spec.md §6 and
// §4.E: a specialized transfer is preferred when the registry has
// one within reach, otherwise the generic ByteSource/ByteSink pump
// runs. Both endpoints are closed on normal completion if they
// implement Closeable.
func Transfer(source, sink any, o ...Options) error {
	initDefault()
	return defaultXfer.Transfer(source, sink, mergeOptions(o))
}

// PossibleConversions enumerates every Kind reachable from x (or, if
// x is itself a Kind, from that Kind) via Convert, per spec.md §6.
func PossibleConversions(xOrKind any) []Kind {
	initDefault()
	src, ok := xOrKind.(Kind)
	if !ok {
		src = kind.KindOf(xOrKind)
	}
	var out []Kind
	for _, dst := range defaultReg.Nodes() {
		if dst.Equal(src) {
			continue
		}
		if _, found := defaultPlan.Resolve(src, dst); found {
			out = append(out, dst)
		}
	}
	return out
}

// ConversionPath exposes the planner's resolved chain for (src, dst)
// as a diagnostic, per spec.md §6. The second return is false if no
// path exists.
func ConversionPath(src, dst Kind) ([]Kind, bool) {
	initDefault()
	return defaultPlan.Resolve(src, dst)
}

// RegisterConversion extends the global conversion graph with a
// direct edge from src to dst, replacing any existing edge for that
// pair. Per spec.md §5, dynamic registration invalidates the
// planner's memoization cache.
func RegisterConversion(src, dst Kind, fn registry.ConvFunc) {
	initDefault()
	defaultReg.RegisterConversion(src, dst, fn)
	defaultPlan.Invalidate()
}

// RegisterTransfer extends the global transfer table with a direct
// src->sink transfer function, replacing any existing entry for that
// pair.
func RegisterTransfer(src, dst Kind, fn registry.TransferFunc) {
	initDefault()
	defaultReg.RegisterTransfer(src, dst, fn)
	defaultPlan.Invalidate()
}
