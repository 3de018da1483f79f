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

// Package xfer implements the transfer planner and generic pump from
// spec.md §4.E: given a source and a sink, prefer a specialized
// direct transfer if the registry has one within reach (by
// conversion distance), otherwise fall back to converting both ends
// to the ByteSource/ByteSink capabilities and pumping chunks between
// them.
package xfer

import (
	"github.com/google/uuid"

	"github.com/SnellerInc/byteconv/bytesrc"
	"github.com/SnellerInc/byteconv/convert"
	"github.com/SnellerInc/byteconv/kind"
	"github.com/SnellerInc/byteconv/opts"
	"github.com/SnellerInc/byteconv/registry"
)

// Planner runs spec.md §4.E's transfer resolution against a Registry
// and Driver.
type Planner struct {
	Reg    *registry.Registry
	Driver *convert.Driver
}

// New returns a Planner wired to reg and driver.
func New(reg *registry.Registry, driver *convert.Driver) *Planner {
	return &Planner{Reg: reg, Driver: driver}
}

// Transfer moves all bytes from source to sink. On normal completion
// both source and sink are closed if they implement bytesrc.Closeable
// (spec.md §5, "Closing discipline"); this happens exactly once
// regardless of which path (specialized or generic pump) was used.
func (p *Planner) Transfer(source, sink any, o opts.Options) error {
	src := kind.KindOf(source)
	dst := kind.KindOf(sink)

	if fn, s2, d2, ok := p.findSpecialized(src, dst); ok {
		csrc, err := p.Driver.Convert(source, s2, o)
		if err != nil {
			return err
		}
		csink, err := p.Driver.Convert(sink, d2, o)
		if err != nil {
			return err
		}
		xferErr := fn(csrc, csink, o)
		closeErr := closeBoth(source, sink)
		if xferErr != nil {
			return xferErr
		}
		return closeErr
	}

	bsrc, convSrc, srcWasConverted, ok1 := p.toByteSource(source, o)
	bsink, convSink, sinkWasConverted, ok2 := p.toByteSink(sink, o)
	if ok1 && ok2 {
		err := pump(bsrc, bsink, o)
		closeErr := closeBoth(source, sink)
		// close whatever intermediate values the conversions
		// produced too, per SPEC_FULL.md §12 item 2: convert
		// closes what it opened, but here it is the transfer
		// driver (not convert) doing the closing, and only
		// because these are the actual endpoints of the pump.
		if srcWasConverted {
			bytesrc.Close(convSrc)
		}
		if sinkWasConverted {
			bytesrc.Close(convSink)
		}
		if err != nil {
			return err
		}
		return closeErr
	}

	return &NoTransferError{Src: src, Dst: dst}
}

// findSpecialized searches for registered transfer endpoints (s2,
// d2) minimizing the combined conversion distance from (src, dst),
// per spec.md §4.E step 2.
func (p *Planner) findSpecialized(src, dst kind.Kind) (fn registry.TransferFunc, s2, d2 kind.Kind, ok bool) {
	best := -1
	for _, cand := range p.Reg.TransferSources() {
		pathToCand, okS := p.Driver.Path(src, cand)
		if !okS {
			continue
		}
		for _, dcand := range p.Reg.TransferNeighbors(cand) {
			pathToD, okD := p.Driver.Path(dst, dcand)
			if !okD {
				continue
			}
			cost := (len(pathToCand) - 1) + (len(pathToD) - 1)
			if best == -1 || cost < best {
				best = cost
				fn, _ = p.Reg.Transfer(cand, dcand)
				s2, d2 = cand, dcand
				ok = true
			}
		}
	}
	return
}

// toByteSource adapts v into a ByteSource. The returned bool reports
// whether v had to be run through the conversion graph to get there
// (as opposed to already satisfying ByteSource directly); the
// returned any is the intermediate value that conversion produced,
// which the caller owns and must close if Closeable.
func (p *Planner) toByteSource(v any, o opts.Options) (bytesrc.ByteSource, any, bool, bool) {
	if s, ok := bytesrc.AsSource(v); ok {
		return s, v, false, true
	}
	conv, err := p.Driver.Convert(v, kind.ByteSource, o)
	if err != nil {
		return nil, nil, false, false
	}
	if s, ok := bytesrc.AsSource(conv); ok {
		return s, conv, true, true
	}
	return nil, nil, false, false
}

func (p *Planner) toByteSink(v any, o opts.Options) (bytesrc.ByteSink, any, bool, bool) {
	if s, ok := bytesrc.AsSink(v); ok {
		return s, v, false, true
	}
	conv, err := p.Driver.Convert(v, kind.ByteSink, o)
	if err != nil {
		return nil, nil, false, false
	}
	if s, ok := bytesrc.AsSink(conv); ok {
		return s, conv, true, true
	}
	return nil, nil, false, false
}

func closeBoth(source, sink any) error {
	e1 := bytesrc.Close(source)
	e2 := bytesrc.Close(sink)
	if e1 != nil {
		return e1
	}
	return e2
}

// pump is the generic chunked fallback described in spec.md §4.E
// step 3. It stamps a UUID per call into its log lines (see
// SPEC_FULL.md §11) so concurrent transfers are distinguishable.
func pump(source bytesrc.ByteSource, sink bytesrc.ByteSink, o opts.Options) error {
	chunk := o.ChunkSizeOr(opts.DefaultChunkSize)
	logger := o.Logger()
	id := uuid.New()
	logger.Printf("byteconv: pump %s starting, chunk-size=%d", id, chunk)

	var total int64
	for {
		b, err := source.TakeBytes(chunk, o)
		if err != nil {
			logger.Printf("byteconv: pump %s failed after %d bytes: %s", id, total, err)
			return err
		}
		if b == nil {
			break
		}
		if err := sink.SendBytes(b, o); err != nil {
			logger.Printf("byteconv: pump %s failed after %d bytes: %s", id, total, err)
			return err
		}
		total += int64(len(b))
	}
	logger.Printf("byteconv: pump %s done, %d bytes", id, total)
	return nil
}
