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

// Package opts implements the schema-free options record from
// spec.md §3: an unordered map of hints that every converter and
// transfer function receives in full, silently ignoring keys it
// does not recognize.
package opts

import "log"

// Option keys and their defaults, per spec.md §3. Direct and Append
// are defined here but no built-in converter reads them: a direct
// buffer is obtained by converting to kind.DirectBuffer, and a File
// arrives already open, so its append/truncate mode is whatever the
// caller chose when opening it.
const (
	ChunkSize = "chunk-size" // int, default 1024 (4096 for channel->many)
	Direct    = "direct?"    // bool; not read by the built-in converters
	Encoding  = "encoding"   // string, default "utf-8"
	Append    = "append?"    // bool; not read by the built-in converters
)

const (
	DefaultChunkSize       = 1024
	DefaultSeqChunkSize    = 4096
	DefaultEncoding        = "utf-8"
)

// Options is an unordered map from option name to value. The zero
// Options is valid and behaves as an empty record.
type Options map[string]any

// With returns a copy of o with key set to value, leaving o
// unmodified. Options records are treated as immutable once handed
// to a converter.
func (o Options) With(key string, value any) Options {
	out := make(Options, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	out[key] = value
	return out
}

// Int returns the integer value of key, or def if absent or not an
// int/int64.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return def
	}
}

// Bool returns the boolean value of key, or def if absent or not a
// bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// String returns the string value of key, or def if absent or not a
// string.
func (o Options) String(key string, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// ChunkSizeOr returns the chunk-size option, or def if unset.
func (o Options) ChunkSizeOr(def int) int {
	return o.Int(ChunkSize, def)
}

// Logger returns the "logger" option if set to a *log.Logger,
// otherwise log.Default(). This is the ambient logging hook described
// in SPEC_FULL.md §10.1: callers that care about pump/producer
// diagnostics pass Options{"logger": myLogger}.
func (o Options) Logger() *log.Logger {
	if l, ok := o["logger"].(*log.Logger); ok && l != nil {
		return l
	}
	return log.Default()
}
