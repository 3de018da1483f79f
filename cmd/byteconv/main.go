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

// Command byteconv is a thin demonstration harness over package
// byteconv, in the spirit of cmd/dump in the teacher repo: it is not
// part of the library's contract (SPEC_FULL.md §14), just a way to
// exercise Transfer and the conversion-path diagnostic from a shell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SnellerInc/byteconv"
	"github.com/SnellerInc/byteconv/kind"
)

func main() {
	from := flag.String("from", "", "source file path ('-' for stdin)")
	to := flag.String("to", "", "destination file path ('-' for stdout)")
	appendFlag := flag.Bool("append", false, "append to the destination instead of truncating")
	showPath := flag.Bool("path", false, "print the conversion path from file to file and exit")
	flag.Parse()

	if *showPath {
		path, ok := byteconv.ConversionPath(kind.File, kind.File)
		if !ok {
			fmt.Fprintln(os.Stderr, "no path from file to file")
			os.Exit(1)
		}
		for i, k := range path {
			if i > 0 {
				fmt.Print(" -> ")
			}
			fmt.Print(k)
		}
		fmt.Println()
		return
	}

	if *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "usage: byteconv -from PATH -to PATH")
		os.Exit(2)
	}

	var in *os.File
	var err error
	if *from == "-" {
		in = os.Stdin
	} else {
		in, err = os.Open(*from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "can't open %q: %s\n", *from, err)
			os.Exit(1)
		}
	}

	var out *os.File
	if *to == "-" {
		out = os.Stdout
	} else {
		flags := os.O_WRONLY | os.O_CREATE
		if *appendFlag {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		out, err = os.OpenFile(*to, flags, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "can't open %q: %s\n", *to, err)
			os.Exit(1)
		}
	}

	if err := byteconv.Transfer(in, out, byteconv.Options{"append?": *appendFlag}); err != nil {
		fmt.Fprintf(os.Stderr, "transfer failed: %s\n", err)
		os.Exit(1)
	}
}
