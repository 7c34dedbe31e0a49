// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command bitpackbench compares the bitmap codec against snappy and zstd on
// a set of trace files, reproducing the original vitemap benchmark harness
// (original_source/src/benchmarking.c): each codec runs numIterations times
// per file and the elapsed time is reported as a mean with a 95% confidence
// margin.
//
// Usage:
//
//	bitpackbench traces/*.bin
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bitpackbench <file>...")
		os.Exit(1)
	}

	for _, path := range files {
		if err := benchmarkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
}
