// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command bitpack compresses and decompresses files with the bitmap sparse/
// dense codec implemented in package bitmap.
//
// Usage:
//
//	bitpack compress input.bin output.bpk
//	bitpack decompress output.bpk restored.bin
//	bitpack info output.bpk
//	bitpack batch compress *.bin --out-dir compressed/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
