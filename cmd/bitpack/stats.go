package main

import (
	"fmt"
	"time"
)

// printStats reproduces the original vitemap CLI's post-operation report
// (input/output size, ratio, elapsed time) without the ANSI box drawing —
// see DESIGN.md for why the terminal-art formatting was dropped.
func printStats(operation string, inputSize, outputSize int, elapsed time.Duration) {
	var ratio float64
	if inputSize > 0 {
		if operation == "compress" {
			ratio = (1 - float64(outputSize)/float64(inputSize)) * 100
		} else {
			ratio = (float64(outputSize)/float64(inputSize) - 1) * 100
		}
	}

	fmt.Printf("%s: %d -> %d bytes (%.2f%%), %.2fms\n",
		operation, inputSize, outputSize, ratio, float64(elapsed.Microseconds())/1000)
}
