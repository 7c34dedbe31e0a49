package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/bitpack/bitmap"
)

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file compressed with the bitmap codec",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], args[1])
		},
	}
}

func runDecompress(inputPath, outputPath string) error {
	compressed, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	dataSize, bufferSize, err := bitmap.PeekDecodedSize(compressed)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out := make([]byte, bufferSize)

	start := time.Now()
	err = bitmap.Decompress(compressed, out)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, out[:dataSize], 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	printStats("decompress", len(compressed), dataSize, elapsed)
	return nil
}
