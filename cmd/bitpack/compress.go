package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/bitpack/bitmap"
)

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file with the bitmap codec",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
}

func runCompress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	ctx, err := bitmap.NewContext(len(data))
	if err != nil {
		return fmt.Errorf("creating codec context: %w", err)
	}
	defer ctx.Close()

	copy(ctx.Input(), data)

	start := time.Now()
	n, err := ctx.Compress(len(data))
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, ctx.Output()[:n], 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	printStats("compress", len(data), n, elapsed)
	return nil
}
