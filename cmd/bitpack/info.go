package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/bitpack/bitmap"
)

func newInfoCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report the frame header of a compressed file, or bit density with --raw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "treat the file as raw (uncompressed) bit data instead of a bitpack frame")
	return cmd
}

func runInfo(path string, raw bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !raw {
		dataSize, bufferSize, err := bitmap.PeekDecodedSize(data)
		if err != nil {
			return fmt.Errorf("reading frame header of %s: %w", path, err)
		}
		fmt.Printf("frame: original size %d bytes, decode buffer %d bytes, compressed %d bytes\n",
			dataSize, bufferSize, len(data))
		return nil
	}

	density := bitmap.AnalyzeDensity(data)
	fmt.Printf("bits: %d, set: %d, ratio: %.4f, simd: %s (%d-byte lanes)\n",
		density.TotalBits, density.SetBits, density.Ratio(), density.SIMDLevel, density.Width)
	return nil
}
