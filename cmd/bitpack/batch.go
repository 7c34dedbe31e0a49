package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/bitpack/bitmap"
	"github.com/ajroetker/bitpack/hwy/contrib/workerpool"
)

func newBatchCmd() *cobra.Command {
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <compress|decompress> <file>...",
		Short: "Compress or decompress many independent files concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, files := args[0], args[1:]
			if mode != "compress" && mode != "decompress" {
				return fmt.Errorf("batch mode must be \"compress\" or \"decompress\", got %q", mode)
			}
			if outDir == "" {
				return fmt.Errorf("--out-dir is required")
			}
			return runBatch(mode, files, outDir, workers)
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory to write output files into (required)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines (default: GOMAXPROCS)")
	return cmd
}

// runBatch processes each file with its own *bitmap.Context, handing file
// indices to the pool's workers by atomic work stealing: distinct contexts
// share no state, so this is safe under the codec's
// single-context/single-goroutine rule (spec.md §5).
func runBatch(mode string, files []string, outDir string, workers int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	errs := make([]error, len(files))

	process := runCompressFile
	if mode == "decompress" {
		process = runDecompressFile
	}

	pool.ParallelForAtomic(len(files), func(i int) {
		errs[i] = process(files[i], outDir)
	})

	var failed int
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", files[i], err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func runCompressFile(path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, err := bitmap.NewContext(len(data))
	if err != nil {
		return err
	}
	defer ctx.Close()

	copy(ctx.Input(), data)
	n, err := ctx.Compress(len(data))
	if err != nil {
		return err
	}

	dst := filepath.Join(outDir, filepath.Base(path)+".bpk")
	return os.WriteFile(dst, ctx.Output()[:n], 0o644)
}

func runDecompressFile(path, outDir string) error {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dataSize, bufferSize, err := bitmap.PeekDecodedSize(compressed)
	if err != nil {
		return err
	}

	out := make([]byte, bufferSize)
	if err := bitmap.Decompress(compressed, out); err != nil {
		return err
	}

	dst := filepath.Join(outDir, filepath.Base(path)+".out")
	return os.WriteFile(dst, out[:dataSize], 0o644)
}
