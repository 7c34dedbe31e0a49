package main

import (
	"fmt"
	"os"
)

// benchmarkFile runs every codec against one file's contents numIterations
// times and prints a line per codec, mirroring process_file's output format
// in the original C harness: name, output size, ratio, mean ± margin (ns).
func benchmarkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	zstd, err := zstdCodec()
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}

	codecs := []codec{snappyCodec(), zstd, bitpackCodec()}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("initial, %d\n", len(data))

	for _, c := range codecs {
		result, err := runCodec(c, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", path, c.name, err)
			continue
		}

		var ratio float64
		if len(data) > 0 {
			ratio = float64(result.outputSize) / float64(len(data))
		}
		fmt.Printf("%s, %d (%f), %.2f ± %.2f\n",
			c.name, result.outputSize, ratio, result.meanNanos, result.marginNanos)
	}
	fmt.Println()

	return nil
}

func runCodec(c codec, data []byte) (aggregatedResult, error) {
	durations := make([]float64, numIterations)
	var outputSize int

	for i := 0; i < numIterations; i++ {
		n, elapsed, err := c.compress(data)
		if err != nil {
			return aggregatedResult{}, err
		}
		durations[i] = float64(elapsed.Nanoseconds())
		outputSize = n
	}

	return aggregate(outputSize, durations), nil
}
