package main

import "math"

// numIterations mirrors the original benchmark harness's NUM_ITERATIONS.
const numIterations = 100

// confidenceZ is the z-score for a 95% confidence interval, matching the
// original harness's hardcoded 1.96 multiplier.
const confidenceZ = 1.96

// aggregatedResult is the mean elapsed time and its confidence margin across
// numIterations runs of one codec against one file, plus the output size
// (constant across iterations, taken from the last run).
type aggregatedResult struct {
	outputSize int
	meanNanos  float64
	marginNanos float64
}

// aggregate reproduces remove_outliers_and_calculate_stats: a sample mean
// and standard deviation over durations, turned into a 95% confidence
// margin. Despite its name, the original function never actually removed
// outliers; neither does this one.
func aggregate(outputSize int, durationsNanos []float64) aggregatedResult {
	n := float64(len(durationsNanos))

	var mean float64
	for _, d := range durationsNanos {
		mean += d
	}
	mean /= n

	var variance float64
	for _, d := range durationsNanos {
		variance += (d - mean) * (d - mean)
	}
	stdDev := math.Sqrt(variance / (n - 1))

	return aggregatedResult{
		outputSize:  outputSize,
		meanNanos:   mean,
		marginNanos: confidenceZ * (stdDev / math.Sqrt(n)),
	}
}
