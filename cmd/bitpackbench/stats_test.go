package main

import "testing"

func TestAggregateMean(t *testing.T) {
	durations := []float64{100, 100, 100, 100}
	result := aggregate(42, durations)

	if result.outputSize != 42 {
		t.Errorf("outputSize = %d, want 42", result.outputSize)
	}
	if result.meanNanos != 100 {
		t.Errorf("meanNanos = %v, want 100", result.meanNanos)
	}
	if result.marginNanos != 0 {
		t.Errorf("marginNanos = %v, want 0 for constant samples", result.marginNanos)
	}
}

func TestAggregateMarginShrinksWithMoreSamples(t *testing.T) {
	small := aggregate(0, []float64{10, 20, 30})
	large := aggregate(0, []float64{10, 20, 30, 10, 20, 30, 10, 20, 30, 10, 20, 30})

	if large.marginNanos >= small.marginNanos {
		t.Errorf("margin with more samples (%v) should be smaller than with fewer (%v)",
			large.marginNanos, small.marginNanos)
	}
}
