package hwy

import "testing"

func TestTailMask(t *testing.T) {
	n := MaxLanes[uint64]()
	mask := TailMask[uint64](2)
	if len(mask.bits) != n {
		t.Fatalf("TailMask sized %d, want %d", len(mask.bits), n)
	}
	for i, active := range mask.bits {
		want := i < 2
		if active != want {
			t.Errorf("bit %d = %v, want %v", i, active, want)
		}
	}
}

func TestProcessWithTailFullMultiple(t *testing.T) {
	n := MaxLanes[uint64]()
	size := n * 3
	var fullCalls, tailCalls int
	ProcessWithTail[uint64](size,
		func(offset int) { fullCalls++ },
		func(offset, count int) { tailCalls++ },
	)
	if fullCalls != 3 || tailCalls != 0 {
		t.Errorf("fullCalls=%d tailCalls=%d, want 3,0", fullCalls, tailCalls)
	}
}

func TestProcessWithTailPartialRemainder(t *testing.T) {
	n := MaxLanes[uint64]()
	size := n*2 + 1
	var offsets []int
	var tailOffset, tailCount int
	ProcessWithTail[uint64](size,
		func(offset int) { offsets = append(offsets, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)
	if len(offsets) != 2 {
		t.Fatalf("got %d full calls, want 2", len(offsets))
	}
	if tailOffset != n*2 || tailCount != 1 {
		t.Errorf("tail callback (%d, %d), want (%d, 1)", tailOffset, tailCount, n*2)
	}
}

func TestProcessWithTailEmpty(t *testing.T) {
	called := false
	ProcessWithTail[uint64](0,
		func(offset int) { called = true },
		func(offset, count int) { called = true },
	)
	if called {
		t.Error("ProcessWithTail(0, ...) should not invoke either callback")
	}
}
