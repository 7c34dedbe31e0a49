package hwy

import "testing"

func TestDispatchSelectsSupportedTier(t *testing.T) {
	if currentWidth <= 0 {
		t.Fatalf("currentWidth = %d, want positive", currentWidth)
	}
	if CurrentName() == "" {
		t.Fatal("CurrentName() returned empty string")
	}
	switch currentLevel {
	case DispatchScalar, DispatchAVX2, DispatchAVX512, DispatchNEON:
	default:
		t.Fatalf("unrecognized dispatch level %v", currentLevel)
	}
}

func TestDispatchLevelString(t *testing.T) {
	cases := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	n := MaxLanes[uint64]()
	if n <= 0 {
		t.Fatalf("MaxLanes[uint64]() = %d, want positive", n)
	}
	if got := currentWidth / 8; got != n {
		t.Errorf("MaxLanes[uint64]() = %d, want currentWidth/8 = %d", n, got)
	}
}
