package bitmap

import "testing"

func TestExpand256(t *testing.T) {
	tests := []struct {
		name      string
		positions []byte
		wantBits  []int // expected set bit positions
	}{
		{name: "empty", positions: nil, wantBits: nil},
		{name: "single", positions: []byte{124}, wantBits: []int{124}},
		{name: "boundary positions", positions: []byte{0, 255}, wantBits: []int{0, 255}},
		{name: "duplicate positions are idempotent", positions: []byte{5, 5, 5}, wantBits: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [ChunkBytes]byte
			Expand256(tt.positions, &got)

			for _, pos := range tt.wantBits {
				if got[pos/8]&(1<<uint(pos%8)) == 0 {
					t.Errorf("expected bit %d set", pos)
				}
			}

			count := PopCount256(&got)
			if count != len(tt.wantBits) {
				t.Errorf("popcount after expand: got %d, want %d", count, len(tt.wantBits))
			}
		})
	}
}
