package buffers

import "testing"

func TestGrowCapacity(t *testing.T) {

	tests := []struct {
		curr, needed, want int
	}{
		{curr: 128 * 1024, needed: 1000, want: 128 * 1024},
		{curr: 128 * 1024, needed: 128*1024 + 1, want: 256 * 1024},
		{curr: 1000, needed: 5000, want: 8000},
		{curr: 0, needed: 10, want: 1024},
	}

	for _, tc := range tests {
		if got := growCapacity(tc.curr, tc.needed); got != tc.want {
			t.Errorf("growCapacity(%d, %d) = %d, want %d", tc.curr, tc.needed, got, tc.want)
		}
	}
}
