package parallel

import "testing"

func TestForEachCoversAllItems(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"empty", 0, 4},
		{"single item", 1, 4},
		{"serial", 100, 1},
		{"fewer items than workers", 3, 8},
		{"default workers", 1000, 0},
		{"many workers", 1000, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, tt.n)
			ForEach(tt.n, tt.workers, func(i int) {
				hits[i]++
			})
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("item %d processed %d times, want 1", i, h)
				}
			}
		})
	}
}

func TestForEachJoinsBeforeReturning(t *testing.T) {
	out := make([]int, 64)
	ForEach(64, 4, func(i int) {
		out[i] = i * i
	})
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}
