package segment

import "testing"

func TestSampleBudget(t *testing.T) {
	tests := []struct {
		km   float64
		want int
	}{
		{0, 15},
		{50, 15},  // short trips clamp up to the minimum
		{149, 15}, // floor(14.9) below minimum
		{300, 30}, // one sample per 10 km
		{450, 45},
		{505, 50},   // floor(50.5) hits the cap exactly
		{10000, 50}, // long trips cap resolver calls
	}
	for _, tt := range tests {
		if got := sampleBudget(tt.km); got != tt.want {
			t.Errorf("sampleBudget(%v) = %d, want %d", tt.km, got, tt.want)
		}
	}
}

func TestSampleIndices(t *testing.T) {
	t.Run("uniform spacing picks evenly spread points", func(t *testing.T) {
		cum := make([]float64, 101)
		for i := range cum {
			cum[i] = float64(i) // 100 km in 1 km steps
		}
		got := sampleIndices(cum, 5)
		want := []int{0, 25, 50, 75, 100}
		if len(got) != len(want) {
			t.Fatalf("sampleIndices() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("sampleIndices() = %v, want %v", got, want)
			}
		}
	})

	t.Run("dense short polyline deduplicates collisions", func(t *testing.T) {
		cum := []float64{0, 0.5, 1.0}
		got := sampleIndices(cum, 15)
		if len(got) > 3 {
			t.Fatalf("expected deduplicated indices, got %v", got)
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Fatalf("indices not strictly increasing: %v", got)
			}
		}
	})

	t.Run("non-uniform density still orders by distance", func(t *testing.T) {
		// Dense cluster at the start, sparse tail.
		cum := []float64{0, 0.1, 0.2, 0.3, 50, 100}
		got := sampleIndices(cum, 5)
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Fatalf("indices not strictly increasing: %v", got)
			}
		}
		if got[0] != 0 {
			t.Errorf("first sample should be the route start, got %d", got[0])
		}
		if got[len(got)-1] != 5 {
			t.Errorf("last sample should be the route end, got %d", got[len(got)-1])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := sampleIndices(nil, 15); got != nil {
			t.Errorf("sampleIndices(nil) = %v, want nil", got)
		}
	})
}
