package segment

import "math"

const (
	minSamples = 15
	maxSamples = 50
	// kmPerSample spaces one resolver call per ~10 km of route.
	kmPerSample = 10.0
)

// sampleBudget bounds the number of resolver calls for a route: one sample
// per 10 km, never fewer than 15 nor more than 50.
func sampleBudget(totalDistanceKm float64) int {
	n := int(math.Floor(totalDistanceKm / kmPerSample))
	if n < minSamples {
		return minSamples
	}
	if n > maxSamples {
		return maxSamples
	}
	return n
}

// sampleIndices spreads numSamples target offsets evenly over the polyline's
// cumulative distances and picks the closest actual point for each target,
// deduplicating collisions. cumKm must be non-decreasing, so the returned
// indices are strictly increasing.
func sampleIndices(cumKm []float64, numSamples int) []int {
	if len(cumKm) == 0 || numSamples < 2 {
		return nil
	}
	totalPath := cumKm[len(cumKm)-1]

	indices := make([]int, 0, numSamples)
	last := -1
	for i := 0; i < numSamples; i++ {
		target := totalPath * float64(i) / float64(numSamples-1)

		closest := 0
		closestDiff := math.Abs(cumKm[0] - target)
		for j := 1; j < len(cumKm); j++ {
			diff := math.Abs(cumKm[j] - target)
			if diff < closestDiff {
				closestDiff = diff
				closest = j
			}
		}

		if closest != last {
			indices = append(indices, closest)
			last = closest
		}
	}
	return indices
}
