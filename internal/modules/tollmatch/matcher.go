// README: Special-toll matcher flags tolls lying near the route polyline.
package tollmatch

import (
	"tollwise/internal/geo"
	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// DetectionRadiusKm is the inclusive proximity threshold between a toll's
// representative point and the route. Generous enough to absorb the
// subsampling gap below.
const DetectionRadiusKm = 8.0

// maxComparisons caps the number of route points tested per toll; longer
// polylines are walked with a proportionally larger stride.
const maxComparisons = 500

// OnRoute reports whether the toll's point lies within DetectionRadiusKm of
// at least one (subsampled) route point.
func OnRoute(toll rules.SpecialToll, routePoints []types.Point) bool {
	stride := len(routePoints) / maxComparisons
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(routePoints); i += stride {
		p := routePoints[i]
		if geo.HaversineKm(toll.Lat, toll.Lng, p.Lat, p.Lng) <= DetectionRadiusKm {
			return true
		}
	}
	return false
}

// DetectOnRoute returns the special tolls near the route, as selectable
// line items. Cross-border tolls listed by two countries under the same id
// are deduplicated: the first matching country's catalog entry wins.
func DetectOnRoute(table *rules.Table, routePoints []types.Point) []types.SelectedSpecialToll {
	if len(routePoints) == 0 {
		return nil
	}

	var detected []types.SelectedSpecialToll
	seen := make(map[string]bool)
	for _, country := range table.CountriesWithSpecialTolls() {
		for _, toll := range country.SpecialTolls {
			if seen[toll.ID] || !OnRoute(toll, routePoints) {
				continue
			}
			seen[toll.ID] = true
			detected = append(detected, types.SelectedSpecialToll{
				ID:          toll.ID,
				CountryCode: country.Code,
				Name:        toll.Name,
				Price:       toll.Price,
			})
		}
	}
	return detected
}
