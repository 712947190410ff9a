// Package geo contains pure geographic computation helpers.
package geo

import (
	"math"

	"tollwise/internal/types"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// CumulativeKm returns, for each point of a polyline, its distance from the
// first point measured along the polyline. The slice has the same length as
// points; the first entry is always 0.
func CumulativeKm(points []types.Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	out := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		step := HaversineKm(points[i-1].Lat, points[i-1].Lng, points[i].Lat, points[i].Lng)
		out[i] = out[i-1] + step
	}
	return out
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
