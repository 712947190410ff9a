package tollmatch

import (
	"math"
	"testing"

	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// lngOffsetForKm returns the longitude delta that puts a point the given
// distance east of the origin on the equator. Shrunk by a hair so float
// round-trips cannot push a boundary distance past the threshold.
func lngOffsetForKm(km float64) float64 {
	return km / 6371.0 * 180.0 / math.Pi * (1 - 1e-9)
}

func TestOnRoute_RadiusInclusive(t *testing.T) {
	toll := rules.SpecialToll{ID: "x", Lat: 0, Lng: 0}

	tests := []struct {
		name   string
		distKm float64
		want   bool
	}{
		{"toll on the route", 0, true},
		{"well inside the radius", 3.0, true},
		{"exactly 8.0 km is included", 8.0, true},
		{"8.1 km is excluded", 8.1, false},
		{"far away", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []types.Point{{Lat: 0, Lng: lngOffsetForKm(tt.distKm)}}
			if got := OnRoute(toll, points); got != tt.want {
				t.Errorf("OnRoute() at %.1f km = %v, want %v", tt.distKm, got, tt.want)
			}
		})
	}
}

func TestOnRoute_SubsamplesLongPolylines(t *testing.T) {
	// 2000 points; stride becomes 4, so only indices 0, 4, 8, ... are
	// tested. A toll near index 2 only (points 0 and 4 far away) is missed:
	// the deliberate precision/cost trade-off.
	points := make([]types.Point, 2000)
	for i := range points {
		points[i] = types.Point{Lat: 45, Lng: float64(i) * 0.5}
	}
	nearSkippedOnly := rules.SpecialToll{ID: "x", Lat: 45, Lng: points[2].Lng}
	// Points 0 and 4 are ~39 km east/west of index 2 at lat 45, outside the
	// radius, while index 2 itself would have matched.
	if OnRoute(nearSkippedOnly, points) {
		t.Error("toll near a skipped point should be missed by subsampling")
	}

	nearSampled := rules.SpecialToll{ID: "y", Lat: 45, Lng: points[8].Lng}
	if !OnRoute(nearSampled, points) {
		t.Error("toll at a sampled point must be detected")
	}
}

func TestDetectOnRoute(t *testing.T) {
	table := rules.DefaultTable()

	t.Run("detects tolls along an alpine route", func(t *testing.T) {
		// Pass right by the Tauern Tunnel (47.0667, 13.4833) and the
		// Karawanken Tunnel (46.4575, 14.0750).
		points := []types.Point{
			{Lat: 47.8095, Lng: 13.0550}, // Salzburg
			{Lat: 47.0667, Lng: 13.4833},
			{Lat: 46.6111, Lng: 13.8558}, // Villach
			{Lat: 46.4575, Lng: 14.0750},
			{Lat: 46.0569, Lng: 14.5058}, // Ljubljana
		}
		got := DetectOnRoute(table, points)
		ids := make(map[string]string)
		for _, d := range got {
			ids[d.ID] = d.CountryCode
		}
		if ids["at-tauern"] != "AT" {
			t.Errorf("at-tauern not detected: %v", got)
		}
		if ids["at-karawanken"] != "AT" {
			t.Errorf("at-karawanken not detected: %v", got)
		}
		if _, found := ids["it-montblanc"]; found {
			t.Errorf("Mont Blanc should not be near this route: %v", got)
		}
	})

	t.Run("shared coordinates keep per-country ids distinct", func(t *testing.T) {
		// Grand St. Bernard is listed by CH and IT under different ids at
		// the same coordinates; both remain selectable line items.
		points := []types.Point{{Lat: 45.8689, Lng: 7.1708}}
		got := DetectOnRoute(table, points)
		var chFound, itFound bool
		for _, d := range got {
			if d.ID == "ch-grandstbernard" {
				chFound = true
			}
			if d.ID == "it-grandstbernard" {
				itFound = true
			}
		}
		if !chFound || !itFound {
			t.Errorf("expected both per-country ids, got %v", got)
		}
	})

	t.Run("empty route", func(t *testing.T) {
		if got := DetectOnRoute(table, nil); got != nil {
			t.Errorf("DetectOnRoute(nil) = %v, want nil", got)
		}
	})
}
