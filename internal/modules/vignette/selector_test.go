package vignette

import (
	"testing"

	"tollwise/internal/rules"
)

func TestSelectBest(t *testing.T) {
	slovenia := []rules.VignetteTier{
		{Label: "7 days", Price: 16.00, DurationDays: 7},
		{Label: "1 month", Price: 32.00, DurationDays: 30},
		{Label: "1 year", Price: 117.50, DurationDays: 365},
	}

	tests := []struct {
		name      string
		tiers     []rules.VignetteTier
		tripDays  int
		wantLabel string
		wantPrice float64
	}{
		{
			name:  "short trip picks cheapest covering tier",
			tiers: slovenia, tripDays: 5,
			wantLabel: "7 days", wantPrice: 16.00,
		},
		{
			name:  "exact coverage boundary is inclusive",
			tiers: slovenia, tripDays: 7,
			wantLabel: "7 days", wantPrice: 16.00,
		},
		{
			name:  "40-day trip leaves only the annual tier",
			tiers: slovenia, tripDays: 40,
			wantLabel: "1 year", wantPrice: 117.50,
		},
		{
			name:  "trip longer than all tiers falls back to last declared",
			tiers: slovenia, tripDays: 400,
			wantLabel: "1 year", wantPrice: 117.50,
		},
		{
			name: "cheaper longer tier beats shorter one",
			tiers: []rules.VignetteTier{
				{Label: "10 days", Price: 12.00, DurationDays: 10},
				{Label: "1 month", Price: 9.00, DurationDays: 30},
			},
			tripDays:  3,
			wantLabel: "1 month", wantPrice: 9.00,
		},
		{
			name: "price tie keeps first declared",
			tiers: []rules.VignetteTier{
				{Label: "10 days", Price: 12.00, DurationDays: 10},
				{Label: "1 month", Price: 12.00, DurationDays: 30},
			},
			tripDays:  3,
			wantLabel: "10 days", wantPrice: 12.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectBest(tt.tiers, tt.tripDays)
			if !ok {
				t.Fatal("SelectBest() returned no tier")
			}
			if got.Label != tt.wantLabel || got.Price != tt.wantPrice {
				t.Errorf("SelectBest() = %q/%.2f, want %q/%.2f", got.Label, got.Price, tt.wantLabel, tt.wantPrice)
			}
		})
	}

	t.Run("empty tier list", func(t *testing.T) {
		if _, ok := SelectBest(nil, 5); ok {
			t.Error("SelectBest(nil) should report no tier")
		}
	})
}
