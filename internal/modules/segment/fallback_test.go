package segment

import (
	"math"
	"testing"

	"tollwise/internal/rules"
)

func TestCountryFromAddress(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"Stephansplatz 1, 1010 Wien, Österreich", "AT"},
		{"Via Roma 5, 00100 Roma, Italia", "IT"},
		{"Trg republike 1, 1000 Ljubljana, Slovenija", "SI"},
		{"10 Rue de Rivoli, 75001 Paris, France", "FR"},
		{"Hauptstraße 12, 80331 München, Deutschland", "DE"},
		{"Main Street 5, Springfield, USA", ""},
		{"", ""},
		// Postal digits in the last token must not block the match.
		{"Ljubljana, 1000 Slovenia", "SI"},
		// Case-insensitive matching.
		{"somewhere, SWITZERLAND", "CH"},
	}

	for _, tt := range tests {
		if got := CountryFromAddress(tt.address); got != tt.want {
			t.Errorf("CountryFromAddress(%q) = %q, want %q", tt.address, got, tt.want)
		}
	}
}

func TestFallbackFromAddresses(t *testing.T) {
	table := rules.DefaultTable()

	t.Run("even split across distinct countries", func(t *testing.T) {
		got := FallbackFromAddresses(table, []string{
			"Salzburg, Österreich",
			"Villach, Österreich", // duplicate country, deduplicated
			"Ljubljana, Slovenija",
		}, 290)
		if len(got) != 2 {
			t.Fatalf("FallbackFromAddresses() = %v, want 2 countries", got)
		}
		if got[0].CountryCode != "AT" || got[1].CountryCode != "SI" {
			t.Fatalf("order = %v, want AT then SI", got)
		}
		for _, cd := range got {
			if math.Abs(cd.DistanceKm-145) > 0.1 {
				t.Errorf("%s distance = %v, want 145", cd.CountryCode, cd.DistanceKm)
			}
		}
	})

	t.Run("no recognizable countries", func(t *testing.T) {
		got := FallbackFromAddresses(table, []string{"somewhere", ""}, 100)
		if got != nil {
			t.Errorf("FallbackFromAddresses() = %v, want nil", got)
		}
	})
}
