// README: Address-based country detection, used when route sampling yields nothing.
package segment

import (
	"regexp"
	"strings"

	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// countryNameToCode maps official and common local-language country names
// to ISO2 codes, for extracting countries from geocoded address strings.
var countryNameToCode = map[string]string{
	"Austria":        "AT",
	"Belgium":        "BE",
	"Bulgaria":       "BG",
	"Croatia":        "HR",
	"Czech Republic": "CZ",
	"Czechia":        "CZ",
	"France":         "FR",
	"Germany":        "DE",
	"Greece":         "GR",
	"Hungary":        "HU",
	"Italy":          "IT",
	"Italia":         "IT",
	"Netherlands":    "NL",
	"Poland":         "PL",
	"Portugal":       "PT",
	"Romania":        "RO",
	"Serbia":         "RS",
	"Slovakia":       "SK",
	"Slovenia":       "SI",
	"Slovenija":      "SI",
	"Spain":          "ES",
	"Switzerland":    "CH",
	"Schweiz":        "CH",
	"Suisse":         "CH",
	"Svizzera":       "CH",
	"Deutschland":    "DE",
	"Österreich":     "AT",
	"Polska":         "PL",
	"Hrvatska":       "HR",
	"Magyarország":   "HU",
	"Slovensko":      "SK",
	"Česko":          "CZ",
	"România":        "RO",
	"България":       "BG",
	"Ελλάδα":         "GR",
	"España":         "ES",
	"België":         "BE",
	"Belgique":       "BE",
	"Nederland":      "NL",
	"Србија":         "RS",
}

var digits = regexp.MustCompile(`\d+`)

// CountryFromAddress extracts an ISO2 code from a geocoded address string
// by scanning its comma-separated parts from the end, ignoring digits
// (postal codes) and matching country names case-insensitively. Returns ""
// when no known country name is present.
func CountryFromAddress(address string) string {
	parts := strings.Split(address, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.ToLower(strings.TrimSpace(digits.ReplaceAllString(parts[i], "")))
		if part == "" {
			continue
		}
		for name, code := range countryNameToCode {
			if strings.Contains(part, strings.ToLower(name)) {
				return code
			}
		}
	}
	return ""
}

// FallbackFromAddresses derives country distances from leg endpoint
// addresses when sampling resolved nothing: distinct supported countries
// found in the addresses split the total distance evenly. This is a
// degraded approximation and is only used when sampled segmentation
// produced no result.
func FallbackFromAddresses(table *rules.Table, addresses []string, totalDistanceKm float64) []types.CountryDistance {
	var codes []string
	seen := make(map[string]bool)
	for _, addr := range addresses {
		if addr == "" {
			continue
		}
		code := CountryFromAddress(addr)
		if code == "" || !table.Has(code) || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	return EvenSplit(table, codes, totalDistanceKm)
}

// EvenSplit splits the total distance evenly across the supported,
// deduplicated country codes, in the order given.
func EvenSplit(table *rules.Table, codes []string, totalDistanceKm float64) []types.CountryDistance {
	var kept []string
	seen := make(map[string]bool)
	for _, code := range codes {
		if code == "" || !table.Has(code) || seen[code] {
			continue
		}
		seen[code] = true
		kept = append(kept, code)
	}
	if len(kept) == 0 {
		return nil
	}

	perCountry := totalDistanceKm / float64(len(kept))
	out := make([]types.CountryDistance, 0, len(kept))
	for _, code := range kept {
		out = append(out, types.CountryDistance{CountryCode: code, DistanceKm: roundKm(perCountry)})
	}
	return out
}
