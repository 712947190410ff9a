// README: Vignette selector picks the cheapest tier covering a trip duration.
package vignette

import "tollwise/internal/rules"

// SelectBest returns the cheapest tier whose coverage is at least
// tripDurationDays. When no tier covers the whole trip, the last-declared
// tier is returned as a best-effort maximum: a vignette-required country
// must always yield a priced option. Ties between covering tiers are broken
// by price, not by coverage length.
func SelectBest(tiers []rules.VignetteTier, tripDurationDays int) (rules.VignetteTier, bool) {
	if len(tiers) == 0 {
		return rules.VignetteTier{}, false
	}

	best := rules.VignetteTier{}
	found := false
	for _, tier := range tiers {
		if tier.DurationDays < tripDurationDays {
			continue
		}
		if !found || tier.Price < best.Price {
			best = tier
			found = true
		}
	}
	if !found {
		return tiers[len(tiers)-1], true
	}
	return best, true
}
