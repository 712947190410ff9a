// README: Read-only lookup table over the country rule catalog.
package rules

import (
	"fmt"
	"sort"
)

// Table indexes country rules by ISO2 code. It is built once at startup and
// safe for concurrent reads.
type Table struct {
	byCode  map[string]CountryRule
	ordered []CountryRule
}

// NewTable builds a Table, validating the data integrity invariants:
// exactly one rule per country code and at least one vignette tier for
// every vignette-required country. Violations are programming errors in
// the catalog, so they panic.
func NewTable(countryRules []CountryRule) *Table {
	byCode := make(map[string]CountryRule, len(countryRules))
	for _, r := range countryRules {
		if _, dup := byCode[r.Code]; dup {
			panic(fmt.Sprintf("rules: duplicate country code %q", r.Code))
		}
		if r.NeedsVignette() && len(r.VignetteTiers) == 0 {
			panic(fmt.Sprintf("rules: country %q requires a vignette but defines no tiers", r.Code))
		}
		byCode[r.Code] = r
	}

	ordered := make([]CountryRule, len(countryRules))
	copy(ordered, countryRules)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	return &Table{byCode: byCode, ordered: ordered}
}

// DefaultTable returns a Table over the embedded catalog.
func DefaultTable() *Table {
	return NewTable(catalog())
}

// Get returns the rule for an ISO2 country code.
func (t *Table) Get(code string) (CountryRule, bool) {
	r, ok := t.byCode[code]
	return r, ok
}

// Has reports whether a country is supported.
func (t *Table) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Countries returns all rules ordered by display name.
func (t *Table) Countries() []CountryRule {
	out := make([]CountryRule, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// CountriesWithSpecialTolls returns, in display-name order, the countries
// that list at least one special toll.
func (t *Table) CountriesWithSpecialTolls() []CountryRule {
	var out []CountryRule
	for _, r := range t.ordered {
		if len(r.SpecialTolls) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// SpecialTollByID looks a special toll up across all countries. When the
// same id appears under more than one country (cross-border tunnels), the
// first country in display-name order wins; selection is deduplicated by id.
func (t *Table) SpecialTollByID(id string) (SpecialToll, string, bool) {
	for _, r := range t.ordered {
		for _, st := range r.SpecialTolls {
			if st.ID == id {
				return st, r.Code, true
			}
		}
	}
	return SpecialToll{}, "", false
}
