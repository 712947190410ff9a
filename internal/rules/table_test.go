package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	t.Run("known countries resolve", func(t *testing.T) {
		for _, code := range []string{"AT", "SI", "HU", "CZ", "SK", "CH", "IT", "FR", "ES", "HR", "DE", "PL", "RO", "BG", "NL", "BE", "PT", "GR", "RS"} {
			r, ok := table.Get(code)
			require.True(t, ok, "country %s missing", code)
			assert.Equal(t, code, r.Code)
		}
	})

	t.Run("unknown country does not resolve", func(t *testing.T) {
		_, ok := table.Get("XX")
		assert.False(t, ok)
	})

	t.Run("vignette countries have tiers", func(t *testing.T) {
		for _, r := range table.Countries() {
			if r.NeedsVignette() {
				assert.NotEmpty(t, r.VignetteTiers, "country %s", r.Code)
			}
		}
	})

	t.Run("countries ordered by name", func(t *testing.T) {
		cs := table.Countries()
		for i := 1; i < len(cs); i++ {
			assert.LessOrEqual(t, cs[i-1].Name, cs[i].Name)
		}
	})
}

func TestTable_SpecialTollByID(t *testing.T) {
	table := DefaultTable()

	st, country, ok := table.SpecialTollByID("at-tauern")
	require.True(t, ok)
	assert.Equal(t, "AT", country)
	assert.Equal(t, "Tauern Tunnel (A10)", st.Name)
	assert.Equal(t, 14.00, st.Price)

	// Grand St. Bernard is listed under both IT and CH with distinct ids;
	// each id stays a distinct selectable item.
	_, itCountry, ok := table.SpecialTollByID("it-grandstbernard")
	require.True(t, ok)
	assert.Equal(t, "IT", itCountry)
	_, chCountry, ok := table.SpecialTollByID("ch-grandstbernard")
	require.True(t, ok)
	assert.Equal(t, "CH", chCountry)

	_, _, ok = table.SpecialTollByID("nope")
	assert.False(t, ok)
}

func TestNewTable_Invariants(t *testing.T) {
	t.Run("duplicate code panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable([]CountryRule{
				{Code: "AT", Name: "Austria", TollSystem: SystemNone},
				{Code: "AT", Name: "Austria again", TollSystem: SystemNone},
			})
		})
	})

	t.Run("vignette country without tiers panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable([]CountryRule{
				{Code: "AT", Name: "Austria", TollSystem: SystemVignette, VignetteRequired: true},
			})
		})
	})
}

func TestApplyOverrides(t *testing.T) {
	base := []CountryRule{
		{
			Code: "SI", Name: "Slovenia", TollSystem: SystemVignette, VignetteRequired: true,
			VignetteTiers: []VignetteTier{{Label: "7 days", Price: 16.00, DurationDays: 7}},
		},
		{
			Code: "IT", Name: "Italy", TollSystem: SystemDistance,
			DistanceToll: &DistanceToll{PricePerKm: PerKmRate{Car: 0.08, Van: 0.10}},
		},
	}

	patched, skipped := ApplyOverrides(base, []PriceOverride{
		{CountryCode: "SI", Kind: OverrideVignette, Label: "7 days", Price: 17.50},
		{CountryCode: "IT", Kind: OverridePerKmCar, Price: 0.09},
		{CountryCode: "XX", Kind: OverridePerKmCar, Price: 0.01},
		{CountryCode: "SI", Kind: OverrideVignette, Label: "no such tier", Price: 1},
		{CountryCode: "SI", Kind: OverridePerKmVan, Price: 1},
	})

	assert.Equal(t, 17.50, patched[0].VignetteTiers[0].Price)
	assert.Equal(t, 0.09, patched[1].DistanceToll.PricePerKm.Car)
	assert.Len(t, skipped, 3)

	// Base data must not be mutated.
	assert.Equal(t, 16.00, base[0].VignetteTiers[0].Price)
	assert.Equal(t, 0.08, base[1].DistanceToll.PricePerKm.Car)
}
