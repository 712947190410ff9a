// README: Country toll rule definitions (static pricing policy per country).
package rules

type TollSystem string

const (
	SystemDistance TollSystem = "distance"
	SystemVignette TollSystem = "vignette"
	SystemMixed    TollSystem = "mixed"
	SystemNone     TollSystem = "none"
)

type TollType string

const (
	TollTunnel TollType = "tunnel"
	TollBridge TollType = "bridge"
	TollPass   TollType = "pass"
)

// VignetteTier is one purchasable vignette duration option.
type VignetteTier struct {
	Label        string  `json:"duration"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
}

// PerKmRate holds the per-kilometre price per vehicle class. No dedicated
// truck rates exist yet for most countries; callers fall back to the van
// rate for anything that is not a car.
type PerKmRate struct {
	Car   float64 `json:"car"`
	Van   float64 `json:"van"`
	Truck float64 `json:"truck"`
}

type DistanceToll struct {
	PricePerKm        PerKmRate `json:"pricePerKm"`
	AverageDistanceKm float64   `json:"averageDistance,omitempty"`
}

// SpecialToll is a fixed charge for a named tunnel, bridge or pass,
// additional to the country's general toll system. Lat/Lng is the toll's
// representative point used for route proximity matching.
type SpecialToll struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        TollType `json:"type"`
	Price       float64  `json:"price"`
	PriceReturn float64  `json:"priceReturn,omitempty"`
	Route       string   `json:"route,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
}

// CountryRule is the full pricing policy of one country. Immutable once
// loaded into a Table.
type CountryRule struct {
	Code             string         `json:"code"`
	Name             string         `json:"name"`
	Flag             string         `json:"flag"`
	TollSystem       TollSystem     `json:"tollSystem"`
	Currency         string         `json:"currency"`
	DistanceToll     *DistanceToll  `json:"distanceToll,omitempty"`
	VignetteRequired bool           `json:"vignetteRequired"`
	VignetteTiers    []VignetteTier `json:"vignetteOptions,omitempty"`
	SpecialTolls     []SpecialToll  `json:"specialTolls,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// NeedsVignette reports whether the country's system requires a vignette.
func (r CountryRule) NeedsVignette() bool {
	return (r.TollSystem == SystemVignette || r.TollSystem == SystemMixed) && r.VignetteRequired
}

// HasDistanceToll reports whether the country charges per kilometre.
func (r CountryRule) HasDistanceToll() bool {
	return (r.TollSystem == SystemDistance || r.TollSystem == SystemMixed) && r.DistanceToll != nil
}
