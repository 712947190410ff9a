// README: Cost aggregation input and result entities.
package costing

import "tollwise/internal/types"

// AlreadyOwnedLabel is the vignette option label used when the traveler
// already owns the country's vignette. It is a display contract: callers
// distinguish "owned, zero cost" from "no vignette needed" by this marker,
// not by the numeric zero.
const AlreadyOwnedLabel = "Already owned"

// Input carries everything the aggregator needs for one calculation.
type Input struct {
	VehicleType          types.VehicleType
	TripType             types.TripType
	TripDurationDays     int
	OwnedVignettes       []string
	SelectedSpecialTolls []types.SelectedSpecialToll
	CountryDistances     []types.CountryDistance
	TotalDistanceKm      float64
	TotalDurationMin     float64
}

// SpecialTollLine is one itemized special toll on a country's breakdown.
type SpecialTollLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CountryCost is the per-country cost breakdown. All monetary fields are
// one-way magnitudes; return-trip doubling happens only at the trip level,
// and the display layer doubles per-country figures without mutating these.
type CountryCost struct {
	CountryCode          string            `json:"countryCode"`
	CountryName          string            `json:"countryName"`
	Flag                 string            `json:"flag"`
	TollCost             float64           `json:"tollCost"`
	VignetteCost         float64           `json:"vignetteCost"`
	SpecialTollsCost     float64           `json:"specialTollsCost"`
	SpecialTollsSelected []SpecialTollLine `json:"specialTollsSelected"`
	VignetteRequired     bool              `json:"vignetteRequired"`
	VignetteOwned        bool              `json:"vignetteOwned"`
	VignetteOption       string            `json:"vignetteOption,omitempty"`
	EstimatedDistanceKm  int               `json:"estimatedDistance"`
	Notes                string            `json:"notes"`
}

// CalculationResult is the final trip cost estimate. Immutable once
// produced.
type CalculationResult struct {
	TotalCost            float64       `json:"totalCost"`
	CountryCosts         []CountryCost `json:"countryCosts"`
	TotalDistanceKm      int           `json:"totalDistance"`
	EstimatedDrivingTime float64       `json:"estimatedDrivingTime"`
	Currency             string        `json:"currency"`
}
