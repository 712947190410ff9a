// README: Cost aggregator combines segment distances, vignettes and special tolls.
package costing

import (
	"math"

	"tollwise/internal/modules/vignette"
	"tollwise/internal/rules"
	"tollwise/internal/types"
)

type Service struct {
	table *rules.Table
}

func NewService(table *rules.Table) *Service {
	return &Service{table: table}
}

// Calculate produces the itemized trip cost. It is pure and deterministic
// given its input; calling it twice with identical input yields identical
// results. Countries without a rule contribute nothing and never fail the
// calculation.
func (s *Service) Calculate(in Input) CalculationResult {
	owned := make(map[string]bool, len(in.OwnedVignettes))
	for _, code := range in.OwnedVignettes {
		owned[code] = true
	}

	countryCosts := make([]CountryCost, 0, len(in.CountryDistances))
	totalCost := 0.0

	for _, cd := range in.CountryDistances {
		rule, ok := s.table.Get(cd.CountryCode)
		if !ok {
			continue
		}

		cost := CountryCost{
			CountryCode:         rule.Code,
			CountryName:         rule.Name,
			Flag:                rule.Flag,
			EstimatedDistanceKm: int(math.Round(cd.DistanceKm)),
			Notes:               rule.Notes,
		}

		if rule.HasDistanceToll() {
			cost.TollCost = round2(cd.DistanceKm * perKmRate(rule, in.VehicleType))
		}

		if rule.NeedsVignette() {
			cost.VignetteRequired = true
			cost.VignetteOwned = owned[rule.Code]
			if cost.VignetteOwned {
				cost.VignetteOption = AlreadyOwnedLabel
			} else if tier, ok := vignette.SelectBest(rule.VignetteTiers, in.TripDurationDays); ok {
				cost.VignetteCost = tier.Price
				cost.VignetteOption = tier.Label
			}
		}

		cost.SpecialTollsSelected = []SpecialTollLine{}
		for _, toll := range in.SelectedSpecialTolls {
			if toll.CountryCode != rule.Code {
				continue
			}
			cost.SpecialTollsCost += toll.Price
			cost.SpecialTollsSelected = append(cost.SpecialTollsSelected, SpecialTollLine{
				Name:  toll.Name,
				Price: toll.Price,
			})
		}

		countryCosts = append(countryCosts, cost)
		totalCost += cost.TollCost + cost.VignetteCost + cost.SpecialTollsCost
	}

	totalDistance := in.TotalDistanceKm
	drivingTime := drivingHours(in.TotalDurationMin)

	if in.TripType == types.TripReturn {
		// Distance tolls and special tolls are paid again on the way back;
		// a purchased vignette stays valid for the return leg.
		var tolls, specials float64
		for _, c := range countryCosts {
			tolls += c.TollCost
			specials += c.SpecialTollsCost
		}
		totalCost += tolls + specials
		totalDistance *= 2
		drivingTime *= 2
	}

	return CalculationResult{
		TotalCost:            round2(totalCost),
		CountryCosts:         countryCosts,
		TotalDistanceKm:      int(math.Round(totalDistance)),
		EstimatedDrivingTime: drivingTime,
		Currency:             "EUR",
	}
}

// perKmRate maps the vehicle type onto the available rate classes. Only car
// and van rates exist today; anything that is not a car uses the van rate
// as the closest tier.
func perKmRate(rule rules.CountryRule, vehicle types.VehicleType) float64 {
	if vehicle == types.VehicleCar {
		return rule.DistanceToll.PricePerKm.Car
	}
	return rule.DistanceToll.PricePerKm.Van
}

// drivingHours expresses a raw route duration as fractional hours, with the
// minute remainder rounded to a whole minute first. The rounding must
// happen before any return-trip doubling.
func drivingHours(durationMin float64) float64 {
	hours := math.Floor(durationMin / 60)
	minutes := math.Round(math.Mod(durationMin, 60))
	return hours + minutes/60
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
