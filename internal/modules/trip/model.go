// README: Trip data model mutated across the wizard and consumed by costing.
package trip

import (
	"math"
	"strings"
	"time"

	"tollwise/internal/types"
)

const dateLayout = "2006-01-02"

// RouteLeg is one stretch of the resolved route between consecutive stops.
type RouteLeg struct {
	DistanceKm   float64 `json:"distance"`
	DurationMin  float64 `json:"duration"`
	StartAddress string  `json:"startAddress"`
	EndAddress   string  `json:"endAddress"`
}

// RouteData is the resolved route for one calculation: per-country
// distances, totals, legs and the decoded geometry. Ephemeral; discarded
// when the route inputs change.
type RouteData struct {
	Countries        []string                `json:"countries"`
	CountryDistances []types.CountryDistance `json:"countryDistances"`
	TotalDistanceKm  float64                 `json:"totalDistance"`
	TotalDurationMin float64                 `json:"totalDuration"`
	Legs             []RouteLeg              `json:"legs"`
	Points           []types.Point           `json:"points,omitempty"`
}

// TripData accumulates the traveler's input across the wizard steps and is
// consumed once per calculation. Not persisted beyond the session.
type TripData struct {
	VehicleType          types.VehicleType           `json:"vehicleType"`
	Axles                int                         `json:"axles"`
	FuelType             types.FuelType              `json:"fuelType"`
	StartAddress         string                      `json:"startAddress"`
	EndAddress           string                      `json:"endAddress"`
	WaypointAddresses    []string                    `json:"waypointAddresses"`
	TripType             types.TripType              `json:"tripType"`
	StartDate            string                      `json:"startDate"`
	EndDate              string                      `json:"endDate"`
	TripDurationDays     int                         `json:"tripDurationDays"`
	OwnedVignettes       []string                    `json:"ownedVignettes"`
	SelectedSpecialTolls []types.SelectedSpecialToll `json:"selectedSpecialTolls"`
	RouteData            *RouteData                  `json:"routeData,omitempty"`
}

// NewTripData returns the wizard's initial state.
func NewTripData() TripData {
	return TripData{
		VehicleType:          types.VehicleCar,
		Axles:                2,
		FuelType:             types.FuelPetrol,
		TripType:             types.TripOneWay,
		TripDurationDays:     1,
		WaypointAddresses:    []string{},
		OwnedVignettes:       []string{},
		SelectedSpecialTolls: []types.SelectedSpecialToll{},
	}
}

// durationDays computes the inclusive day-count ceiling between the trip
// dates, never less than 1. Unparsable or missing dates leave the current
// value untouched.
func durationDays(startDate, endDate string) (int, bool) {
	if startDate == "" || endDate == "" {
		return 0, false
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, false
	}
	days := int(math.Ceil(math.Abs(end.Sub(start).Hours()) / 24))
	if days < 1 {
		days = 1
	}
	return days, true
}

// Fingerprint derives a key over the route inputs of a detection request,
// used to drop results that arrive after the inputs changed.
func Fingerprint(origin, destination string, waypoints, countries []string) string {
	parts := []string{origin, destination,
		strings.Join(waypoints, ","), strings.Join(countries, ",")}
	return strings.Join(parts, "|")
}
