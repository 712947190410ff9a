// README: Tagged trip updates applied one field at a time.
package trip

import (
	"tollwise/internal/types"
)

// Update is applied to a TripData; each concrete type names the field it
// sets, so a change's scope is visible at the call site.
type Update interface {
	apply(*TripData)
}

type SetVehicleType struct{ Value types.VehicleType }
type SetAxles struct{ Value int }
type SetFuelType struct{ Value types.FuelType }
type SetStartAddress struct{ Value string }
type SetEndAddress struct{ Value string }
type SetWaypoints struct{ Value []string }
type SetTripType struct{ Value types.TripType }
type SetStartDate struct{ Value string }
type SetEndDate struct{ Value string }
type SetOwnedVignettes struct{ Value []string }
type SetSelectedSpecialTolls struct {
	Value []types.SelectedSpecialToll
}
type SetRouteData struct{ Value *RouteData }

func (u SetVehicleType) apply(t *TripData) { t.VehicleType = u.Value }
func (u SetAxles) apply(t *TripData)       { t.Axles = u.Value }
func (u SetFuelType) apply(t *TripData)    { t.FuelType = u.Value }

// Route-shaping fields invalidate the resolved route.
func (u SetStartAddress) apply(t *TripData) {
	t.StartAddress = u.Value
	t.RouteData = nil
}

func (u SetEndAddress) apply(t *TripData) {
	t.EndAddress = u.Value
	t.RouteData = nil
}

func (u SetWaypoints) apply(t *TripData) {
	t.WaypointAddresses = u.Value
	t.RouteData = nil
}

func (u SetTripType) apply(t *TripData) { t.TripType = u.Value }

func (u SetStartDate) apply(t *TripData) {
	t.StartDate = u.Value
	if days, ok := durationDays(t.StartDate, t.EndDate); ok {
		t.TripDurationDays = days
	}
}

func (u SetEndDate) apply(t *TripData) {
	t.EndDate = u.Value
	if days, ok := durationDays(t.StartDate, t.EndDate); ok {
		t.TripDurationDays = days
	}
}

func (u SetOwnedVignettes) apply(t *TripData) { t.OwnedVignettes = u.Value }

func (u SetSelectedSpecialTolls) apply(t *TripData) {
	t.SelectedSpecialTolls = u.Value
}

func (u SetRouteData) apply(t *TripData) { t.RouteData = u.Value }

// Apply returns a copy of t with every update applied in order.
func Apply(t TripData, updates ...Update) TripData {
	for _, u := range updates {
		u.apply(&t)
	}
	return t
}
