// README: Shared value objects used across modules.
package types

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VehicleType string

const (
	VehicleCar   VehicleType = "car"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
)

type TripType string

const (
	TripOneWay TripType = "one-way"
	TripReturn TripType = "return"
)

// CountryDistance is the stable output of route segmentation: the distance
// attributed to one country, in first-appearance order along the route.
type CountryDistance struct {
	CountryCode string  `json:"countryCode"`
	DistanceKm  float64 `json:"distance"`
}

// SelectedSpecialToll is a special toll chosen for the trip, either by the
// user or by route detection. CountryCode records which country's catalog
// the toll was selected from.
type SelectedSpecialToll struct {
	ID          string  `json:"id"`
	CountryCode string  `json:"countryCode"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
}
