package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"tollwise/internal/types"
)

// ErrRouteNotFound means no drivable route exists between the addresses, as
// opposed to a transport or quota failure. Callers use the distinction for
// user messaging.
var ErrRouteNotFound = errors.New("route not found")

// Leg is one stretch of the route between consecutive stops.
type Leg struct {
	DistanceKm   float64
	DurationMin  float64
	StartAddress string
	EndAddress   string
}

// Route is the decoded result of a directions lookup: ordered legs plus the
// full route geometry.
type Route struct {
	Legs             []Leg
	Points           []types.Point
	TotalDistanceKm  float64
	TotalDurationMin float64
}

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Route requests driving directions from origin to destination through the
// given waypoints and decodes the route geometry.
func (s *RouteService) Route(ctx context.Context, origin, destination string, waypoints []string) (Route, error) {
	var stops []string
	for _, w := range waypoints {
		if w != "" {
			stops = append(stops, w)
		}
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Waypoints:   stops,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Route{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Route{}, ErrRouteNotFound
	}

	route := routes[0]
	out := Route{}
	for _, leg := range route.Legs {
		l := Leg{
			DistanceKm:   float64(leg.Distance.Meters) / 1000,
			DurationMin:  leg.Duration.Minutes(),
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
		}
		out.TotalDistanceKm += l.DistanceKm
		out.TotalDurationMin += l.DurationMin
		out.Legs = append(out.Legs, l)
	}

	out.Points = decodeGeometry(route)
	return out, nil
}

// decodeGeometry extracts the route polyline. The overview polyline is
// preferred; when it is empty, per-step polylines are stitched together.
func decodeGeometry(route maps.Route) []types.Point {
	if latlngs, err := route.OverviewPolyline.Decode(); err == nil && len(latlngs) > 0 {
		return toPoints(latlngs)
	}

	var points []types.Point
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			latlngs, err := step.Polyline.Decode()
			if err != nil {
				continue
			}
			points = append(points, toPoints(latlngs)...)
		}
	}
	return points
}

func toPoints(latlngs []maps.LatLng) []types.Point {
	out := make([]types.Point, len(latlngs))
	for i, ll := range latlngs {
		out[i] = types.Point{Lat: ll.Lat, Lng: ll.Lng}
	}
	return out
}
