package maps

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
	"googlemaps.github.io/maps"

	"tollwise/internal/types"
)

// Geocoder resolves geographic points and addresses to ISO2 country codes
// through the Google Maps Geocoding API. Nearby lookups are deduplicated by
// a rounded-coordinate key: concurrent callers of the same cell share one
// in-flight API call, and resolved cells are cached.
type Geocoder struct {
	client *maps.Client
	cache  *GeocodeCache
	group  singleflight.Group
}

// NewGeocoder creates a Geocoder. cache may be nil to disable caching.
func NewGeocoder(apiKey string, cache *GeocodeCache) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client, cache: cache}, nil
}

// CountryAt reverse-geocodes a point to a country code. An empty string
// with nil error means the point resolved to no country (e.g. open water).
func (g *Geocoder) CountryAt(ctx context.Context, p types.Point) (string, error) {
	key := geocodeKey(p)

	if g.cache != nil {
		if code, ok := g.cache.Get(ctx, key); ok {
			return code, nil
		}
	}

	v, err, _ := g.group.Do(key, func() (any, error) {
		results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
			LatLng:     &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
			ResultType: []string{"country"},
		})
		if err != nil {
			return "", fmt.Errorf("reverse geocode: %w", err)
		}
		code := countryCode(results)
		if g.cache != nil {
			g.cache.Set(ctx, key, code)
		}
		return code, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// CountriesForAddresses geocodes each address and collects the distinct
// country codes, preserving address order. Individual geocoding failures
// are skipped.
func (g *Geocoder) CountriesForAddresses(ctx context.Context, addresses []string) ([]string, error) {
	var codes []string
	seen := make(map[string]bool)
	for _, addr := range addresses {
		if addr == "" {
			continue
		}
		results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: addr})
		if err != nil {
			continue
		}
		code := countryCode(results)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes, nil
}

// geocodeKey buckets coordinates into ~100 m cells: route samples this
// close together always share a country.
func geocodeKey(p types.Point) string {
	return fmt.Sprintf("geo:%.3f:%.3f", p.Lat, p.Lng)
}

func countryCode(results []maps.GeocodingResult) string {
	for _, res := range results {
		for _, comp := range res.AddressComponents {
			for _, t := range comp.Types {
				if t == "country" {
					return comp.ShortName
				}
			}
		}
	}
	return ""
}
