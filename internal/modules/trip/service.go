// README: Trip orchestration: route resolution, toll detection, costing.
package trip

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"tollwise/internal/ai"
	"tollwise/internal/maps"
	"tollwise/internal/modules/costing"
	"tollwise/internal/modules/segment"
	"tollwise/internal/modules/tollmatch"
	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// RouteProvider resolves a directions request into legs and geometry.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination string, waypoints []string) (maps.Route, error)
}

// AddressResolver maps stop addresses to ISO2 country codes. Used as the
// first fallback when route sampling resolves no country.
type AddressResolver interface {
	CountriesForAddresses(ctx context.Context, addresses []string) ([]string, error)
}

// Service ties route resolution, country segmentation, special-toll
// detection and cost aggregation together for one trip session.
type Service struct {
	table     *rules.Table
	router    RouteProvider
	engine    *segment.Engine
	detector  ai.Detector
	addresses AddressResolver
	costing   *costing.Service
	log       *zap.Logger

	mu sync.Mutex
	// currentFingerprint identifies the route inputs of the most recent
	// ResolveRoute; detection results carrying an older fingerprint are
	// dropped instead of applied.
	currentFingerprint string
	// lastAppliedDetection records which fingerprint already had its
	// detection auto-applied, so re-running detection does not clobber
	// the traveler's manual toll edits.
	lastAppliedDetection string
}

func NewService(table *rules.Table, router RouteProvider, engine *segment.Engine,
	detector ai.Detector, addresses AddressResolver,
	costingSvc *costing.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		table:     table,
		router:    router,
		engine:    engine,
		detector:  detector,
		addresses: addresses,
		costing:   costingSvc,
		log:       log,
	}
}

// ResolveRoute fetches directions for the trip's addresses, attributes the
// distance to countries and returns the resolved RouteData. Segmentation
// falls back to address-derived countries when no sample point resolves.
func (s *Service) ResolveRoute(ctx context.Context, data TripData) (*RouteData, error) {
	route, err := s.router.Route(ctx, data.StartAddress, data.EndAddress, data.WaypointAddresses)
	if err != nil {
		return nil, err
	}

	distances, err := s.engine.Segment(ctx, route.Points, route.TotalDistanceKm)
	if err != nil {
		return nil, err
	}
	if len(distances) == 0 {
		addresses := legAddresses(route.Legs)
		s.log.Warn("segmentation produced no countries, using address fallback",
			zap.Int("addresses", len(addresses)))
		distances = s.fallbackDistances(ctx, addresses, route.TotalDistanceKm)
	}

	countries := make([]string, 0, len(distances))
	for _, d := range distances {
		countries = append(countries, d.CountryCode)
	}

	rd := &RouteData{
		Countries:        countries,
		CountryDistances: distances,
		TotalDistanceKm:  route.TotalDistanceKm,
		TotalDurationMin: route.TotalDurationMin,
		Legs:             toRouteLegs(route.Legs),
		Points:           route.Points,
	}

	s.mu.Lock()
	s.currentFingerprint = Fingerprint(data.StartAddress, data.EndAddress,
		data.WaypointAddresses, countries)
	s.mu.Unlock()

	return rd, nil
}

// DetectSpecialTolls determines which catalog special tolls the resolved
// route passes through. The AI detector is consulted first; when it errors
// or returns nothing, geometric matching against the route points takes
// over. The returned fingerprint identifies the inputs the detection was
// computed for.
func (s *Service) DetectSpecialTolls(ctx context.Context, data TripData) ([]types.SelectedSpecialToll, string, error) {
	if data.RouteData == nil {
		return nil, "", nil
	}
	fp := Fingerprint(data.StartAddress, data.EndAddress,
		data.WaypointAddresses, data.RouteData.Countries)

	var detected []types.SelectedSpecialToll
	if s.detector != nil {
		ids, err := s.detector.DetectSpecialTolls(ctx, ai.DetectionRequest{
			Origin:      data.StartAddress,
			Destination: data.EndAddress,
			Waypoints:   data.WaypointAddresses,
			Countries:   data.RouteData.Countries,
		})
		if err != nil {
			s.log.Warn("ai toll detection failed, falling back to geometry", zap.Error(err))
		} else {
			detected = s.tollsByID(ids)
		}
	}
	if len(detected) == 0 && len(data.RouteData.Points) > 0 {
		detected = tollmatch.DetectOnRoute(s.table, data.RouteData.Points)
	}

	s.mu.Lock()
	stale := s.currentFingerprint != "" && s.currentFingerprint != fp
	s.mu.Unlock()
	if stale {
		s.log.Debug("dropping stale toll detection", zap.String("fingerprint", fp))
		return nil, fp, nil
	}
	return detected, fp, nil
}

// ApplyDetection merges detected tolls into the trip, at most once per
// route fingerprint. A repeat call for the same fingerprint returns the
// trip unchanged so the traveler's deselections survive re-detection.
func (s *Service) ApplyDetection(data TripData, detected []types.SelectedSpecialToll, fingerprint string) TripData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fingerprint == "" || s.lastAppliedDetection == fingerprint {
		return data
	}
	if s.currentFingerprint != "" && s.currentFingerprint != fingerprint {
		return data
	}
	s.lastAppliedDetection = fingerprint
	return Apply(data, SetSelectedSpecialTolls{Value: detected})
}

// Calculate runs the cost aggregation for the trip's current state. A trip
// without resolved route data yields an empty zero-cost result.
func (s *Service) Calculate(data TripData) costing.CalculationResult {
	in := costing.Input{
		VehicleType:          data.VehicleType,
		TripType:             data.TripType,
		TripDurationDays:     data.TripDurationDays,
		OwnedVignettes:       data.OwnedVignettes,
		SelectedSpecialTolls: data.SelectedSpecialTolls,
	}
	if data.RouteData != nil {
		in.CountryDistances = data.RouteData.CountryDistances
		in.TotalDistanceKm = data.RouteData.TotalDistanceKm
		in.TotalDurationMin = data.RouteData.TotalDurationMin
	}
	return s.costing.Calculate(in)
}

// fallbackDistances derives country distances from stop addresses when
// sampling resolved nothing: forward-geocoding first, then country-name
// parsing of the address strings. Both split the distance evenly.
func (s *Service) fallbackDistances(ctx context.Context, addresses []string, totalDistanceKm float64) []types.CountryDistance {
	if s.addresses != nil {
		codes, err := s.addresses.CountriesForAddresses(ctx, addresses)
		if err != nil {
			s.log.Warn("address geocoding fallback failed", zap.Error(err))
		} else if len(codes) > 0 {
			if out := segment.EvenSplit(s.table, codes, totalDistanceKm); len(out) > 0 {
				return out
			}
		}
	}
	return segment.FallbackFromAddresses(s.table, addresses, totalDistanceKm)
}

// tollsByID maps detector ids onto catalog entries, dropping unknowns.
func (s *Service) tollsByID(ids []string) []types.SelectedSpecialToll {
	out := make([]types.SelectedSpecialToll, 0, len(ids))
	for _, id := range ids {
		toll, code, ok := s.table.SpecialTollByID(id)
		if !ok {
			continue
		}
		out = append(out, types.SelectedSpecialToll{
			ID:          toll.ID,
			CountryCode: code,
			Name:        toll.Name,
			Price:       toll.Price,
		})
	}
	return out
}

func legAddresses(legs []maps.Leg) []string {
	if len(legs) == 0 {
		return nil
	}
	out := make([]string, 0, len(legs)+1)
	out = append(out, legs[0].StartAddress)
	for _, leg := range legs {
		out = append(out, leg.EndAddress)
	}
	return out
}

func toRouteLegs(legs []maps.Leg) []RouteLeg {
	out := make([]RouteLeg, len(legs))
	for i, leg := range legs {
		out[i] = RouteLeg{
			DistanceKm:   leg.DistanceKm,
			DurationMin:  leg.DurationMin,
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
		}
	}
	return out
}
