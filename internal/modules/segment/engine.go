// README: Country segmentation engine attributes route distance to countries.
package segment

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"tollwise/internal/geo"
	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// Resolver maps a single geographic point to an ISO2 country code.
// An empty code means the point could not be resolved; per-point failures
// must not abort a segmentation run.
type Resolver interface {
	CountryAt(ctx context.Context, p types.Point) (string, error)
}

type countrySample struct {
	distanceKm float64
	country    string
}

type countrySegment struct {
	country string
	startKm float64
	endKm   float64
}

// Engine converts a route polyline into per-country distances by sampling
// points along the route and resolving each to a country.
type Engine struct {
	table    *rules.Table
	resolver Resolver
	log      *zap.Logger
	limiter  *rate.Limiter
	workers  int
}

// Option tunes resolver throughput without touching the algorithm.
type Option func(*Engine)

// WithRateLimit paces resolver calls to respect external service quotas.
func WithRateLimit(l *rate.Limiter) Option {
	return func(e *Engine) { e.limiter = l }
}

// WithWorkers bounds resolver concurrency. 1 means sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func NewEngine(table *rules.Table, resolver Resolver, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		table:    table,
		resolver: resolver,
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(10), 1),
		workers:  4,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Segment attributes totalDistanceKm across the countries the route passes
// through. The result is ordered by first appearance along the route; a
// country crossed twice contributes a single combined entry. An empty
// result means no sample resolved to a supported country and the caller
// should fall back to address-based detection.
func (e *Engine) Segment(ctx context.Context, points []types.Point, totalDistanceKm float64) ([]types.CountryDistance, error) {
	if len(points) == 0 {
		return nil, nil
	}

	cumKm := geo.CumulativeKm(points)
	indices := sampleIndices(cumKm, sampleBudget(totalDistanceKm))
	e.log.Debug("sampling route for country detection",
		zap.Int("route_points", len(points)),
		zap.Int("samples", len(indices)),
		zap.Float64("total_km", totalDistanceKm))

	samples, err := e.resolveSamples(ctx, points, cumKm, indices)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		e.log.Warn("no route samples resolved to a supported country")
		return nil, nil
	}

	segments := buildSegments(samples, totalDistanceKm)
	return aggregate(segments), nil
}

// resolveSamples resolves the sampled points with bounded concurrency.
// Results are written into an index-addressed slice so the boundary walk
// always sees samples in increasing distance order, regardless of call
// completion order. Failed and unsupported samples are dropped.
func (e *Engine) resolveSamples(ctx context.Context, points []types.Point, cumKm []float64, indices []int) ([]countrySample, error) {
	resolved := make([]string, len(indices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, idx := range indices {
		g.Go(func() error {
			if err := e.limiter.Wait(gctx); err != nil {
				return err
			}
			code, err := e.resolver.CountryAt(gctx, points[idx])
			if err != nil {
				e.log.Debug("resolver failed for sample point",
					zap.Float64("km", cumKm[idx]), zap.Error(err))
				return nil
			}
			resolved[i] = code
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	samples := make([]countrySample, 0, len(indices))
	for i, idx := range indices {
		code := resolved[i]
		if code == "" {
			continue
		}
		if !e.table.Has(code) {
			// Pricing cannot be applied anyway; treating the sample as
			// unknown lets neighboring segments absorb the distance.
			e.log.Debug("sample resolved to unsupported country",
				zap.String("country", code), zap.Float64("km", cumKm[idx]))
			continue
		}
		samples = append(samples, countrySample{distanceKm: cumKm[idx], country: code})
	}
	return samples, nil
}

// buildSegments walks samples in distance order and closes a segment at the
// midpoint between two samples that disagree on country. The exact border
// location is unknowable from sparse sampling, so the midpoint is the
// conservative estimate. The first segment starts at km 0 and the last one
// ends at the route's total distance.
func buildSegments(samples []countrySample, totalDistanceKm float64) []countrySegment {
	var segments []countrySegment
	current := samples[0].country
	startKm := 0.0

	for i := 1; i < len(samples); i++ {
		if samples[i].country == current {
			continue
		}
		boundaryKm := (samples[i-1].distanceKm + samples[i].distanceKm) / 2
		segments = append(segments, countrySegment{country: current, startKm: startKm, endKm: boundaryKm})
		startKm = boundaryKm
		current = samples[i].country
	}

	segments = append(segments, countrySegment{country: current, startKm: startKm, endKm: totalDistanceKm})
	return segments
}

// aggregate sums segment lengths per country, preserving first-appearance
// order: a country visited twice is billed once as a combined distance.
func aggregate(segments []countrySegment) []types.CountryDistance {
	totals := make(map[string]float64)
	var order []string
	for _, s := range segments {
		if _, seen := totals[s.country]; !seen {
			order = append(order, s.country)
		}
		totals[s.country] += s.endKm - s.startKm
	}

	out := make([]types.CountryDistance, 0, len(order))
	for _, code := range order {
		out = append(out, types.CountryDistance{
			CountryCode: code,
			DistanceKm:  roundKm(totals[code]),
		})
	}
	return out
}

func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
