// README: Concurrency tests for route segmentation (run with -race).
package segment

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tollwise/internal/rules"
	"tollwise/internal/types"
)

// TestConcurrentSegmentSharedEngine resolves several routes in parallel on
// one engine. The resolver is hit from the engine's worker pool and from
// all callers at once; results must stay identical to a sequential run.
func TestConcurrentSegmentSharedEngine(t *testing.T) {
	resolver := &stubResolver{countryAt: func(km float64) string {
		if km < 150 {
			return "AT"
		}
		return "SI"
	}}
	e := NewEngine(rules.DefaultTable(), resolver, zap.NewNop(),
		WithRateLimit(rate.NewLimiter(rate.Inf, 1)))

	want, err := e.Segment(context.Background(), equatorRoute(300), 300)
	if err != nil {
		t.Fatal(err)
	}

	const callers = 8
	results := make([][]types.CountryDistance, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = e.Segment(context.Background(), equatorRoute(300), 300)
		}()
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if !reflect.DeepEqual(results[i], want) {
			t.Errorf("caller %d: Segment() = %v, want %v", i, results[i], want)
		}
	}
}

// TestConcurrentSegmentCallCount checks that the per-route resolver budget
// holds when sample resolution fans out across the worker pool.
func TestConcurrentSegmentCallCount(t *testing.T) {
	resolver := &stubResolver{countryAt: func(float64) string { return "IT" }}
	e := NewEngine(rules.DefaultTable(), resolver, zap.NewNop(),
		WithRateLimit(rate.NewLimiter(rate.Inf, 1)), WithWorkers(8))

	const routes = 4
	var wg sync.WaitGroup
	for i := 0; i < routes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Segment(context.Background(), equatorRoute(450), 450); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if calls := int(resolver.calls.Load()); calls > routes*maxSamples {
		t.Errorf("resolver called %d times, budget is %d per route", calls, maxSamples)
	}
}
