package ai

import "context"

// DetectionRequest describes a route for special-toll detection.
type DetectionRequest struct {
	Origin      string
	Destination string
	Waypoints   []string
	// Countries narrows the candidate toll list to the route's countries.
	// Empty means all candidates are offered to the model.
	Countries []string
}

// Detector determines which catalog special tolls a route passes through.
// Implementations are best-effort: detection failures must degrade to an
// empty result at the call site, never block a cost calculation.
type Detector interface {
	DetectSpecialTolls(ctx context.Context, req DetectionRequest) ([]string, error)
}
