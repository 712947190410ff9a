package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tollwise/internal/rules"
)

// GeminiDetector implements Detector using Google's Gemini models. It asks
// the model which catalog tolls lie on the standard driving route between
// the given addresses.
type GeminiDetector struct {
	client *genai.Client
	model  *genai.GenerativeModel
	table  *rules.Table
}

// NewGeminiDetector initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiDetector(ctx context.Context, apiKey string, table *rules.Table) (*GeminiDetector, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Near-deterministic output; this is a lookup task, not a creative one.
	model.SetTemperature(0.1)

	return &GeminiDetector{
		client: client,
		model:  model,
		table:  table,
	}, nil
}

// Close cleans up the Gemini client resources.
func (d *GeminiDetector) Close() {
	d.client.Close()
}

// DetectSpecialTolls asks the model for the toll ids on the route. The
// reply is validated against the catalog; unknown ids are dropped.
func (d *GeminiDetector) DetectSpecialTolls(ctx context.Context, req DetectionRequest) ([]string, error) {
	prompt := buildDetectionPrompt(d.table, req)

	resp, err := d.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return parseDetectionReply(d.table, responseText.String())
}

// candidateTolls lists the catalog tolls offered to the model, scoped to
// the route's countries when known.
func candidateTolls(table *rules.Table, countries []string) []candidate {
	wanted := make(map[string]bool, len(countries))
	for _, c := range countries {
		wanted[c] = true
	}

	var out []candidate
	for _, country := range table.CountriesWithSpecialTolls() {
		if len(countries) > 0 && !wanted[country.Code] {
			continue
		}
		for _, toll := range country.SpecialTolls {
			out = append(out, candidate{
				id: toll.ID, name: toll.Name, country: country.Name, route: toll.Route,
			})
		}
	}
	return out
}

type candidate struct {
	id, name, country, route string
}

func buildDetectionPrompt(table *rules.Table, req DetectionRequest) string {
	var tollList strings.Builder
	for _, c := range candidateTolls(table, req.Countries) {
		fmt.Fprintf(&tollList, "- %s: %s (%s) - %s\n", c.id, c.name, c.country, c.route)
	}

	waypointsText := ""
	if len(req.Waypoints) > 0 {
		waypointsText = "Via: " + strings.Join(req.Waypoints, ", ") + "\n"
	}
	countriesText := strings.Join(req.Countries, ", ")
	if countriesText == "" {
		countriesText = "Unknown"
	}

	return fmt.Sprintf(`You are a European toll road expert. A driver is traveling:
From: %s
To: %s
%sCountries on route: %s

Based on the standard driving routes between these locations, which tolls from this list would they DEFINITELY pass through?

Available tolls:
%s
IMPORTANT RULES:
1. Only include tolls that are on the MAIN/DEFAULT driving route (what a navigation system would suggest)
2. For Salzburg to Ljubljana via A10: Tauern Tunnel (at-tauern) AND Karawanken Tunnel (at-karawanken) are BOTH required
3. For Ljubljana to Salzburg via A10: Karawanken Tunnel (at-karawanken) AND Tauern Tunnel (at-tauern) are BOTH required
4. The A10 Tauern Autobahn goes: Salzburg -> Tauern Tunnel -> Villach -> Karawanken Tunnel -> Slovenia
5. If traveling through Graz instead (A9 route), use Bosruck and Gleinalm tunnels, NOT Tauern/Karawanken

Respond with ONLY a JSON array of toll IDs, like: ["at-tauern", "at-karawanken"]
If no tolls are needed, respond with: []`,
		req.Origin, req.Destination, waypointsText, countriesText, tollList.String())
}

// parseDetectionReply extracts and validates the id array from the model's
// reply. Ids not present in the catalog are dropped.
func parseDetectionReply(table *rules.Table, reply string) ([]string, error) {
	clean := cleanJSONString(reply)

	var ids []string
	if err := json.Unmarshal([]byte(clean), &ids); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}

	valid := ids[:0]
	for _, id := range ids {
		if _, _, ok := table.SpecialTollByID(id); ok {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
