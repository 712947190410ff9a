// README: Optional Postgres-backed price overrides applied over the embedded catalog.
package rules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Override kinds understood by ApplyOverrides.
const (
	OverrideVignette = "vignette" // label matches a vignette tier label
	OverridePerKmCar = "perkm_car"
	OverridePerKmVan = "perkm_van"
)

// PriceOverride is an operator-maintained correction to a catalog price.
type PriceOverride struct {
	CountryCode string
	Kind        string
	Label       string
	Price       float64
}

// Store reads price overrides. Toll tariffs drift between releases; the
// overrides table lets operators patch individual prices without a deploy.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) LoadOverrides(ctx context.Context) ([]PriceOverride, error) {
	rows, err := s.db.Query(ctx,
		`SELECT country_code, kind, label, price FROM toll_price_overrides`)
	if err != nil {
		return nil, fmt.Errorf("load toll price overrides: %w", err)
	}
	defer rows.Close()

	var out []PriceOverride
	for rows.Next() {
		var o PriceOverride
		if err := rows.Scan(&o.CountryCode, &o.Kind, &o.Label, &o.Price); err != nil {
			return nil, fmt.Errorf("scan toll price override: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ApplyOverrides returns a new rule list with the overrides applied.
// Overrides referencing unknown countries, kinds or tier labels are
// reported back so the caller can log them; they never fail the load.
func ApplyOverrides(countryRules []CountryRule, overrides []PriceOverride) ([]CountryRule, []PriceOverride) {
	out := make([]CountryRule, len(countryRules))
	copy(out, countryRules)

	index := make(map[string]int, len(out))
	for i, r := range out {
		index[r.Code] = i
	}

	var skipped []PriceOverride
	for _, o := range overrides {
		i, ok := index[o.CountryCode]
		if !ok {
			skipped = append(skipped, o)
			continue
		}
		switch o.Kind {
		case OverrideVignette:
			tiers := make([]VignetteTier, len(out[i].VignetteTiers))
			copy(tiers, out[i].VignetteTiers)
			found := false
			for j := range tiers {
				if tiers[j].Label == o.Label {
					tiers[j].Price = o.Price
					found = true
				}
			}
			if !found {
				skipped = append(skipped, o)
				continue
			}
			out[i].VignetteTiers = tiers
		case OverridePerKmCar, OverridePerKmVan:
			if out[i].DistanceToll == nil {
				skipped = append(skipped, o)
				continue
			}
			dt := *out[i].DistanceToll
			if o.Kind == OverridePerKmCar {
				dt.PricePerKm.Car = o.Price
			} else {
				dt.PricePerKm.Van = o.Price
			}
			out[i].DistanceToll = &dt
		default:
			skipped = append(skipped, o)
		}
	}
	return out, skipped
}

// LoadTable loads overrides and returns a Table over the patched catalog.
func (s *Store) LoadTable(ctx context.Context) (*Table, []PriceOverride, error) {
	overrides, err := s.LoadOverrides(ctx)
	if err != nil {
		return nil, nil, err
	}
	patched, skipped := ApplyOverrides(catalog(), overrides)
	return NewTable(patched), skipped, nil
}
