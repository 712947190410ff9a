// README: Embedded country rule catalog covering the supported European countries.
package rules

// catalog is the built-in rule set. Prices are point-in-time estimates, not
// live tariffs; operators can correct individual prices through the
// toll_price_overrides table without a redeploy.
func catalog() []CountryRule {
	return []CountryRule{
		{
			Code:             "AT",
			Name:             "Austria",
			Flag:             "🇦🇹",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "10 days", Price: 11.50, DurationDays: 10},
				{Label: "2 months", Price: 29.00, DurationDays: 60},
				{Label: "1 year", Price: 96.40, DurationDays: 365},
			},
			SpecialTolls: []SpecialToll{
				{ID: "at-brenner", Name: "Brenner Autobahn (A13)", Type: TollPass, Price: 11.50, Route: "Innsbruck to Italy", Lat: 47.0408, Lng: 11.5064},
				{ID: "at-tauern", Name: "Tauern Tunnel (A10)", Type: TollTunnel, Price: 14.00, Route: "Salzburg to Villach", Lat: 47.0667, Lng: 13.4833},
				{ID: "at-karawanken", Name: "Karawanken Tunnel (A11)", Type: TollTunnel, Price: 7.90, Route: "Villach to Slovenia", Lat: 46.4575, Lng: 14.0750},
				{ID: "at-arlberg", Name: "Arlberg Tunnel (S16)", Type: TollTunnel, Price: 11.50, Route: "Tirol to Vorarlberg", Lat: 47.1333, Lng: 10.2167},
				{ID: "at-bosruck", Name: "Bosruck Tunnel (A9)", Type: TollTunnel, Price: 6.50, Route: "Linz to Graz (north)", Lat: 47.5833, Lng: 14.4333},
				{ID: "at-gleinalm", Name: "Gleinalm Tunnel (A9)", Type: TollTunnel, Price: 9.50, Route: "Linz to Graz (south)", Lat: 47.1333, Lng: 15.0667},
				{ID: "at-felbertauern", Name: "Felbertauern Road", Type: TollTunnel, Price: 12.00, Route: "Salzburg to East Tyrol", Lat: 47.1167, Lng: 12.5333},
			},
			Notes: "Digital vignette (GO-Maut) required. Major tunnels and Alpine passes have separate tolls.",
		},
		{
			Code:             "SI",
			Name:             "Slovenia",
			Flag:             "🇸🇮",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "7 days", Price: 16.00, DurationDays: 7},
				{Label: "1 month", Price: 32.00, DurationDays: 30},
				{Label: "1 year", Price: 117.50, DurationDays: 365},
			},
			Notes: "E-vignette mandatory for motorways.",
		},
		{
			Code:             "HU",
			Name:             "Hungary",
			Flag:             "🇭🇺",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "10 days", Price: 12.00, DurationDays: 10},
				{Label: "1 month", Price: 18.00, DurationDays: 30},
				{Label: "1 year", Price: 150.00, DurationDays: 365},
			},
			Notes: "E-vignette system. Valid from purchase time.",
		},
		{
			Code:             "CZ",
			Name:             "Czech Republic",
			Flag:             "🇨🇿",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "10 days", Price: 14.00, DurationDays: 10},
				{Label: "1 month", Price: 20.00, DurationDays: 30},
				{Label: "1 year", Price: 60.00, DurationDays: 365},
			},
			Notes: "E-vignette for highways and expressways.",
		},
		{
			Code:             "SK",
			Name:             "Slovakia",
			Flag:             "🇸🇰",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "10 days", Price: 12.00, DurationDays: 10},
				{Label: "1 month", Price: 18.00, DurationDays: 30},
				{Label: "1 year", Price: 60.00, DurationDays: 365},
			},
			Notes: "E-vignette mandatory for motorways.",
		},
		{
			Code:             "CH",
			Name:             "Switzerland",
			Flag:             "🇨🇭",
			TollSystem:       SystemVignette,
			Currency:         "CHF",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "1 year", Price: 40.00, DurationDays: 365},
			},
			SpecialTolls: []SpecialToll{
				{ID: "ch-grandstbernard", Name: "Grand St. Bernard Tunnel", Type: TollTunnel, Price: 32.00, Route: "Switzerland to Italy", Lat: 45.8689, Lng: 7.1708},
				{ID: "ch-munt", Name: "Munt la Schera Tunnel", Type: TollTunnel, Price: 26.00, Route: "Engadin to Livigno", Lat: 46.5167, Lng: 10.0833},
			},
			Notes: "Annual vignette only. Valid calendar year + January/February of next year. Some tunnels have separate tolls.",
		},
		{
			Code:       "IT",
			Name:       "Italy",
			Flag:       "🇮🇹",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.08, Van: 0.10, Truck: 0.16},
				AverageDistanceKm: 450,
			},
			SpecialTolls: []SpecialToll{
				{ID: "it-montblanc", Name: "Mont Blanc Tunnel", Type: TollTunnel, Price: 51.40, Route: "Italy to France", Lat: 45.8442, Lng: 6.9331},
				{ID: "it-frejus", Name: "Frejus Tunnel", Type: TollTunnel, Price: 53.70, Route: "Italy to France", Lat: 45.1333, Lng: 6.6667},
				{ID: "it-grandstbernard", Name: "Grand St. Bernard Tunnel", Type: TollTunnel, Price: 32.00, Route: "Italy to Switzerland", Lat: 45.8689, Lng: 7.1708},
			},
			Notes: "Pay-per-distance at toll booths. Major Alpine tunnels have separate high tolls.",
		},
		{
			Code:       "FR",
			Name:       "France",
			Flag:       "🇫🇷",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.09, Van: 0.11, Truck: 0.18},
				AverageDistanceKm: 550,
			},
			SpecialTolls: []SpecialToll{
				{ID: "fr-montblanc", Name: "Mont Blanc Tunnel", Type: TollTunnel, Price: 51.40, Route: "France to Italy", Lat: 45.8442, Lng: 6.9331},
				{ID: "fr-frejus", Name: "Frejus Tunnel", Type: TollTunnel, Price: 53.70, Route: "France to Italy", Lat: 45.1333, Lng: 6.6667},
				{ID: "fr-puymorens", Name: "Puymorens Tunnel", Type: TollTunnel, Price: 7.30, Route: "France to Andorra/Spain", Lat: 42.5500, Lng: 1.8167},
			},
			Notes: "Autoroutes have toll stations. Major Alpine tunnels have separate high tolls.",
		},
		{
			Code:       "ES",
			Name:       "Spain",
			Flag:       "🇪🇸",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.08, Van: 0.10, Truck: 0.16},
				AverageDistanceKm: 500,
			},
			Notes: "Toll roads (autopistas) charged per distance. Many free alternatives exist.",
		},
		{
			Code:       "HR",
			Name:       "Croatia",
			Flag:       "🇭🇷",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.05, Van: 0.07, Truck: 0.12},
				AverageDistanceKm: 350,
			},
			Notes: "Toll stations on motorways. Cash and card accepted.",
		},
		{
			Code:       "DE",
			Name:       "Germany",
			Flag:       "🇩🇪",
			TollSystem: SystemNone,
			Currency:   "EUR",
			Notes:      "No tolls for cars and vans. Truck tolls apply (HGV only).",
		},
		{
			Code:       "PL",
			Name:       "Poland",
			Flag:       "🇵🇱",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.04, Van: 0.06, Truck: 0.10},
				AverageDistanceKm: 400,
			},
			Notes: "Toll roads mostly on A1, A2, A4. Cash and card accepted.",
		},
		{
			Code:             "RO",
			Name:             "Romania",
			Flag:             "🇷🇴",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "7 days", Price: 3.00, DurationDays: 7},
				{Label: "30 days", Price: 7.00, DurationDays: 30},
				{Label: "90 days", Price: 13.00, DurationDays: 90},
				{Label: "1 year", Price: 28.00, DurationDays: 365},
			},
			Notes: "Rovigneta (e-vignette) for national roads.",
		},
		{
			Code:             "BG",
			Name:             "Bulgaria",
			Flag:             "🇧🇬",
			TollSystem:       SystemVignette,
			Currency:         "EUR",
			VignetteRequired: true,
			VignetteTiers: []VignetteTier{
				{Label: "7 days", Price: 10.00, DurationDays: 7},
				{Label: "1 month", Price: 20.00, DurationDays: 30},
				{Label: "3 months", Price: 35.00, DurationDays: 90},
				{Label: "1 year", Price: 70.00, DurationDays: 365},
			},
			Notes: "E-vignette for all motorways and main roads.",
		},
		{
			Code:       "NL",
			Name:       "Netherlands",
			Flag:       "🇳🇱",
			TollSystem: SystemNone,
			Currency:   "EUR",
			Notes:      "No toll roads for cars. Tunnel tolls may apply in some cases.",
		},
		{
			Code:       "BE",
			Name:       "Belgium",
			Flag:       "🇧🇪",
			TollSystem: SystemNone,
			Currency:   "EUR",
			Notes:      "No toll roads for cars and vans.",
		},
		{
			Code:       "PT",
			Name:       "Portugal",
			Flag:       "🇵🇹",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.06, Van: 0.08, Truck: 0.14},
				AverageDistanceKm: 400,
			},
			Notes: "Electronic toll system on major highways.",
		},
		{
			Code:       "GR",
			Name:       "Greece",
			Flag:       "🇬🇷",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.05, Van: 0.07, Truck: 0.12},
				AverageDistanceKm: 350,
			},
			Notes: "Toll stations on national highways.",
		},
		{
			Code:       "RS",
			Name:       "Serbia",
			Flag:       "🇷🇸",
			TollSystem: SystemDistance,
			Currency:   "EUR",
			DistanceToll: &DistanceToll{
				PricePerKm:        PerKmRate{Car: 0.03, Van: 0.05, Truck: 0.09},
				AverageDistanceKm: 300,
			},
			Notes: "Toll stations on motorways. Cash (RSD/EUR) and card accepted.",
		},
	}
}
