package places

// Tier buckets a numeric budget into the coarse levels the upstream
// APIs understand.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

const maxRadiusMeters = 40000 // Yelp caps the search radius

// TierForBudget maps a positive budget amount to a price tier.
func TierForBudget(budget float64) Tier {
	switch {
	case budget < 25:
		return TierLow
	case budget < 75:
		return TierMedium
	default:
		return TierHigh
	}
}

// yelpPriceFilter returns the Yelp price query value for a tier.
func yelpPriceFilter(tier Tier) string {
	switch tier {
	case TierLow:
		return "1,2"
	case TierMedium:
		return "2,3"
	case TierHigh:
		return "3,4"
	default:
		return "1,2,3,4"
	}
}

// allowedPriceLevels returns the Google price levels accepted for a tier.
func allowedPriceLevels(tier Tier) map[int]bool {
	switch tier {
	case TierLow:
		return map[int]bool{1: true, 2: true}
	case TierMedium:
		return map[int]bool{2: true, 3: true}
	case TierHigh:
		return map[int]bool{3: true, 4: true}
	default:
		return map[int]bool{1: true, 2: true, 3: true, 4: true}
	}
}

// RadiusMeters converts a distance in kilometers to a radius in meters,
// capped at the upstream maximum.
func RadiusMeters(distanceKm float64) int {
	radius := int(distanceKm * 1000)
	if radius > maxRadiusMeters {
		return maxRadiusMeters
	}
	if radius < 1 {
		return 1
	}
	return radius
}
