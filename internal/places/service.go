package places

import (
	"context"
	"sort"
	"sync"

	"hangout_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const topResults = 15

// RestaurantSearcher abstracts the Yelp client for testing.
type RestaurantSearcher interface {
	SearchRestaurants(ctx context.Context, lat, lon float64, tier Tier, radiusMeters int) ([]Spot, error)
}

// ActivitySearcher abstracts the Google Places client for testing.
type ActivitySearcher interface {
	NearbySearch(ctx context.Context, lat, lon float64, placeType string, tier Tier, radiusMeters int) ([]Spot, error)
}

// Service aggregates restaurant and activity suggestions from both providers.
type Service struct {
	restaurants RestaurantSearcher
	activities  ActivitySearcher
	log         *logger.Logger
}

func NewService(restaurants RestaurantSearcher, activities ActivitySearcher, log *logger.Logger) *Service {
	return &Service{restaurants: restaurants, activities: activities, log: log}
}

// Recommend fetches restaurants and activities concurrently, dedupes,
// ranks by rating, and merges the top results into a single spots list.
// A failing provider degrades to an empty contribution instead of failing
// the whole request.
func (s *Service) Recommend(ctx context.Context, lat, lon, budget, distanceKm float64) Recommendations {
	tier := TierForBudget(budget)
	radius := RadiusMeters(distanceKm)

	var restaurants []Spot
	var activities []Spot
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := s.restaurants.SearchRestaurants(gctx, lat, lon, tier, radius)
		if err != nil {
			s.log.Warn("restaurant search degraded", "error", err)
			return nil
		}
		restaurants = found
		return nil
	})

	for _, placeType := range activityTypes {
		placeType := placeType
		g.Go(func() error {
			found, err := s.activities.NearbySearch(gctx, lat, lon, placeType, tier, radius)
			if err != nil {
				s.log.Warn("activity search degraded", "type", placeType, "error", err)
				return nil
			}
			mu.Lock()
			activities = append(activities, found...)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	activities = dedupeByID(activities)
	sortByRating(restaurants)
	sortByRating(activities)

	totals := TotalResults{
		Restaurants: len(restaurants),
		Activities:  len(activities),
	}

	spots := make([]Spot, 0, 2*topResults)
	spots = append(spots, truncate(restaurants)...)
	spots = append(spots, truncate(activities)...)

	return Recommendations{
		Location: Location{
			Latitude:     lat,
			Longitude:    lon,
			RadiusMeters: radius,
		},
		Budget:       string(tier),
		Spots:        spots,
		TotalResults: totals,
	}
}

func dedupeByID(spots []Spot) []Spot {
	seen := make(map[string]bool, len(spots))
	unique := make([]Spot, 0, len(spots))
	for _, spot := range spots {
		if seen[spot.ID] {
			continue
		}
		seen[spot.ID] = true
		unique = append(unique, spot)
	}
	return unique
}

func sortByRating(spots []Spot) {
	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Rating > spots[j].Rating
	})
}

func truncate(spots []Spot) []Spot {
	if len(spots) > topResults {
		return spots[:topResults]
	}
	return spots
}
