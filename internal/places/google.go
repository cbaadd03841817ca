package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hangout_backend/platform/apperr"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"
)

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// activityTypes are the Google place types searched for non-restaurant
// hangout suggestions.
var activityTypes = []string{
	"tourist_attraction",
	"amusement_park",
	"museum",
	"park",
	"zoo",
	"shopping_mall",
}

// GoogleClient searches activities through the Places nearby search API.
type GoogleClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *logger.Logger
}

// NewGoogleClient builds a Places client. An empty API key disables it.
func NewGoogleClient(cfg config.PlacesConfig, log *logger.Logger) *GoogleClient {
	return &GoogleClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultPlacesBaseURL,
		apiKey:  cfg.GetGoogleMapsAPIKey(),
		log:     log,
	}
}

type placeGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type placeOpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

type placeResult struct {
	PlaceID      string             `json:"place_id"`
	Name         string             `json:"name"`
	Rating       float64            `json:"rating"`
	PriceLevel   *int               `json:"price_level"`
	Vicinity     string             `json:"vicinity"`
	Types        []string           `json:"types"`
	Geometry     placeGeometry      `json:"geometry"`
	OpeningHours *placeOpeningHours `json:"opening_hours"`
}

type nearbySearchResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

// NearbySearch returns places of one type near the coordinates, filtered to
// the budget tier's price levels.
func (c *GoogleClient) NearbySearch(ctx context.Context, lat, lon float64, placeType string, tier Tier, radiusMeters int) ([]Spot, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Add("location", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64)))
	params.Add("radius", strconv.Itoa(radiusMeters))
	params.Add("type", placeType)
	params.Add("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.UpstreamError(sourceGooglePlaces, 0, err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError(sourceGooglePlaces, resp.StatusCode, nil)
		return nil, apperr.Upstream(fmt.Sprintf("places upstream error: %d", resp.StatusCode), nil)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.UpstreamError(sourceGooglePlaces, resp.StatusCode, err)
		return nil, err
	}

	allowed := allowedPriceLevels(tier)

	spots := make([]Spot, 0, len(payload.Results))
	for _, place := range payload.Results {
		spot := buildGoogleSpot(place)
		if !allowed[spot.PriceLevel] {
			continue
		}
		spots = append(spots, spot)
	}

	return spots, nil
}

func buildGoogleSpot(place placeResult) Spot {
	priceLevel := 1
	if place.PriceLevel != nil {
		priceLevel = *place.PriceLevel
	}

	var openNow *bool
	if place.OpeningHours != nil {
		openNow = place.OpeningHours.OpenNow
	}

	return Spot{
		ID:         place.PlaceID,
		Name:       place.Name,
		Rating:     place.Rating,
		PriceLevel: priceLevel,
		Address:    place.Vicinity,
		Categories: place.Types,
		Coordinates: Coordinates{
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
		},
		OpenNow: openNow,
		Source:  sourceGooglePlaces,
	}
}
