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

const defaultYelpBaseURL = "https://api.yelp.com/v3"

// YelpClient searches restaurants through the Yelp business search API.
type YelpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *logger.Logger
}

// NewYelpClient builds a Yelp client. An empty API key disables the client;
// searches then return no results, mirroring a partially configured deploy.
func NewYelpClient(cfg config.YelpConfig, log *logger.Logger) *YelpClient {
	return &YelpClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultYelpBaseURL,
		apiKey:  cfg.GetYelpAPIKey(),
		log:     log,
	}
}

type yelpCategory struct {
	Title string `json:"title"`
}

type yelpLocation struct {
	DisplayAddress []string `json:"display_address"`
}

type yelpCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type yelpBusiness struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Rating      float64         `json:"rating"`
	Price       string          `json:"price"`
	Location    yelpLocation    `json:"location"`
	Phone       string          `json:"phone"`
	URL         string          `json:"url"`
	ImageURL    string          `json:"image_url"`
	Categories  []yelpCategory  `json:"categories"`
	Distance    float64         `json:"distance"`
	Coordinates yelpCoordinates `json:"coordinates"`
	IsClosed    bool            `json:"is_closed"`
}

type yelpSearchResponse struct {
	Businesses []yelpBusiness `json:"businesses"`
}

// SearchRestaurants returns restaurants near the coordinates matching the
// budget tier, sorted by rating upstream.
func (c *YelpClient) SearchRestaurants(ctx context.Context, lat, lon float64, tier Tier, radiusMeters int) ([]Spot, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("radius", strconv.Itoa(radiusMeters))
	params.Add("categories", "restaurants,food")
	params.Add("price", yelpPriceFilter(tier))
	params.Add("limit", "20")
	params.Add("sort_by", "rating")

	reqURL := fmt.Sprintf("%s/businesses/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.UpstreamError(sourceYelp, 0, err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError(sourceYelp, resp.StatusCode, nil)
		return nil, apperr.Upstream(fmt.Sprintf("yelp upstream error: %d", resp.StatusCode), nil)
	}

	var payload yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.UpstreamError(sourceYelp, resp.StatusCode, err)
		return nil, err
	}

	spots := make([]Spot, 0, len(payload.Businesses))
	for _, biz := range payload.Businesses {
		spots = append(spots, buildYelpSpot(biz))
	}

	return spots, nil
}

func buildYelpSpot(biz yelpBusiness) Spot {
	categories := make([]string, 0, len(biz.Categories))
	for _, cat := range biz.Categories {
		categories = append(categories, cat.Title)
	}

	address := ""
	if len(biz.Location.DisplayAddress) > 0 {
		address = biz.Location.DisplayAddress[0]
		for _, line := range biz.Location.DisplayAddress[1:] {
			address += ", " + line
		}
	}

	priceLevel := len(biz.Price)
	if priceLevel == 0 {
		priceLevel = 1
	}

	open := !biz.IsClosed
	return Spot{
		ID:         biz.ID,
		Name:       biz.Name,
		Rating:     biz.Rating,
		PriceLevel: priceLevel,
		Address:    address,
		Phone:      biz.Phone,
		URL:        biz.URL,
		ImageURL:   biz.ImageURL,
		Categories: categories,
		Coordinates: Coordinates{
			Latitude:  biz.Coordinates.Latitude,
			Longitude: biz.Coordinates.Longitude,
		},
		DistanceMeters: biz.Distance,
		OpenNow:        &open,
		Source:         sourceYelp,
	}
}
