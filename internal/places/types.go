package places

// Coordinates is a lat/lon pair as returned to clients.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Spot is a suggested hangout location from either provider, normalized
// for the frontend.
type Spot struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Rating         float64     `json:"rating"`
	PriceLevel     int         `json:"price_level"`
	Address        string      `json:"address,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	URL            string      `json:"url,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
	Categories     []string    `json:"categories,omitempty"`
	Coordinates    Coordinates `json:"coordinates"`
	DistanceMeters float64     `json:"distance,omitempty"`
	OpenNow        *bool       `json:"is_open,omitempty"`
	Source         string      `json:"source"`
}

// Location echoes the search area back to the caller.
type Location struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

// TotalResults carries per-provider result counts before truncation.
type TotalResults struct {
	Restaurants int `json:"restaurants"`
	Activities  int `json:"activities"`
}

// Recommendations is the aggregate payload for a processed GPS request.
// The spots sequence merges restaurants and activities, best rated first.
type Recommendations struct {
	Location     Location     `json:"location"`
	Budget       string       `json:"budget"`
	Spots        []Spot       `json:"spots"`
	TotalResults TotalResults `json:"total_results"`
}

const (
	sourceYelp         = "yelp"
	sourceGooglePlaces = "google_places"
)
