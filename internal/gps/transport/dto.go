package transport

import (
	"encoding/json"
	"time"

	"hangout_backend/internal/places"
)

// ProcessRequest is the POST /api/process-gps body. Coordinates are
// optional; the service falls back to the configured default location.
type ProcessRequest struct {
	Budget    float64  `json:"budget" validate:"required,gt=0"`
	Distance  float64  `json:"distance" validate:"required,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// ProcessResponse is returned flat so the frontend renderer finds the
// spots sequence at the top level. The message field is also present;
// renderers that check spots first will prefer the spot list.
type ProcessResponse struct {
	Message      string              `json:"message"`
	RequestID    string              `json:"request_id"`
	Location     places.Location     `json:"location"`
	Budget       string              `json:"budget"`
	Spots        []places.Spot       `json:"spots"`
	TotalResults places.TotalResults `json:"total_results"`
	Cached       bool                `json:"cached"`
	Timestamp    time.Time           `json:"timestamp"`
}

// DataQuery are the GET /api/data query parameters.
type DataQuery struct {
	Source string `form:"source,default=db" validate:"omitempty,oneof=db file"`
	Limit  int    `form:"limit" validate:"omitempty,gt=0,lte=500"`
}

// StoredResult is one persisted processing result.
type StoredResult struct {
	ID        string          `json:"id"`
	Budget    float64         `json:"budget"`
	Distance  float64         `json:"distance"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Status    string          `json:"status"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

// DataResponse is the GET /api/data payload.
type DataResponse struct {
	Data   []StoredResult `json:"data"`
	Count  int            `json:"count"`
	Source string         `json:"source"`
}

// TestConnectionResponse echoes the caller's payload with metadata.
type TestConnectionResponse struct {
	Message      string      `json:"message"`
	ReceivedData interface{} `json:"received_data"`
	Timestamp    time.Time   `json:"timestamp"`
	Method       string      `json:"method"`
	ContentType  string      `json:"content_type"`
}

// HealthResponse reports service liveness and stored record count.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	StoredRecords int64     `json:"stored_records"`
}
