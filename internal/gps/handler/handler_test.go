package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hangout_backend/internal/archive"
	"hangout_backend/internal/gps/repository"
	"hangout_backend/internal/gps/service"
	"hangout_backend/internal/gps/transport"
	"hangout_backend/internal/places"
	"hangout_backend/platform/logger"
	"hangout_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeRecommender struct {
	calls int
	recs  places.Recommendations
}

func (f *fakeRecommender) Recommend(_ context.Context, lat, lon, _, _ float64) places.Recommendations {
	f.calls++
	recs := f.recs
	recs.Location.Latitude = lat
	recs.Location.Longitude = lon
	return recs
}

type fakeStore struct {
	saved []repository.Result
}

func (f *fakeStore) SaveResult(_ context.Context, result repository.Result) (repository.Result, error) {
	result.ID = uuid.New()
	f.saved = append(f.saved, result)
	return result, nil
}

func (f *fakeStore) ListResults(_ context.Context, limit int) ([]repository.Result, error) {
	if limit > 0 && len(f.saved) > limit {
		return f.saved[:limit], nil
	}
	return f.saved, nil
}

func (f *fakeStore) CountResults(_ context.Context) (int64, error) {
	return int64(len(f.saved)), nil
}

type fakeArchiveFile struct {
	records []archive.Record
}

func (f *fakeArchiveFile) Read() ([]archive.Record, error) {
	return f.records, nil
}

type fakeGeo struct{}

func (fakeGeo) GetDefaultLatitude() float64  { return 52.3676 }
func (fakeGeo) GetDefaultLongitude() float64 { return 4.9041 }

func newTestHandler(recommender *fakeRecommender, store *fakeStore) *Handler {
	svc := service.New(recommender, store, nil, nil, &fakeArchiveFile{}, fakeGeo{}, logger.New("test"))
	return New(svc, validator.New())
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/process-gps", h.ProcessGPS)
	engine.GET("/api/data", h.GetData)
	engine.POST("/api/test-connection", h.TestConnection)
	engine.GET("/api/health", h.Health)
	return engine
}

func TestProcessGPS_OK(t *testing.T) {
	recommender := &fakeRecommender{recs: places.Recommendations{
		Budget: "medium",
		Spots:  []places.Spot{{ID: "s1", Name: "Cafe", Rating: 4.5}},
	}}
	store := &fakeStore{}
	engine := newTestRouter(newTestHandler(recommender, store))

	body := []byte(`{"budget": 50, "distance": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/process-gps", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp transport.ProcessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Message != "GPS data processed successfully" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}
	if len(resp.Spots) != 1 || resp.Spots[0].ID != "s1" {
		t.Fatalf("expected recommended spot in response, got %+v", resp.Spots)
	}
	if resp.RequestID == "" {
		t.Fatal("expected request ID from persistence")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected result persisted, got %d", len(store.saved))
	}
	// default coordinates apply when the request has none
	if store.saved[0].Latitude != 52.3676 {
		t.Fatalf("expected default latitude, got %v", store.saved[0].Latitude)
	}
}

func TestProcessGPS_RejectsNonPositiveInputs(t *testing.T) {
	recommender := &fakeRecommender{}
	engine := newTestRouter(newTestHandler(recommender, &fakeStore{}))

	for _, body := range []string{
		`{"budget": 0, "distance": 5}`,
		`{"budget": 50, "distance": -1}`,
		`{"distance": 5}`,
		`{"budget": "cheap", "distance": 5}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/process-gps", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}

	if recommender.calls != 0 {
		t.Fatalf("invalid input must not reach the recommender, got %d calls", recommender.calls)
	}
}

func TestGetData_FromStore(t *testing.T) {
	store := &fakeStore{}
	h := newTestHandler(&fakeRecommender{}, store)
	engine := newTestRouter(h)

	seed := httptest.NewRequest(http.MethodPost, "/api/process-gps", bytes.NewBufferString(`{"budget": 10, "distance": 1}`))
	seed.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.DataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 1 || resp.Source != "db" {
		t.Fatalf("unexpected data response: %+v", resp)
	}
}

func TestGetData_RejectsUnknownSource(t *testing.T) {
	engine := newTestRouter(newTestHandler(&fakeRecommender{}, &fakeStore{}))

	req := httptest.NewRequest(http.MethodGet, "/api/data?source=tape", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTestConnection_EchoesPayload(t *testing.T) {
	engine := newTestRouter(newTestHandler(&fakeRecommender{}, &fakeStore{}))

	req := httptest.NewRequest(http.MethodPost, "/api/test-connection", bytes.NewBufferString(`{"ping": true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.TestConnectionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Message != "Connection successful!" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}
	received, ok := resp.ReceivedData.(map[string]interface{})
	if !ok || received["ping"] != true {
		t.Fatalf("payload not echoed: %+v", resp.ReceivedData)
	}
}

func TestHealth_ReportsStoredRecords(t *testing.T) {
	store := &fakeStore{saved: []repository.Result{{}, {}}}
	engine := newTestRouter(newTestHandler(&fakeRecommender{}, store))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Status != "healthy" || resp.StoredRecords != 2 {
		t.Fatalf("unexpected health response: %+v", resp)
	}
}
