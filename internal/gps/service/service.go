package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hangout_backend/internal/archive"
	"hangout_backend/internal/gps/repository"
	"hangout_backend/internal/gps/transport"
	"hangout_backend/internal/places"
	"hangout_backend/platform/cache"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"
)

const (
	statusSuccess = "success"

	msgProcessed = "GPS data processed successfully"
)

// Recommender is the places aggregation the service depends on.
type Recommender interface {
	Recommend(ctx context.Context, lat, lon, budget, distanceKm float64) places.Recommendations
}

// ResultStore is the persistence subset the service depends on.
type ResultStore interface {
	SaveResult(ctx context.Context, result repository.Result) (repository.Result, error)
	ListResults(ctx context.Context, limit int) ([]repository.Result, error)
	CountResults(ctx context.Context) (int64, error)
}

// ArchiveReader reads the worker-maintained archive file.
type ArchiveReader interface {
	Read() ([]archive.Record, error)
}

type Service struct {
	recommender Recommender
	store       ResultStore
	cache       *cache.Cache
	archiver    archive.Archiver
	archiveFile ArchiveReader
	geo         config.GeoConfig
	log         *logger.Logger
	now         func() time.Time
}

func New(recommender Recommender, store ResultStore, c *cache.Cache, archiver archive.Archiver, archiveFile ArchiveReader, geo config.GeoConfig, log *logger.Logger) *Service {
	return &Service{
		recommender: recommender,
		store:       store,
		cache:       c,
		archiver:    archiver,
		archiveFile: archiveFile,
		geo:         geo,
		log:         log,
		now:         time.Now,
	}
}

// Process resolves recommendations for the request, persists the outcome,
// and enqueues an archive task. Cache hits skip the provider calls.
func (s *Service) Process(ctx context.Context, req transport.ProcessRequest) (transport.ProcessResponse, error) {
	lat := s.geo.GetDefaultLatitude()
	lon := s.geo.GetDefaultLongitude()
	if req.Latitude != nil {
		lat = *req.Latitude
	}
	if req.Longitude != nil {
		lon = *req.Longitude
	}

	recs, cached := s.recommendations(ctx, lat, lon, req.Budget, req.Distance)

	response := transport.ProcessResponse{
		Message:      msgProcessed,
		Location:     recs.Location,
		Budget:       recs.Budget,
		Spots:        recs.Spots,
		TotalResults: recs.TotalResults,
		Cached:       cached,
		Timestamp:    s.now().UTC(),
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return transport.ProcessResponse{}, err
	}

	saved, err := s.store.SaveResult(ctx, repository.Result{
		Latitude:  lat,
		Longitude: lon,
		Budget:    req.Budget,
		Distance:  req.Distance,
		Status:    statusSuccess,
		Response:  payload,
	})
	if err != nil {
		s.log.DatabaseError("save gps result", err)
		return transport.ProcessResponse{}, err
	}
	response.RequestID = saved.ID.String()

	if s.archiver != nil {
		record := archive.Record{
			ID:        saved.ID.String(),
			Budget:    req.Budget,
			Distance:  req.Distance,
			Latitude:  lat,
			Longitude: lon,
			Status:    statusSuccess,
			Response:  payload,
			Timestamp: response.Timestamp.Format(time.RFC3339),
		}
		if err := s.archiver.ArchiveResult(ctx, record); err != nil {
			// archiving is best-effort; the result is already persisted
			s.log.Warn("archive enqueue failed", "error", err, "id", record.ID)
		}
	}

	return response, nil
}

func (s *Service) recommendations(ctx context.Context, lat, lon, budget, distance float64) (places.Recommendations, bool) {
	key := cacheKey(lat, lon, budget, distance)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var recs places.Recommendations
		if err := json.Unmarshal(raw, &recs); err == nil {
			return recs, true
		}
	}

	recs := s.recommender.Recommend(ctx, lat, lon, budget, distance)

	if raw, err := json.Marshal(recs); err == nil {
		if err := s.cache.Set(ctx, key, raw); err != nil {
			s.log.Warn("recommendation cache write failed", "error", err)
		}
	}

	return recs, false
}

// Data lists stored results, from the database or from the archive file.
func (s *Service) Data(ctx context.Context, query transport.DataQuery) (transport.DataResponse, error) {
	if query.Source == "file" {
		return s.dataFromFile(query.Limit)
	}

	results, err := s.store.ListResults(ctx, query.Limit)
	if err != nil {
		s.log.DatabaseError("list gps results", err)
		return transport.DataResponse{}, err
	}

	data := make([]transport.StoredResult, 0, len(results))
	for _, result := range results {
		data = append(data, transport.StoredResult{
			ID:        result.ID.String(),
			Budget:    result.Budget,
			Distance:  result.Distance,
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
			Status:    result.Status,
			Response:  result.Response,
			CreatedAt: result.CreatedAt,
		})
	}

	return transport.DataResponse{Data: data, Count: len(data), Source: "db"}, nil
}

func (s *Service) dataFromFile(limit int) (transport.DataResponse, error) {
	records, err := s.archiveFile.Read()
	if err != nil {
		return transport.DataResponse{}, err
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	data := make([]transport.StoredResult, 0, len(records))
	for _, record := range records {
		created, _ := time.Parse(time.RFC3339, record.Timestamp)
		data = append(data, transport.StoredResult{
			ID:        record.ID,
			Budget:    record.Budget,
			Distance:  record.Distance,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
			Status:    record.Status,
			Response:  record.Response,
			CreatedAt: created,
		})
	}

	return transport.DataResponse{Data: data, Count: len(data), Source: "file"}, nil
}

// StoredCount reports how many results the database holds.
func (s *Service) StoredCount(ctx context.Context) (int64, error) {
	return s.store.CountResults(ctx)
}

func cacheKey(lat, lon, budget, distance float64) string {
	tier := places.TierForBudget(budget)
	radius := places.RadiusMeters(distance)
	return fmt.Sprintf("recs:%.3f:%.3f:%s:%d", lat, lon, tier, radius)
}
