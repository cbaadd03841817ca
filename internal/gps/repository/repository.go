package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Result is a persisted gps_requests row.
type Result struct {
	ID        uuid.UUID
	Latitude  float64
	Longitude float64
	Budget    float64
	Distance  float64
	Status    string
	Response  json.RawMessage
	CreatedAt time.Time
}

func (r *Repository) SaveResult(ctx context.Context, result Result) (Result, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO gps_requests (latitude, longitude, budget, distance, status, response)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, result.Latitude, result.Longitude, result.Budget, result.Distance, result.Status, result.Response).
		Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// ListResults returns the newest results first, up to limit (0 = all).
func (r *Repository) ListResults(ctx context.Context, limit int) ([]Result, error) {
	query := `
		SELECT id, latitude, longitude, budget, distance, status, response, created_at
		FROM gps_requests
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var result Result
		if err := rows.Scan(
			&result.ID,
			&result.Latitude,
			&result.Longitude,
			&result.Budget,
			&result.Distance,
			&result.Status,
			&result.Response,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func (r *Repository) CountResults(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gps_requests`).Scan(&count)
	return count, err
}
