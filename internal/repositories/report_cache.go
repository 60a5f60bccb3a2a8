package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/redis/go-redis/v9"
)

// ReportCacheRepository caches admin report pages in Redis with a short TTL,
// keeping the joined read-all query off the hot path of admin page reloads.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewReportCacheRepository creates a new repository instance with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached report page. A cache miss is returned as an error.
func (r *ReportCacheRepository) Get(ctx context.Context, limit, offset int) ([]models.EventReportRow, error) {
	key := fmt.Sprintf("event_report:%d:%d", limit, offset)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("report page not found in cache for limit=%d offset=%d", limit, offset)
		}
		return nil, err
	}

	var rows []models.EventReportRow
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rows),
		"error", nil,
	)

	return rows, nil
}

// Set caches a report page with the repository's expiration.
func (r *ReportCacheRepository) Set(ctx context.Context, limit, offset int, rows []models.EventReportRow) error {
	key := fmt.Sprintf("event_report:%d:%d", limit, offset)

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rows", len(rows),
		"result", "ok",
		"error", err,
	)

	return err
}
