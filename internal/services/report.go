package services

import (
	"context"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
)

// ReportReader reads the joined event/account rows.
type ReportReader interface {
	ListWithAccounts(ctx context.Context, limit, offset int) ([]models.EventReportRow, error)
}

// AccountCounter counts registered accounts.
type AccountCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// ReportCache caches report pages.
type ReportCache interface {
	Get(ctx context.Context, limit, offset int) ([]models.EventReportRow, error)
	Set(ctx context.Context, limit, offset int, rows []models.EventReportRow) error
}

// ReportService serves the admin dashboard: the joined event table and the
// account count. Pages are served from the cache when one is configured.
type ReportService struct {
	reader       ReportReader
	accounts     AccountCounter
	cache        ReportCache
	defaultLimit int
}

// NewReportService creates a new ReportService. cache may be nil when Redis
// is not configured; reads then always go to the database.
func NewReportService(reader ReportReader, accounts AccountCounter, cache ReportCache, defaultLimit int) *ReportService {
	return &ReportService{
		reader:       reader,
		accounts:     accounts,
		cache:        cache,
		defaultLimit: defaultLimit,
	}
}

// GetReport returns one bounded page of the joined event table. A
// non-positive limit falls back to the configured default page size.
func (s *ReportService) GetReport(ctx context.Context, limit, offset int) ([]models.EventReportRow, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	if s.cache != nil {
		if rows, err := s.cache.Get(ctx, limit, offset); err == nil {
			return rows, nil
		}
	}

	rows, err := s.reader.ListWithAccounts(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to read event report", "limit", limit, "offset", offset, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, offset, rows); err != nil {
			logger.Log.Warnw("failed to cache event report page", "limit", limit, "offset", offset, "err", err)
		}
	}

	return rows, nil
}

// CountAccounts returns the total number of registered accounts.
func (s *ReportService) CountAccounts(ctx context.Context) (int64, error) {
	count, err := s.accounts.CountAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count accounts", "err", err)
		return 0, err
	}
	return count, nil
}
