package repositories

import (
	"context"
	"strings"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/jmoiron/sqlx"
)

type EventWriteRepository struct {
	db *sqlx.DB
}

func NewEventWriteRepository(db *sqlx.DB) *EventWriteRepository {
	return &EventWriteRepository{db: db}
}

// Save inserts one event row and returns its id. The timestamp is the
// server clock at insert time.
func (r *EventWriteRepository) Save(ctx context.Context, userID int64, eventType, imagePath string) (int64, error) {
	const query = `
		INSERT INTO events (user_id, event_type, created_at, image_path)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id
	`
	args := []any{userID, eventType, imagePath}

	var id int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// ListWithAccounts returns events inner-joined with their owning accounts,
// newest last (insertion order), bounded by limit/offset.
func (r *EventReadRepository) ListWithAccounts(ctx context.Context, limit, offset int) ([]models.EventReportRow, error) {
	const query = `
		SELECT e.id,
		       a.name AS user_name,
		       a.vehicle_no,
		       e.event_type,
		       TO_CHAR(e.created_at, 'YYYY-MM-DD HH24:MI:SS') AS timestamp,
		       e.image_path
		FROM events e
		JOIN accounts a ON a.id = e.user_id
		ORDER BY e.id
		LIMIT $1 OFFSET $2
	`

	rows := []models.EventReportRow{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}
