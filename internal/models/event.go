package models

import "time"

// Event kinds accepted by the ingestion endpoint.
const (
	EventKindDrowsy  = "drowsy"
	EventKindYawning = "yawning"
)

// EventDB represents one detected drowsiness or yawning occurrence.
type EventDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning account
	EventType string    `json:"event_type" db:"event_type"` // drowsy | yawning
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Server clock at insert
	ImagePath string    `json:"image_path" db:"image_path"` // Archived snapshot filename
}
