package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrUnknownEventKind is returned when the submitted type is neither
	// drowsy nor yawning.
	ErrUnknownEventKind = errors.New("unknown event kind")
	// ErrBadImagePayload is returned when the submitted image is not a
	// decodable base64 string.
	ErrBadImagePayload = errors.New("image payload is not valid base64")
)

// EventWriter defines the event insert operation.
type EventWriter interface {
	Save(ctx context.Context, userID int64, eventType, imagePath string) (int64, error)
}

// SnapshotArchiver defines the snapshot file store used by ingestion.
type SnapshotArchiver interface {
	Save(filename string, data []byte) error
	Remove(filename string) error
}

// EventPublisher defines a Kafka writer abstraction.
type EventPublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// IngestService accepts classified drowsiness events from driver sessions,
// archives the snapshot and records the event. The detection itself happens
// client-side; this service only persists what it is told.
type IngestService struct {
	events    EventWriter
	files     SnapshotArchiver
	publisher EventPublisher
}

// NewIngestService creates a new IngestService. publisher may be nil when no
// event stream is configured.
func NewIngestService(events EventWriter, files SnapshotArchiver, publisher EventPublisher) *IngestService {
	return &IngestService{
		events:    events,
		files:     files,
		publisher: publisher,
	}
}

// LogEvent decodes the data-URI image, writes it to the archive under
// capture_<account_id>_<YYYYMMDD_HHMMSS>.jpg and inserts the event record.
// If the insert fails the just-written file is removed again, so a failed
// ingestion leaves no orphaned snapshot. Returns the archived filename.
//
// Two submissions from the same account within the same wall-clock second
// compute the same filename and the later write wins; accepted data-loss
// edge case.
func (s *IngestService) LogEvent(ctx context.Context, userID int64, kind, image string) (string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != models.EventKindDrowsy && kind != models.EventKindYawning {
		return "", ErrUnknownEventKind
	}

	// Strip the data-URI scheme prefix ("data:image/jpeg;base64,").
	payload := image
	if i := strings.IndexByte(image, ','); i >= 0 {
		payload = image[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadImagePayload, err)
	}

	filename := fmt.Sprintf("capture_%d_%s.jpg", userID, time.Now().Format("20060102_150405"))

	if err := s.files.Save(filename, data); err != nil {
		logger.Log.Errorw("failed to archive snapshot", "filename", filename, "err", err)
		return "", err
	}

	eventID, err := s.events.Save(ctx, userID, kind, filename)
	if err != nil {
		logger.Log.Errorw("failed to save event, removing archived snapshot", "filename", filename, "err", err)
		if rmErr := s.files.Remove(filename); rmErr != nil {
			logger.Log.Errorw("failed to remove orphaned snapshot", "filename", filename, "err", rmErr)
		}
		return "", err
	}

	s.publishEvent(ctx, eventID, userID, kind, filename)

	return filename, nil
}

// publishEvent publishes the recorded event to the event stream.
func (s *IngestService) publishEvent(ctx context.Context, eventID, userID int64, kind, filename string) {
	if s.publisher == nil {
		logger.Log.Warnw("event publisher not configured, skipping publishing", "event_id", eventID)
		return
	}

	payload, err := json.Marshal(models.EventDB{
		ID:        eventID,
		UserID:    userID,
		EventType: kind,
		CreatedAt: time.Now(),
		ImagePath: filename,
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal event for publishing", "event_id", eventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(eventID, 10)),
		Value: payload,
	}

	if err := s.publisher.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", eventID, "error", err)
	} else {
		logger.Log.Infow("event published", "event_id", eventID, "kind", kind)
	}
}
