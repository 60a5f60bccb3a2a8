package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/middlewares"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
)

// EventLogger defines the interface that the ingestion service must implement.
type EventLogger interface {
	LogEvent(ctx context.Context, userID int64, kind, image string) (string, error)
}

// LogDrowsinessRequest represents the JSON body posted by the capture client
// swagger:model LogDrowsinessRequest
type LogDrowsinessRequest struct {
	// Snapshot as a data-URI base64 JPEG
	// required: true
	Image string `json:"image"`

	// Event kind: drowsy or yawning
	// required: true
	Type string `json:"type"`
}

// LogDrowsinessResponse represents the ingestion acknowledgment
// swagger:model LogDrowsinessResponse
type LogDrowsinessResponse struct {
	// Outcome: success, unauthorized or error
	Status string `json:"status"`

	// Details for failed submissions
	Error string `json:"error,omitempty"`
}

// NewLogDrowsinessHandler returns the ingestion endpoint handler.
// @Summary Log one drowsiness or yawning event
// @Description Accepts a base64 JPEG snapshot with its classified event kind from a driver session, archives the image and records the event.
// @Tags events
// @Accept json
// @Produce json
// @Param logDrowsinessRequest body handlers.LogDrowsinessRequest true "Classified event with snapshot"
// @Success 200 {object} handlers.LogDrowsinessResponse "Event recorded"
// @Failure 400 {object} handlers.LogDrowsinessResponse "Unknown event kind or undecodable image"
// @Failure 401 {object} handlers.LogDrowsinessResponse "No driver session"
// @Failure 500 {object} handlers.LogDrowsinessResponse "Archive or database failure"
// @Router /log_drowsiness [post]
func NewLogDrowsinessHandler(svc EventLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "unauthorized"})
			return
		}

		var req LogDrowsinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "error", Error: "invalid request body"})
			return
		}

		if _, err := svc.LogEvent(r.Context(), claims.UserID, req.Type, req.Image); err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownEventKind):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "error", Error: "unknown event kind"})
			case errors.Is(err, services.ErrBadImagePayload):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "error", Error: "image payload is not valid base64"})
			default:
				logger.Log.Errorw("failed to log event", "user_id", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "error", Error: "failed to record event"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogDrowsinessResponse{Status: "success"})
	}
}
