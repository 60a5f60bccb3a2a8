package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/web"
)

// ReportProvider defines the interface that the admin report service must implement.
type ReportProvider interface {
	GetReport(ctx context.Context, limit, offset int) ([]models.EventReportRow, error)
	CountAccounts(ctx context.Context) (int64, error)
}

type adminPageData struct {
	Rows         []models.EventReportRow
	AccountCount int64
}

// NewAdminDashboardHandler renders the administrator table: every event
// joined with its owning account, plus the registered account count.
// Optional limit/offset query parameters page through large histories.
func NewAdminDashboardHandler(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		rows, err := svc.GetReport(r.Context(), limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to build admin report", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		count, err := svc.CountAccounts(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to count accounts", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, "admin_dashboard", adminPageData{
			Rows:         rows,
			AccountCount: count,
		})
	}
}
