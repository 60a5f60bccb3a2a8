package handlers

import (
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/middlewares"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/web"
)

type dashboardPageData struct {
	UserName string
}

// NewDashboardHandler renders the driver capture page. The route is gated
// by the driver session middleware; events themselves arrive asynchronously
// on the ingestion endpoint while this page is open.
func NewDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := dashboardPageData{}
		if claims := middlewares.GetClaimsFromContext(r.Context()); claims != nil {
			data.UserName = claims.UserName
		}
		web.Render(w, "dashboard", data)
	}
}
