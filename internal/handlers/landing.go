package handlers

import (
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/web"
)

// NewLandingHandler returns the public landing page handler.
func NewLandingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, "landing", nil)
	}
}
