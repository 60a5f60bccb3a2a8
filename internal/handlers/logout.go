package handlers

import (
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/jwt"
)

// NewLogoutHandler clears the session cookie unconditionally and sends the
// browser back to the landing page.
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
