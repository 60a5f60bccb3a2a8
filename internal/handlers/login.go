package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/jwt"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/web"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (token string, role string, err error)
}

// NewLoginPageHandler renders the combined login/register page.
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, "auth", nil)
	}
}

// NewLoginHandler returns the handler for the login form. The administrator
// pair is checked before the account store; on success the session cookie is
// set and the browser is redirected to the role's dashboard. Failures answer
// with a plain-text rejection that does not say which field was wrong.
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid Credentials", http.StatusBadRequest)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, role, err := svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		target := "/dashboard"
		if role == jwt.RoleAdmin {
			target = "/admin-dashboard"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}
