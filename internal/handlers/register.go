package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, age, email, vehicleType, vehicleNo, username, password string) error
}

// NewRegisterHandler returns the handler for the registration form. A new
// account redirects to the login page; duplicate login handles or emails
// answer 409 instead of leaking a storage constraint error.
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid registration form", http.StatusBadRequest)
			return
		}

		err := svc.Register(
			r.Context(),
			r.PostFormValue("fullname"),
			r.PostFormValue("age"),
			r.PostFormValue("email"),
			r.PostFormValue("vehicle_type"),
			r.PostFormValue("vehicle_no"),
			r.PostFormValue("reg_username"),
			r.PostFormValue("reg_password"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountExists):
				http.Error(w, "Username or email already exists", http.StatusConflict)
			case errors.Is(err, services.ErrInvalidEmail):
				http.Error(w, "Email address is malformed", http.StatusBadRequest)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
