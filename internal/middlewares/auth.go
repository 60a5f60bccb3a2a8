package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/jwt"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
)

// SessionParser defines the minimal token interface needed by the middleware.
type SessionParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RejectMode controls how an unauthenticated request is answered.
type RejectMode int

const (
	// RedirectToLogin sends browsers back to the login surface.
	RedirectToLogin RejectMode = iota
	// JSONUnauthorized answers programmatic calls with 401 {"status":"unauthorized"}.
	JSONUnauthorized
)

// AuthMiddleware returns a middleware that requires a valid session with the
// given role. Claims of accepted sessions are stored in the request context.
func AuthMiddleware(parser SessionParser, role string, mode RejectMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				reject(w, r, mode)
				return
			}

			claims, err := parser.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("session rejected", "err", err)
				reject(w, r, mode)
				return
			}

			if claims.Role != role {
				logger.Log.Errorw("session role mismatch", "want", role, "got", claims.Role)
				reject(w, r, mode)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, mode RejectMode) {
	switch mode {
	case JSONUnauthorized:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"status": "unauthorized"})
	default:
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// SetClaimsToContext stores session claims in the context. Exported so
// handler tests can build authenticated requests.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves session claims from the context. Returns nil if not present.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
