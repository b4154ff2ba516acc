package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sanbud-pl/booking-service/internal/api/handlers"
)

const (
	adminTokenHeader = "X-Admin-Token"

	msgMissingToken = "brak tokenu administratora"
	msgInvalidToken = "nieprawidłowy token administratora"
)

// Logger is the logging interface used by the middleware.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth guards the admin endpoints with a shared token carried in the
// X-Admin-Token header.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				logger.Warn("AdminAuth: missing token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid token for %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
