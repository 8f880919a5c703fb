package middleware

import (
	"net/http"
	"strings"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/auth"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
)

// AdminAuth gates editor routes behind a bearer session token issued by the
// login endpoint. Only paths under prefix are checked; the public site and
// the login endpoint itself pass through.
func AdminAuth(secret, prefix, loginPath string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) || r.URL.Path == loginPath {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if tokenString == "" {
				unauthorized(w, "No session token provided")
				return
			}

			if err := auth.VerifySessionToken(secret, tokenString); err != nil {
				log.Warn("Rejected admin request",
					"request_id", RequestID(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				unauthorized(w, "Invalid or expired session token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
