package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	apperrors "orderfellow/internal/errors"
)

// RequireSecret rejects requests whose header does not carry the
// configured shared secret. Comparison is constant-time.
func RequireSecret(header string, secret string, unauthorizedMsg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				writeUnauthorized(w, apperrors.NewAuthError(unauthorizedMsg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, err *apperrors.AuthError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Message})
}
