package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/services"
)

// APIKeyHeader carries the caller's opaque API key on every request.
const APIKeyHeader = "Sportbet-Api-Key"

// RequireAPIKey rejects requests whose key header does not match the
// stored digest. admin selects which key class the route demands.
func RequireAPIKey(auth services.AuthService, admin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if err := auth.ValidateKey(r.Context(), key, admin); err != nil {
				writeErrorDocument(w, http.StatusForbidden, "Forbidden", "valid API key required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeErrorDocument(w http.ResponseWriter, status int, title, details string) {
	body, err := json.Marshal(mason.ErrorBody(title, details))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mason.MediaType)
	w.WriteHeader(status)
	w.Write(body)
}
