package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS wraps the whole engine so preflight requests are answered before routing.
// headers are allowed in addition to the standard set, typically the principal headers.
func CORS(origins []string, headers ...string) func(http.Handler) http.Handler {
	allowed := append([]string{"Accept", "Authorization", "Content-Type", RequestIDHeader}, headers...)

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   allowed,
		ExposedHeaders:   []string{"Content-Disposition", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
