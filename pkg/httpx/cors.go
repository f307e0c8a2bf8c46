package httpx

import (
	"github.com/go-chi/cors"
)

// CORS allows the browser client served from allowedOrigins to call the
// API with bearer tokens. An empty list disables the middleware.
func CORS(allowedOrigins []string) Middleware {
	if len(allowedOrigins) == 0 {
		return nil
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
