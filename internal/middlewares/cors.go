package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/mydocmaker/api/internal/firebase"
)

// CORSMiddleware allows browser clients from origins to call the API.
// origins is a comma separated list; empty or "*" allows any origin.
func CORSMiddleware(origins string) func(http.Handler) http.Handler {
	var allowed []string
	for _, p := range strings.Split(origins, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"apikey",
			firebase.HeaderFirebaseToken,
			firebase.HeaderClientInfo,
		},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         300,
	})
}
