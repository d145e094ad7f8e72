package middlewares

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/kaiwen-teo/primeprep-lambda/internal/config"
)

// SharedSecretMiddleware gates the API behind a single shared secret when
// SERVICE_API_KEY is set. Deployments without the variable run open, which is
// how the service behaves in local development.
func SharedSecretMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := os.Getenv("SERVICE_API_KEY")
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get("X-Api-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			log := config.WithContext(r.Context())
			log.Warn("Rejected request with missing or invalid X-Api-Key")
			config.JSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
