package middlewarectx

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/store-api/internal/http/response"
)

// RateLimitMiddleware отклоняет запросы сверх лимита limiter с кодом 429.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", slog.String("path", r.URL.Path))
				response.JSON(w, r, http.StatusTooManyRequests, response.Error("Demasiadas solicitudes"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
