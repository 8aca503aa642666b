package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ValoreSposi/crm-backend/platform/logger"
)

// RequestLogContext copies chi's request id into the log context so every
// line logged while serving the request carries it. Mount after
// chi's RequestID middleware.
func RequestLogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := chimw.GetReqID(ctx); id != "" {
			ctx = logger.ContextWithFields(ctx, logger.String("request_id", id))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS allows the configured origins. Requests without an Origin header are
// always allowed. Unknown origins are rejected in strict mode and only logged
// otherwise.
func CORS(origins []string, strict bool) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			logger.Warn(r.Context(), "cors: origin not in allow-list",
				logger.String("origin", origin),
				logger.Bool("blocked", strict),
			)
			return !strict
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
