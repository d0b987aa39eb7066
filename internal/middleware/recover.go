package middleware

import (
	"log/slog"
	"net/http"

	"github.com/fundflow/crowdfund-backend/internal/api/httpx"
)

// Recover converts a handler panic into a 500 JSON response; nothing
// propagates to the process level.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "request_id", RequestIDFrom(r.Context()))
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
