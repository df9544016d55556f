package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID propagates the incoming correlation ID, minting a fresh UUID
// when the client did not send one. The ID is stored in the context and
// echoed back on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := ctxutil.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
