package middleware

import (
	"net/http"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/staffdesk/staff-management/pkg/logger"
)

// TraceHeader carries the client-supplied trace id across the API and
// the embedded web client.
const TraceHeader = "X-Trace-ID"

// Trace tags every request with a stable trace id: the client's
// header value when supplied, a fresh UUID otherwise. The id is echoed
// on the response and attached to the context logger alongside chi's
// per-request id, so a staff record mutation can be followed from
// client to SQL in the logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(),
			"trace_id", traceID,
			"request_id", chiMiddleware.GetReqID(r.Context()),
		)

		w.Header().Set(TraceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
