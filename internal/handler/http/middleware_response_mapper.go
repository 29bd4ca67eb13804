package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/reqctx"
	"github.com/MKhiriev/user-directory/models"
	"github.com/rs/zerolog"
)

// mapResponse is the single writer of the wire response. It must run inside
// resolveAuth so that the request Ctx is available.
//
// After the downstream handler returns it appends " -> response_mapper" to
// the trace. An attached [*Error] is rendered as an error envelope whose
// code is also used as the HTTP status. Successful responses pass through
// unchanged. Either way exactly one log line is emitted per request.
func (h *Handler) mapResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		c, ctxErr := reqctx.FromRequest(r)
		if ctxErr != nil {
			c = reqctx.New()
			if rw.err == nil {
				rw.attachError(newError(KindInternal, ctxErr))
			}
		}
		c.PushTrace(" -> response_mapper")

		// a bodiless failure status comes from chi's Recoverer
		if rw.err == nil && rw.statusOrDefault() >= http.StatusInternalServerError && rw.body.Len() == 0 {
			rw.err = newError(KindInternal, nil)
		}

		status := rw.statusOrDefault()
		body := rw.body.Bytes()
		if rw.err != nil {
			var message string
			status, message = rw.err.ToClient()
			envelope, err := json.Marshal(models.ErrorEnvelope(status, message))
			if err != nil {
				envelope = []byte(`{"status":"error","code":500,"message":"Internal server error"}`)
				status = http.StatusInternalServerError
			}
			body = envelope
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(status)
		if _, err := w.Write(body); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing response")
		}

		h.logRequest(r, c, rw.err, body, status, time.Since(start))
	})
}

// logRequest emits the per-request line. 5xx errors are logged at error
// level, other errors at warn level and successes at info level.
func (h *Handler) logRequest(r *http.Request, c *reqctx.Ctx, e *Error, body []byte, status int, duration time.Duration) {
	log := logger.FromRequest(r)

	level := zerolog.InfoLevel
	if e != nil {
		level = zerolog.WarnLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
	}

	event := log.WithLevel(level)
	if userID, ok := c.UserID(); ok {
		event = event.Int32("user_id", userID)
	}
	if e != nil {
		event = event.Str("error", string(e.Kind))
		if e.Cause != nil {
			event = event.AnErr("cause", e.Cause)
		}
	}
	if json.Valid(body) {
		event = event.RawJSON("response", body)
	} else {
		event = event.Bytes("response", body)
	}

	event.
		Str("uri", r.RequestURI).
		Str("method", r.Method).
		Str("trace", c.Trace()).
		Int("status", status).
		Dur("duration", duration).
		Send()
}
