// Package mwlogger gives every request an id-tagged logger and writes an access line when it completes
package mwlogger

import (
	"context"
	"net/http"
	"time"

	"github.com/wb-go/wbf/helpers"
	"github.com/wb-go/wbf/zlog"
)

type loggerWithRequestID struct{}

// RequestIDHeader is read from the request and echoed back
const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// NewMWLogger - обёртка: UUID для каждого запроса, логгер в контексте и строка лога по завершении
func NewMWLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = helpers.CreateUUID()
		}
		w.Header().Set(RequestIDHeader, reqID)

		logger := zlog.Logger.With().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		r = r.WithContext(WithLogger(r.Context(), logger))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		if rec.status >= 500 {
			logger.Error().Int("status", rec.status).Dur("duration", time.Since(start)).Msg("Request failed")
			return
		}
		logger.Info().Int("status", rec.status).Dur("duration", time.Since(start)).Msg("Request processed")
	})
}

func WithLogger(ctx context.Context, l zlog.Zerolog) context.Context {
	return context.WithValue(ctx, loggerWithRequestID{}, l)
}

// LoggerFromContext extracts logger from context - used in service-layer
func LoggerFromContext(ctx context.Context) zlog.Zerolog {
	if l, ok := ctx.Value(loggerWithRequestID{}).(zlog.Zerolog); ok {
		return l
	}
	return zlog.Logger
}
