package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/bizmatch/pkg/logger"
	"github.com/okian/bizmatch/pkg/metrics"
)

// instrument wraps a handler with request metrics and an access log line.
// endpoint is the metric label; it stays low-cardinality because session
// ids never reach it.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		elapsed := time.Since(start)
		status := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, float64(elapsed.Microseconds())/1000)

		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("route", r.Pattern),
			logger.Int("status", rec.status),
			logger.Int("bytes", rec.written),
			logger.String("duration", elapsed.String()),
		}
		if rec.status < http.StatusBadRequest {
			s.log.Debug(r.Context(), "request served", fields...)
			return
		}

		class := errorClass(rec.status)
		metrics.RecordErrorByEndpoint(endpoint, r.Method, class)
		metrics.RecordErrorByType(class, errorSeverity(rec.status))
		if rec.status >= http.StatusInternalServerError {
			s.log.Error(r.Context(), "request failed", fields...)
			return
		}
		s.log.Debug(r.Context(), "request rejected", fields...)
	}
}

func errorClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusBadRequest:
		return "invalid_request"
	default:
		return "client_error"
	}
}

func errorSeverity(status int) string {
	if status >= http.StatusInternalServerError {
		return "high"
	}
	return "medium"
}

// statusRecorder captures the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.written += n
	return n, err
}
