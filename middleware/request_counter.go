package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/timesheet-tracker/models"
)

// RequestRecorder counts inbound requests
type RequestRecorder interface {
	RecordRequest() int64
}

// RequestCounter counts every request exactly once before it is dispatched
// and writes one log line per request.
func RequestCounter(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := recorder.RecordRequest()
			log.Printf("[%s] %s %s - Request #%d (from %s)",
				models.FormatTimestamp(time.Now()), r.Method, r.URL.Path, count, getIPAddress(r))

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
