package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"campaign-site-backend/pkg/config"
)

// Logger picks the request logger for the environment: structured
// one-line JSON in production, colored console output in development.
func Logger(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			adminInfo := "anonymous"
			if admin, ok := GetAdminFromContext(r.Context()); ok && admin != nil {
				adminInfo = admin.Email
			}

			if cfg.IsProduction() {
				logProductionRequest(r, ww, duration, adminInfo)
			} else {
				logDevelopmentRequest(r, ww, duration, adminInfo)
			}
		})
	}
}

// logProductionRequest emits one structured log line per request.
func logProductionRequest(r *http.Request, ww middleware.WrapResponseWriter, duration time.Duration, adminInfo string) {
	fmt.Printf(`{"time":"%s","method":"%s","path":"%s","status":%d,"duration":"%s","admin":"%s","ip":"%s","user_agent":"%s"}`+"\n",
		time.Now().Format(time.RFC3339),
		r.Method,
		r.URL.Path,
		ww.Status(),
		duration,
		adminInfo,
		getClientIP(r),
		r.UserAgent(),
	)
}

// logDevelopmentRequest emits a colored console line per request.
func logDevelopmentRequest(r *http.Request, ww middleware.WrapResponseWriter, duration time.Duration, adminInfo string) {
	statusColor := getStatusColor(ww.Status())
	methodColor := getMethodColor(r.Method)

	fmt.Printf("%s %s %s%s%s %s%d%s %s %s %s\n",
		time.Now().Format("15:04:05"),
		methodColor+r.Method+"\033[0m",
		"\033[36m",
		r.URL.Path,
		"\033[0m",
		statusColor,
		ww.Status(),
		"\033[0m",
		duration,
		adminInfo,
		getClientIP(r),
	)
}

// getClientIP resolves the client address behind proxies.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// getStatusColor maps an HTTP status to an ANSI color.
func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "\033[32m"
	case status >= 300 && status < 400:
		return "\033[33m"
	case status >= 400 && status < 500:
		return "\033[31m"
	case status >= 500:
		return "\033[35m"
	default:
		return "\033[0m"
	}
}

// getMethodColor maps an HTTP method to an ANSI color.
func getMethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[32m"
	case "PUT":
		return "\033[33m"
	case "DELETE":
		return "\033[31m"
	case "PATCH":
		return "\033[36m"
	case "OPTIONS":
		return "\033[37m"
	default:
		return "\033[0m"
	}
}
