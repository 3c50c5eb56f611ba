package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(envStr(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// newRequestID returns a short random hex id, falling back to a timestamp
// when the entropy source is unavailable.
func newRequestID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(b)
}

// SecurityHeadersMiddleware sets baseline security headers and answers CORS
// preflight. Origin matching and CSP/HSTS behavior are env-driven.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	env := strings.ToLower(envStr("ENV", "development"))
	allowedOrigins := envStr("CORS_ALLOWED_ORIGINS", "*")
	hsts := envStr("SEC_HSTS", "false") == "true"
	csp := envStr("SEC_CSP", "default-src 'none'; frame-ancestors 'none'; base-uri 'self';")
	origins := strings.Split(allowedOrigins, ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := allowedOrigins == "*"
		if !allowed && origin != "" {
			for _, o := range origins {
				if strings.TrimSpace(o) == origin {
					allowed = true
					break
				}
			}
		}
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With, X-Request-ID")
		}

		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		if env != "development" {
			w.Header().Set("Content-Security-Policy", csp)
		}
		if hsts {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the response status for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// RequestLogMiddleware writes one line per request and one per response,
// tagged with the request id when one is already set on the response.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Printf("[http] %s %s -> %d (%s) rid=%s",
			r.Method, r.URL.Path, sw.status, time.Since(start).Round(time.Millisecond), w.Header().Get("X-Request-ID"))
	})
}

// RequestIDMiddleware puts a request id on the context and the response so
// log lines and error payloads can be correlated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = newRequestID()
		}
		w.Header().Set("X-Request-ID", rid)
		ctx := context.WithValue(r.Context(), utils.RequestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TimeoutMiddleware caps how long a handler may hold the request context.
func TimeoutMiddleware(next http.Handler) http.Handler {
	timeout := time.Duration(envInt("REQ_TIMEOUT_SEC", 10)) * time.Second
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RecoveryMiddleware turns a handler panic into a 500 with the request id,
// logging the stack so the crash is diagnosable without leaking it.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				rid, _ := r.Context().Value(utils.RequestIDKey).(string)
				log.Printf("[panic] rid=%s %s %s: %v\n%s", rid, r.Method, r.URL.Path, rec, debug.Stack())
				utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Internal server error",
					Data:    map[string]interface{}{"request_id": rid},
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

var (
	metricsMu  sync.Mutex
	routeTimes = make(map[string][]time.Duration)

	slowMu     sync.Mutex
	slowByIP   = make(map[string]int)
	slowWindow = 100 // samples kept per route
)

// MetricsMiddleware keeps a rolling window of response times per route and
// counts repeatedly-slow callers per IP.
func MetricsMiddleware(next http.Handler) http.Handler {
	slowThreshold := time.Duration(envInt("METRIC_SLOW_MS", 800)) * time.Millisecond
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		key := r.Method + " " + r.URL.Path
		metricsMu.Lock()
		samples := routeTimes[key]
		if len(samples) >= slowWindow {
			samples = samples[1:]
		}
		routeTimes[key] = append(samples, elapsed)
		metricsMu.Unlock()

		if elapsed > slowThreshold {
			slowMu.Lock()
			slowByIP[r.RemoteAddr]++
			slowMu.Unlock()
		}
	})
}

// SuspiciousActivityMiddleware throttles IPs that keep triggering slow
// responses, a cheap enumeration brake in front of the routers.
func SuspiciousActivityMiddleware(next http.Handler) http.Handler {
	threshold := envInt("SUSPICIOUS_THRESHOLD", 10)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slowMu.Lock()
		count := slowByIP[r.RemoteAddr]
		slowMu.Unlock()
		if count >= threshold {
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
