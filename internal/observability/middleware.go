package observability

import (
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"endpointmedia.co.za/web/internal/httpx"
)

// InjectLogger stores the provided logger on the request context.
func InjectLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = noopLogger
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLogger(r.Context(), logger)))
		})
	}
}

// RequestLogger logs one structured line per request once the response is complete.
// Health checks are not logged.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		logger := FromContext(ctx).With(
			zap.String("request_id", middleware.GetReqID(ctx)),
			zap.String("method", sanitize(r.Method, 16)),
			zap.String("path", sanitize(r.URL.Path, 256)),
			zap.Bool("htmx", r.Header.Get("HX-Request") == "true"),
		)
		if ip := remoteIP(r); ip != "" {
			logger = logger.With(zap.String("remote_ip", ip))
		}
		if info, ok := TraceFromContext(ctx); ok && info.TraceID != "" {
			logger = logger.With(zap.String("trace_id", info.TraceID))
			if res := info.Resource(); res != "" {
				logger = logger.With(
					zap.String("logging.googleapis.com/trace", res),
					zap.String("logging.googleapis.com/spanId", info.SpanID),
					zap.Bool("logging.googleapis.com/trace_sampled", info.Sampled),
				)
			}
		}
		r = r.WithContext(WithLogger(ctx, logger))

		recorder := newResponseRecorder(w)
		start := time.Now()

		var panicked bool
		defer func() {
			status := recorder.Status()
			if panicked && status < http.StatusInternalServerError {
				status = http.StatusInternalServerError
			}
			route := routePattern(r)
			endSpan(ctx, route, status)
			fields := []zap.Field{
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.Int64("bytes", recorder.BytesWritten()),
			}
			switch {
			case panicked || status >= http.StatusInternalServerError:
				logger.Error("request completed", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		}()
		defer func() {
			if rec := recover(); rec != nil {
				panicked = true
				panic(rec)
			}
		}()

		next.ServeHTTP(recorder, r)
	})
}

// Recovery captures panics, logs the stack trace and answers 500.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				FromContext(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				httpx.WriteError(r.Context(), w, httpx.NewError("internal_server_error", "internal server error", http.StatusInternalServerError))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	if ctx := chi.RouteContext(r.Context()); ctx != nil {
		if pattern := ctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func remoteIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	return sanitize(addr, 64)
}

func sanitize(value string, limit int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.TrimSpace(value)
	if len(value) > limit {
		value = value[:limit]
	}
	return value
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *responseRecorder) WriteHeader(status int) {
	if status < 100 {
		status = http.StatusOK
	}
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Flush lets streaming handlers and the compressor flush through the recorder.
func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *responseRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *responseRecorder) BytesWritten() int64 {
	return r.bytes
}
