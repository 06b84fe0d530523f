package observability

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CloudTraceHeader is set by Google front ends on every inbound request.
const CloudTraceHeader = "X-Cloud-Trace-Context"

const traceContextKey contextKey = "endpointmedia.co.za/web/internal/observability/trace"

var tracer = otel.Tracer("endpointmedia.co.za/web/internal/observability")

// TraceInfo is the trace a request belongs to.
type TraceInfo struct {
	TraceID   string
	SpanID    string
	Sampled   bool
	ProjectID string
}

// Resource is the value Cloud Logging expects in logging.googleapis.com/trace.
func (t TraceInfo) Resource() string {
	if t.ProjectID == "" || t.TraceID == "" {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", t.ProjectID, t.TraceID)
}

// WithTrace stores trace metadata on ctx.
func WithTrace(ctx context.Context, info TraceInfo) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceContextKey, info)
}

// TraceFromContext returns the trace stored by TraceMiddleware.
func TraceFromContext(ctx context.Context) (TraceInfo, bool) {
	if ctx == nil {
		return TraceInfo{}, false
	}
	info, ok := ctx.Value(traceContextKey).(TraceInfo)
	return info, ok
}

// TraceMiddleware continues the Cloud Trace context from X-Cloud-Trace-Context,
// starts a server span and records the trace on the request context so that
// log lines can be correlated. Without a registered tracer provider the span
// is non-recording and only the propagated IDs are kept.
func TraceMiddleware(projectID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			info, remote, ok := parseCloudTraceContext(r.Header.Get(CloudTraceHeader))
			if ok {
				ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
			}

			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()
			span.SetAttributes(requestAttributes(r)...)

			if sc := span.SpanContext(); sc.IsValid() {
				info.TraceID = sc.TraceID().String()
				info.SpanID = sc.SpanID().String()
				info.Sampled = sc.IsSampled()
			}
			info.ProjectID = projectID

			if h := formatCloudTraceHeader(info); h != "" {
				w.Header().Set(CloudTraceHeader, h)
			}
			next.ServeHTTP(w, r.WithContext(WithTrace(ctx, info)))
		})
	}
}

// parseCloudTraceContext reads "TRACE_ID/SPAN_ID;o=OPTIONS". The span ID is
// decimal on the wire but some proxies forward it as hex.
func parseCloudTraceContext(header string) (TraceInfo, trace.SpanContext, bool) {
	header = strings.TrimSpace(header)
	traceHex, rest, found := strings.Cut(header, "/")
	if !found || len(traceHex) != 32 {
		return TraceInfo{}, trace.SpanContext{}, false
	}
	traceID, err := trace.TraceIDFromHex(traceHex)
	if err != nil {
		return TraceInfo{}, trace.SpanContext{}, false
	}
	spanPart, options, _ := strings.Cut(rest, ";")
	spanID, ok := parseSpanID(spanPart)
	if !ok {
		return TraceInfo{}, trace.SpanContext{}, false
	}

	sampled := strings.TrimSpace(options) == "o=1"
	var flags trace.TraceFlags
	if sampled {
		flags = trace.FlagsSampled
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	})
	return TraceInfo{TraceID: traceID.String(), SpanID: spanID.String(), Sampled: sampled}, sc, true
}

func parseSpanID(value string) (trace.SpanID, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return trace.SpanID{}, false
	}
	if n, err := strconv.ParseUint(value, 10, 64); err == nil && n != 0 {
		var id trace.SpanID
		binary.BigEndian.PutUint64(id[:], n)
		return id, true
	}
	if len(value) <= 16 {
		if id, err := trace.SpanIDFromHex(strings.Repeat("0", 16-len(value)) + value); err == nil {
			return id, true
		}
	}
	return trace.SpanID{}, false
}

func formatCloudTraceHeader(info TraceInfo) string {
	if info.TraceID == "" || info.SpanID == "" {
		return ""
	}
	option := "0"
	if info.Sampled {
		option = "1"
	}
	return fmt.Sprintf("%s/%s;o=%s", info.TraceID, info.SpanID, option)
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", r.Method),
		attribute.String("url.scheme", scheme),
		attribute.String("url.path", r.URL.Path),
	}
	if r.Host != "" {
		attrs = append(attrs, attribute.String("server.address", r.Host))
	}
	if ua := r.UserAgent(); ua != "" {
		attrs = append(attrs, attribute.String("user_agent.original", sanitize(ua, 256)))
	}
	return attrs
}

// endSpan records the response status on the request span.
func endSpan(ctx context.Context, route string, status int) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("http.response.status_code", status),
		attribute.String("http.route", route),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
		return
	}
	span.SetStatus(codes.Ok, "")
}
