package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTraceID = "105445aa7843bc8bf206b12000100000"

func TestTraceMiddlewareCorrelatesLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(InjectLogger(zap.New(core)))
	r.Use(TraceMiddleware("epm-test"))
	r.Use(RequestLogger)
	var seen TraceInfo
	r.Get("/pricing", func(w http.ResponseWriter, r *http.Request) {
		seen, _ = TraceFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	req.Header.Set(CloudTraceHeader, testTraceID+"/1;o=1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, testTraceID, seen.TraceID)
	require.Equal(t, "0000000000000001", seen.SpanID)
	require.True(t, seen.Sampled)
	require.Equal(t, testTraceID+"/0000000000000001;o=1", rec.Header().Get(CloudTraceHeader))

	entries := logs.FilterMessage("request completed").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, testTraceID, fields["trace_id"])
	require.Equal(t, "projects/epm-test/traces/"+testTraceID, fields["logging.googleapis.com/trace"])
	require.Equal(t, true, fields["logging.googleapis.com/trace_sampled"])
}

func TestTraceMiddlewareWithoutHeader(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	h := InjectLogger(zap.New(core))(TraceMiddleware("")(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get(CloudTraceHeader))
	entries := logs.FilterMessage("request completed").AllUntimed()
	require.Len(t, entries, 1)
	require.NotContains(t, entries[0].ContextMap(), "trace_id")
	require.NotContains(t, entries[0].ContextMap(), "logging.googleapis.com/trace")
}

func TestParseCloudTraceContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header  string
		ok      bool
		spanID  string
		sampled bool
	}{
		{testTraceID + "/12345;o=1", true, "0000000000003039", true},
		{testTraceID + "/12345", true, "0000000000003039", false},
		{testTraceID + "/00f067aa0ba902b7;o=0", true, "00f067aa0ba902b7", false},
		{testTraceID + "/0;o=1", false, "", false},
		{"short/1;o=1", false, "", false},
		{testTraceID, false, "", false},
		{"", false, "", false},
	}
	for _, tc := range cases {
		info, sc, ok := parseCloudTraceContext(tc.header)
		require.Equal(t, tc.ok, ok, tc.header)
		if !tc.ok {
			continue
		}
		require.True(t, sc.IsRemote(), tc.header)
		require.Equal(t, testTraceID, info.TraceID, tc.header)
		require.Equal(t, tc.spanID, info.SpanID, tc.header)
		require.Equal(t, tc.sampled, info.Sampled, tc.header)
	}
}

func TestTraceInfoResource(t *testing.T) {
	t.Parallel()

	require.Empty(t, TraceInfo{TraceID: testTraceID}.Resource())
	require.Equal(t, "projects/p/traces/"+testTraceID, TraceInfo{TraceID: testTraceID, ProjectID: "p"}.Resource())
}
