package observability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T, register func(r chi.Router)) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(InjectLogger(zap.New(core)))
	r.Use(RequestLogger)
	r.Use(Recovery)
	register(r)
	return r, logs
}

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	t.Parallel()

	h, logs := newObservedRouter(t, func(r chi.Router) {
		r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hi")) })
		r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
		r.Get("/services/{slug}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})

	for _, path := range []string{"/ok", "/missing", "/services/local-seo"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("HX-Request", "true")
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.FilterMessage("request completed").AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.EqualValues(t, 2, entries[0].ContextMap()["bytes"])
	require.Equal(t, true, entries[0].ContextMap()["htmx"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "/services/{slug}", entries[2].ContextMap()["route"])
}

func TestRecoveryWritesJSONError(t *testing.T) {
	t.Parallel()

	h, logs := newObservedRouter(t, func(r chi.Router) {
		r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "internal server error", payload["error"])
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	entries := logs.FilterMessage("request completed").AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestFromContextDefaultsToNoop(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Same(t, NoopLogger(), FromContext(req.Context()))
}
