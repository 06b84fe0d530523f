package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := NewError("validation_failed", "Name, email, and message are required\n", http.StatusBadRequest).
		WithDetails(map[string]any{"fields": []string{"name"}})
	err.RequestID = "req-1"
	WriteError(context.Background(), rec, err)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "Name, email, and message are required", payload["error"])
	require.Equal(t, "validation_failed", payload["code"])
	require.EqualValues(t, 400, payload["status"])
	require.Equal(t, "req-1", payload["request_id"])
	require.Equal(t, []any{"name"}, payload["fields"])
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusInternalServerError, NewError("x", "y", 0).Status)
}
