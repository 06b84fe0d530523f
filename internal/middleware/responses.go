package middleware

import (
	"net/http"
	"strings"

	"endpointmedia.co.za/web/internal/httpx"
)

// writeError answers JSON to htmx and API callers and plain text to everyone else.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) || strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json") {
		httpx.WriteError(r.Context(), w, httpx.NewError(codeFor(code), msg, code))
		return
	}
	http.Error(w, msg, code)
}

func codeFor(status int) string {
	switch status {
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusTooManyRequests:
		return "rate_limited"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}
