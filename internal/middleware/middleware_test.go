package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

func csrfStack(h http.Handler) http.Handler {
	return HTMX(Session(SessionOptions{SigningKey: "test-key"})(CSRF(false)(h)))
}

func sessionCookies(t *testing.T, h http.Handler) ([]*http.Cookie, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Less(t, rec.Code, http.StatusBadRequest)
	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == csrfCookieName {
			token = c.Value
		}
	}
	require.NotEmpty(t, token, "csrf cookie should be issued on first visit")
	return rec.Result().Cookies(), token
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	t.Parallel()

	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	cookies, _ := sessionCookies(t, h)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsHeaderAndFormField(t *testing.T) {
	t.Parallel()

	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	cookies, token := sessionCookies(t, h)

	viaHeader := httptest.NewRequest(http.MethodPost, "/contact", nil)
	viaHeader.Header.Set("X-CSRF-Token", token)
	viaHeader.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		viaHeader.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, viaHeader)
	require.Equal(t, http.StatusNoContent, rec.Code)

	form := url.Values{CSRFFieldName: {token}, "name": {"Thandi"}}
	viaForm := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	viaForm.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		viaForm.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, viaForm)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCSRFSkipsBearerClients(t *testing.T) {
	t.Parallel()

	h := csrfStack(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }))
	req := httptest.NewRequest(http.MethodPost, "/hook", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLimitBodyRejectsOversizedForms(t *testing.T) {
	t.Parallel()

	var called bool
	h := LimitBody(1 << 10)(csrfStack(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})))
	cookies, token := sessionCookies(t, h)

	body := url.Values{CSRFFieldName: {token}, "padding": {strings.Repeat("x", 4<<10)}}.Encode()
	post := func(contentLength int64, htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.ContentLength = contentLength
		if htmx {
			req.Header.Set("HX-Request", "true")
			req.Header.Set("X-CSRF-Token", token)
		}
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusRequestEntityTooLarge, post(int64(len(body)), false).Code)
	require.Equal(t, http.StatusRequestEntityTooLarge, post(int64(len(body)), true).Code)
	// chunked: the cap trips while CSRF reads the form
	require.Equal(t, http.StatusRequestEntityTooLarge, post(-1, false).Code)
	require.False(t, called)

	small := url.Values{CSRFFieldName: {token}, "name": {"Thandi"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(small))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	var seen *SessionData
	h := Session(SessionOptions{SigningKey: "k1"})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = SessionFromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := seen.ID
	cookie := rec.Result().Cookies()[0]

	// same key: session survives
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, first, seen.ID)

	// other key: signature fails and a fresh session is issued
	other := Session(SessionOptions{SigningKey: "k2"})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = SessionFromContext(r.Context())
	}))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	other.ServeHTTP(httptest.NewRecorder(), req)
	require.NotEqual(t, first, seen.ID)
}

func TestRateLimitPerIP(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewKeyedLimiter(60, 2, func() time.Time { return now })
	h := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, post("10.0.0.1").Code)
	require.Equal(t, http.StatusOK, post("10.0.0.1").Code)
	blocked := post("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, blocked.Code)
	require.Equal(t, "1", blocked.Header().Get("Retry-After"))
	require.Contains(t, blocked.Body.String(), "rate_limited")
	require.Equal(t, http.StatusOK, post("10.0.0.2").Code, "other clients keep their own bucket")

	now = now.Add(time.Second)
	require.Equal(t, http.StatusOK, post("10.0.0.1").Code, "bucket refills at one token per second")

	get := httptest.NewRequest(http.MethodGet, "/contact", nil)
	get.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, get)
	require.Equal(t, http.StatusOK, rec.Code, "safe methods are never limited")
}

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"css/site.css": {Data: []byte("body{margin:0}")}}
	h := AssetsWithCache(fsys, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.True(t, strings.HasPrefix(etag, `W/"`))
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code, "directory listings are hidden")
}

func TestSecurityHeadersByEnvironment(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})

	rec := httptest.NewRecorder()
	SecurityHeaders(false)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "noindex, nofollow", rec.Header().Get("X-Robots-Tag"))
	require.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	rec = httptest.NewRecorder()
	SecurityHeaders(true)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, rec.Header().Get("X-Robots-Tag"))
	require.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
