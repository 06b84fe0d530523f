package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	// CSRFFieldName is the hidden form field plain (non-htmx) forms submit.
	CSRFFieldName = "csrf_token"
)

// CSRF issues a CSRF cookie tied to the session and verifies that unsafe requests
// echo the token back in the X-CSRF-Token header or the csrf_token form field.
// It must run after Session.
func CSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFromContext(r.Context())
			if s == nil {
				writeError(w, r, http.StatusForbidden, "invalid CSRF token")
				return
			}
			token := s.CSRFToken
			if token == "" {
				token = newCSRFToken()
				s.CSRFToken = token
				s.MarkDirty()
			}

			if c, err := r.Cookie(csrfCookieName); err != nil || c.Value != token {
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(24 * time.Hour),
				})
			}

			if !isSafeMethod(r.Method) && !hasBearer(r) {
				sent := r.Header.Get(csrfHeaderName)
				if sent == "" {
					if err := r.ParseForm(); err != nil {
						code, msg := formError(err)
						writeError(w, r, code, msg)
						return
					}
					sent = r.PostForm.Get(CSRFFieldName)
				}
				if sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					writeError(w, r, http.StatusForbidden, "invalid CSRF token")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hasBearer exempts programmatic clients that authenticate with a bearer token.
func hasBearer(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return auth != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ")
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
