package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const sessionCookieName = "EPM_WEB_SESSION"

const sessionLifetime = 30 * 24 * time.Hour

// SessionData is the signed, cookie-backed visitor session. It only carries
// what form posts need: an identifier and the CSRF token.
type SessionData struct {
	ID        string    `json:"id"`
	CSRFToken string    `json:"csrf,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool `json:"-"`
}

// SessionOptions configures the session cookie.
type SessionOptions struct {
	SigningKey string
	Secure     bool
}

// MarkDirty flags the session for writing at end of request
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Session loads or initializes a session and stores it in request context. An empty
// signing key gets a process-ephemeral random key; config refuses that in production.
func Session(opts SessionOptions) func(http.Handler) http.Handler {
	key := []byte(opts.SigningKey)
	if len(key) == 0 {
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd, fromCookie := readSessionCookie(r, key)
			if sd.ID == "" {
				sd.ID = randID()
				sd.CreatedAt = time.Now().UTC()
				sd.UpdatedAt = sd.CreatedAt
				sd.CSRFToken = newCSRFToken()
				sd.dirty = true
			}
			rw := NewResponseRecorder(w)
			rw.SetBeforeWrite(func(w http.ResponseWriter) {
				if sd.dirty || !fromCookie {
					writeSessionCookie(w, sd, key, opts.Secure)
				}
			})
			next.ServeHTTP(rw, r.WithContext(WithSession(r.Context(), sd)))
			// If nothing was written yet (e.g., HEAD), persist cookie now
			if !rw.Wrote() && (sd.dirty || !fromCookie) {
				writeSessionCookie(w, sd, key, opts.Secure)
			}
		})
	}
}

// readSessionCookie parses and verifies the session cookie
func readSessionCookie(r *http.Request, key []byte) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(payloadB)
	if !hmac.Equal(sigB, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	if time.Since(sd.CreatedAt) > sessionLifetime {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData, key []byte, secure bool) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, key)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionLifetime),
	})
	sd.dirty = false
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
