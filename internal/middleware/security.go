package middleware

import "net/http"

// SecurityHeaders sets baseline browser hardening headers. Outside production every
// response also carries X-Robots-Tag so staging hosts never get indexed.
func SecurityHeaders(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			if production {
				h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
			} else {
				h.Set("X-Robots-Tag", "noindex, nofollow")
			}
			next.ServeHTTP(w, r)
		})
	}
}
