package handler

import (
	"net/http"
	"strings"
)

// SecurityHeadersMiddleware sets the standard hardening headers on every
// response. The Content-Security-Policy allows connections back to the
// identity provider; the swagger UI gets a relaxed policy so its CDN
// assets load.
func SecurityHeadersMiddleware(issuer string) func(http.Handler) http.Handler {
	cspDefault := "default-src 'self'; " +
		"script-src 'self'; " +
		"style-src 'self'; " +
		"img-src 'self' data:; " +
		"connect-src 'self' " + issuer + "; " +
		"frame-ancestors 'none'; " +
		"base-uri 'none'; " +
		"object-src 'none'"

	cspDocs := "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
		"img-src 'self' data:; " +
		"font-src 'self' data: https://cdn.jsdelivr.net; " +
		"connect-src 'self' " + issuer + "; " +
		"frame-ancestors 'none'; " +
		"base-uri 'none'; " +
		"object-src 'none'"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/swagger/") {
				w.Header().Set("Content-Security-Policy", cspDocs)
			} else {
				w.Header().Set("Content-Security-Policy", cspDefault)
			}
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Referrer-Policy", "no-referrer")
			w.Header().Set("Permissions-Policy", "geolocation=()")

			next.ServeHTTP(w, r)
		})
	}
}
