package middleware

import "net/http"

const (
	headerXContentTypeOptions   = "X-Content-Type-Options"
	headerXFrameOptions         = "X-Frame-Options"
	headerContentSecurityPolicy = "Content-Security-Policy"
)

// SecurityHeaders sets security-related response headers on every page.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerXContentTypeOptions, "nosniff")
		w.Header().Set(headerXFrameOptions, "DENY")
		w.Header().Set(headerContentSecurityPolicy, "default-src 'self'")
		next.ServeHTTP(w, r)
	})
}
