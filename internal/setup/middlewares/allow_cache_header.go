package middlewares

import "net/http"

// AllowCacheHeader marks read-only report responses as cacheable for a
// minute, which is well inside the server-side Redis TTL.
func AllowCacheHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=60")
		next.ServeHTTP(w, r)
	})
}
