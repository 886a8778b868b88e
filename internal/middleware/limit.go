package middleware

import "net/http"

// LimitBytes caps the request body. Uploaded order sheets are small; a
// multi-hundred-megabyte body is a mistake, not an order.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
