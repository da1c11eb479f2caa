package auth

import (
	"net/http"
	"strings"
)

// RequireStaff returns middleware that admits only bearer tokens belonging
// to staff accounts. The restaurateur screens sit behind it.
func RequireStaff(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			identity, err := service.Verify(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if !identity.IsStaff {
				http.Error(w, "staff access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
