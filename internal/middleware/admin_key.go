package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"starwars-blog-api/internal/platform/httpjson"
)

const AdminKeyHeader = "X-Admin-Key"

var errInvalidAdminKey = errors.New("invalid admin key")

// AdminKey protege el panel admin:
// - key vacía => sin chequeo (modo dev).
// - si no, exige header X-Admin-Key o query ?key= (los forms HTML no mandan headers).
func AdminKey(key string) func(http.Handler) http.Handler {
	key = strings.TrimSpace(key)
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimSpace(r.Header.Get(AdminKeyHeader))
			if got == "" {
				got = strings.TrimSpace(r.URL.Query().Get("key"))
			}
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				httpjson.WriteError(w, http.StatusUnauthorized, "unauthorized", errInvalidAdminKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
