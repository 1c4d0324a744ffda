package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/logger"
)

// Recover convierte un panic en un 500 JSON con el sobre de errores de la API.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler se re-lanza: net/http lo usa para cortar la conexión
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				log.Error("panic recovered", map[string]any{
					"error":      err,
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"stack":      string(debug.Stack()),
				})
				httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
