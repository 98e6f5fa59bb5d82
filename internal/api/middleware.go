// Файл: internal/api/middleware.go
package api

import (
	"crypto/subtle"
	"log"
	"net/http"
)

// AuthMiddleware проверяет заголовок X-Api-Token. Пустой серверный токен
// означает, что API выключено: все запросы отклоняются.
// AuthMiddleware checks the X-Api-Token header. An empty server token means
// the API is disabled: all requests are rejected.
func AuthMiddleware(apiToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiToken == "" {
				log.Printf("AuthMiddleware: API_TOKEN не настроен, запрос %s %s отклонен", r.Method, r.URL.Path)
				writeError(w, http.StatusUnauthorized, "API отключено")
				return
			}

			headerToken := r.Header.Get("X-Api-Token")
			if subtle.ConstantTimeCompare([]byte(headerToken), []byte(apiToken)) != 1 {
				log.Printf("AuthMiddleware: неверный токен для запроса %s %s", r.Method, r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Неверный токен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
