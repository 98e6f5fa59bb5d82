// Файл: internal/api/router.go
package api

import (
	"github.com/go-chi/chi/v5"

	"courierbot/internal/config"
)

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config *config.Config
	Store  Storage
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r *chi.Mux, deps ApiDependencies) {
	h := &Handlers{Store: deps.Store}

	// Проверка живости доступна без токена
	// The liveness probe is available without a token
	r.Get("/api/health", h.GetHealth)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(deps.Config.APIToken))

		r.Get("/api/user/{chatID}/stats", h.GetUserStats)
		r.Get("/api/user/{chatID}/shifts", h.GetUserShifts)
	})
}
