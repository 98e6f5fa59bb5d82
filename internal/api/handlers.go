// Файл: internal/api/handlers.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"courierbot/internal/models"
	"courierbot/internal/stats"
)

// Storage - срез хранилища, нужный API-обработчикам. Реализуется db.Store;
// в тестах подменяется фиктивным хранилищем.
// Storage is the store slice the API handlers need. Implemented by db.Store;
// replaced by a fake store in tests.
type Storage interface {
	GetUserByChatID(chatID int64) (models.User, error)
	GetShiftsForUser(userID int64, limit int) []models.Shift
	GetShiftsForStats(userID int64) ([]models.Shift, error)
	GetOrdersForUser(userID int64) ([]models.Order, error)
}

// jsonResponse - вспомогательная структура для стандартного ответа API.
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(jsonResponse{Status: "success", Data: data}); err != nil {
		log.Printf("writeJSON: ошибка кодирования ответа: %v", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message}); err != nil {
		log.Printf("writeError: ошибка кодирования ответа: %v", err)
	}
}

// Handlers связывает HTTP-обработчики с хранилищем.
// Handlers binds the HTTP handlers to the store.
type Handlers struct {
	Store Storage
}

// GetHealth отвечает на проверку живости сервиса.
// GetHealth answers the liveness probe.
func (h *Handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"health": "ok"})
}

// userFromRequest разбирает {chatID} из URL и находит пользователя.
func (h *Handlers) userFromRequest(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	chatIDStr := chi.URLParam(r, "chatID")
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный chatID")
		return models.User{}, false
	}

	user, err := h.Store.GetUserByChatID(chatID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Пользователь не найден")
		return models.User{}, false
	}
	return user, true
}

// GetUserStats возвращает детальную статистику пользователя по chatID.
// GetUserStats returns the user's detailed statistics by chatID.
func (h *Handlers) GetUserStats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.userFromRequest(w, r)
	if !ok {
		return
	}

	detailed := stats.ComputeDetailedStatistics(h.Store, user.ID)
	writeJSON(w, http.StatusOK, detailed)
}

// GetUserShifts возвращает последние смены пользователя по chatID.
// Параметр limit необязателен, по умолчанию 20.
// GetUserShifts returns the user's recent shifts by chatID.
// The limit parameter is optional, defaults to 20.
func (h *Handlers) GetUserShifts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.userFromRequest(w, r)
	if !ok {
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Некорректный limit")
			return
		}
		limit = parsed
	}

	shifts := h.Store.GetShiftsForUser(user.ID, limit)
	if shifts == nil {
		shifts = []models.Shift{}
	}
	writeJSON(w, http.StatusOK, shifts)
}
