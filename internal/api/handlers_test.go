package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbot/internal/config"
	"courierbot/internal/models"
)

// fakeStore - фиктивное хранилище для API-обработчиков.
type fakeStore struct {
	users  map[int64]models.User
	shifts []models.Shift
	orders []models.Order
}

func (f *fakeStore) GetUserByChatID(chatID int64) (models.User, error) {
	user, ok := f.users[chatID]
	if !ok {
		return models.User{}, errors.New("пользователь не найден")
	}
	return user, nil
}

func (f *fakeStore) GetShiftsForUser(userID int64, limit int) []models.Shift {
	if limit < len(f.shifts) {
		return f.shifts[:limit]
	}
	return f.shifts
}

func (f *fakeStore) GetShiftsForStats(userID int64) ([]models.Shift, error) {
	return f.shifts, nil
}

func (f *fakeStore) GetOrdersForUser(userID int64) ([]models.Order, error) {
	return f.orders, nil
}

func newTestRouter(store Storage) *chi.Mux {
	r := chi.NewRouter()
	SetupRoutes(r, ApiDependencies{
		Config: &config.Config{APIToken: "secret"},
		Store:  store,
	})
	return r
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("X-Api-Token", token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetHealth_NoTokenRequired(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	rec := doRequest(r, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "ok", resp.Data["health"])
}

func TestAuthMiddleware_RejectsMissingAndWrongToken(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "GET", "/api/user/100/stats", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "GET", "/api/user/100/stats", "wrong").Code)
}

func TestAuthMiddleware_EmptyServerTokenDisablesAPI(t *testing.T) {
	r := chi.NewRouter()
	SetupRoutes(r, ApiDependencies{
		Config: &config.Config{APIToken: ""},
		Store:  &fakeStore{},
	})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "GET", "/api/user/100/stats", "").Code)
}

func TestGetUserStats(t *testing.T) {
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{
		users: map[int64]models.User{100: {ID: 1, ChatID: 100}},
		shifts: []models.Shift{{
			StartTime:  sql.NullTime{Time: start, Valid: true},
			EndTime:    sql.NullTime{Time: start.Add(8 * time.Hour), Valid: true},
			OrderCount: 10,
			Earnings:   2500,
		}},
	}
	r := newTestRouter(store)

	rec := doRequest(r, "GET", "/api/user/100/stats", "secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string                    `json:"status"`
		Data   models.DetailedStatistics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.TotalShifts)
	assert.InDelta(t, 2500.0, resp.Data.TotalEarnings, 0.001)
	assert.InDelta(t, 8.0, resp.Data.TotalHours, 0.001)
}

func TestGetUserStats_UserNotFound(t *testing.T) {
	r := newTestRouter(&fakeStore{users: map[int64]models.User{}})

	rec := doRequest(r, "GET", "/api/user/999/stats", "secret")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserStats_BadChatID(t *testing.T) {
	r := newTestRouter(&fakeStore{users: map[int64]models.User{}})

	rec := doRequest(r, "GET", "/api/user/abc/stats", "secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserShifts(t *testing.T) {
	store := &fakeStore{
		users: map[int64]models.User{100: {ID: 1, ChatID: 100}},
		shifts: []models.Shift{
			{ID: 2, Earnings: 1500},
			{ID: 1, Earnings: 2500},
		},
	}
	r := newTestRouter(store)

	rec := doRequest(r, "GET", "/api/user/100/shifts?limit=1", "secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string         `json:"status"`
		Data   []models.Shift `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Data[0].ID)
}

func TestGetUserShifts_EmptyHistoryIsEmptyArray(t *testing.T) {
	store := &fakeStore{users: map[int64]models.User{100: {ID: 1, ChatID: 100}}}
	r := newTestRouter(store)

	rec := doRequest(r, "GET", "/api/user/100/shifts", "secret")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGetUserShifts_BadLimit(t *testing.T) {
	store := &fakeStore{users: map[int64]models.User{100: {ID: 1, ChatID: 100}}}
	r := newTestRouter(store)

	assert.Equal(t, http.StatusBadRequest, doRequest(r, "GET", "/api/user/100/shifts?limit=0", "secret").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "GET", "/api/user/100/shifts?limit=abc", "secret").Code)
}
