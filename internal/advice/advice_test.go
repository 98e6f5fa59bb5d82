package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbot/internal/constants"
)

// fakeQuotaStore - фиктивное хранилище для учета лимита и сохраненных советов.
type fakeQuotaStore struct {
	count    int
	countErr error
	saved    []savedAdvice
}

type savedAdvice struct {
	userID     int64
	requestID  string
	adviceType string
	question   string
	adviceText string
}

func (f *fakeQuotaStore) CountAdviceForDay(userID int64, day time.Time) (int, error) {
	return f.count, f.countErr
}

func (f *fakeQuotaStore) SaveAdvice(userID int64, requestID, adviceType, question, adviceText string) error {
	f.saved = append(f.saved, savedAdvice{userID, requestID, adviceType, question, adviceText})
	return nil
}

func geminiStub(t *testing.T, answer string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Вопрос:")

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": answer}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGetAdvice_Success(t *testing.T) {
	server, calls := geminiStub(t, "Работайте в часы пик.")
	store := &fakeQuotaStore{}
	client := NewClientWithEndpoint("test-key", server.URL, store)

	text, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_OPTIMIZATION, "Когда лучше выходить?")
	require.NoError(t, err)
	assert.Equal(t, "Работайте в часы пик.", text)
	assert.Equal(t, 1, *calls)

	require.Len(t, store.saved, 1)
	assert.Equal(t, int64(42), store.saved[0].userID)
	assert.Equal(t, constants.ADVICE_TOPIC_OPTIMIZATION, store.saved[0].adviceType)
	assert.Equal(t, "Когда лучше выходить?", store.saved[0].question)
	assert.Equal(t, "Работайте в часы пик.", store.saved[0].adviceText)
	assert.NotEmpty(t, store.saved[0].requestID)
}

func TestGetAdvice_UnknownTopic(t *testing.T) {
	server, calls := geminiStub(t, "не должно вызваться")
	client := NewClientWithEndpoint("test-key", server.URL, &fakeQuotaStore{})

	_, err := client.GetAdvice(context.Background(), 42, "astrology", "Вопрос")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Zero(t, *calls)
}

func TestGetAdvice_QuestionTooLong(t *testing.T) {
	server, calls := geminiStub(t, "не должно вызваться")
	client := NewClientWithEndpoint("test-key", server.URL, &fakeQuotaStore{})

	longQuestion := strings.Repeat("ы", constants.MAX_ADVICE_QUESTION_LEN+1)
	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_LEGAL, longQuestion)
	assert.ErrorIs(t, err, ErrQuestionTooLong)
	assert.Zero(t, *calls)
}

func TestGetAdvice_QuestionAtLimit(t *testing.T) {
	server, _ := geminiStub(t, "Ответ")
	client := NewClientWithEndpoint("test-key", server.URL, &fakeQuotaStore{})

	// Лимит считается в символах, не в байтах.
	question := strings.Repeat("ы", constants.MAX_ADVICE_QUESTION_LEN)
	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_LEGAL, question)
	assert.NoError(t, err)
}

func TestGetAdvice_QuotaExceeded(t *testing.T) {
	server, calls := geminiStub(t, "не должно вызваться")
	store := &fakeQuotaStore{count: constants.MAX_ADVICE_PER_DAY}
	client := NewClientWithEndpoint("test-key", server.URL, store)

	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_NUTRITION, "Что есть на смене?")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Zero(t, *calls)
	assert.Empty(t, store.saved)
}

func TestGetAdvice_LastQuotaSlot(t *testing.T) {
	server, _ := geminiStub(t, "Ответ")
	store := &fakeQuotaStore{count: constants.MAX_ADVICE_PER_DAY - 1}
	client := NewClientWithEndpoint("test-key", server.URL, store)

	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_VEHICLE, "Как обслуживать велосипед?")
	assert.NoError(t, err)
	assert.Len(t, store.saved, 1)
}

func TestGetAdvice_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer server.Close()

	store := &fakeQuotaStore{}
	client := NewClientWithEndpoint("test-key", server.URL, store)

	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_LEGAL, "Вопрос")
	require.Error(t, err)
	// Неудачный запрос не сохраняется и не сжигает попытку.
	assert.Empty(t, store.saved)
}

func TestGetAdvice_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer server.Close()

	client := NewClientWithEndpoint("test-key", server.URL, &fakeQuotaStore{})

	_, err := client.GetAdvice(context.Background(), 42, constants.ADVICE_TOPIC_LEGAL, "Вопрос")
	assert.Error(t, err)
}
