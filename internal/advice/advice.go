// Файл: internal/advice/advice.go
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"courierbot/internal/constants"
)

// API-адрес Gemini (переопределяется в тестах через NewClientWithEndpoint).
const geminiAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Шаблоны промптов по темам. Ответ модели отдается пользователю как есть.
var topicPrompts = map[string]string{
	constants.ADVICE_TOPIC_OPTIMIZATION: "Ты - встроен в тг бота для помощи курьерам в Бишкеке. Помоги юзеру в том, что он просит и задай вопрос, позволяющий оптимизировать заработок и дай статистику. Если вопрос не о курьерстве, верни: 'Этот вопрос не касается курьерства.' Отвечай НЕ БОЛЕЕ 1000-1200 символов! Prompt:",
	constants.ADVICE_TOPIC_LEGAL:        "Ты - встроен в тг бота для помощи курьерам в Бишкеке. Ты юрист, позволяющий разобраться в правах и возможностях, ПДД КР, патенте КР и прочем. Если вопрос не о курьерстве, верни: 'Этот вопрос не касается курьерства.' Отвечай НЕ БОЛЕЕ 1000-1200 символов! Prompt:",
	constants.ADVICE_TOPIC_NUTRITION:    "Ты - встроен в тг бота для помощи курьерам в Бишкеке. Ты помощник по здоровью, питанию, сначала напиши факт о здоровье и курьерке. Если вопрос не о курьерстве, верни: 'Этот вопрос не касается курьерства.' Отвечай НЕ БОЛЕЕ 1000-1200 символов! Вопрос юзера:",
	constants.ADVICE_TOPIC_VEHICLE:      "Ты - встроен в тг бота для помощи курьерам в Бишкеке. Ты механик во всех видах транспорта. Помоги по максимуму оптимизировать юзеру транспорт для курьерки - дай все нужные советы и тонкости. Если вопрос не о курьерстве, верни: 'Этот вопрос не касается курьерства.' Отвечай НЕ БОЛЕЕ 1000-1200 символов! Вопрос юзера:",
}

// Типизированные ошибки: обработчик по ним выбирает текст ответа пользователю.
var (
	ErrQuotaExceeded   = errors.New("превышен дневной лимит советов")
	ErrQuestionTooLong = errors.New("вопрос превышает максимальную длину")
	ErrUnknownTopic    = errors.New("неизвестная тема совета")
)

// QuotaStore - срез хранилища, нужный для учета дневного лимита и истории
// советов. Реализуется db.Store.
// QuotaStore is the store slice needed for daily quota accounting and advice
// history. Implemented by db.Store.
type QuotaStore interface {
	CountAdviceForDay(userID int64, day time.Time) (int, error)
	SaveAdvice(userID int64, requestID, adviceType, question, adviceText string) error
}

// Структуры запроса и ответа Gemini generateContent.

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Client - клиент ИИ-советов: проверяет лимиты, ходит в Gemini и сохраняет
// выданные советы в БД.
// Client is the AI advice client: it enforces limits, calls Gemini and
// persists issued advice in the DB.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	store      QuotaStore
	now        func() time.Time
}

// NewClient создает клиент с боевым адресом API Gemini.
func NewClient(apiKey string, store QuotaStore) *Client {
	return NewClientWithEndpoint(apiKey, geminiAPIEndpoint, store)
}

// NewClientWithEndpoint создает клиент с произвольным адресом API.
// Используется в тестах с httptest-сервером.
func NewClientWithEndpoint(apiKey, endpoint string, store QuotaStore) *Client {
	return &Client{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
		now:        time.Now,
	}
}

// GetAdvice выдает пользователю совет по выбранной теме. Порядок проверок:
// тема, длина вопроса, дневной лимит, затем запрос к API. Лимит считается по
// календарному дню из БД, поэтому сбрасывается в полночь и переживает
// перезапуск. Счетчик увеличивается только после успешного ответа API:
// неудачный запрос не сжигает попытку.
//
// GetAdvice issues advice on the selected topic. Check order: topic, question
// length, daily quota, then the API call. The quota is counted per calendar
// day from the DB, so it resets at midnight and survives restarts. The
// counter grows only after a successful API response: a failed request does
// not burn an attempt.
func (c *Client) GetAdvice(ctx context.Context, userID int64, topic, question string) (string, error) {
	promptTemplate, ok := topicPrompts[topic]
	if !ok {
		return "", ErrUnknownTopic
	}
	if len([]rune(question)) > constants.MAX_ADVICE_QUESTION_LEN {
		return "", ErrQuestionTooLong
	}

	used, err := c.store.CountAdviceForDay(userID, c.now())
	if err != nil {
		return "", fmt.Errorf("ошибка проверки дневного лимита: %w", err)
	}
	if used >= constants.MAX_ADVICE_PER_DAY {
		return "", ErrQuotaExceeded
	}

	requestID := uuid.New().String()
	log.Printf("Запрос совета %s: пользователь ID %d, тема '%s'", requestID, userID, topic)

	fullPrompt := promptTemplate + "\nВопрос: " + question
	adviceText, err := c.callGemini(ctx, fullPrompt)
	if err != nil {
		log.Printf("Запрос совета %s завершился ошибкой: %v", requestID, err)
		return "", err
	}

	if err := c.store.SaveAdvice(userID, requestID, topic, question, adviceText); err != nil {
		// Совет уже получен, пользователь его увидит; теряется только учетная запись.
		log.Printf("Запрос совета %s: совет получен, но не сохранен: %v", requestID, err)
	}
	return adviceText, nil
}

// callGemini выполняет HTTP-запрос к API и извлекает текст первого кандидата.
func (c *Client) callGemini(ctx context.Context, prompt string) (string, error) {
	requestBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("ошибка подготовки запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса к API Gemini: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа API: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("API Gemini вернул ошибку: статус %d, тело: %s", resp.StatusCode, string(responseBody))
		return "", fmt.Errorf("ошибка API Gemini, статус: %d", resp.StatusCode)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(responseBody, &geminiResp); err != nil {
		return "", fmt.Errorf("ошибка обработки ответа API: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("API не вернул текст совета")
	}
	adviceText := geminiResp.Candidates[0].Content.Parts[0].Text
	if adviceText == "" {
		return "", fmt.Errorf("API вернул пустой совет")
	}
	return adviceText, nil
}
