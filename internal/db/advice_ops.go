package db

import (
	"log"
	"time"
)

// SaveAdvice сохраняет выданный ИИ совет вместе с вопросом пользователя.
// SaveAdvice stores an issued AI advice together with the user's question.
func (s *Store) SaveAdvice(userID int64, requestID, adviceType, question, adviceText string) error {
	_, err := s.db.Exec(`
        INSERT INTO ai_advice (user_id, request_id, advice_type, question, advice_text, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())`,
		userID, requestID, adviceType, question, adviceText)
	if err != nil {
		log.Printf("SaveAdvice: ошибка сохранения совета для пользователя ID %d: %v", userID, err)
		return err
	}
	log.Printf("Сохранен совет ИИ (запрос %s) для пользователя ID %d", requestID, userID)
	return nil
}

// CountAdviceForDay возвращает количество советов, выданных пользователю за
// календарный день. Счетчик хранится в БД, поэтому лимит переживает
// перезапуск процесса и сбрасывается в полночь, а не при рестарте.
// CountAdviceForDay returns the number of advice responses issued to the user
// on the given calendar day. The counter lives in the DB, so the limit
// survives process restarts and resets at midnight, not on restart.
func (s *Store) CountAdviceForDay(userID int64, day time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`
        SELECT COUNT(*) FROM ai_advice
        WHERE user_id = $1 AND created_at::date = $2::date`,
		userID, day).Scan(&count)
	if err != nil {
		log.Printf("CountAdviceForDay: ошибка подсчета советов для пользователя ID %d: %v", userID, err)
		return 0, err
	}
	return count, nil
}
