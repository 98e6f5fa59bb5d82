package db

import (
	"database/sql"
	"log"

	"courierbot/internal/models"
)

// GetOrCreateUser регистрирует пользователя при первом обращении или обновляет
// время последней активности существующего.
// GetOrCreateUser registers a user on first contact or touches the
// last_active timestamp of an existing one.
func (s *Store) GetOrCreateUser(chatID int64, username string) (models.User, error) {
	var user models.User
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE chat_id=$1)", chatID).Scan(&exists)
	if err != nil {
		log.Printf("GetOrCreateUser: ошибка проверки существования пользователя chatID %d: %v", chatID, err)
		return user, err
	}

	if exists {
		_, err = s.db.Exec("UPDATE users SET last_active=NOW() WHERE chat_id=$1", chatID)
		if err != nil {
			log.Printf("GetOrCreateUser: ошибка обновления last_active для chatID %d: %v", chatID, err)
			return user, err
		}
	} else {
		nullableName := sql.NullString{String: username, Valid: username != ""}
		_, err = s.db.Exec(`
            INSERT INTO users (chat_id, username, created_at, last_active)
            VALUES ($1, $2, NOW(), NOW())`, chatID, nullableName)
		if err != nil {
			log.Printf("GetOrCreateUser: ошибка вставки нового пользователя chatID %d: %v", chatID, err)
			return user, err
		}
		log.Printf("Зарегистрирован новый пользователь с chatID %d (%s)", chatID, username)
	}

	return s.GetUserByChatID(chatID)
}

// GetUserByChatID извлекает пользователя по его chat_id.
// Возвращает sql.ErrNoRows, если пользователь не найден.
// GetUserByChatID retrieves a user by chat_id.
// Returns sql.ErrNoRows if the user is not found.
func (s *Store) GetUserByChatID(chatID int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
        SELECT id, chat_id, username, current_service, created_at, last_active
        FROM users WHERE chat_id=$1`, chatID).Scan(
		&u.ID, &u.ChatID, &u.Username, &u.CurrentService, &u.CreatedAt, &u.LastActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, err
		}
		log.Printf("GetUserByChatID: ошибка получения пользователя chatID %d: %v", chatID, err)
		return u, err
	}
	return u, nil
}

// GetUserService возвращает ключ текущего сервиса пользователя или пустую
// строку, если сервис еще не выбран либо произошла ошибка хранилища.
// GetUserService returns the user's current service key, or an empty string
// when no service is selected yet or on a storage fault.
func (s *Store) GetUserService(userID int64) string {
	var service sql.NullString
	err := s.db.QueryRow("SELECT current_service FROM users WHERE id=$1", userID).Scan(&service)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("GetUserService: ошибка получения сервиса пользователя ID %d: %v", userID, err)
		}
		return ""
	}
	if service.Valid {
		return service.String
	}
	return ""
}

// SetUserService обновляет выбранный сервис пользователя.
// SetUserService updates the user's selected service.
func (s *Store) SetUserService(userID int64, service string) bool {
	_, err := s.db.Exec("UPDATE users SET current_service=$1, last_active=NOW() WHERE id=$2", service, userID)
	if err != nil {
		log.Printf("SetUserService: ошибка обновления сервиса для пользователя ID %d на %s: %v", userID, service, err)
		return false
	}
	log.Printf("Сервис пользователя ID %d обновлен на %s", userID, service)
	return true
}
