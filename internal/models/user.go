package models

import (
	"database/sql"
	"time"
)

// User представляет курьера, зарегистрированного в боте.
// User represents a courier registered with the bot.
type User struct {
	ID             int64
	ChatID         int64
	Username       sql.NullString
	CurrentService sql.NullString // Ключ сервиса (yandex_food и т.д.), NULL пока не выбран
	CreatedAt      time.Time
	LastActive     time.Time
}
