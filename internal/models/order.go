package models

import (
	"database/sql"
	"time"
)

// Order представляет отдельный заказ курьера. Заказ может быть привязан к смене,
// но обязан принадлежать пользователю.
// Order represents a single courier order. An order may be linked to a shift
// but must belong to a user.
type Order struct {
	ID        int64
	UserID    int64
	ShiftID   sql.NullInt64
	Time      string // Время заказа "HH:MM" / Order time "HH:MM"
	Address   string
	Price     float64
	Distance  float64
	Status    string
	CreatedAt time.Time
}
