package models

import (
	"database/sql"
	"time"
)

// Shift представляет одну рабочую смену курьера.
// Смена "открыта", пока EndTime равен NULL, и "закрыта" после финализации.
// Shift represents one courier work shift.
// A shift is "open" while EndTime is NULL and "closed" once finalized.
type Shift struct {
	ID         int64
	UserID     int64
	Service    string
	StartTime  sql.NullTime
	EndTime    sql.NullTime
	Earnings   float64
	OrderCount int
	Weather    sql.NullString
	CreatedAt  time.Time

	// Вычисляемые поля, заполняются при выборке GetShiftsForUser.
	// Computed fields, populated by GetShiftsForUser.
	TotalHours         float64
	AvgEarningsPerHour float64
}

// ShiftCandidate - результат успешной валидации пятистрочного блока данных смены.
// Чистая структура без привязки к БД: идентификаторы появляются только после записи.
// ShiftCandidate is the result of successfully validating the five-line shift block.
// A plain structure with no DB identity: IDs appear only after persisting.
type ShiftCandidate struct {
	StartTime  time.Time
	EndTime    time.Time
	OrderCount int
	Earnings   float64
	TotalHours float64 // (EndTime - StartTime) в часах / in hours
}
