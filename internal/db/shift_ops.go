package db

import (
	"database/sql"
	"log"

	"courierbot/internal/models"
)

// CreateShift создает новую смену, заполняя только сервис, и возвращает ее ID.
// Смена остается "открытой" до вызова FinalizeShift. Между двумя записями нет
// общей транзакции: сбой между ними оставляет открытую смену без времени
// окончания, и статистика учитывает ее с нулевой длительностью.
// CreateShift creates a new shift with only the service populated and returns
// its ID. The shift stays "open" until FinalizeShift. The two writes share no
// transaction: a crash in between leaves an open shift with no end time, and
// statistics count it with zero duration.
func (s *Store) CreateShift(userID int64, service string) (int64, error) {
	var shiftID int64
	err := s.db.QueryRow(`
        INSERT INTO shifts (user_id, service, created_at)
        VALUES ($1, $2, NOW()) RETURNING id`, userID, service).Scan(&shiftID)
	if err != nil {
		log.Printf("CreateShift: ошибка добавления смены для пользователя ID %d: %v", userID, err)
		return 0, err
	}
	log.Printf("Добавлена новая смена ID %d для пользователя ID %d", shiftID, userID)
	return shiftID, nil
}

// FinalizeShift записывает в существующую смену проверенные данные.
// Набор обновляемых колонок фиксирован. Возвращает false при отсутствии
// смены или ошибке хранилища; ошибка логируется и не пробрасывается.
// FinalizeShift writes validated data into an existing shift.
// The set of updated columns is fixed. Returns false when the shift is
// missing or on a storage fault; the fault is logged, not propagated.
func (s *Store) FinalizeShift(shiftID int64, candidate models.ShiftCandidate, service string) bool {
	res, err := s.db.Exec(`
        UPDATE shifts
        SET start_time=$1, end_time=$2, earnings=$3, order_count=$4, service=$5
        WHERE id=$6`,
		candidate.StartTime, candidate.EndTime, candidate.Earnings, candidate.OrderCount, service, shiftID)
	if err != nil {
		log.Printf("FinalizeShift: ошибка завершения смены ID %d: %v", shiftID, err)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Printf("FinalizeShift: ошибка получения количества строк для смены ID %d: %v", shiftID, err)
		return false
	}
	if affected == 0 {
		log.Printf("FinalizeShift: смена с ID %d не найдена", shiftID)
		return false
	}
	log.Printf("Смена ID %d успешно завершена. Заработок: %.2f, заказов: %d", shiftID, candidate.Earnings, candidate.OrderCount)
	return true
}

// GetShift возвращает смену по ID.
func (s *Store) GetShift(shiftID int64) (models.Shift, error) {
	var sh models.Shift
	err := s.db.QueryRow(`
        SELECT id, user_id, service, start_time, end_time,
               COALESCE(earnings, 0), COALESCE(order_count, 0), weather, created_at
        FROM shifts WHERE id=$1`, shiftID).Scan(
		&sh.ID, &sh.UserID, &sh.Service, &sh.StartTime, &sh.EndTime,
		&sh.Earnings, &sh.OrderCount, &sh.Weather, &sh.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("GetShift: ошибка получения смены ID %d: %v", shiftID, err)
		}
		return sh, err
	}
	return sh, nil
}

// GetShiftsForUser возвращает смены пользователя от новых к старым с
// вычисленными длительностью и заработком в час. При нулевой длительности или
// отсутствии времени начала/окончания вычисляемые поля равны 0. Ошибка
// хранилища логируется и превращается в пустой список.
// GetShiftsForUser returns the user's shifts most-recent-first with computed
// duration and hourly earnings. Computed fields are 0 for zero duration or
// missing start/end times. A storage fault is logged and becomes an empty list.
func (s *Store) GetShiftsForUser(userID int64, limit int) []models.Shift {
	rows, err := s.db.Query(`
        SELECT id, user_id, service, start_time, end_time,
               COALESCE(earnings, 0), COALESCE(order_count, 0), weather, created_at,
               CASE
                   WHEN start_time IS NOT NULL AND end_time IS NOT NULL
                   THEN EXTRACT(EPOCH FROM (end_time - start_time)) / 3600
                   ELSE 0
               END AS total_hours,
               CASE
                   WHEN start_time IS NOT NULL AND end_time IS NOT NULL
                   AND EXTRACT(EPOCH FROM (end_time - start_time)) > 0
                   THEN COALESCE(earnings, 0) / (EXTRACT(EPOCH FROM (end_time - start_time)) / 3600)
                   ELSE 0
               END AS avg_earnings_per_hour
        FROM shifts
        WHERE user_id = $1
        ORDER BY start_time DESC NULLS LAST
        LIMIT $2`, userID, limit)
	if err != nil {
		log.Printf("GetShiftsForUser: ошибка получения смен пользователя ID %d: %v", userID, err)
		return nil
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var sh models.Shift
		if errScan := rows.Scan(
			&sh.ID, &sh.UserID, &sh.Service, &sh.StartTime, &sh.EndTime,
			&sh.Earnings, &sh.OrderCount, &sh.Weather, &sh.CreatedAt,
			&sh.TotalHours, &sh.AvgEarningsPerHour); errScan != nil {
			log.Printf("GetShiftsForUser: ошибка сканирования строки смены: %v", errScan)
			continue
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		log.Printf("GetShiftsForUser: ошибка обхода строк для пользователя ID %d: %v", userID, err)
	}
	return shifts
}

// GetShiftsForStats возвращает всю историю смен пользователя без лимита для
// расчета статистики. Открытые смены (без end_time) включаются: их заработок
// и заказы учитываются в суммах, а длительность считается нулевой.
// GetShiftsForStats returns the user's entire shift history without a limit
// for statistics. Open shifts (no end_time) are included: their earnings and
// orders count toward totals while duration counts as zero.
func (s *Store) GetShiftsForStats(userID int64) ([]models.Shift, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, service, start_time, end_time,
               COALESCE(earnings, 0), COALESCE(order_count, 0), weather, created_at
        FROM shifts
        WHERE user_id = $1
        ORDER BY start_time ASC NULLS LAST`, userID)
	if err != nil {
		log.Printf("GetShiftsForStats: ошибка получения смен пользователя ID %d: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var sh models.Shift
		if errScan := rows.Scan(
			&sh.ID, &sh.UserID, &sh.Service, &sh.StartTime, &sh.EndTime,
			&sh.Earnings, &sh.OrderCount, &sh.Weather, &sh.CreatedAt); errScan != nil {
			log.Printf("GetShiftsForStats: ошибка сканирования строки смены: %v", errScan)
			continue
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}
