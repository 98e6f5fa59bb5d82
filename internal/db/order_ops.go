package db

import (
	"database/sql"
	"log"

	"courierbot/internal/constants"
	"courierbot/internal/models"
)

// AddOrder сохраняет заказ пользователя, опционально привязывая его к смене.
// Возвращает ID созданного заказа или 0 при ошибке хранилища.
// AddOrder stores a user's order, optionally linked to a shift.
// Returns the created order's ID or 0 on a storage fault.
func (s *Store) AddOrder(userID int64, shiftID sql.NullInt64, order models.Order) int64 {
	status := order.Status
	if status == "" {
		status = constants.ORDER_STATUS_PENDING
	}

	var orderID int64
	err := s.db.QueryRow(`
        INSERT INTO orders (user_id, shift_id, time, address, price, distance, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id`,
		userID, shiftID, order.Time, order.Address, order.Price, order.Distance, status).Scan(&orderID)
	if err != nil {
		log.Printf("AddOrder: ошибка добавления заказа для пользователя ID %d: %v", userID, err)
		return 0
	}
	log.Printf("Добавлен новый заказ ID %d для пользователя ID %d", orderID, userID)
	return orderID
}

// GetOrdersForUser возвращает все заказы пользователя для детальной
// статистики. Ошибка хранилища возвращается вызывающему.
// GetOrdersForUser returns all of a user's orders for detailed statistics.
// A storage fault is returned to the caller.
func (s *Store) GetOrdersForUser(userID int64) ([]models.Order, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, shift_id, COALESCE(time, ''), COALESCE(address, ''),
               COALESCE(price, 0), COALESCE(distance, 0), COALESCE(status, ''), created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at ASC`, userID)
	if err != nil {
		log.Printf("GetOrdersForUser: ошибка получения заказов пользователя ID %d: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if errScan := rows.Scan(
			&o.ID, &o.UserID, &o.ShiftID, &o.Time, &o.Address,
			&o.Price, &o.Distance, &o.Status, &o.CreatedAt); errScan != nil {
			log.Printf("GetOrdersForUser: ошибка сканирования строки заказа: %v", errScan)
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
