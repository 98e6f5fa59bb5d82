// Файл: internal/stats/statistics.go
package stats

import (
	"log"

	"courierbot/internal/constants"
	"courierbot/internal/models"
)

// ShiftSource - минимальный срез хранилища, нужный агрегатору. Реализуется
// db.Store; в тестах подменяется фиктивным источником.
// ShiftSource is the minimal slice of the store the aggregator needs.
// Implemented by db.Store; replaced by a fake source in tests.
type ShiftSource interface {
	GetShiftsForStats(userID int64) ([]models.Shift, error)
	GetOrdersForUser(userID int64) ([]models.Order, error)
}

// ComputeStatistics вычисляет сводную статистику по всей истории смен
// пользователя. Агрегатор не хранит состояния: результат - чистая функция от
// содержимого хранилища на момент вызова. Ошибка выборки эквивалентна пустой
// истории: вызывающий всегда получает корректно заполненную структуру.
//
// Смены без времени окончания дают нулевую длительность, но их заработок и
// заказы входят в суммы: деньги не выпадают из итогов из-за битых таймстампов.
//
// ComputeStatistics computes summary statistics over the user's entire shift
// history. The aggregator is stateless: the result is a pure function of the
// store contents at call time. A fetch failure is equivalent to an empty
// history: the caller always gets a well-formed structure.
//
// Shifts without an end time contribute zero duration but full earnings and
// orders: money never drops out of totals because of broken timestamps.
func ComputeStatistics(src ShiftSource, userID int64) models.Statistics {
	var st models.Statistics

	shifts, err := src.GetShiftsForStats(userID)
	if err != nil {
		log.Printf("ComputeStatistics: ошибка получения смен пользователя ID %d, возвращается пустая статистика: %v", userID, err)
		return st
	}
	if len(shifts) == 0 {
		return st
	}

	st.TotalShifts = len(shifts)
	st.MinEarnings = shifts[0].Earnings
	for _, sh := range shifts {
		if sh.StartTime.Valid && sh.EndTime.Valid {
			st.TotalHours += sh.EndTime.Time.Sub(sh.StartTime.Time).Seconds() / 3600
		}
		st.TotalEarnings += sh.Earnings
		st.TotalOrders += sh.OrderCount
		if sh.Earnings > st.MaxEarnings {
			st.MaxEarnings = sh.Earnings
		}
		if sh.Earnings < st.MinEarnings {
			st.MinEarnings = sh.Earnings
		}
	}

	st.AvgEarnings = st.TotalEarnings / float64(st.TotalShifts)
	st.AvgOrders = float64(st.TotalOrders) / float64(st.TotalShifts)
	st.AvgShiftDuration = st.TotalHours / float64(st.TotalShifts)
	if st.TotalHours > 0 {
		st.EarningsPerHour = st.TotalEarnings / st.TotalHours
	}
	return st
}

// ComputeDetailedStatistics дополняет сводную статистику распределением
// заказов по времени суток и дням недели. Интервалы без заказов в картах
// отсутствуют. Ошибка выборки заказов оставляет карты пустыми.
// ComputeDetailedStatistics extends the summary with order distribution by
// time of day and weekday. Buckets with no orders are absent from the maps.
// An order fetch failure leaves the maps empty.
func ComputeDetailedStatistics(src ShiftSource, userID int64) models.DetailedStatistics {
	detailed := models.DetailedStatistics{
		Statistics: ComputeStatistics(src, userID),
		TimeOfDay:  make(map[string]int),
		Weekday:    make(map[int]int),
	}

	orders, err := src.GetOrdersForUser(userID)
	if err != nil {
		log.Printf("ComputeDetailedStatistics: ошибка получения заказов пользователя ID %d, распределения останутся пустыми: %v", userID, err)
		return detailed
	}

	for _, order := range orders {
		if band, ok := timeOfDayBand(order.Time); ok {
			detailed.TimeOfDay[band]++
		}
		if !order.CreatedAt.IsZero() {
			detailed.Weekday[int(order.CreatedAt.Weekday())]++
		}
	}
	return detailed
}

// timeOfDayBand относит время заказа "HH:MM" к одному из четырех интервалов:
// утро 06:00-11:59, день 12:00-17:59, вечер 18:00-23:59, ночь 00:00-05:59.
// timeOfDayBand maps an "HH:MM" order time to one of four bands:
// morning 06:00-11:59, day 12:00-17:59, evening 18:00-23:59, night 00:00-05:59.
func timeOfDayBand(hhmm string) (string, bool) {
	if len(hhmm) < 2 {
		return "", false
	}
	hour := 0
	for _, c := range hhmm[:2] {
		if c < '0' || c > '9' {
			return "", false
		}
		hour = hour*10 + int(c-'0')
	}
	if hour > 23 {
		return "", false
	}
	switch {
	case hour >= 6 && hour <= 11:
		return constants.TIME_OF_DAY_MORNING, true
	case hour >= 12 && hour <= 17:
		return constants.TIME_OF_DAY_DAY, true
	case hour >= 18:
		return constants.TIME_OF_DAY_EVENING, true
	default:
		return constants.TIME_OF_DAY_NIGHT, true
	}
}
