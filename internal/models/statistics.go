package models

// Statistics - агрегированные метрики по истории смен пользователя.
// Не хранится в БД, вычисляется по запросу. Значения не округляются
// при накоплении, округление выполняется только при отображении.
// Statistics holds aggregate metrics over a user's shift history.
// Not persisted, computed on demand. Values are not rounded while
// accumulating; rounding happens only at presentation.
type Statistics struct {
	TotalShifts      int
	TotalEarnings    float64
	TotalOrders      int
	AvgEarnings      float64
	AvgOrders        float64
	MaxEarnings      float64
	MinEarnings      float64
	TotalHours       float64
	AvgShiftDuration float64
	EarningsPerHour  float64
}

// DetailedStatistics расширяет Statistics распределением заказов по времени
// суток и дням недели. Интервалы без заказов в картах отсутствуют.
// DetailedStatistics extends Statistics with order distribution by time of
// day and weekday. Buckets with no orders are absent from the maps.
type DetailedStatistics struct {
	Statistics
	TimeOfDay map[string]int // morning/day/evening/night -> количество заказов
	Weekday   map[int]int    // 0 (воскресенье) - 6 (суббота) -> количество заказов
}
