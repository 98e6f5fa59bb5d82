package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"courierbot/internal/constants"
	"courierbot/internal/models"
)

// shiftDateRegex и shiftTimeRegex (не экспортируются) используются внутри ParseShiftInput.
// shiftDateRegex and shiftTimeRegex (not exported) are used inside ParseShiftInput.
var (
	shiftDateRegex = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	shiftTimeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseShiftInput разбирает пятистрочный блок данных смены и проверяет его по
// цепочке правил. Порядок проверок фиксирован: побеждает первое нарушение,
// поэтому сообщения об ошибках детерминированы. Функция чистая: текущее время
// передается параметром now, побочных эффектов нет.
//
// Ожидаемый формат:
//
//	15.03.2024   (дата ДД.ММ.ГГГГ)
//	09:00        (время начала ЧЧ:ММ)
//	17:00        (время завершения ЧЧ:ММ)
//	10           (количество заказов)
//	2500         (заработок)
//
// ParseShiftInput parses the five-line shift data block and validates it
// against a fixed rule chain. The first violation wins, so error messages are
// deterministic. The function is pure: the current time is injected via now.
func ParseShiftInput(raw string, now time.Time) (models.ShiftCandidate, *models.ValidationError) {
	var candidate models.ShiftCandidate

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) != constants.SHIFT_INPUT_LINES {
		return candidate, models.NewFormatError("Неверный формат данных: ожидается 5 строк")
	}

	dateStr := strings.TrimSpace(lines[0])
	startTimeStr := strings.TrimSpace(lines[1])
	endTimeStr := strings.TrimSpace(lines[2])
	ordersStr := strings.TrimSpace(lines[3])
	earningsStr := strings.TrimSpace(lines[4])

	if !shiftDateRegex.MatchString(dateStr) {
		return candidate, models.NewFormatError("Неверный формат даты: ожидается ДД.ММ.ГГГГ")
	}
	if !shiftTimeRegex.MatchString(startTimeStr) || !shiftTimeRegex.MatchString(endTimeStr) {
		return candidate, models.NewFormatError("Неверный формат времени: ожидается ЧЧ:ММ")
	}

	orders, err := strconv.Atoi(ordersStr)
	if err != nil {
		return candidate, models.NewFormatError("Количество заказов должно быть целым числом")
	}
	earnings, err := strconv.ParseFloat(earningsStr, 64)
	if err != nil {
		return candidate, models.NewFormatError("Заработок должен быть числом")
	}

	if orders <= 0 || orders > constants.MAX_ORDERS_PER_SHIFT {
		return candidate, models.NewRangeError("Количество заказов должно быть положительным числом и не больше 25")
	}
	// Верхние границы заказов и заработка проверяются вместе, как единый фильтр правдоподобия
	if orders > constants.MAX_ORDERS_PER_SHIFT || earnings >= constants.MAX_SHIFT_EARNINGS {
		return candidate, models.NewRangeError("Заработок не соответствует реальности! Введите меньшее число")
	}

	startDT, err := time.ParseInLocation(constants.SHIFT_DATETIME_LAYOUT, dateStr+" "+startTimeStr, now.Location())
	if err != nil {
		return candidate, models.NewFormatError("Некорректная дата или время начала")
	}
	endDT, err := time.ParseInLocation(constants.SHIFT_DATETIME_LAYOUT, dateStr+" "+endTimeStr, now.Location())
	if err != nil {
		return candidate, models.NewFormatError("Некорректная дата или время завершения")
	}

	if startDT.Year() < constants.MIN_SHIFT_YEAR {
		return candidate, models.NewRangeError("Год не может быть раньше 2022")
	}
	// Месяц проверяется явно, хотя парсер даты отбрасывает невозможные значения сам
	if startDT.Month() < time.January || startDT.Month() > time.December {
		return candidate, models.NewRangeError("Месяц должен быть от 1 до 12")
	}
	if startDT.After(now) || endDT.After(now) {
		return candidate, models.NewRangeError("Дата и время не могут быть в будущем")
	}
	if !endDT.After(startDT) {
		return candidate, models.NewRangeError("Время окончания должно быть позже времени начала")
	}

	totalHours := endDT.Sub(startDT).Seconds() / 3600
	if totalHours <= 0 {
		return candidate, models.NewRangeError("Время работы должно быть положительным")
	}

	candidate = models.ShiftCandidate{
		StartTime:  startDT,
		EndTime:    endDT,
		OrderCount: orders,
		Earnings:   earnings,
		TotalHours: totalHours,
	}
	return candidate, nil
}

// ParseOrderInput разбирает четырехстрочный блок данных заказа.
//
// Ожидаемый формат:
//
//	14:30        (время доставки ЧЧ:ММ)
//	ул. Киевская 95   (адрес)
//	350          (стоимость)
//	2.5          (расстояние, км)
//
// ParseOrderInput parses the four-line order data block.
func ParseOrderInput(raw string) (models.Order, *models.ValidationError) {
	var order models.Order

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) != constants.ORDER_INPUT_LINES {
		return order, models.NewFormatError("Неверный формат данных: ожидается 4 строки")
	}

	timeStr := strings.TrimSpace(lines[0])
	address := strings.TrimSpace(lines[1])
	priceStr := strings.TrimSpace(lines[2])
	distanceStr := strings.TrimSpace(lines[3])

	if !shiftTimeRegex.MatchString(timeStr) {
		return order, models.NewFormatError("Неверный формат времени: ожидается ЧЧ:ММ")
	}
	if _, err := time.Parse(constants.SHIFT_TIME_LAYOUT, timeStr); err != nil {
		return order, models.NewFormatError("Некорректное время заказа")
	}
	if address == "" {
		return order, models.NewFormatError("Адрес не может быть пустым")
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return order, models.NewFormatError("Стоимость должна быть числом")
	}
	distance, err := strconv.ParseFloat(distanceStr, 64)
	if err != nil {
		return order, models.NewFormatError("Расстояние должно быть числом")
	}

	if price < 0 {
		return order, models.NewRangeError("Стоимость не может быть отрицательной")
	}
	if distance < 0 {
		return order, models.NewRangeError("Расстояние не может быть отрицательным")
	}

	order = models.Order{
		Time:     timeStr,
		Address:  address,
		Price:    price,
		Distance: distance,
		Status:   constants.ORDER_STATUS_COMPLETED,
	}
	return order, nil
}
