package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbot/internal/models"
)

// Фиксированное "сейчас" для детерминированных проверок.
var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func TestParseShiftInput_Valid(t *testing.T) {
	raw := "15.03.2024\n09:00\n17:00\n10\n2500"

	candidate, verr := ParseShiftInput(raw, testNow)
	require.Nil(t, verr)

	assert.Equal(t, 10, candidate.OrderCount)
	assert.Equal(t, 2500.0, candidate.Earnings)
	assert.InDelta(t, 8.0, candidate.TotalHours, 0.001)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), candidate.StartTime)
	assert.Equal(t, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC), candidate.EndTime)
	assert.InDelta(t, 312.5, candidate.Earnings/candidate.TotalHours, 0.001)
}

func TestParseShiftInput_TrimsWhitespace(t *testing.T) {
	raw := "  15.03.2024  \n 09:00\n17:00 \n 10 \n 2500.50 \n"

	candidate, verr := ParseShiftInput(raw, testNow)
	require.Nil(t, verr)
	assert.Equal(t, 2500.50, candidate.Earnings)
}

func TestParseShiftInput_WrongLineCount(t *testing.T) {
	raw := "15.03.2024\n09:00\n17:00\n10"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Неверный формат данных: ожидается 5 строк", verr.Reason)
}

func TestParseShiftInput_BadDateFormat(t *testing.T) {
	raw := "15/03/2024\n09:00\n17:00\n10\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Неверный формат даты: ожидается ДД.ММ.ГГГГ", verr.Reason)
}

func TestParseShiftInput_BadTimeFormat(t *testing.T) {
	raw := "15.03.2024\n9:00\n17:00\n10\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Неверный формат времени: ожидается ЧЧ:ММ", verr.Reason)
}

func TestParseShiftInput_OrdersNotInteger(t *testing.T) {
	raw := "15.03.2024\n09:00\n17:00\nмного\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Количество заказов должно быть целым числом", verr.Reason)
}

func TestParseShiftInput_EarningsNotNumber(t *testing.T) {
	raw := "15.03.2024\n09:00\n17:00\n10\nдве тысячи"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Заработок должен быть числом", verr.Reason)
}

func TestParseShiftInput_OrdersOutOfRange(t *testing.T) {
	for _, orders := range []string{"0", "-3", "26"} {
		raw := "15.03.2024\n09:00\n17:00\n" + orders + "\n2500"

		_, verr := ParseShiftInput(raw, testNow)
		require.NotNil(t, verr, "orders=%s", orders)
		assert.Equal(t, models.ValidationRange, verr.Kind)
		assert.Equal(t, "Количество заказов должно быть положительным числом и не больше 25", verr.Reason)
	}
}

func TestParseShiftInput_ImplausibleEarnings(t *testing.T) {
	raw := "15.03.2024\n09:00\n17:00\n10\n6000"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationRange, verr.Kind)
	assert.Equal(t, "Заработок не соответствует реальности! Введите меньшее число", verr.Reason)
}

func TestParseShiftInput_ImpossibleCalendarDate(t *testing.T) {
	raw := "31.02.2024\n09:00\n17:00\n10\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
}

func TestParseShiftInput_YearTooEarly(t *testing.T) {
	raw := "15.03.2021\n09:00\n17:00\n10\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationRange, verr.Kind)
	assert.Equal(t, "Год не может быть раньше 2022", verr.Reason)
}

func TestParseShiftInput_FutureShift(t *testing.T) {
	raw := "25.03.2024\n09:00\n17:00\n10\n2500"

	_, verr := ParseShiftInput(raw, testNow)
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationRange, verr.Kind)
	assert.Equal(t, "Дата и время не могут быть в будущем", verr.Reason)
}

func TestParseShiftInput_EndNotAfterStart(t *testing.T) {
	for _, endTime := range []string{"09:00", "08:00"} {
		raw := "15.03.2024\n09:00\n" + endTime + "\n10\n2500"

		_, verr := ParseShiftInput(raw, testNow)
		require.NotNil(t, verr, "end=%s", endTime)
		assert.Equal(t, models.ValidationRange, verr.Kind)
		assert.Equal(t, "Время окончания должно быть позже времени начала", verr.Reason)
	}
}

func TestParseShiftInput_ShiftEndingNow(t *testing.T) {
	// Смена, заканчивающаяся ровно в "сейчас", допустима.
	raw := "20.03.2024\n08:00\n12:00\n5\n1200"

	candidate, verr := ParseShiftInput(raw, testNow)
	require.Nil(t, verr)
	assert.InDelta(t, 4.0, candidate.TotalHours, 0.001)
}

func TestParseOrderInput_Valid(t *testing.T) {
	raw := "14:30\nул. Киевская 95\n350\n2.5"

	order, verr := ParseOrderInput(raw)
	require.Nil(t, verr)
	assert.Equal(t, "14:30", order.Time)
	assert.Equal(t, "ул. Киевская 95", order.Address)
	assert.Equal(t, 350.0, order.Price)
	assert.Equal(t, 2.5, order.Distance)
}

func TestParseOrderInput_WrongLineCount(t *testing.T) {
	_, verr := ParseOrderInput("14:30\nул. Киевская 95\n350")
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationFormat, verr.Kind)
	assert.Equal(t, "Неверный формат данных: ожидается 4 строки", verr.Reason)
}

func TestParseOrderInput_BadTime(t *testing.T) {
	for _, timeStr := range []string{"25:00", "9:30", "ab:cd"} {
		raw := timeStr + "\nул. Киевская 95\n350\n2.5"

		_, verr := ParseOrderInput(raw)
		require.NotNil(t, verr, "time=%s", timeStr)
		assert.Equal(t, models.ValidationFormat, verr.Kind)
	}
}

func TestParseOrderInput_EmptyAddress(t *testing.T) {
	_, verr := ParseOrderInput("14:30\n\n350\n2.5")
	require.NotNil(t, verr)
	assert.Equal(t, "Адрес не может быть пустым", verr.Reason)
}

func TestParseOrderInput_NegativeValues(t *testing.T) {
	_, verr := ParseOrderInput("14:30\nул. Киевская 95\n-10\n2.5")
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationRange, verr.Kind)
	assert.Equal(t, "Стоимость не может быть отрицательной", verr.Reason)

	_, verr = ParseOrderInput("14:30\nул. Киевская 95\n350\n-1")
	require.NotNil(t, verr)
	assert.Equal(t, models.ValidationRange, verr.Kind)
	assert.Equal(t, "Расстояние не может быть отрицательным", verr.Reason)
}
