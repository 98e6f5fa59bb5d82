// Файл: internal/utils/formatters.go

package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Round2 округляет значение до двух знаков после запятой. Используется только
// при отображении, накопление статистики идет без округления.
// Round2 rounds a value to two decimal places. Used only at presentation;
// statistics accumulate without rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney форматирует денежную сумму для отображения.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", Round2(v))
}

// FormatHours форматирует длительность в часах для отображения.
func FormatHours(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// EscapeTelegramMarkdown экранирует специальные символы для Telegram Markdown (старый стиль).
func EscapeTelegramMarkdown(text string) string {
	var replacer = strings.NewReplacer(
		"_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[",
	)
	return replacer.Replace(text)
}

// GenerateUUID генерирует новый UUID.
func GenerateUUID() string {
	return uuid.New().String()
}

// WeekdayNames - русские названия дней недели, индекс соответствует
// time.Weekday (0 - воскресенье).
// WeekdayNames holds Russian weekday names indexed by time.Weekday
// (0 is Sunday).
var WeekdayNames = [7]string{
	"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота",
}
