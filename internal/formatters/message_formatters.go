package formatters

import (
	"fmt"
	"sort"
	"strings"

	"courierbot/internal/constants"
	"courierbot/internal/models"
	"courierbot/internal/utils"
)

const (
	separator = "─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─"
)

// Порядок вывода интервалов времени суток в профиле.
var timeOfDayOrder = []string{
	constants.TIME_OF_DAY_MORNING,
	constants.TIME_OF_DAY_DAY,
	constants.TIME_OF_DAY_EVENING,
	constants.TIME_OF_DAY_NIGHT,
}

var timeOfDayDisplay = map[string]string{
	constants.TIME_OF_DAY_MORNING: "🌅 Утро (06:00-11:59)",
	constants.TIME_OF_DAY_DAY:     "☀️ День (12:00-17:59)",
	constants.TIME_OF_DAY_EVENING: "🌆 Вечер (18:00-23:59)",
	constants.TIME_OF_DAY_NIGHT:   "🌙 Ночь (00:00-05:59)",
}

// FormatShiftSaved форматирует сообщение об успешно сохраненной смене.
func FormatShiftSaved(candidate models.ShiftCandidate, service string) string {
	serviceName := constants.ServiceNames[service]
	if serviceName == "" {
		serviceName = service
	}

	var b strings.Builder
	b.WriteString("✅ *Смена сохранена!*\n")
	b.WriteString(separator + "\n")
	b.WriteString(fmt.Sprintf(" •  Сервис: %s\n", utils.EscapeTelegramMarkdown(serviceName)))
	b.WriteString(fmt.Sprintf(" •  Начало: %s\n", candidate.StartTime.Format(constants.SHIFT_DATETIME_LAYOUT)))
	b.WriteString(fmt.Sprintf(" •  Конец: %s\n", candidate.EndTime.Format(constants.SHIFT_DATETIME_LAYOUT)))
	b.WriteString(fmt.Sprintf(" •  Заказов: %d\n", candidate.OrderCount))
	b.WriteString(fmt.Sprintf(" •  Заработок: %s\n", utils.FormatMoney(candidate.Earnings)))
	b.WriteString(fmt.Sprintf(" •  Отработано часов: %s\n", utils.FormatHours(candidate.TotalHours)))
	if candidate.TotalHours > 0 {
		b.WriteString(fmt.Sprintf(" •  В час: %s\n", utils.FormatMoney(candidate.Earnings/candidate.TotalHours)))
	}
	return b.String()
}

// FormatProfile форматирует профиль пользователя со сводной и детальной
// статистикой. Округление происходит только здесь, при выводе.
func FormatProfile(user models.User, detailed models.DetailedStatistics) string {
	var b strings.Builder

	b.WriteString("👤 *ВАШ ПРОФИЛЬ*\n")
	b.WriteString(separator + "\n")
	if user.Username.Valid && user.Username.String != "" {
		b.WriteString(fmt.Sprintf(" •  Имя: @%s\n", utils.EscapeTelegramMarkdown(user.Username.String)))
	}
	serviceName := constants.ServiceNames[constants.DEFAULT_SERVICE]
	if user.CurrentService.Valid && user.CurrentService.String != "" {
		if name, ok := constants.ServiceNames[user.CurrentService.String]; ok {
			serviceName = name
		}
	}
	b.WriteString(fmt.Sprintf(" •  Текущий сервис: %s\n\n", utils.EscapeTelegramMarkdown(serviceName)))

	st := detailed.Statistics
	b.WriteString("📊 *СТАТИСТИКА:*\n")
	if st.TotalShifts == 0 {
		b.WriteString("Смен пока нет. Добавьте первую смену, чтобы увидеть статистику.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf(" •  Всего смен: %d\n", st.TotalShifts))
	b.WriteString(fmt.Sprintf(" •  Всего заказов: %d\n", st.TotalOrders))
	b.WriteString(fmt.Sprintf(" •  Общий заработок: %s\n", utils.FormatMoney(st.TotalEarnings)))
	b.WriteString(fmt.Sprintf(" •  Средний заработок за смену: %s\n", utils.FormatMoney(st.AvgEarnings)))
	b.WriteString(fmt.Sprintf(" •  Среднее заказов за смену: %s\n", utils.FormatHours(st.AvgOrders)))
	b.WriteString(fmt.Sprintf(" •  Лучшая смена: %s\n", utils.FormatMoney(st.MaxEarnings)))
	b.WriteString(fmt.Sprintf(" •  Худшая смена: %s\n", utils.FormatMoney(st.MinEarnings)))
	b.WriteString(fmt.Sprintf(" •  Всего часов: %s\n", utils.FormatHours(st.TotalHours)))
	b.WriteString(fmt.Sprintf(" •  Средняя длительность смены: %s ч\n", utils.FormatHours(st.AvgShiftDuration)))
	b.WriteString(fmt.Sprintf(" •  Заработок в час: %s\n", utils.FormatMoney(st.EarningsPerHour)))

	if len(detailed.TimeOfDay) > 0 {
		b.WriteString("\n🕒 *ЗАКАЗЫ ПО ВРЕМЕНИ СУТОК:*\n")
		for _, band := range timeOfDayOrder {
			if count, ok := detailed.TimeOfDay[band]; ok {
				b.WriteString(fmt.Sprintf(" •  %s: %d\n", timeOfDayDisplay[band], count))
			}
		}
	}

	if len(detailed.Weekday) > 0 {
		b.WriteString("\n📅 *ЗАКАЗЫ ПО ДНЯМ НЕДЕЛИ:*\n")
		days := make([]int, 0, len(detailed.Weekday))
		for day := range detailed.Weekday {
			days = append(days, day)
		}
		sort.Ints(days)
		for _, day := range days {
			if day >= 0 && day < len(utils.WeekdayNames) {
				b.WriteString(fmt.Sprintf(" •  %s: %d\n", utils.WeekdayNames[day], detailed.Weekday[day]))
			}
		}
	}

	return b.String()
}

// FormatShiftList форматирует список последних смен пользователя.
func FormatShiftList(shifts []models.Shift) string {
	if len(shifts) == 0 {
		return "📭 Смен пока нет."
	}

	var b strings.Builder
	b.WriteString("📋 *ПОСЛЕДНИЕ СМЕНЫ:*\n")
	b.WriteString(separator + "\n")
	for _, shift := range shifts {
		serviceName := constants.ServiceNames[shift.Service]
		if serviceName == "" {
			serviceName = shift.Service
		}
		dateStr := "—"
		if shift.StartTime.Valid {
			dateStr = shift.StartTime.Time.Format(constants.SHIFT_DATE_LAYOUT)
		}
		b.WriteString(fmt.Sprintf("%s | %s | %d зак. | %s",
			dateStr,
			utils.EscapeTelegramMarkdown(serviceName),
			shift.OrderCount,
			utils.FormatMoney(shift.Earnings)))
		if shift.TotalHours > 0 {
			b.WriteString(fmt.Sprintf(" | %s ч", utils.FormatHours(shift.TotalHours)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatShiftInputPrompt возвращает подсказку по формату ввода смены.
func FormatShiftInputPrompt() string {
	return "📝 *Введите данные смены* (5 строк):\n" +
		separator + "\n" +
		"`15.03.2024` — дата (ДД.ММ.ГГГГ)\n" +
		"`09:00` — время начала (ЧЧ:ММ)\n" +
		"`17:00` — время завершения (ЧЧ:ММ)\n" +
		"`10` — количество заказов\n" +
		"`2500` — заработок"
}
