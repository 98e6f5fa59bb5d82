// Файл: internal/handlers/profile_handlers.go

package handlers

import (
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
	"courierbot/internal/formatters"
	"courierbot/internal/models"
	"courierbot/internal/stats"
)

// SendProfile отправляет профиль пользователя с детальной статистикой.
// SendProfile sends the user's profile with detailed statistics.
func (bh *BotHandler) SendProfile(user models.User, chatID int64, messageIDToEdit int) {
	detailed := stats.ComputeDetailedStatistics(bh.Deps.Store, user.ID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить смену", constants.CALLBACK_ADD_SHIFT),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	text := formatters.FormatProfile(user, detailed)
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("SendProfile: ошибка отправки профиля для chatID %d: %v", chatID, err)
	}
}
