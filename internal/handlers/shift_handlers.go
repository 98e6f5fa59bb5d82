// Файл: internal/handlers/shift_handlers.go

package handlers

import (
	"log"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
	"courierbot/internal/formatters"
	"courierbot/internal/models"
	"courierbot/internal/utils"
)

// processShiftSubmission обрабатывает пятистрочный блок данных смены.
// Смена записывается в два шага: сначала создается запись с сервисом, затем
// заполняются провалидированные данные. При ошибке валидации пользователь
// остается в режиме ввода и может прислать исправленный блок.
//
// processShiftSubmission handles the five-line shift data block. The shift is
// written in two steps: the record is created with the service first, then
// filled with validated data. On a validation error the user stays in input
// mode and can resubmit a corrected block.
func (bh *BotHandler) processShiftSubmission(user models.User, chatID int64, userMessageID int, text string) {
	menuMessageID := bh.Deps.SessionManager.GetTempAdvice(chatID).MenuMessageID

	candidate, validationErr := utils.ParseShiftInput(text, time.Now())
	if validationErr != nil {
		log.Printf("processShiftSubmission: ошибка валидации для chatID %d (%s): %s", chatID, validationErr.Kind, validationErr.Reason)
		bh.deleteMessageHelper(chatID, userMessageID)

		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", constants.CALLBACK_BACK_TO_MAIN),
			),
		)
		errorText := "❌ " + validationErr.Reason + "\n\nПопробуйте еще раз:"
		if _, err := bh.sendOrEditMessageHelper(chatID, menuMessageID, errorText, &keyboard, ""); err != nil {
			log.Printf("processShiftSubmission: ошибка отправки сообщения об ошибке валидации для chatID %d: %v", chatID, err)
		}
		return
	}

	service := bh.Deps.Store.GetUserService(user.ID)
	if service == "" {
		service = constants.DEFAULT_SERVICE
	}

	shiftID, err := bh.Deps.Store.CreateShift(user.ID, service)
	if err != nil {
		log.Printf("processShiftSubmission: ошибка создания смены для пользователя ID %d: %v", user.ID, err)
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.sendErrorMessageHelper(chatID, menuMessageID, "❌ Не удалось сохранить смену. Попробуйте позже.")
		return
	}

	if !bh.Deps.Store.FinalizeShift(shiftID, candidate, service) {
		log.Printf("processShiftSubmission: ошибка заполнения смены ID %d для пользователя ID %d", shiftID, user.ID)
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.sendErrorMessageHelper(chatID, menuMessageID, "❌ Не удалось сохранить данные смены. Попробуйте позже.")
		return
	}

	log.Printf("processShiftSubmission: смена ID %d сохранена для пользователя ID %d (сервис '%s', %.2f за %d заказов)",
		shiftID, user.ID, service, candidate.Earnings, candidate.OrderCount)

	bh.Deps.SessionManager.ClearState(chatID)
	bh.deleteMessageHelper(chatID, userMessageID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Еще смена", constants.CALLBACK_ADD_SHIFT),
			tgbotapi.NewInlineKeyboardButtonData("👤 Профиль", constants.CALLBACK_PROFILE),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	text = formatters.FormatShiftSaved(candidate, service)
	if _, err := bh.sendOrEditMessageHelper(chatID, menuMessageID, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("processShiftSubmission: ошибка отправки подтверждения для chatID %d: %v", chatID, err)
	}
}
