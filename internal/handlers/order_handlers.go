// Файл: internal/handlers/order_handlers.go

package handlers

import (
	"database/sql"
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
	"courierbot/internal/models"
	"courierbot/internal/utils"
)

// SendOrderInputPrompt переводит пользователя в режим ввода заказа.
// Записанные заказы питают распределения по времени суток и дням недели в профиле.
// SendOrderInputPrompt switches the user to order input mode. Logged orders
// feed the time-of-day and weekday distributions in the profile.
func (bh *BotHandler) SendOrderInputPrompt(chatID int64, messageIDToEdit int) {
	bh.Deps.SessionManager.SetState(chatID, constants.STATE_ORDER_INPUT)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	text := "📦 *Введите данные заказа* (4 строки):\n" +
		"`14:30` — время доставки (ЧЧ:ММ)\n" +
		"`ул. Киевская 95` — адрес\n" +
		"`350` — стоимость\n" +
		"`2.5` — расстояние, км"
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("SendOrderInputPrompt: ошибка отправки подсказки для chatID %d: %v", chatID, err)
	}
}

// processOrderSubmission обрабатывает четырехстрочный блок данных заказа.
// processOrderSubmission handles the four-line order data block.
func (bh *BotHandler) processOrderSubmission(user models.User, chatID int64, userMessageID int, text string) {
	menuMessageID := bh.Deps.SessionManager.GetTempAdvice(chatID).MenuMessageID

	order, validationErr := utils.ParseOrderInput(text)
	if validationErr != nil {
		log.Printf("processOrderSubmission: ошибка валидации для chatID %d (%s): %s", chatID, validationErr.Kind, validationErr.Reason)
		bh.deleteMessageHelper(chatID, userMessageID)

		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", constants.CALLBACK_BACK_TO_MAIN),
			),
		)
		errorText := "❌ " + validationErr.Reason + "\n\nПопробуйте еще раз:"
		if _, err := bh.sendOrEditMessageHelper(chatID, menuMessageID, errorText, &keyboard, ""); err != nil {
			log.Printf("processOrderSubmission: ошибка отправки сообщения об ошибке валидации для chatID %d: %v", chatID, err)
		}
		return
	}

	orderID := bh.Deps.Store.AddOrder(user.ID, sql.NullInt64{}, order)
	if orderID == 0 {
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.sendErrorMessageHelper(chatID, menuMessageID, "❌ Не удалось сохранить заказ. Попробуйте позже.")
		return
	}

	bh.Deps.SessionManager.ClearState(chatID)
	bh.deleteMessageHelper(chatID, userMessageID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📦 Еще заказ", constants.CALLBACK_ADD_ORDER),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	confirmText := fmt.Sprintf("✅ Заказ сохранен!\nВремя: %s\nАдрес: %s\nСтоимость: %s\nРасстояние: %.1f км",
		order.Time, order.Address, utils.FormatMoney(order.Price), order.Distance)
	if _, err := bh.sendOrEditMessageHelper(chatID, menuMessageID, confirmText, &keyboard, ""); err != nil {
		log.Printf("processOrderSubmission: ошибка отправки подтверждения для chatID %d: %v", chatID, err)
	}
}
