// Файл: internal/handlers/menu_handlers.go

package handlers

import (
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
	"courierbot/internal/formatters"
)

// SendMainMenu отправляет главное меню бота.
// SendMainMenu sends the bot's main menu.
func (bh *BotHandler) SendMainMenu(chatID int64, messageIDToEdit int) {
	bh.Deps.SessionManager.SetState(chatID, constants.STATE_IDLE)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить смену", constants.CALLBACK_ADD_SHIFT),
			tgbotapi.NewInlineKeyboardButtonData("👤 Профиль", constants.CALLBACK_PROFILE),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📦 Добавить заказ", constants.CALLBACK_ADD_ORDER),
			tgbotapi.NewInlineKeyboardButtonData("🛵 Сервис", constants.CALLBACK_SERVICE_MENU),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 ИИ советы", constants.CALLBACK_AI_ADVICE),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 Экспорт смен", constants.CALLBACK_EXPORT_SHIFTS),
			tgbotapi.NewInlineKeyboardButtonData("🔗 Поделиться ботом", constants.CALLBACK_SHARE_BOT),
		),
	)

	text := "🏠 *Главное меню*\nВыберите действие:"
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("SendMainMenu: ошибка отправки главного меню для chatID %d: %v", chatID, err)
	}
}

// SendServiceMenu отправляет меню выбора сервиса доставки.
// SendServiceMenu sends the delivery service selection menu.
func (bh *BotHandler) SendServiceMenu(chatID int64, messageIDToEdit int) {
	user, ok := bh.getUserFromDB(chatID)
	currentService := constants.DEFAULT_SERVICE
	if ok && user.CurrentService.Valid && user.CurrentService.String != "" {
		currentService = user.CurrentService.String
	}

	services := []string{
		constants.SERVICE_YANDEX_EXPRESS,
		constants.SERVICE_YANDEX_FOOD,
		constants.SERVICE_GLOVO,
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, service := range services {
		label := constants.ServiceNames[service]
		if service == currentService {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, constants.CALLBACK_PREFIX_SERVICE+service),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", constants.CALLBACK_BACK_TO_MAIN),
	))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	text := "🛵 *Выбор сервиса*\nТекущий сервис отмечен галочкой. Новые смены записываются на выбранный сервис."
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("SendServiceMenu: ошибка отправки меню сервисов для chatID %d: %v", chatID, err)
	}
}

// SendAdviceTopicsMenu отправляет меню выбора темы ИИ совета.
// SendAdviceTopicsMenu sends the AI advice topic selection menu.
func (bh *BotHandler) SendAdviceTopicsMenu(chatID int64, messageIDToEdit int) {
	bh.Deps.SessionManager.SetState(chatID, constants.STATE_ADVICE_TOPIC)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Оптимизация заработка", constants.ADVICE_TOPIC_OPTIMIZATION),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Юридические вопросы", constants.ADVICE_TOPIC_LEGAL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🥗 Питание и здоровье", constants.ADVICE_TOPIC_NUTRITION),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔧 Транспорт", constants.ADVICE_TOPIC_VEHICLE),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", constants.CALLBACK_BACK_TO_MAIN),
		),
	)

	text := "🤖 Выберите тему, по которой хотите получить совет:"
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, ""); err != nil {
		log.Printf("SendAdviceTopicsMenu: ошибка отправки меню тем для chatID %d: %v", chatID, err)
	}
}

// SendShiftInputPrompt переводит пользователя в режим ввода смены и отправляет подсказку по формату.
// SendShiftInputPrompt switches the user to shift input mode and sends the format hint.
func (bh *BotHandler) SendShiftInputPrompt(chatID int64, messageIDToEdit int) {
	bh.Deps.SessionManager.SetState(chatID, constants.STATE_SHIFT_INPUT)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	text := formatters.FormatShiftInputPrompt()
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, tgbotapi.ModeMarkdown); err != nil {
		log.Printf("SendShiftInputPrompt: ошибка отправки подсказки для chatID %d: %v", chatID, err)
	}
}

// sendAdviceQuestionPrompt просит пользователя задать вопрос по выбранной теме.
// sendAdviceQuestionPrompt asks the user to submit a question on the selected topic.
func (bh *BotHandler) sendAdviceQuestionPrompt(chatID int64, messageIDToEdit int, topic string) {
	bh.Deps.SessionManager.SetState(chatID, constants.STATE_ADVICE_QUESTION)

	topicNames := map[string]string{
		constants.ADVICE_TOPIC_OPTIMIZATION: "оптимизация заработка",
		constants.ADVICE_TOPIC_LEGAL:        "юридические вопросы",
		constants.ADVICE_TOPIC_NUTRITION:    "питание и здоровье",
		constants.ADVICE_TOPIC_VEHICLE:      "транспорт",
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", constants.CALLBACK_AI_ADVICE),
		),
	)
	text := fmt.Sprintf("📝 Задайте ваш вопрос по теме '%s' (до %d символов):", topicNames[topic], constants.MAX_ADVICE_QUESTION_LEN)
	if _, err := bh.sendOrEditMessageHelper(chatID, messageIDToEdit, text, &keyboard, ""); err != nil {
		log.Printf("sendAdviceQuestionPrompt: ошибка отправки запроса вопроса для chatID %d: %v", chatID, err)
	}
}
