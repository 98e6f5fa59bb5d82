package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
	"courierbot/internal/models"
)

// HandleCallback обрабатывает входящие callback query от Telegram.
func (bh *BotHandler) HandleCallback(update tgbotapi.Update) {
	query := update.CallbackQuery
	if query == nil {
		log.Println("[CALLBACK_HANDLER] Получен пустой CallbackQuery.")
		return
	}

	chatID := query.Message.Chat.ID
	originalMessageID := query.Message.MessageID
	data := query.Data
	queryID := query.ID

	log.Printf("[CALLBACK_HANDLER] START: ChatID=%d, User=%s, OriginalMsgID=%d, Data='%s'",
		chatID, query.From.UserName, originalMessageID, data)

	callbackAns := tgbotapi.NewCallback(queryID, "")
	if _, err := bh.Deps.BotClient.Request(callbackAns); err != nil {
		log.Printf("[CALLBACK_HANDLER] Ошибка ответа на CallbackQuery ID %s: %v. Продолжаем.", queryID, err)
	}

	user, ok := bh.getUserFromDB(chatID)
	if !ok {
		log.Printf("[CALLBACK_HANDLER] КРИТИЧЕСКАЯ ОШИБКА: не удалось получить пользователя для ChatID=%d. Data: '%s'.", chatID, data)
		bh.sendErrorMessageHelper(chatID, 0, "Произошла ошибка с данными пользователя. Попробуйте /start.")
		return
	}

	// Выбор сервиса доставки
	if strings.HasPrefix(data, constants.CALLBACK_PREFIX_SERVICE) {
		bh.handleServiceSelection(user, chatID, originalMessageID, strings.TrimPrefix(data, constants.CALLBACK_PREFIX_SERVICE))
		return
	}

	switch data {
	case constants.CALLBACK_BACK_TO_MAIN:
		bh.Deps.SessionManager.ClearState(chatID)
		bh.Deps.SessionManager.ClearTempAdvice(chatID)
		bh.SendMainMenu(chatID, originalMessageID)
	case constants.CALLBACK_ADD_SHIFT:
		bh.SendShiftInputPrompt(chatID, originalMessageID)
	case constants.CALLBACK_ADD_ORDER:
		bh.SendOrderInputPrompt(chatID, originalMessageID)
	case constants.CALLBACK_PROFILE:
		bh.SendProfile(user, chatID, originalMessageID)
	case constants.CALLBACK_SERVICE_MENU:
		bh.SendServiceMenu(chatID, originalMessageID)
	case constants.CALLBACK_AI_ADVICE:
		bh.Deps.SessionManager.ClearTempAdvice(chatID)
		bh.SendAdviceTopicsMenu(chatID, originalMessageID)
	case constants.ADVICE_TOPIC_OPTIMIZATION, constants.ADVICE_TOPIC_LEGAL,
		constants.ADVICE_TOPIC_NUTRITION, constants.ADVICE_TOPIC_VEHICLE:
		bh.handleAdviceTopicSelection(chatID, originalMessageID, data)
	case constants.CALLBACK_EXPORT_SHIFTS:
		bh.handleExportShifts(user, chatID, originalMessageID)
	case constants.CALLBACK_SHARE_BOT:
		bh.handleShareBot(chatID, originalMessageID)
	default:
		log.Printf("[CALLBACK_HANDLER] Неизвестный callback '%s' от chatID %d", data, chatID)
		bh.SendMainMenu(chatID, originalMessageID)
	}
}

// handleServiceSelection сохраняет выбранный сервис и обновляет меню сервисов.
// handleServiceSelection saves the selected service and refreshes the service menu.
func (bh *BotHandler) handleServiceSelection(user models.User, chatID int64, messageID int, service string) {
	if _, known := constants.ServiceNames[service]; !known {
		log.Printf("handleServiceSelection: неизвестный сервис '%s' от chatID %d", service, chatID)
		bh.SendServiceMenu(chatID, messageID)
		return
	}
	if !bh.Deps.Store.SetUserService(user.ID, service) {
		bh.sendErrorMessageHelper(chatID, messageID, "❌ Не удалось сохранить выбор сервиса. Попробуйте позже.")
		return
	}
	log.Printf("handleServiceSelection: пользователь ID %d выбрал сервис '%s'", user.ID, service)
	bh.SendServiceMenu(chatID, messageID)
}
