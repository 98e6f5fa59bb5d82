// Файл: internal/handlers/message_handler.go

package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/constants"
)

// HandleMessage обрабатывает входящие сообщения от Telegram.
func (bh *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	message := update.Message
	chatID := message.Chat.ID
	userMessageID := message.MessageID
	text := strings.TrimSpace(message.Text)

	log.Printf("HandleMessage: ChatID=%d, UserMessageID=%d, Text='%.80s'", chatID, userMessageID, text)

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			log.Printf("HandleMessage: Обработка команды /start для chatID %d", chatID)
			var username string
			if message.From != nil {
				username = message.From.UserName
			}
			if _, err := bh.Deps.Store.GetOrCreateUser(chatID, username); err != nil {
				log.Printf("HandleMessage: /start: Ошибка регистрации/получения пользователя для chatID %d: %v", chatID, err)
				bh.sendErrorMessageHelper(chatID, 0, "❌ Произошла ошибка при обработке ваших данных. Попробуйте еще раз.")
				return
			}

			bh.Deps.SessionManager.ClearState(chatID)
			bh.Deps.SessionManager.ClearTempAdvice(chatID)

			bh.SendMainMenu(chatID, 0)
			bh.deleteMessageHelper(chatID, userMessageID)
			return
		default:
			log.Printf("HandleMessage: Неизвестная команда '%s' от chatID %d", message.Command(), chatID)
			bh.deleteMessageHelper(chatID, userMessageID)
			bh.sendErrorMessageHelper(chatID, 0, "Неизвестная команда. Используйте /start.")
			return
		}
	}

	user, userExists := bh.getUserFromDB(chatID)
	if !userExists {
		log.Printf("HandleMessage: Пользователь с chatID %d не найден и это не команда /start.", chatID)
		bh.sendErrorMessageHelper(chatID, 0, "Пожалуйста, начните с команды /start, чтобы зарегистрироваться.")
		return
	}

	currentState := bh.Deps.SessionManager.GetState(chatID)
	log.Printf("HandleMessage: Текущее состояние для chatID %d: %s", chatID, currentState)

	switch currentState {
	case constants.STATE_SHIFT_INPUT:
		bh.processShiftSubmission(user, chatID, userMessageID, text)
	case constants.STATE_ORDER_INPUT:
		bh.processOrderSubmission(user, chatID, userMessageID, text)
	case constants.STATE_ADVICE_QUESTION:
		bh.processAdviceQuestion(user, chatID, userMessageID, text)
	default:
		// Произвольный текст вне диалога возвращает пользователя в главное меню.
		// Free-form text outside a dialog returns the user to the main menu.
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.SendMainMenu(chatID, 0)
	}
}
