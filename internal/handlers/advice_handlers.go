// Файл: internal/handlers/advice_handlers.go

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/advice"
	"courierbot/internal/constants"
	"courierbot/internal/models"
	"courierbot/internal/session"
)

// handleAdviceTopicSelection сохраняет выбранную тему в сессии и просит задать вопрос.
// handleAdviceTopicSelection stores the selected topic in the session and asks for the question.
func (bh *BotHandler) handleAdviceTopicSelection(chatID int64, messageID int, topic string) {
	adviceData := bh.Deps.SessionManager.GetTempAdvice(chatID)
	adviceData.Topic = topic
	bh.Deps.SessionManager.UpdateTempAdvice(chatID, adviceData)

	bh.sendAdviceQuestionPrompt(chatID, messageID, topic)
}

// processAdviceQuestion отправляет вопрос пользователя в ИИ и возвращает совет.
// Типизированные ошибки клиента превращаются в понятные пользователю тексты.
// processAdviceQuestion sends the user's question to the AI and returns the
// advice. Typed client errors become user-facing texts.
func (bh *BotHandler) processAdviceQuestion(user models.User, chatID int64, userMessageID int, question string) {
	adviceData := bh.Deps.SessionManager.GetTempAdvice(chatID)
	menuMessageID := adviceData.MenuMessageID

	if adviceData.Topic == "" {
		log.Printf("processAdviceQuestion: для chatID %d не выбрана тема, возврат к меню тем", chatID)
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.SendAdviceTopicsMenu(chatID, menuMessageID)
		return
	}
	if bh.Deps.Advice == nil {
		log.Printf("processAdviceQuestion: клиент ИИ не настроен, вопрос от chatID %d отклонен", chatID)
		bh.deleteMessageHelper(chatID, userMessageID)
		bh.sendErrorMessageHelper(chatID, menuMessageID, "🤖 ИИ советы временно недоступны.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adviceText, err := bh.Deps.Advice.GetAdvice(ctx, user.ID, adviceData.Topic, question)
	if err != nil {
		bh.deleteMessageHelper(chatID, userMessageID)
		switch {
		case errors.Is(err, advice.ErrQuotaExceeded):
			bh.sendErrorMessageHelper(chatID, menuMessageID,
				fmt.Sprintf("Превышено количество вопросов на сегодня. %d в сутки.", constants.MAX_ADVICE_PER_DAY))
		case errors.Is(err, advice.ErrQuestionTooLong):
			bh.sendErrorMessageHelper(chatID, menuMessageID,
				fmt.Sprintf("Вопрос превышает максимальное количество символов (%d).", constants.MAX_ADVICE_QUESTION_LEN))
		case errors.Is(err, advice.ErrUnknownTopic):
			bh.SendAdviceTopicsMenu(chatID, menuMessageID)
		default:
			log.Printf("processAdviceQuestion: ошибка получения совета для пользователя ID %d: %v", user.ID, err)
			bh.sendErrorMessageHelper(chatID, menuMessageID, "❌ Произошла ошибка при получении совета. Попробуйте позже.")
		}
		return
	}

	bh.Deps.SessionManager.ClearState(chatID)
	bh.Deps.SessionManager.UpdateTempAdvice(chatID, session.TempAdviceData{MenuMessageID: menuMessageID})
	bh.deleteMessageHelper(chatID, userMessageID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 Еще вопрос", constants.CALLBACK_AI_ADVICE),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	// Ответ модели отправляется без parse mode: разметка в нем не гарантирована.
	// The model's answer is sent without a parse mode: its markup is not guaranteed.
	if _, err := bh.sendOrEditMessageHelper(chatID, menuMessageID, adviceText, &keyboard, ""); err != nil {
		log.Printf("processAdviceQuestion: ошибка отправки совета для chatID %d: %v", chatID, err)
	}
}
