package handlers

import (
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierbot/internal/advice"
	"courierbot/internal/config"
	"courierbot/internal/db"
	"courierbot/internal/models"
	"courierbot/internal/session"
	"courierbot/internal/telegram_api"
)

// HandlerDependencies содержит все зависимости, необходимые для обработчиков.
// HandlerDependencies contains all dependencies required for handlers.
type HandlerDependencies struct {
	Config         *config.Config
	Store          *db.Store
	BotClient      *telegram_api.BotClient
	SessionManager *session.SessionManager
	Advice         *advice.Client
}

// BotHandler инкапсулирует логику обработки сообщений и коллбэков.
// BotHandler encapsulates the logic for handling messages and callbacks.
type BotHandler struct {
	Deps HandlerDependencies
}

// NewBotHandler создает новый экземпляр BotHandler.
// NewBotHandler creates a new instance of BotHandler.
func NewBotHandler(deps HandlerDependencies) *BotHandler {
	if deps.Config == nil || deps.Store == nil || deps.BotClient == nil || deps.SessionManager == nil {
		// Это критическая ошибка конфигурации, приложение не сможет работать корректно.
		// This is a critical configuration error; the application will not work correctly.
		panic("Не все зависимости для BotHandler были предоставлены.")
	}
	return &BotHandler{Deps: deps}
}

// Вспомогательная функция для получения пользователя из БД или обработки ошибки.
// Helper to get the user from the DB or handle the error.
func (bh *BotHandler) getUserFromDB(chatID int64) (models.User, bool) {
	user, err := bh.Deps.Store.GetUserByChatID(chatID)
	if err != nil {
		log.Printf("Ошибка получения пользователя %d из БД: %v", chatID, err)
		return models.User{}, false
	}
	return user, true
}

// sendOrEditMessageHelper отправляет или редактирует сообщение и обновляет
// MenuMessageID в сессии, чтобы меню редактировалось на месте.
// sendOrEditMessageHelper sends or edits a message and updates MenuMessageID
// in the session so the menu is edited in place.
func (bh *BotHandler) sendOrEditMessageHelper(
	chatID int64,
	messageIDToTryEdit int,
	text string,
	keyboard *tgbotapi.InlineKeyboardMarkup,
	parseMode string,
) (tgbotapi.Message, error) {
	sentMsg, err := telegram_api.SendOrEditMessage(bh.Deps.BotClient, chatID, messageIDToTryEdit, text, keyboard, parseMode)
	if err != nil {
		return tgbotapi.Message{}, err
	}
	if sentMsg.MessageID != 0 {
		adviceData := bh.Deps.SessionManager.GetTempAdvice(chatID)
		adviceData.MenuMessageID = sentMsg.MessageID
		bh.Deps.SessionManager.UpdateTempAdvice(chatID, adviceData)
	}
	return sentMsg, nil
}

// sendErrorMessageHelper отправляет сообщение об ошибке с кнопкой возврата в меню.
// sendErrorMessageHelper sends an error message with a back-to-menu button.
func (bh *BotHandler) sendErrorMessageHelper(chatID int64, messageIDToTryEdit int, errorText string) {
	if _, err := telegram_api.SendErrorMessage(bh.Deps.BotClient, chatID, messageIDToTryEdit, errorText); err != nil {
		log.Printf("sendErrorMessageHelper: не удалось отправить сообщение об ошибке для chatID %d: %v", chatID, err)
	}
}

// deleteMessageHelper удаляет сообщение, игнорируя ошибки удаления.
// deleteMessageHelper deletes a message, ignoring deletion errors.
func (bh *BotHandler) deleteMessageHelper(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	telegram_api.DeleteMessage(bh.Deps.BotClient, chatID, messageID)
}
