// Файл: internal/handlers/export_handlers.go

package handlers

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/xuri/excelize/v2"

	"courierbot/internal/constants"
	"courierbot/internal/models"
	"courierbot/internal/utils"
)

// handleExportShifts генерирует и отправляет Excel файл со всеми сменами пользователя.
// handleExportShifts generates and sends an Excel file with all of the user's shifts.
func (bh *BotHandler) handleExportShifts(user models.User, chatID int64, messageIDToEdit int) {
	shifts, err := bh.Deps.Store.GetShiftsForStats(user.ID)
	if err != nil {
		log.Printf("handleExportShifts: Ошибка получения смен пользователя ID %d: %v", user.ID, err)
		bh.sendErrorMessageHelper(chatID, messageIDToEdit, "❌ Ошибка при получении данных для Excel отчета по сменам.")
		return
	}
	if len(shifts) == 0 {
		bh.sendErrorMessageHelper(chatID, messageIDToEdit, "📭 Смен пока нет, экспортировать нечего.")
		return
	}

	f := excelize.NewFile()
	sheetName := "Смены"
	index, _ := f.NewSheet(sheetName)
	f.DeleteSheet("Sheet1") // Удаляем стандартный лист / Delete default sheet
	f.SetActiveSheet(index)

	headers := []string{"ID", "Сервис", "Начало", "Конец", "Заказов", "Заработок", "Часов", "В час"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, shift := range shifts {
		serviceName := constants.ServiceNames[shift.Service]
		if serviceName == "" {
			serviceName = shift.Service
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), shift.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), serviceName)
		if shift.StartTime.Valid {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), shift.StartTime.Time.Format(constants.SHIFT_DATETIME_LAYOUT))
		}
		if shift.EndTime.Valid {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), shift.EndTime.Time.Format(constants.SHIFT_DATETIME_LAYOUT))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), shift.OrderCount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), utils.Round2(shift.Earnings))
		if shift.StartTime.Valid && shift.EndTime.Valid {
			hours := shift.EndTime.Time.Sub(shift.StartTime.Time).Seconds() / 3600
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), utils.Round2(hours))
			if hours > 0 {
				f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), utils.Round2(shift.Earnings/hours))
			}
		}
		rowIndex++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("handleExportShifts: Ошибка записи Excel файла: %v", err)
		bh.sendErrorMessageHelper(chatID, messageIDToEdit, "❌ Ошибка при создании Excel файла.")
		return
	}

	docFileBytes := tgbotapi.FileBytes{
		Name:  fmt.Sprintf("shifts_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	}
	docMsg := tgbotapi.NewDocument(chatID, docFileBytes)
	docMsg.Caption = fmt.Sprintf("📤 Экспорт смен за %s (%d шт.)", time.Now().Format(constants.SHIFT_DATE_LAYOUT), len(shifts))
	if _, errSend := bh.Deps.BotClient.Send(docMsg); errSend != nil {
		log.Printf("handleExportShifts: Ошибка отправки Excel файла для chatID %d: %v", chatID, errSend)
		bh.sendErrorMessageHelper(chatID, messageIDToEdit, "❌ Не удалось отправить Excel файл.")
		return
	}

	if messageIDToEdit != 0 {
		bh.deleteMessageHelper(chatID, messageIDToEdit)
	}
	bh.SendMainMenu(chatID, 0)
}

// handleShareBot отправляет QR-код со ссылкой на бота.
// handleShareBot sends a QR code with the bot link.
func (bh *BotHandler) handleShareBot(chatID int64, messageIDToEdit int) {
	qrCodeBytes, err := utils.GenerateBotQRCode(bh.Deps.Config.BotUsername)
	if err != nil {
		log.Printf("handleShareBot: Ошибка генерации QR-кода для chatID %d: %v", chatID, err)
		bh.sendErrorMessageHelper(chatID, messageIDToEdit, "❌ Ошибка создания QR-кода. Попробуйте позже.")
		return
	}
	link, _ := utils.GenerateBotLink(bh.Deps.Config.BotUsername)

	// Удаляем предыдущее сообщение с меню, фото отправляется отдельным сообщением
	// Delete the previous menu message, the photo goes out as a separate message
	if messageIDToEdit != 0 {
		bh.deleteMessageHelper(chatID, messageIDToEdit)
	}

	photoFileBytes := tgbotapi.FileBytes{
		Name:  "courier_bot_qr.png",
		Bytes: qrCodeBytes,
	}
	photoMsg := tgbotapi.NewPhoto(chatID, photoFileBytes)
	photoMsg.Caption = fmt.Sprintf("🔲 Поделитесь ботом с другими курьерами!\nСсылка: %s", link)
	photoMsg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", constants.CALLBACK_BACK_TO_MAIN),
		),
	)
	if _, errSend := bh.Deps.BotClient.Send(photoMsg); errSend != nil {
		log.Printf("handleShareBot: Ошибка отправки QR-кода для chatID %d: %v", chatID, errSend)
		bh.sendErrorMessageHelper(chatID, 0, "❌ Не удалось отправить QR-код.")
	}
}
