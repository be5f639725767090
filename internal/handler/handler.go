package handler

import (
	"payroll-tracker/internal/config"
	"payroll-tracker/internal/service"
	"payroll-tracker/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client    *telegram.Client
	timeclock *service.TimeclockService
	settings  *service.SettingsService
	config    *config.Config

	// unlocked tracks whether the owner has passed the PIN gate in this
	// process lifetime. With no PIN configured the gate is open.
	unlocked bool
}

func NewHandler(
	client *telegram.Client,
	timeclock *service.TimeclockService,
	settings *service.SettingsService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		client:    client,
		timeclock: timeclock,
		settings:  settings,
		config:    cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	logrus.Infof("[%s] %s", message.From.UserName, message.Text)

	// Single-user tracker: everything outside the owner chat is ignored.
	if message.Chat.ID != h.config.OwnerChatID {
		logrus.WithField("chat_id", message.Chat.ID).Warn("Ignoring message from non-owner chat")
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "🤖 I only understand commands. Use /help for the list.")
}

// handleCallbackQuery serves the inline keyboard of the two-step clear
// confirmation.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	if chatID != h.config.OwnerChatID {
		return
	}

	// Remove the keyboard so the buttons cannot be pressed twice.
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	if _, err := h.client.Bot.Send(editMsg); err != nil {
		logrus.WithError(err).Error("Failed to remove confirmation keyboard")
	}

	switch callback.Data {
	case "confirm_clear":
		if err := h.timeclock.ClearAllEntries(); err != nil {
			logrus.WithError(err).Error("Failed to clear entries")
			h.reply(chatID, "❌ Failed to clear entries: "+err.Error())
		} else {
			h.reply(chatID, "🗑 All time entries cleared.")
		}

	case "cancel_clear":
		h.reply(chatID, "❌ Clear cancelled. Your entries are untouched.")
	}

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	if _, err := h.client.Bot.Request(callbackConfig); err != nil {
		logrus.WithError(err).Error("Failed to answer callback query")
	}
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}
