package handler

import (
	"errors"
	"fmt"
	"time"

	"payroll-tracker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) clockIn(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	now := time.Now()

	session, err := h.timeclock.ClockIn(now)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyClockedIn) {
			h.reply(chatID, "⚠️ You are already clocked in. Use /out to finish the session first.")
			return
		}
		logrus.WithError(err).Error("Failed to clock in")
		h.reply(chatID, "❌ Clock in failed: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("🟢 Clocked in at %s", session.ClockInTime.Format("15:04")))
}

func (h *Handler) clockOut(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	now := time.Now()

	entry, err := h.timeclock.ClockOut(now)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOpenSession):
			h.reply(chatID, "⚠️ You are not clocked in. Use /in to start a session.")
		case errors.Is(err, service.ErrNonPositiveDuration):
			h.reply(chatID, "❌ Clock out must come after clock in.")
		default:
			logrus.WithError(err).Error("Failed to clock out")
			h.reply(chatID, "❌ Clock out failed: "+err.Error())
		}
		return
	}

	h.reply(chatID, fmt.Sprintf("🔴 Clocked out at %s\n⏳ Worked %.2f hours (%s - %s)",
		entry.ClockOut.Format("15:04"),
		entry.Hours,
		entry.ClockIn.Format("15:04"),
		entry.ClockOut.Format("15:04")))
}

func (h *Handler) status(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	now := time.Now()

	session, err := h.timeclock.ActiveSession()
	if err != nil {
		logrus.WithError(err).Error("Failed to get active session")
		h.reply(chatID, "❌ Status check failed: "+err.Error())
		return
	}

	if session != nil {
		elapsed := now.Sub(session.ClockInTime)
		h.reply(chatID, fmt.Sprintf("🟢 Clocked in since %s\n⏳ Elapsed: %s",
			session.ClockInTime.Format("15:04"),
			formatElapsed(elapsed)))
		return
	}

	entries, err := h.timeclock.CurrentWeekEntries(now)
	if err != nil {
		logrus.WithError(err).Error("Failed to get current week entries")
		h.reply(chatID, "❌ Status check failed: "+err.Error())
		return
	}

	summary := service.Summarize(entries)
	h.reply(chatID, fmt.Sprintf("⚪️ Not clocked in.\n📅 This week: %d entries, %.2f hours.",
		summary.Count, summary.TotalHours))
}

func formatElapsed(d time.Duration) string {
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60

	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
