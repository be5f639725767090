package handler

import (
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	// The PIN gate only lets login and help through until unlocked.
	if !h.gateOpen() && command != "login" && command != "help" && command != "start" {
		h.reply(message.Chat.ID, "🔒 Locked. Use /login [pin] first.")
		return
	}

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "login":
		h.login(message, args)

	// Time tracking
	case "in", "clockin":
		h.clockIn(message)
	case "out", "clockout":
		h.clockOut(message)
	case "status":
		h.status(message)

	// Payroll and history
	case "week":
		h.weekReport(message)
	case "history":
		h.history(message, args)
	case "summary":
		h.summary(message, args)
	case "export":
		h.export(message, args)

	// Configuration
	case "settings":
		h.showSettings(message)
	case "rate":
		h.setCompensation(message, args)
	case "benefits":
		h.setBenefits(message, args)
	case "setpin":
		h.setPIN(message, args)

	case "clear":
		h.clearEntries(message)

	default:
		h.reply(message.Chat.ID, "❌ Unknown command. Use /help for the list.")
	}
}

func (h *Handler) gateOpen() bool {
	if h.unlocked {
		return true
	}

	settings, err := h.settings.Get()
	if err != nil {
		logrus.WithError(err).Error("Failed to load settings for PIN gate")
		return false
	}
	if settings.PINHash == "" {
		h.unlocked = true
		return true
	}
	return false
}

func (h *Handler) login(message *tgbotapi.Message, args string) {
	pin := strings.TrimSpace(args)

	ok, err := h.settings.VerifyPIN(pin)
	if err != nil {
		logrus.WithError(err).Error("Failed to verify PIN")
		h.reply(message.Chat.ID, "❌ Login failed: "+err.Error())
		return
	}
	if !ok {
		logrus.Warn("Rejected login attempt with wrong PIN")
		h.reply(message.Chat.ID, "❌ Wrong PIN.")
		return
	}

	h.unlocked = true
	h.reply(message.Chat.ID, "🔓 Unlocked. Welcome back!")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "💼 Pay & Benefits Tracker\n\n"+
		"Track your hours with /in and /out, then check /week for the\n"+
		"payroll breakdown. Use /help for all commands.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Available commands:

⏱ Time tracking:
/in - Clock in now
/out - Clock out now (records the entry)
/status - Current clock status

💰 Payroll:
/week - Hours, gross pay, deductions and net pay for this week
/history [N] - Last N entries (default 10)
/summary [start end] - Statistics for a date range (default last 30 days)
    Dates as 2006-01-02 or 02.01.2006

📤 Export:
/export [csv|json] [start end] - Export entries (default: this week, csv)

⚙️ Settings:
/settings - Show current configuration
/rate [hourly] [threshold] [multiplier] - Update compensation
    Example: /rate 25.00 40 1.5
/benefits [health] [dental] [vision] [percentage|fixed] [amount] - Update benefits
    Example: /benefits 150 25 15 percentage 5
/setpin [pin] - Set or remove the login PIN
/login [pin] - Unlock after a restart

🗑 Maintenance:
/clear - Delete ALL time entries (asks for confirmation)`

	h.reply(message.Chat.ID, text)
}

// parseDate accepts the ISO form and the common European form.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("02.01.2006", s, time.Local)
}
