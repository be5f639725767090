package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"payroll-tracker/internal/models"
	"payroll-tracker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showSettings(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	settings, err := h.settings.Get()
	if err != nil {
		logrus.WithError(err).Error("Failed to load settings")
		h.reply(chatID, "❌ Failed to load settings: "+err.Error())
		return
	}

	retirement := fmt.Sprintf("%.1f%% of gross", settings.Benefits.RetirementAmount)
	if settings.Benefits.RetirementType == models.RetirementFixed {
		retirement = fmt.Sprintf("$%.2f/week", settings.Benefits.RetirementAmount)
	}

	pinState := "not set"
	if settings.PINHash != "" {
		pinState = "set"
	}

	h.reply(chatID, fmt.Sprintf(`⚙️ Settings (revision %d)

💰 Compensation:
   Hourly rate: $%.2f
   Overtime threshold: %.1f h/week
   Overtime multiplier: %.1fx

🏥 Benefits (per week):
   Health insurance (you): $%.2f
   Health insurance (employer): $%.2f
   Dental insurance: $%.2f
   Vision insurance: $%.2f
   401(k): %s

🔒 Security (simulated):
   Biometric: %v
   Two-factor: %v
   PIN: %s`,
		settings.Revision,
		settings.Compensation.HourlyRate,
		settings.Compensation.OvertimeThresholdHours,
		settings.Compensation.OvertimeMultiplier,
		settings.Benefits.HealthInsuranceEmployee,
		settings.Benefits.HealthInsuranceEmployer,
		settings.Benefits.DentalInsurance,
		settings.Benefits.VisionInsurance,
		retirement,
		settings.BiometricEnabled,
		settings.TwoFactorEnabled,
		pinState))
}

func (h *Handler) setCompensation(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 3 {
		h.reply(chatID, "❌ Usage: /rate [hourly] [threshold] [multiplier]\nExample: /rate 25.00 40 1.5")
		return
	}

	values := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			h.reply(chatID, "❌ Not a number: "+f)
			return
		}
		values[i] = v
	}

	comp := models.CompensationConfig{
		HourlyRate:             values[0],
		OvertimeThresholdHours: values[1],
		OvertimeMultiplier:     values[2],
	}

	if err := h.settings.UpdateCompensation(comp); err != nil {
		if errors.Is(err, service.ErrConfigOutOfRange) {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		logrus.WithError(err).Error("Failed to update compensation")
		h.reply(chatID, "❌ Update failed: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Compensation saved: $%.2f/h, overtime after %.1f h at %.1fx",
		comp.HourlyRate, comp.OvertimeThresholdHours, comp.OvertimeMultiplier))
}

func (h *Handler) setBenefits(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 5 {
		h.reply(chatID, "❌ Usage: /benefits [health] [dental] [vision] [percentage|fixed] [amount]\n"+
			"Example: /benefits 150 25 15 percentage 5")
		return
	}

	var numbers [4]float64
	numericFields := []string{fields[0], fields[1], fields[2], fields[4]}
	for i, f := range numericFields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			h.reply(chatID, "❌ Not a number: "+f)
			return
		}
		numbers[i] = v
	}

	settings, err := h.settings.Get()
	if err != nil {
		logrus.WithError(err).Error("Failed to load settings")
		h.reply(chatID, "❌ Update failed: "+err.Error())
		return
	}

	benefits := models.BenefitsConfig{
		HealthInsuranceEmployee: numbers[0],
		HealthInsuranceEmployer: settings.Benefits.HealthInsuranceEmployer,
		DentalInsurance:         numbers[1],
		VisionInsurance:         numbers[2],
		RetirementType:          models.RetirementType(fields[3]),
		RetirementAmount:        numbers[3],
	}

	if err := h.settings.UpdateBenefits(benefits); err != nil {
		if errors.Is(err, service.ErrConfigOutOfRange) {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		logrus.WithError(err).Error("Failed to update benefits")
		h.reply(chatID, "❌ Update failed: "+err.Error())
		return
	}

	h.reply(chatID, "✅ Benefits saved.")
}

func (h *Handler) setPIN(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	pin := strings.TrimSpace(args)

	if err := h.settings.SetPIN(pin); err != nil {
		logrus.WithError(err).Error("Failed to set PIN")
		h.reply(chatID, "❌ Failed to set PIN: "+err.Error())
		return
	}

	if pin == "" {
		h.reply(chatID, "🔓 PIN removed.")
		return
	}
	h.unlocked = true
	h.reply(chatID, "🔒 PIN set. You will need /login after a restart.")
}

// clearEntries starts the two-step confirmation; the destructive call
// only happens from the confirm callback.
func (h *Handler) clearEntries(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	count, err := h.timeclock.EntryCount()
	if err != nil {
		logrus.WithError(err).Error("Failed to count entries")
		h.reply(chatID, "❌ Clear failed: "+err.Error())
		return
	}
	if count == 0 {
		h.reply(chatID, "📭 Nothing to clear.")
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, delete everything", "confirm_clear"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel_clear"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"⚠️ This will delete all %d time entries and cannot be undone. Continue?", count))
	msg.ReplyMarkup = keyboard
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send confirmation prompt")
	}
}
