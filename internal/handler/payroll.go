package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"payroll-tracker/internal/models"
	"payroll-tracker/internal/service"
	"payroll-tracker/pkg/payweek"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// weekReport runs the full payroll chain exactly once for the current
// week and renders the resulting snapshot.
func (h *Handler) weekReport(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	now := time.Now()

	entries, err := h.timeclock.CurrentWeekEntries(now)
	if err != nil {
		logrus.WithError(err).Error("Failed to get current week entries")
		h.reply(chatID, "❌ Report failed: "+err.Error())
		return
	}

	settings, err := h.settings.Get()
	if err != nil {
		logrus.WithError(err).Error("Failed to load settings")
		h.reply(chatID, "❌ Report failed: "+err.Error())
		return
	}

	breakdown := service.ComputePayroll(entries, settings.Compensation, settings.Benefits)
	start, end := payweek.Bounds(now)

	h.reply(chatID, formatBreakdown(start, end, breakdown))
}

func formatBreakdown(start, end time.Time, b models.PayrollBreakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📅 Week %s - %s\n\n", start.Format("Jan 02"), end.Format("Jan 02"))
	fmt.Fprintf(&sb, "⏱ Hours:\n")
	fmt.Fprintf(&sb, "   Total: %.2f\n", b.Hours.Total)
	fmt.Fprintf(&sb, "   Regular: %.2f\n", b.Hours.Regular)
	fmt.Fprintf(&sb, "   Overtime: %.2f\n\n", b.Hours.Overtime)

	fmt.Fprintf(&sb, "💵 Gross pay:\n")
	fmt.Fprintf(&sb, "   Regular: $%.2f\n", b.Gross.Regular)
	fmt.Fprintf(&sb, "   Overtime: $%.2f\n", b.Gross.Overtime)
	fmt.Fprintf(&sb, "   Total: $%.2f\n\n", b.Gross.Total)

	fmt.Fprintf(&sb, "📉 Deductions:\n")
	fmt.Fprintf(&sb, "   Health insurance: $%.2f\n", b.Deductions.HealthInsurance)
	fmt.Fprintf(&sb, "   Dental insurance: $%.2f\n", b.Deductions.DentalInsurance)
	fmt.Fprintf(&sb, "   Vision insurance: $%.2f\n", b.Deductions.VisionInsurance)
	fmt.Fprintf(&sb, "   401(k): $%.2f\n", b.Deductions.Retirement401k)
	fmt.Fprintf(&sb, "   Federal tax: $%.2f\n", b.Deductions.FederalTax)
	fmt.Fprintf(&sb, "   State tax: $%.2f\n", b.Deductions.StateTax)
	fmt.Fprintf(&sb, "   Social security: $%.2f\n", b.Deductions.SocialSecurity)
	fmt.Fprintf(&sb, "   Medicare: $%.2f\n", b.Deductions.Medicare)
	fmt.Fprintf(&sb, "   Total: $%.2f\n\n", b.Deductions.Total)

	fmt.Fprintf(&sb, "💰 Net pay: $%.2f", b.NetPay)

	return sb.String()
}

func (h *Handler) history(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	limit := 10
	if trimmed := strings.TrimSpace(args); trimmed != "" {
		n, err := strconv.Atoi(trimmed)
		if err != nil || n <= 0 {
			h.reply(chatID, "❌ Usage: /history [N]")
			return
		}
		limit = n
	}

	entries, err := h.timeclock.AllEntries()
	if err != nil {
		logrus.WithError(err).Error("Failed to get entries")
		h.reply(chatID, "❌ History failed: "+err.Error())
		return
	}

	if len(entries) == 0 {
		h.reply(chatID, "📭 No time entries yet. Start with /in.")
		return
	}

	// Newest last in storage order; show the most recent entries first.
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	var sb strings.Builder
	sb.WriteString("📋 Recent entries:\n\n")
	for i := len(entries) - 1; i >= 0; i-- {
		e := &entries[i]
		fmt.Fprintf(&sb, "%s  %s - %s  (%.2f h)\n",
			e.Date.Format("2006-01-02"),
			e.ClockIn.Format("15:04"),
			e.ClockOut.Format("15:04"),
			e.Hours)
	}

	h.reply(chatID, sb.String())
}

func (h *Handler) summary(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	start, end, err := h.parseRange(args, 30)
	if err != nil {
		h.reply(chatID, "❌ Usage: /summary [start end], dates as 2006-01-02 or 02.01.2006")
		return
	}

	entries, err := h.timeclock.EntriesInRange(start, end)
	if err != nil {
		logrus.WithError(err).Error("Failed to get entries in range")
		h.reply(chatID, "❌ Summary failed: "+err.Error())
		return
	}

	s := service.Summarize(entries)
	h.reply(chatID, fmt.Sprintf(
		"📊 %s - %s\n\nEntries: %d\nTotal hours: %.2f\nDays worked: %d\nAvg hours/day: %.2f",
		start.Format("2006-01-02"), end.Format("2006-01-02"),
		s.Count, s.TotalHours, s.DaysWorked, s.AvgHoursPerDay))
}

// parseRange parses "start end" arguments, defaulting to the last
// defaultDays days ending today.
func (h *Handler) parseRange(args string, defaultDays int) (time.Time, time.Time, error) {
	fields := strings.Fields(args)
	now := time.Now()

	switch len(fields) {
	case 0:
		return now.AddDate(0, 0, -defaultDays), now, nil
	case 2:
		start, err := parseDate(fields[0])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := parseDate(fields[1])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("expected 0 or 2 dates, got %d", len(fields))
	}
}
