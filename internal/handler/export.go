package handler

import (
	"fmt"
	"strings"
	"time"

	"payroll-tracker/internal/export"
	"payroll-tracker/pkg/payweek"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// export sends the selected entries as a document. Defaults to this
// week in CSV; an explicit range may follow the format argument.
func (h *Handler) export(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	format := "csv"
	if len(fields) > 0 {
		format = strings.ToLower(fields[0])
		fields = fields[1:]
	}
	if format != "csv" && format != "json" {
		h.reply(chatID, "❌ Usage: /export [csv|json] [start end]")
		return
	}

	var start, end time.Time
	switch len(fields) {
	case 0:
		start, end = payweek.Bounds(time.Now())
	case 2:
		var err error
		if start, err = parseDate(fields[0]); err != nil {
			h.reply(chatID, "❌ Bad start date: "+fields[0])
			return
		}
		if end, err = parseDate(fields[1]); err != nil {
			h.reply(chatID, "❌ Bad end date: "+fields[1])
			return
		}
	default:
		h.reply(chatID, "❌ Usage: /export [csv|json] [start end]")
		return
	}

	entries, err := h.timeclock.EntriesInRange(start, end)
	if err != nil {
		logrus.WithError(err).Error("Failed to get entries for export")
		h.reply(chatID, "❌ Export failed: "+err.Error())
		return
	}
	if len(entries) == 0 {
		h.reply(chatID, "📭 No entries in that range.")
		return
	}

	var data []byte
	if format == "json" {
		data, err = export.JSON(entries)
	} else {
		data, err = export.CSV(entries)
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to render export")
		h.reply(chatID, "❌ Export failed: "+err.Error())
		return
	}

	name := fmt.Sprintf("time_entries_%s_%s.%s",
		start.Format("2006-01-02"), end.Format("2006-01-02"), format)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = fmt.Sprintf("📤 %d entries, %s - %s",
		len(entries), start.Format("2006-01-02"), end.Format("2006-01-02"))
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).Error("Failed to send export document")
	}
}
