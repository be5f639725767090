// Package telegram wraps the bot API client together with the
// long-polling configuration the update loop consumes.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// updateTimeoutSeconds is the long-poll timeout for GetUpdates.
const updateTimeoutSeconds = 60

// Client bundles an authenticated bot with its polling configuration so
// the handler only deals with one value.
type Client struct {
	Bot          *tgbotapi.BotAPI
	UpdateConfig tgbotapi.UpdateConfig
}

// NewClient authenticates against the bot API and prepares the update
// configuration for long polling.
func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeoutSeconds

	return &Client{
		Bot:          bot,
		UpdateConfig: updateConfig,
	}, nil
}
