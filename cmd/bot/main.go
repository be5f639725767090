package main

import (
	"os"
	"os/signal"
	"syscall"

	"payroll-tracker/internal/config"
	"payroll-tracker/internal/handler"
	"payroll-tracker/internal/repository"
	"payroll-tracker/internal/service"
	"payroll-tracker/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.Get()
	if cfg.TelegramToken == "" {
		logrus.Fatal("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.OwnerChatID == 0 {
		logrus.Fatal("OWNER_CHAT_ID is required")
	}
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	entryRepo, err := repository.NewGormTimeEntryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create time entry repository")
	}

	sessionRepo, err := repository.NewGormOpenSessionRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create open session repository")
	}

	settingsRepo, err := repository.NewGormSettingsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create settings repository")
	}

	timeclockService := service.NewTimeclockService(entryRepo, sessionRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, timeclockService, settingsService, cfg)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
