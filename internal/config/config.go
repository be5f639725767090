package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken string
	OwnerChatID   int64
	DatabasePath  string
}

var instance *Config
var once sync.Once

// Get loads the configuration once from the environment, with a .env
// file merged in when present. The bot entry point checks that the token
// and owner chat are set; the CLI runs without them.
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("No .env file found, using environment only")
		}

		instance = &Config{
			TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			OwnerChatID:   getEnvAsInt("OWNER_CHAT_ID", 0),
			DatabasePath:  getEnv("DATABASE_URL", "payroll.db"),
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
