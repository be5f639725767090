package repository

import (
	"errors"

	"payroll-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the persisted settings, or nil when nothing has been
	// saved yet.
	Get() (*models.Settings, error)
	Save(settings *models.Settings) error
}

type GormSettingsRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormSettingsRepository(db *gorm.DB) (*GormSettingsRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Settings{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate settings table")
		return nil, err
	}

	logger.Info("Settings repository initialized")

	return &GormSettingsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormSettingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings

	result := r.db.First(&settings)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get settings")
		return nil, result.Error
	}

	return &settings, nil
}

func (r *GormSettingsRepository) Save(settings *models.Settings) error {
	result := r.db.Save(settings)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save settings")
		return result.Error
	}

	r.logger.WithField("revision", settings.Revision).Info("Settings saved")
	return nil
}
