package repository

import (
	"errors"

	"payroll-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OpenSessionRepository interface {
	// Get returns the open session, or nil when idle.
	Get() (*models.OpenSession, error)
	Set(session *models.OpenSession) error
	Clear() error
}

type GormOpenSessionRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormOpenSessionRepository(db *gorm.DB) (*GormOpenSessionRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.OpenSession{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate open_sessions table")
		return nil, err
	}

	logger.Info("Open session repository initialized")

	return &GormOpenSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormOpenSessionRepository) Get() (*models.OpenSession, error) {
	var session models.OpenSession

	result := r.db.First(&session)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get open session")
		return nil, result.Error
	}

	return &session, nil
}

func (r *GormOpenSessionRepository) Set(session *models.OpenSession) error {
	result := r.db.Create(session)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to store open session")
		return result.Error
	}

	r.logger.WithField("clock_in_time", session.ClockInTime.Format("2006-01-02 15:04:05")).
		Info("Open session stored")
	return nil
}

func (r *GormOpenSessionRepository) Clear() error {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.OpenSession{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to clear open session")
		return result.Error
	}

	return nil
}
