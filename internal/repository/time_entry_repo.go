package repository

import (
	"errors"
	"time"

	"payroll-tracker/internal/models"
	"payroll-tracker/pkg/payweek"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TimeEntryRepository interface {
	Create(entry *models.TimeEntry) error
	GetAll() ([]models.TimeEntry, error)
	GetByDateRange(start, end time.Time) ([]models.TimeEntry, error)
	Count() (int64, error)
	DeleteAll() error
}

type GormTimeEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTimeEntryRepository(db *gorm.DB) (*GormTimeEntryRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.TimeEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate time_entries table")
		return nil, err
	}

	logger.Info("Time entry repository initialized")

	return &GormTimeEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormTimeEntryRepository) Create(entry *models.TimeEntry) error {
	if !entry.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"clock_in":  entry.ClockIn,
			"clock_out": entry.ClockOut,
		}).Warn("Invalid time entry data")
		return errors.New("invalid time entry")
	}

	result := r.db.Create(entry)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create time entry")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":    entry.ID,
		"date":  entry.Date.Format("2006-01-02"),
		"hours": entry.Hours,
	}).Info("Time entry created")

	return nil
}

func (r *GormTimeEntryRepository) GetAll() ([]models.TimeEntry, error) {
	var entries []models.TimeEntry

	result := r.db.Order("clock_in ASC").Find(&entries)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get time entries")
		return nil, result.Error
	}

	return entries, nil
}

func (r *GormTimeEntryRepository) GetByDateRange(start, end time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry

	// Membership is by clock-in date, so filter on the full clock-in
	// timestamp over a half-open interval: midnight of the start day up
	// to but excluding midnight after the end day. A closed upper bound
	// at 23:59:59 would lose sub-second clock-ins in the last second of
	// the end day.
	result := r.db.Where("clock_in >= ? AND clock_in < ?",
		payweek.StartOfDay(start),
		payweek.StartOfDay(end).AddDate(0, 0, 1)).
		Order("clock_in ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get time entries by date range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
		"count": len(entries),
	}).Debug("Retrieved time entries by date range")

	return entries, nil
}

func (r *GormTimeEntryRepository) Count() (int64, error) {
	var count int64

	result := r.db.Model(&models.TimeEntry{}).Count(&count)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to count time entries")
		return 0, result.Error
	}

	return count, nil
}

func (r *GormTimeEntryRepository) DeleteAll() error {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TimeEntry{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete time entries")
		return result.Error
	}

	r.logger.WithField("rows_affected", result.RowsAffected).Info("All time entries deleted")
	return nil
}
