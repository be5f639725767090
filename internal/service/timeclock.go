package service

import (
	"sync"
	"time"

	"payroll-tracker/internal/models"
	"payroll-tracker/internal/repository"
	"payroll-tracker/pkg/payweek"

	"github.com/sirupsen/logrus"
)

// TimeclockService owns the session state machine and period selection.
// Mutating operations are serialized behind a single mutex per store;
// read-only computations work on the snapshots the repositories return.
type TimeclockService struct {
	mu       sync.Mutex
	entries  repository.TimeEntryRepository
	sessions repository.OpenSessionRepository
	logger   *logrus.Logger
}

func NewTimeclockService(
	entries repository.TimeEntryRepository,
	sessions repository.OpenSessionRepository,
) *TimeclockService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &TimeclockService{
		entries:  entries,
		sessions: sessions,
		logger:   logger,
	}
}

// ClockIn opens a work session at now. Refused while a session is
// already open; a double clock-in is a caller error, not something to
// paper over.
func (s *TimeclockService) ClockIn(now time.Time) (*models.OpenSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.sessions.Get()
	if err != nil {
		s.logger.WithError(err).Error("Failed to check open session")
		return nil, err
	}
	if open != nil {
		s.logger.WithField("clock_in_time", open.ClockInTime.Format("15:04")).
			Warn("Clock in refused: session already open")
		return nil, ErrAlreadyClockedIn
	}

	session := &models.OpenSession{ClockInTime: now}
	if err := s.sessions.Set(session); err != nil {
		s.logger.WithError(err).Error("Failed to open session")
		return nil, err
	}

	s.logger.WithField("clock_in_time", now.Format("2006-01-02 15:04:05")).Info("Clocked in")
	return session, nil
}

// ClockOut closes the open session: it appends a TimeEntry and clears
// the session in one step, returning the engine to idle.
func (s *TimeclockService) ClockOut(now time.Time) (*models.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.sessions.Get()
	if err != nil {
		s.logger.WithError(err).Error("Failed to check open session")
		return nil, err
	}
	if open == nil {
		s.logger.Warn("Clock out refused: no open session")
		return nil, ErrNoOpenSession
	}
	if !now.After(open.ClockInTime) {
		s.logger.WithFields(logrus.Fields{
			"clock_in_time":  open.ClockInTime,
			"clock_out_time": now,
		}).Warn("Clock out refused: non-positive duration")
		return nil, ErrNonPositiveDuration
	}

	entry := &models.TimeEntry{
		ClockIn:  open.ClockInTime,
		ClockOut: now,
	}
	entry.UpdateCalculatedFields()

	if err := s.entries.Create(entry); err != nil {
		s.logger.WithError(err).Error("Failed to create time entry")
		return nil, err
	}
	if err := s.sessions.Clear(); err != nil {
		s.logger.WithError(err).Error("Failed to clear open session")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    entry.ID,
		"date":  entry.Date.Format("2006-01-02"),
		"hours": entry.Hours,
	}).Info("Clocked out")

	return entry, nil
}

// ActiveSession returns the open session, or nil when idle.
func (s *TimeclockService) ActiveSession() (*models.OpenSession, error) {
	return s.sessions.Get()
}

// CurrentWeekEntries returns the entries whose clock-in date falls in
// the Monday-Sunday week containing today.
func (s *TimeclockService) CurrentWeekEntries(today time.Time) ([]models.TimeEntry, error) {
	start, end := payweek.Bounds(today)
	return s.entries.GetByDateRange(start, end)
}

// EntriesInRange returns entries whose clock-in date lies in
// [start, end], inclusive. A start after the end yields an empty set
// rather than an error.
func (s *TimeclockService) EntriesInRange(start, end time.Time) ([]models.TimeEntry, error) {
	if payweek.StartOfDay(start).After(payweek.StartOfDay(end)) {
		return []models.TimeEntry{}, nil
	}
	return s.entries.GetByDateRange(start, end)
}

// AllEntries returns every recorded entry in clock-in order.
func (s *TimeclockService) AllEntries() ([]models.TimeEntry, error) {
	return s.entries.GetAll()
}

// EntryCount returns the number of recorded entries.
func (s *TimeclockService) EntryCount() (int64, error) {
	return s.entries.Count()
}

// ClearAllEntries wipes every entry and any open session. Confirmation
// is the presentation layer's job; the clear itself is unconditional.
func (s *TimeclockService) ClearAllEntries() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.entries.DeleteAll(); err != nil {
		s.logger.WithError(err).Error("Failed to delete time entries")
		return err
	}
	if err := s.sessions.Clear(); err != nil {
		s.logger.WithError(err).Error("Failed to clear open session")
		return err
	}

	s.logger.Info("All time entries cleared")
	return nil
}
