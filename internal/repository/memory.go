package repository

import (
	"errors"
	"sync"
	"time"

	"payroll-tracker/internal/models"
	"payroll-tracker/pkg/payweek"
)

// In-memory implementations of the repository interfaces. They back the
// pure in-process store when no database is wanted, and the service
// tests run against them.

type MemoryTimeEntryRepository struct {
	mu      sync.Mutex
	entries []models.TimeEntry
	nextID  uint
}

func NewMemoryTimeEntryRepository() *MemoryTimeEntryRepository {
	return &MemoryTimeEntryRepository{nextID: 1}
}

func (r *MemoryTimeEntryRepository) Create(entry *models.TimeEntry) error {
	if !entry.IsValid() {
		return errors.New("invalid time entry")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// IDs come from a monotonic counter that DeleteAll does not reset,
	// so an ID is never reused across a clear.
	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *MemoryTimeEntryRepository) GetAll() ([]models.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.TimeEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *MemoryTimeEntryRepository) GetByDateRange(start, end time.Time) ([]models.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.TimeEntry{}
	for _, e := range r.entries {
		if payweek.InRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryTimeEntryRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.entries)), nil
}

func (r *MemoryTimeEntryRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	return nil
}

type MemoryOpenSessionRepository struct {
	mu      sync.Mutex
	session *models.OpenSession
}

func NewMemoryOpenSessionRepository() *MemoryOpenSessionRepository {
	return &MemoryOpenSessionRepository{}
}

func (r *MemoryOpenSessionRepository) Get() (*models.OpenSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return nil, nil
	}
	copied := *r.session
	return &copied, nil
}

func (r *MemoryOpenSessionRepository) Set(session *models.OpenSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.session = &copied
	return nil
}

func (r *MemoryOpenSessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil
	return nil
}

type MemorySettingsRepository struct {
	mu       sync.Mutex
	settings *models.Settings
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) Get() (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		return nil, nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *MemorySettingsRepository) Save(settings *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if settings.ID == 0 {
		settings.ID = 1
	}
	copied := *settings
	r.settings = &copied
	return nil
}
