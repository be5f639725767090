package service

import (
	"fmt"
	"sync"

	"payroll-tracker/internal/auth"
	"payroll-tracker/internal/models"
	"payroll-tracker/internal/repository"

	"github.com/sirupsen/logrus"
)

// SettingsService guards the persisted configuration record. Updates
// happen only through the validated operations below; the payroll
// calculator reads a snapshot and never writes back.
type SettingsService struct {
	mu     sync.Mutex
	repo   repository.SettingsRepository
	logger *logrus.Logger
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &SettingsService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the persisted settings, creating the defaults on first use.
func (s *SettingsService) Get() (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *SettingsService) load() (*models.Settings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = models.DefaultSettings()
		if err := s.repo.Save(settings); err != nil {
			s.logger.WithError(err).Error("Failed to save default settings")
			return nil, err
		}
		s.logger.Info("Settings initialized with defaults")
	}
	return settings, nil
}

// UpdateCompensation validates and persists new compensation parameters,
// bumping the settings revision.
func (s *SettingsService) UpdateCompensation(comp models.CompensationConfig) error {
	if err := validateCompensation(comp); err != nil {
		s.logger.WithError(err).Warn("Compensation update rejected")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}

	settings.Compensation = comp
	settings.Revision++
	if err := s.repo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to save compensation settings")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"hourly_rate":         comp.HourlyRate,
		"overtime_threshold":  comp.OvertimeThresholdHours,
		"overtime_multiplier": comp.OvertimeMultiplier,
		"revision":            settings.Revision,
	}).Info("Compensation settings saved")

	return nil
}

// UpdateBenefits validates and persists new benefits parameters, bumping
// the settings revision.
func (s *SettingsService) UpdateBenefits(benefits models.BenefitsConfig) error {
	if err := validateBenefits(benefits); err != nil {
		s.logger.WithError(err).Warn("Benefits update rejected")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}

	settings.Benefits = benefits
	settings.Revision++
	if err := s.repo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to save benefits settings")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"retirement_type":   benefits.RetirementType,
		"retirement_amount": benefits.RetirementAmount,
		"revision":          settings.Revision,
	}).Info("Benefits settings saved")

	return nil
}

// SetPIN stores an argon2id hash of the given PIN for the simulated
// login gate. An empty PIN removes the gate.
func (s *SettingsService) SetPIN(pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}

	if pin == "" {
		settings.PINHash = ""
	} else {
		hash, err := auth.HashPIN(pin)
		if err != nil {
			s.logger.WithError(err).Error("Failed to hash PIN")
			return err
		}
		settings.PINHash = hash
	}

	settings.Revision++
	if err := s.repo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to save PIN")
		return err
	}

	s.logger.Info("PIN updated")
	return nil
}

// VerifyPIN reports whether pin unlocks the gate. With no PIN configured
// the gate is open.
func (s *SettingsService) VerifyPIN(pin string) (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	if settings.PINHash == "" {
		return true, nil
	}
	return auth.VerifyPIN(settings.PINHash, pin)
}

func validateCompensation(c models.CompensationConfig) error {
	if c.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate %.2f is negative", ErrConfigOutOfRange, c.HourlyRate)
	}
	if c.OvertimeThresholdHours < 0 {
		return fmt.Errorf("%w: overtime threshold %.2f is negative", ErrConfigOutOfRange, c.OvertimeThresholdHours)
	}
	if c.OvertimeMultiplier < 1.0 || c.OvertimeMultiplier > 3.0 {
		return fmt.Errorf("%w: overtime multiplier %.2f outside [1.0, 3.0]", ErrConfigOutOfRange, c.OvertimeMultiplier)
	}
	return nil
}

func validateBenefits(b models.BenefitsConfig) error {
	amounts := map[string]float64{
		"health insurance (employee)": b.HealthInsuranceEmployee,
		"health insurance (employer)": b.HealthInsuranceEmployer,
		"dental insurance":            b.DentalInsurance,
		"vision insurance":            b.VisionInsurance,
	}
	for name, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("%w: %s %.2f is negative", ErrConfigOutOfRange, name, amount)
		}
	}

	switch b.RetirementType {
	case models.RetirementPercentage:
		if b.RetirementAmount < 0 || b.RetirementAmount > 100 {
			return fmt.Errorf("%w: retirement percentage %.2f outside [0, 100]", ErrConfigOutOfRange, b.RetirementAmount)
		}
	case models.RetirementFixed:
		if b.RetirementAmount < 0 {
			return fmt.Errorf("%w: retirement amount %.2f is negative", ErrConfigOutOfRange, b.RetirementAmount)
		}
	default:
		return fmt.Errorf("%w: unknown retirement type %q", ErrConfigOutOfRange, b.RetirementType)
	}

	return nil
}
