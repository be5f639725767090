package service_test

import (
	"errors"
	"testing"

	"payroll-tracker/internal/models"
	"payroll-tracker/internal/repository"
	"payroll-tracker/internal/service"
)

func newSettings() *service.SettingsService {
	return service.NewSettingsService(repository.NewMemorySettingsRepository())
}

func TestSettingsDefaultsOnFirstGet(t *testing.T) {
	svc := newSettings()

	settings, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if settings.Compensation.HourlyRate != 25.00 {
		t.Errorf("hourly rate = %v, want 25.00", settings.Compensation.HourlyRate)
	}
	if settings.Compensation.OvertimeThresholdHours != 40 {
		t.Errorf("overtime threshold = %v, want 40", settings.Compensation.OvertimeThresholdHours)
	}
	if settings.Compensation.OvertimeMultiplier != 1.5 {
		t.Errorf("overtime multiplier = %v, want 1.5", settings.Compensation.OvertimeMultiplier)
	}
	if settings.Benefits.RetirementType != models.RetirementPercentage {
		t.Errorf("retirement type = %q, want percentage", settings.Benefits.RetirementType)
	}
	if settings.Benefits.RetirementAmount != 5.0 {
		t.Errorf("retirement amount = %v, want 5.0", settings.Benefits.RetirementAmount)
	}
	if settings.Revision != 0 {
		t.Errorf("fresh revision = %d, want 0", settings.Revision)
	}

	// A second Get returns the persisted record, not a new one.
	again, err := svc.Get()
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if again.ID != settings.ID {
		t.Errorf("second Get returned ID %d, want %d", again.ID, settings.ID)
	}
}

func TestUpdateCompensation(t *testing.T) {
	svc := newSettings()

	comp := models.CompensationConfig{
		HourlyRate:             30.50,
		OvertimeThresholdHours: 38,
		OvertimeMultiplier:     2.0,
	}
	if err := svc.UpdateCompensation(comp); err != nil {
		t.Fatalf("UpdateCompensation: %v", err)
	}

	settings, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.Compensation != comp {
		t.Errorf("compensation = %+v, want %+v", settings.Compensation, comp)
	}
	if settings.Revision != 1 {
		t.Errorf("revision = %d, want 1", settings.Revision)
	}
}

func TestUpdateCompensationRejected(t *testing.T) {
	tests := []struct {
		name string
		comp models.CompensationConfig
	}{
		{"negative rate", models.CompensationConfig{HourlyRate: -1, OvertimeThresholdHours: 40, OvertimeMultiplier: 1.5}},
		{"negative threshold", models.CompensationConfig{HourlyRate: 25, OvertimeThresholdHours: -1, OvertimeMultiplier: 1.5}},
		{"multiplier below one", models.CompensationConfig{HourlyRate: 25, OvertimeThresholdHours: 40, OvertimeMultiplier: 0.5}},
		{"multiplier above three", models.CompensationConfig{HourlyRate: 25, OvertimeThresholdHours: 40, OvertimeMultiplier: 3.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSettings()
			err := svc.UpdateCompensation(tt.comp)
			if !errors.Is(err, service.ErrConfigOutOfRange) {
				t.Errorf("error = %v, want ErrConfigOutOfRange", err)
			}

			// A rejected update leaves the stored settings untouched.
			settings, gerr := svc.Get()
			if gerr != nil {
				t.Fatalf("Get: %v", gerr)
			}
			if settings.Revision != 0 {
				t.Errorf("revision after rejection = %d, want 0", settings.Revision)
			}
		})
	}
}

func TestUpdateBenefitsRejected(t *testing.T) {
	valid := models.BenefitsConfig{
		HealthInsuranceEmployee: 150,
		HealthInsuranceEmployer: 300,
		DentalInsurance:         25,
		VisionInsurance:         15,
		RetirementType:          models.RetirementPercentage,
		RetirementAmount:        5,
	}

	tests := []struct {
		name   string
		mutate func(*models.BenefitsConfig)
	}{
		{"negative health", func(b *models.BenefitsConfig) { b.HealthInsuranceEmployee = -1 }},
		{"negative dental", func(b *models.BenefitsConfig) { b.DentalInsurance = -1 }},
		{"percentage above 100", func(b *models.BenefitsConfig) { b.RetirementAmount = 101 }},
		{"negative fixed amount", func(b *models.BenefitsConfig) {
			b.RetirementType = models.RetirementFixed
			b.RetirementAmount = -50
		}},
		{"unknown retirement type", func(b *models.BenefitsConfig) { b.RetirementType = "lottery" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSettings()
			benefits := valid
			tt.mutate(&benefits)

			err := svc.UpdateBenefits(benefits)
			if !errors.Is(err, service.ErrConfigOutOfRange) {
				t.Errorf("error = %v, want ErrConfigOutOfRange", err)
			}
		})
	}

	// The unmutated config passes and bumps the revision.
	svc := newSettings()
	if err := svc.UpdateBenefits(valid); err != nil {
		t.Fatalf("UpdateBenefits: %v", err)
	}
	settings, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.Revision != 1 {
		t.Errorf("revision = %d, want 1", settings.Revision)
	}
}

func TestPINGate(t *testing.T) {
	svc := newSettings()

	// With no PIN configured the gate is open to anything.
	ok, err := svc.VerifyPIN("whatever")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if !ok {
		t.Error("expected open gate with no PIN configured")
	}

	if err := svc.SetPIN("4321"); err != nil {
		t.Fatalf("SetPIN: %v", err)
	}

	ok, err = svc.VerifyPIN("4321")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if !ok {
		t.Error("expected correct PIN to verify")
	}

	ok, err = svc.VerifyPIN("1234")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if ok {
		t.Error("expected wrong PIN to be rejected")
	}

	// Clearing the PIN reopens the gate.
	if err := svc.SetPIN(""); err != nil {
		t.Fatalf("SetPIN(clear): %v", err)
	}
	ok, err = svc.VerifyPIN("anything")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if !ok {
		t.Error("expected open gate after clearing the PIN")
	}
}
