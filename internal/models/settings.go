package models

import "time"

// RetirementType tags how the 401(k) contribution is computed.
type RetirementType string

const (
	// RetirementPercentage deducts a percentage of the week's gross pay.
	RetirementPercentage RetirementType = "percentage"
	// RetirementFixed deducts a flat weekly amount, independent of hours
	// worked or gross pay.
	RetirementFixed RetirementType = "fixed"
)

// CompensationConfig holds the pay-rate parameters read by the payroll
// calculator.
type CompensationConfig struct {
	HourlyRate             float64 `gorm:"not null;default:25" json:"hourly_rate"`
	OvertimeThresholdHours float64 `gorm:"not null;default:40" json:"overtime_threshold"`
	OvertimeMultiplier     float64 `gorm:"not null;default:1.5" json:"overtime_multiplier"`
}

// BenefitsConfig holds the weekly benefits withholdings. The employer
// health share is recorded for display only and is never deducted.
type BenefitsConfig struct {
	HealthInsuranceEmployee float64        `gorm:"not null;default:0" json:"health_insurance_employee"`
	HealthInsuranceEmployer float64        `gorm:"not null;default:0" json:"health_insurance_employer"`
	DentalInsurance         float64        `gorm:"not null;default:0" json:"dental_insurance"`
	VisionInsurance         float64        `gorm:"not null;default:0" json:"vision_insurance"`
	RetirementType          RetirementType `gorm:"type:varchar(20);not null;default:'percentage'" json:"retirement_401k_type"`
	RetirementAmount        float64        `gorm:"not null;default:0" json:"retirement_401k_amount"`
}

// Settings is the single persisted configuration record. Revision is
// bumped on every save so callers can tell whether the configuration
// changed between two reads. The security fields only simulate their
// real-world counterparts.
type Settings struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	Revision     int                `gorm:"not null;default:0" json:"revision"`
	Compensation CompensationConfig `gorm:"embedded" json:"compensation"`
	Benefits     BenefitsConfig     `gorm:"embedded" json:"benefits"`

	BiometricEnabled bool   `gorm:"not null;default:true" json:"biometric_enabled"`
	TwoFactorEnabled bool   `gorm:"not null;default:false" json:"two_factor_enabled"`
	PINHash          string `json:"-"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the stock configuration of a fresh install.
func DefaultSettings() *Settings {
	return &Settings{
		Compensation: CompensationConfig{
			HourlyRate:             25.00,
			OvertimeThresholdHours: 40.0,
			OvertimeMultiplier:     1.5,
		},
		Benefits: BenefitsConfig{
			HealthInsuranceEmployee: 150.00,
			HealthInsuranceEmployer: 300.00,
			DentalInsurance:         25.00,
			VisionInsurance:         15.00,
			RetirementType:          RetirementPercentage,
			RetirementAmount:        5.0,
		},
		BiometricEnabled: true,
	}
}
