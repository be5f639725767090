package service

import (
	"math"

	"payroll-tracker/internal/models"
)

// Simplified statutory withholding rates. Placeholders, not a tax
// engine; named so they can become configurable without changing the
// formula shape.
const (
	FederalTaxRate     = 0.15
	StateTaxRate       = 0.05
	SocialSecurityRate = 0.062
	MedicareRate       = 0.0145
)

// HoursFor sums worked hours across entries and splits them at the
// overtime threshold. Entries are summed before rounding; rounding each
// contribution and then summing would drift.
func HoursFor(entries []models.TimeEntry, overtimeThresholdHours float64) models.HoursBreakdown {
	var sum float64
	for i := range entries {
		sum += entries[i].Hours
	}

	total := models.Round2(sum)
	return models.HoursBreakdown{
		Total:    total,
		Regular:  models.Round2(math.Min(total, overtimeThresholdHours)),
		Overtime: models.Round2(math.Max(0, total-overtimeThresholdHours)),
	}
}

// GrossFor prices an hours breakdown. The total is the rounded sum of
// the unrounded regular and overtime amounts, not the sum of the two
// rounded figures.
func GrossFor(hours models.HoursBreakdown, hourlyRate, overtimeMultiplier float64) models.GrossPay {
	regular := hours.Regular * hourlyRate
	overtime := hours.Overtime * hourlyRate * overtimeMultiplier

	return models.GrossPay{
		Regular:  models.Round2(regular),
		Overtime: models.Round2(overtime),
		Total:    models.Round2(regular + overtime),
	}
}

// DeductionsFor itemizes withholdings against a week's gross pay. The
// insurance premiums and a fixed-amount retirement contribution are flat
// weekly charges that apply even when gross pay is zero; benefits are
// not pro-rated by hours. The total is the rounded sum of the eight
// individually rounded components.
func DeductionsFor(grossTotal float64, benefits models.BenefitsConfig) models.Deductions {
	var retirement float64
	if benefits.RetirementType == models.RetirementFixed {
		retirement = benefits.RetirementAmount
	} else {
		retirement = grossTotal * benefits.RetirementAmount / 100
	}

	d := models.Deductions{
		HealthInsurance: models.Round2(benefits.HealthInsuranceEmployee),
		DentalInsurance: models.Round2(benefits.DentalInsurance),
		VisionInsurance: models.Round2(benefits.VisionInsurance),
		Retirement401k:  models.Round2(retirement),
		FederalTax:      models.Round2(grossTotal * FederalTaxRate),
		StateTax:        models.Round2(grossTotal * StateTaxRate),
		SocialSecurity:  models.Round2(grossTotal * SocialSecurityRate),
		Medicare:        models.Round2(grossTotal * MedicareRate),
	}
	d.Total = models.Round2(d.HealthInsurance + d.DentalInsurance + d.VisionInsurance +
		d.Retirement401k + d.FederalTax + d.StateTax + d.SocialSecurity + d.Medicare)
	return d
}

// NetPayFor is the take-home pay after deductions.
func NetPayFor(grossTotal, deductionsTotal float64) float64 {
	return models.Round2(grossTotal - deductionsTotal)
}

// ComputePayroll runs hours -> gross -> deductions -> net once and
// returns a single consistent snapshot. Callers must not recompute the
// pieces separately within a reporting cycle, or the figures can
// diverge.
func ComputePayroll(entries []models.TimeEntry, comp models.CompensationConfig, benefits models.BenefitsConfig) models.PayrollBreakdown {
	hours := HoursFor(entries, comp.OvertimeThresholdHours)
	gross := GrossFor(hours, comp.HourlyRate, comp.OvertimeMultiplier)
	deductions := DeductionsFor(gross.Total, benefits)

	return models.PayrollBreakdown{
		Hours:      hours,
		Gross:      gross,
		Deductions: deductions,
		NetPay:     NetPayFor(gross.Total, deductions.Total),
	}
}
