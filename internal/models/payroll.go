package models

import "math"

// Round2 rounds a value to two decimal places, half away from zero.
// All currency and hour figures in a breakdown are rounded through here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HoursBreakdown splits a week's worked hours at the overtime threshold.
type HoursBreakdown struct {
	Total    float64 `json:"total"`
	Regular  float64 `json:"regular"`
	Overtime float64 `json:"overtime"`
}

// GrossPay is the pre-deduction earnings for a week.
type GrossPay struct {
	Regular  float64 `json:"regular"`
	Overtime float64 `json:"overtime"`
	Total    float64 `json:"total"`
}

// Deductions itemizes everything withheld from a week's gross pay.
// The insurance premiums are flat weekly charges; the rest scale with
// gross pay (and the retirement contribution depends on its mode).
type Deductions struct {
	HealthInsurance float64 `json:"health_insurance"`
	DentalInsurance float64 `json:"dental_insurance"`
	VisionInsurance float64 `json:"vision_insurance"`
	Retirement401k  float64 `json:"retirement_401k"`
	FederalTax      float64 `json:"federal_tax"`
	StateTax        float64 `json:"state_tax"`
	SocialSecurity  float64 `json:"social_security"`
	Medicare        float64 `json:"medicare"`
	Total           float64 `json:"total"`
}

// PayrollBreakdown is one consistent snapshot of a reporting cycle:
// hours, gross pay, deductions, and net pay computed in a single pass
// from the same inputs.
type PayrollBreakdown struct {
	Hours      HoursBreakdown `json:"hours"`
	Gross      GrossPay       `json:"gross_pay"`
	Deductions Deductions     `json:"deductions"`
	NetPay     float64        `json:"net_pay"`
}

// Summary aggregates time entries over an arbitrary date range,
// independent of any payroll rates.
type Summary struct {
	Count          int     `json:"count"`
	TotalHours     float64 `json:"total_hours"`
	DaysWorked     int     `json:"days_worked"`
	AvgHoursPerDay float64 `json:"avg_hours_per_day"`
}
