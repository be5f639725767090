package service

import "payroll-tracker/internal/models"

// Summarize rolls up entries over an arbitrary date range, independent
// of any payroll rates. Hours are summed unrounded and rounded only at
// the boundary; the average guards against an empty range.
func Summarize(entries []models.TimeEntry) models.Summary {
	var total float64
	days := make(map[string]struct{})

	for i := range entries {
		total += entries[i].Hours
		days[entries[i].Date.Format("2006-01-02")] = struct{}{}
	}

	avg := 0.0
	if len(days) > 0 {
		avg = total / float64(len(days))
	}

	return models.Summary{
		Count:          len(entries),
		TotalHours:     models.Round2(total),
		DaysWorked:     len(days),
		AvgHoursPerDay: models.Round2(avg),
	}
}
