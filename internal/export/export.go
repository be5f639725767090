// Package export renders time entries in the shapes the presentation
// layers hand out for download: a CSV table and a machine-readable JSON
// record list mirroring the TimeEntry fields.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"payroll-tracker/internal/models"
)

// Record mirrors a TimeEntry with ISO-8601 timestamps for the clock
// events and an ISO-8601 date, so a round trip loses nothing.
type Record struct {
	ID       uint    `json:"id"`
	ClockIn  string  `json:"clock_in"`
	ClockOut string  `json:"clock_out"`
	Hours    float64 `json:"hours"`
	Date     string  `json:"date"`
}

func toRecords(entries []models.TimeEntry) []Record {
	records := make([]Record, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		records = append(records, Record{
			ID:       e.ID,
			ClockIn:  e.ClockIn.Format(time.RFC3339),
			ClockOut: e.ClockOut.Format(time.RFC3339),
			Hours:    e.Hours,
			Date:     e.Date.Format("2006-01-02"),
		})
	}
	return records
}

// JSON renders entries as an indented record list.
func JSON(entries []models.TimeEntry) ([]byte, error) {
	return json.MarshalIndent(toRecords(entries), "", "  ")
}

// CSV renders one row per entry with columns date, clock_in, clock_out,
// hours.
func CSV(entries []models.TimeEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "clock_in", "clock_out", "hours"}); err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		row := []string{
			e.Date.Format("2006-01-02"),
			e.ClockIn.Format(time.RFC3339),
			e.ClockOut.Format(time.RFC3339),
			strconv.FormatFloat(e.Hours, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
