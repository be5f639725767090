package cli

import (
	"fmt"
	"time"

	"payroll-tracker/internal/models"
	"payroll-tracker/pkg/payweek"

	"github.com/spf13/cobra"
)

var (
	listWeek bool
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Only this week's entries")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Range start (2006-01-02)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Range end (2006-01-02)")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	var entries []models.TimeEntry
	switch {
	case listWeek:
		entries, err = a.timeclock.CurrentWeekEntries(time.Now())
	case listFrom != "" || listTo != "":
		start, end, rerr := resolveRange(listFrom, listTo)
		if rerr != nil {
			return rerr
		}
		entries, err = a.timeclock.EntriesInRange(start, end)
	default:
		entries, err = a.timeclock.AllEntries()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	var currentDay string
	for i := range entries {
		e := &entries[i]
		day := e.Date.Format("2006-01-02")
		if day != currentDay {
			fmt.Println(day)
			currentDay = day
		}
		fmt.Printf("  #%d  %s - %s  (%.2f h)\n",
			e.ID, e.ClockIn.Format("15:04"), e.ClockOut.Format("15:04"), e.Hours)
	}
	return nil
}

// resolveRange parses --from/--to, defaulting a missing end to today and
// a missing start to the beginning of the week containing the end.
func resolveRange(fromStr, toStr string) (time.Time, time.Time, error) {
	end := time.Now()
	if toStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --to date %q: %w", toStr, err)
		}
		end = parsed
	}

	start, _ := payweek.Bounds(end)
	if fromStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --from date %q: %w", fromStr, err)
		}
		start = parsed
	}

	return start, end, nil
}
