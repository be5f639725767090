package cli

import (
	"fmt"

	"payroll-tracker/internal/service"

	"github.com/spf13/cobra"
)

var (
	summaryFrom string
	summaryTo   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show statistics for a date range",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Range start (2006-01-02)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "Range end (2006-01-02)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	start, end, err := resolveRange(summaryFrom, summaryTo)
	if err != nil {
		return err
	}

	entries, err := a.timeclock.EntriesInRange(start, end)
	if err != nil {
		return err
	}

	s := service.Summarize(entries)
	fmt.Printf("%s - %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Printf("Entries:       %d\n", s.Count)
	fmt.Printf("Total hours:   %.2f\n", s.TotalHours)
	fmt.Printf("Days worked:   %d\n", s.DaysWorked)
	fmt.Printf("Avg hours/day: %.2f\n", s.AvgHoursPerDay)
	return nil
}
