package cli

import (
	"errors"
	"fmt"
	"time"

	"payroll-tracker/internal/service"

	"github.com/spf13/cobra"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in now",
	Args:  cobra.NoArgs,
	RunE:  runIn,
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out now and record the entry",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current clock status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runIn(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	session, err := a.timeclock.ClockIn(time.Now())
	if errors.Is(err, service.ErrAlreadyClockedIn) {
		return fmt.Errorf("already clocked in; run `payrollctl out` first")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Clocked in at %s\n", session.ClockInTime.Format("15:04:05"))
	return nil
}

func runOut(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	entry, err := a.timeclock.ClockOut(time.Now())
	if errors.Is(err, service.ErrNoOpenSession) {
		return fmt.Errorf("not clocked in; run `payrollctl in` first")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Clocked out at %s. Worked %.2f hours.\n",
		entry.ClockOut.Format("15:04:05"), entry.Hours)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	now := time.Now()
	session, err := a.timeclock.ActiveSession()
	if err != nil {
		return err
	}

	if session != nil {
		elapsed := now.Sub(session.ClockInTime)
		fmt.Printf("Clocked in since %s (%.2f hours elapsed)\n",
			session.ClockInTime.Format("15:04"), elapsed.Hours())
		return nil
	}

	entries, err := a.timeclock.CurrentWeekEntries(now)
	if err != nil {
		return err
	}
	summary := service.Summarize(entries)

	fmt.Println("Not clocked in.")
	fmt.Printf("This week: %d entries, %.2f hours over %d days.\n",
		summary.Count, summary.TotalHours, summary.DaysWorked)
	return nil
}
