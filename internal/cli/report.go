package cli

import (
	"fmt"
	"time"

	"payroll-tracker/internal/service"
	"payroll-tracker/pkg/payweek"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the payroll breakdown for the current week",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	now := time.Now()
	entries, err := a.timeclock.CurrentWeekEntries(now)
	if err != nil {
		return err
	}
	settings, err := a.settings.Get()
	if err != nil {
		return err
	}

	// One evaluation per reporting cycle keeps the figures consistent.
	b := service.ComputePayroll(entries, settings.Compensation, settings.Benefits)
	start, end := payweek.Bounds(now)

	fmt.Printf("Week %s - %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Println("--------------------------------")
	fmt.Printf("%-24s%10.2f\n", "Total hours", b.Hours.Total)
	fmt.Printf("%-24s%10.2f\n", "Regular hours", b.Hours.Regular)
	fmt.Printf("%-24s%10.2f\n", "Overtime hours", b.Hours.Overtime)
	fmt.Println("--------------------------------")
	fmt.Printf("%-24s%10.2f\n", "Regular pay", b.Gross.Regular)
	fmt.Printf("%-24s%10.2f\n", "Overtime pay", b.Gross.Overtime)
	fmt.Printf("%-24s%10.2f\n", "Gross pay", b.Gross.Total)
	fmt.Println("--------------------------------")
	fmt.Printf("%-24s%10.2f\n", "Health insurance", b.Deductions.HealthInsurance)
	fmt.Printf("%-24s%10.2f\n", "Dental insurance", b.Deductions.DentalInsurance)
	fmt.Printf("%-24s%10.2f\n", "Vision insurance", b.Deductions.VisionInsurance)
	fmt.Printf("%-24s%10.2f\n", "401(k)", b.Deductions.Retirement401k)
	fmt.Printf("%-24s%10.2f\n", "Federal tax", b.Deductions.FederalTax)
	fmt.Printf("%-24s%10.2f\n", "State tax", b.Deductions.StateTax)
	fmt.Printf("%-24s%10.2f\n", "Social security", b.Deductions.SocialSecurity)
	fmt.Printf("%-24s%10.2f\n", "Medicare", b.Deductions.Medicare)
	fmt.Printf("%-24s%10.2f\n", "Total deductions", b.Deductions.Total)
	fmt.Println("--------------------------------")
	fmt.Printf("%-24s%10.2f\n", "Net pay", b.NetPay)

	return nil
}
