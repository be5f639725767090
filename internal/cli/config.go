package cli

import (
	"fmt"
	"strconv"

	"payroll-tracker/internal/models"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the payroll configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configCompCmd = &cobra.Command{
	Use:   "comp <hourly-rate> <overtime-threshold> <overtime-multiplier>",
	Short: "Update compensation parameters",
	Args:  cobra.ExactArgs(3),
	RunE:  runConfigComp,
}

var configBenefitsCmd = &cobra.Command{
	Use:   "benefits <health> <dental> <vision> <percentage|fixed> <amount>",
	Short: "Update benefits parameters",
	Args:  cobra.ExactArgs(5),
	RunE:  runConfigBenefits,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCompCmd)
	configCmd.AddCommand(configBenefitsCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	settings, err := a.settings.Get()
	if err != nil {
		return err
	}

	fmt.Printf("Revision: %d\n\n", settings.Revision)
	fmt.Printf("Hourly rate:          $%.2f\n", settings.Compensation.HourlyRate)
	fmt.Printf("Overtime threshold:   %.1f h/week\n", settings.Compensation.OvertimeThresholdHours)
	fmt.Printf("Overtime multiplier:  %.1fx\n\n", settings.Compensation.OvertimeMultiplier)
	fmt.Printf("Health insurance:     $%.2f/week (employer pays $%.2f)\n",
		settings.Benefits.HealthInsuranceEmployee, settings.Benefits.HealthInsuranceEmployer)
	fmt.Printf("Dental insurance:     $%.2f/week\n", settings.Benefits.DentalInsurance)
	fmt.Printf("Vision insurance:     $%.2f/week\n", settings.Benefits.VisionInsurance)
	if settings.Benefits.RetirementType == models.RetirementFixed {
		fmt.Printf("401(k):               $%.2f/week (fixed)\n", settings.Benefits.RetirementAmount)
	} else {
		fmt.Printf("401(k):               %.1f%% of gross pay\n", settings.Benefits.RetirementAmount)
	}
	return nil
}

func runConfigComp(cmd *cobra.Command, args []string) error {
	values := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", arg)
		}
		values[i] = v
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	comp := models.CompensationConfig{
		HourlyRate:             values[0],
		OvertimeThresholdHours: values[1],
		OvertimeMultiplier:     values[2],
	}
	if err := a.settings.UpdateCompensation(comp); err != nil {
		return err
	}

	fmt.Println("Compensation settings saved.")
	return nil
}

func runConfigBenefits(cmd *cobra.Command, args []string) error {
	numeric := []string{args[0], args[1], args[2], args[4]}
	values := make([]float64, 4)
	for i, arg := range numeric {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", arg)
		}
		values[i] = v
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	settings, err := a.settings.Get()
	if err != nil {
		return err
	}

	benefits := models.BenefitsConfig{
		HealthInsuranceEmployee: values[0],
		HealthInsuranceEmployer: settings.Benefits.HealthInsuranceEmployer,
		DentalInsurance:         values[1],
		VisionInsurance:         values[2],
		RetirementType:          models.RetirementType(args[3]),
		RetirementAmount:        values[3],
	}
	if err := a.settings.UpdateBenefits(benefits); err != nil {
		return err
	}

	fmt.Println("Benefits settings saved.")
	return nil
}
