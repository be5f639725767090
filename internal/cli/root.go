// Package cli implements the payrollctl command line front end. It
// shares the service layer with the Telegram bot; both talk to the same
// SQLite database.
package cli

import (
	"fmt"
	"os"

	"payroll-tracker/internal/config"
	"payroll-tracker/internal/repository"
	"payroll-tracker/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "payrollctl - track work hours and compute weekly payroll",
	Long: `payrollctl is the command line front end of the pay & benefits
tracker. Clock in and out, inspect the weekly payroll breakdown, and
export your time entries. Data lives in a local SQLite database
(DATABASE_URL, default payroll.db).`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(clearCmd)
}

type app struct {
	timeclock *service.TimeclockService
	settings  *service.SettingsService
}

// openApp wires the services against the configured SQLite database.
func openApp() (*app, error) {
	cfg := config.Get()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.DatabasePath, err)
	}

	entryRepo, err := repository.NewGormTimeEntryRepository(db)
	if err != nil {
		return nil, err
	}
	sessionRepo, err := repository.NewGormOpenSessionRepository(db)
	if err != nil {
		return nil, err
	}
	settingsRepo, err := repository.NewGormSettingsRepository(db)
	if err != nil {
		return nil, err
	}

	return &app{
		timeclock: service.NewTimeclockService(entryRepo, sessionRepo),
		settings:  service.NewSettingsService(settingsRepo),
	}, nil
}
