package cli

import (
	"fmt"
	"os"
	"time"

	"payroll-tracker/internal/export"
	"payroll-tracker/internal/models"
	"payroll-tracker/pkg/payweek"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportFrom   string
	exportTo     string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Range start (2006-01-02)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Range end (2006-01-02)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every entry")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	var entries []models.TimeEntry
	switch {
	case exportAll:
		entries, err = a.timeclock.AllEntries()
	case exportFrom != "" || exportTo != "":
		start, end, rerr := resolveRange(exportFrom, exportTo)
		if rerr != nil {
			return rerr
		}
		entries, err = a.timeclock.EntriesInRange(start, end)
	default:
		start, end := payweek.Bounds(time.Now())
		entries, err = a.timeclock.EntriesInRange(start, end)
	}
	if err != nil {
		return err
	}

	var data []byte
	switch exportFormat {
	case "json":
		data, err = export.JSON(entries)
	case "csv":
		data, err = export.CSV(entries)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
