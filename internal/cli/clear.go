package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL time entries",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm the deletion")
}

func runClear(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	count, err := a.timeclock.EntryCount()
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	// Two-step confirmation: refuse to delete without the explicit flag.
	if !clearYes {
		return fmt.Errorf("this would delete all %d time entries; re-run with --yes to confirm", count)
	}

	if err := a.timeclock.ClearAllEntries(); err != nil {
		return err
	}

	fmt.Printf("Deleted %d time entries.\n", count)
	return nil
}
