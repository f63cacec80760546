package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute <rental-id>",
		Short: "Recompute and store a rental's completion percentage",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecompute,
	}
}

func runRecompute(cmd *cobra.Command, args []string) error {
	rentalID, err := parseID("rental id", args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	completion, err := newServices(db).stages.RecomputeRentalProgress(cmd.Context(), rentalID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"rental_id":             rentalID,
			"completion_percentage": completion,
		})
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Rental %s: %s complete\n", rentalID, formatPercent(completion))
	return err
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <rental-id>",
		Short: "Show a rental's stage progress",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgress,
	}
}

func runProgress(cmd *cobra.Command, args []string) error {
	rentalID, err := parseID("rental id", args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	progress, err := newServices(db).stages.GetRentalProgress(cmd.Context(), rentalID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), progress)
	}
	return printProgress(cmd.OutOrStdout(), progress)
}

func newRegenerateEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate-events <rental-id>",
		Short: "Replace a rental's generated calendar events",
		Args:  cobra.ExactArgs(1),
		RunE:  runRegenerateEvents,
	}
}

func runRegenerateEvents(cmd *cobra.Command, args []string) error {
	rentalID, err := parseID("rental id", args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	events, err := newServices(db).calendar.RegenerateEventsForRental(cmd.Context(), rentalID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), events)
	}
	return printEvents(cmd.OutOrStdout(), events)
}
