package cli

import (
	"fmt"

	"location-production-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <path>",
		Short: "Load a YAML fixture file or directory",
		Long: `Load projects, locations, rentals and stages from a YAML fixture.
Projects and locations are matched by name and reused when they already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixture, err := seed.LoadPath(args[0])
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	svc := newServices(db)
	result, err := seed.NewLoader(svc.repos, svc.rentals, svc.stages).Load(cmd.Context(), fixture)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), result)
	}
	return printSeedResult(cmd.OutOrStdout(), result)
}
