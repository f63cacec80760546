package cli

import (
	"fmt"

	"location-production-backend/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrating: %w", err)
	}

	tables := len(database.Models())
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]int{"tables": tables})
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables\n", tables)
	return err
}
