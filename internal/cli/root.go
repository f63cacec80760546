// Package cli implements the locationctl maintenance commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"location-production-backend/internal/config"
	"location-production-backend/internal/database"
	"location-production-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	formatFlag string
	dbFlag     string
)

// NewRootCmd creates the root locationctl command.
func NewRootCmd() *cobra.Command {
	formatFlag = "text"
	dbFlag = ""

	root := &cobra.Command{
		Use:   "locationctl",
		Short: "Maintenance tool for the location production backend",
		Long: `locationctl runs maintenance tasks against the location production database:
schema migration, fixture seeding, progress recomputation and calendar regeneration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if formatFlag != "text" && formatFlag != "json" {
				return fmt.Errorf("invalid format %q: must be text or json", formatFlag)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&formatFlag, "format", "text", "Output format: text or json")
	root.PersistentFlags().StringVar(&dbFlag, "db", "", "Database URL (overrides DATABASE_URL)")

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newRecomputeCmd(),
		newRegenerateEventsCmd(),
		newHistoryCmd(),
		newProgressCmd(),
		newVersionCmd(),
	)

	return root
}

func isJSON() bool {
	return formatFlag == "json"
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID parses a positional uuid argument.
func parseID(name, arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return id, nil
}

// openDB loads configuration and connects without migrating.
func openDB() (*gorm.DB, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	dsn := cfg.DatabaseURL
	if dbFlag != "" {
		dsn = dbFlag
	}

	db, err := database.Initialize(dsn, &database.Options{
		LogLevel:     database.GormLogLevel(cfg.LogLevel),
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		SkipMigrate:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
