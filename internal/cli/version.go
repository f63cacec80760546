package cli

import (
	"fmt"

	"location-production-backend/internal/api/handlers"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "locationctl %s\n", handlers.Version)
			return err
		},
	}
}
