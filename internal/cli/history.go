package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <stage-id>",
		Short: "Show the status history of a stage",
		Long:  "Show the status history of a stage, newest first. History survives stage deletion.",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	stageID, err := parseID("stage id", args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	entries, err := newServices(db).stages.GetStageHistory(cmd.Context(), stageID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), entries)
	}
	return printHistory(cmd.OutOrStdout(), entries)
}
