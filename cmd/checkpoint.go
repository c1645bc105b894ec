package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/quizgen"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Inspect or reset generation progress",
}

var checkpointStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show completed units",
	RunE: func(cmd *cobra.Command, args []string) error {
		cps, err := openCheckpoint(cmd)
		if err != nil {
			return err
		}

		total := len(quizgen.AllUnits())
		fmt.Printf("Completed %d of %d units (%s)\n", cps.Len(), total, cps.Path())
		for _, key := range cps.Keys() {
			fmt.Println("  " + key)
		}
		return nil
	},
}

var checkpointResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the checkpoint so the next run regenerates everything",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		cps, err := openCheckpoint(cmd)
		if err != nil {
			return err
		}
		cleared := cps.Len()
		if err := cps.Reset(); err != nil {
			return err
		}
		fmt.Printf("Checkpoint cleared (%d entries removed)\n", cleared)
		return nil
	},
}

func init() {
	checkpointResetCmd.Flags().Bool("yes", false, "Confirm the reset")
	checkpointCmd.AddCommand(checkpointStatusCmd)
	checkpointCmd.AddCommand(checkpointResetCmd)
}

func openCheckpoint(cmd *cobra.Command) (*checkpoint.File, error) {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, err
	}
	return checkpoint.Open(filepath.Join(dataDir, "logs", "generation_checkpoint.json"))
}
