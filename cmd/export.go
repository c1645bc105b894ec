package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/export"
	"github.com/fwr/quizgen/internal/quizgen"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Rebuild production quiz files from saved pools",
	Long: "Export reassembles generated_sectors/{sector}.json from the final\n" +
		"pools on disk. No model calls are made.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("sector", "", "Export only this sector")
}

func runExport(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return err
	}
	writer := export.NewWriter(dataDir, log)

	sector, _ := cmd.Flags().GetString("sector")
	sectors := quizgen.Sectors()
	if sector != "" {
		if !quizgen.ValidSector(sector) {
			return fmt.Errorf("unknown sector %q (see 'quizgen sectors')", sector)
		}
		sectors = []string{sector}
	}

	for _, s := range sectors {
		path, quizzes, questions, err := writer.ExportSector(s)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d quizzes, %d questions -> %s\n", s, quizzes, questions, path)
	}
	return nil
}
