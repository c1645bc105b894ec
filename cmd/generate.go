package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/quizgen"
	"github.com/fwr/quizgen/internal/runner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate question pools synchronously",
	Long: "Generate runs the pipeline in the foreground. With no flags it\n" +
		"processes the full sector/career/level matrix plus the soft-skills\n" +
		"pool, resuming from the checkpoint. Scope can be narrowed with\n" +
		"--sector, --career and --level, or switched to --soft-skills.\n\n" +
		"The first interrupt finishes the current unit and stops; a second\n" +
		"interrupt aborts immediately.",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("sector", "", "Limit to one sector")
	generateCmd.Flags().String("career", "", "Limit to one career (requires --sector)")
	generateCmd.Flags().Int("level", 0, "Limit to one level 1-5 (requires --career)")
	generateCmd.Flags().Bool("soft-skills", false, "Generate only the soft-skills pool")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	units, err := unitsFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	// First signal requests a cooperative stop between units; the
	// second cancels the context and aborts the in-flight call.
	flag := &runner.CancelFlag{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		app.log.Warn("interrupt received, finishing current unit (interrupt again to abort)")
		flag.Cancel()
	}()

	result, err := app.runner.RunUnits(ctx, units, flag, progressReporter{app})
	if err != nil {
		return err
	}

	exportSectors(app, result)
	printSummary(result)

	if result.Succeeded == 0 && result.Failed > 0 {
		return fmt.Errorf("all %d attempted units failed", result.Failed)
	}
	return nil
}

func unitsFromFlags(cmd *cobra.Command) ([]quizgen.Unit, error) {
	softSkills, _ := cmd.Flags().GetBool("soft-skills")
	sector, _ := cmd.Flags().GetString("sector")
	career, _ := cmd.Flags().GetString("career")
	level, _ := cmd.Flags().GetInt("level")

	if softSkills {
		if sector != "" || career != "" || level != 0 {
			return nil, fmt.Errorf("--soft-skills cannot be combined with scope flags")
		}
		return []quizgen.Unit{{SoftSkills: true}}, nil
	}

	switch {
	case sector == "" && (career != "" || level != 0):
		return nil, fmt.Errorf("--career and --level require --sector")
	case sector == "":
		return quizgen.AllUnits(), nil
	case !quizgen.ValidSector(sector):
		return nil, fmt.Errorf("unknown sector %q (see 'quizgen sectors')", sector)
	case career == "" && level != 0:
		return nil, fmt.Errorf("--level requires --career")
	case career == "":
		return quizgen.UnitsForSector(sector), nil
	case !quizgen.ValidCareer(sector, career):
		return nil, fmt.Errorf("unknown career %q in sector %q (see 'quizgen sectors')", career, sector)
	case level == 0:
		return quizgen.UnitsForCareer(sector, career)
	case level < quizgen.MinLevel || level > quizgen.MaxLevel:
		return nil, fmt.Errorf("level must be %d-%d", quizgen.MinLevel, quizgen.MaxLevel)
	default:
		return []quizgen.Unit{{Sector: sector, Career: career, Level: level}}, nil
	}
}

// exportSectors rebuilds the production file of every sector that
// gained questions in this run.
func exportSectors(app *app, result *runner.RunResult) {
	touched := make(map[string]bool)
	for _, outcome := range result.Units {
		if outcome.Status == runner.UnitCompleted && !outcome.Unit.SoftSkills {
			touched[outcome.Unit.Sector] = true
		}
	}
	for sector := range touched {
		if _, _, _, err := app.writer.ExportSector(sector); err != nil {
			app.log.Errorw("sector export failed", "sector", sector, "error", err)
		}
	}
}

func printSummary(result *runner.RunResult) {
	fmt.Printf("\nRun summary: %d succeeded, %d skipped, %d failed, %d questions saved\n",
		result.Succeeded, result.Skipped, result.Failed, result.Questions)
	if result.Cancelled {
		fmt.Println("Run was cancelled before completing all units.")
	}
	for _, outcome := range result.Units {
		if outcome.Status == runner.UnitFailed {
			fmt.Printf("  failed: %s: %v\n", outcome.Unit.Key(), outcome.Err)
		}
	}
}

// progressReporter prints unit progress through the app logger.
type progressReporter struct {
	app *app
}

func (r progressReporter) UnitStarted(unit quizgen.Unit, done, total int) {
	r.app.log.Infof("[%d/%d] generating %s", done+1, total, unit.Key())
}

func (r progressReporter) UnitFinished(outcome runner.UnitOutcome, done, total int) {
	switch outcome.Status {
	case runner.UnitSkipped:
		r.app.log.Infof("[%d/%d] %s already done, skipping", done, total, outcome.Unit.Key())
	case runner.UnitCompleted:
		r.app.log.Infof("[%d/%d] %s complete (%d questions)", done, total, outcome.Unit.Key(), outcome.Questions)
	case runner.UnitFailed:
		r.app.log.Errorf("[%d/%d] %s failed: %v", done, total, outcome.Unit.Key(), outcome.Err)
	}
}
