package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fwr/quizgen/internal/quizgen"
)

// Writer persists final pools per unit and assembles per-sector
// production files. Layout under the base directory:
//
//	by_sector/{sector}/{career}/final/level_{n}_final.json
//	by_sector/soft_skills/final/soft_skills_final.json
//	generated_sectors/{sector}.json
type Writer struct {
	baseDir string
	log     *zap.SugaredLogger
}

func NewWriter(baseDir string, log *zap.SugaredLogger) *Writer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Writer{baseDir: baseDir, log: log}
}

// BaseDir returns the output root.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// SavePool writes a unit's final pool. It satisfies the runner's sink.
func (w *Writer) SavePool(unit quizgen.Unit, questions []quizgen.Question) error {
	path := w.poolPath(unit)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating pool dir: %w", err)
	}

	data, err := json.MarshalIndent(quizgen.Pool{Questions: questions}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling pool for %s: %w", unit.Key(), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing pool %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing pool %s: %w", path, err)
	}

	w.log.Infow("saved pool", "unit", unit.Key(), "questions", len(questions), "path", path)
	return nil
}

// LoadPool reads a previously saved unit pool. A missing file returns
// os.ErrNotExist.
func (w *Writer) LoadPool(unit quizgen.Unit) ([]quizgen.Question, error) {
	data, err := os.ReadFile(w.poolPath(unit))
	if err != nil {
		return nil, err
	}
	var pool quizgen.Pool
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("parsing pool for %s: %w", unit.Key(), err)
	}
	return pool.Questions, nil
}

// ExportSector assembles every saved pool of a sector into the
// production file and returns its path with quiz and question counts.
// Units without a saved pool are skipped.
func (w *Writer) ExportSector(sector string) (string, int, int, error) {
	if !quizgen.ValidSector(sector) {
		return "", 0, 0, fmt.Errorf("unknown sector %q", sector)
	}

	var quizzes []ProductionQuiz
	totalQuestions := 0

	for _, unit := range quizgen.UnitsForSector(sector) {
		questions, err := w.LoadPool(unit)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", 0, 0, err
		}
		if len(questions) == 0 {
			continue
		}
		quizzes = append(quizzes, ToProductionQuiz(unit.Career, unit.Level, questions))
		totalQuestions += len(questions)
	}

	SortQuizzes(quizzes)

	path := filepath.Join(w.baseDir, "generated_sectors", sector+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", 0, 0, fmt.Errorf("creating export dir: %w", err)
	}

	data, err := json.MarshalIndent(ProductionOutput{Quizzes: quizzes}, "", "  ")
	if err != nil {
		return "", 0, 0, fmt.Errorf("marshaling production output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, 0, fmt.Errorf("writing production output %s: %w", path, err)
	}

	w.log.Infow("exported sector",
		"sector", sector, "quizzes", len(quizzes), "questions", totalQuestions, "path", path)
	return path, len(quizzes), totalQuestions, nil
}

func (w *Writer) poolPath(unit quizgen.Unit) string {
	if unit.SoftSkills {
		return filepath.Join(w.baseDir, "by_sector", "soft_skills", "final", "soft_skills_final.json")
	}
	return filepath.Join(w.baseDir, "by_sector", unit.Sector, unit.Career, "final",
		fmt.Sprintf("level_%d_final.json", unit.Level))
}
