package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fwr/quizgen/internal/artifact"
	"github.com/fwr/quizgen/internal/checkpoint"
	"github.com/fwr/quizgen/internal/export"
	"github.com/fwr/quizgen/internal/llm"
	"github.com/fwr/quizgen/internal/quizgen"
	"github.com/fwr/quizgen/internal/runner"
	"github.com/fwr/quizgen/internal/store"
)

// app bundles the wired components every command needs.
type app struct {
	store       *store.Store
	log         *zap.SugaredLogger
	cfg         quizgen.Config
	checkpoints *checkpoint.File
	writer      *export.Writer
	runner      *runner.Runner
	dataDir     string
}

// newApp opens the database, builds the LLM provider and assembles the
// pipeline, runner and output writer.
func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		st.Close()
		return nil, err
	}

	llmCfg := llm.ConfigFromEnv()
	if llmCfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		}
	}
	if err := llmCfg.Validate(); err != nil {
		st.Close()
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, err
	}

	artifacts, err := artifact.NewStore(filepath.Join(dataDir, "raw"))
	if err != nil {
		st.Close()
		return nil, err
	}

	cps, err := checkpoint.Open(filepath.Join(dataDir, "logs", "generation_checkpoint.json"))
	if err != nil {
		st.Close()
		return nil, err
	}

	cfg := quizgen.DefaultConfig()
	caller := quizgen.NewCaller(provider, artifacts, log)
	gen := quizgen.NewGenerator(caller, cfg)
	critic := quizgen.NewCritic(caller, cfg, log)
	pipeline := quizgen.NewPipeline(gen, critic, cfg, log, nil)

	writer := export.NewWriter(dataDir, log)
	run := runner.New(pipeline, cps, writer, log)

	log.Infow("quizgen ready",
		"provider", llmCfg.Provider, "db", dbPath, "data_dir", dataDir)

	return &app{
		store:       st,
		log:         log,
		cfg:         cfg,
		checkpoints: cps,
		writer:      writer,
		runner:      run,
		dataDir:     dataDir,
	}, nil
}

func (a *app) Close() {
	_ = a.log.Sync()
	if err := a.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", err)
	}
}

// newLogger builds the process logger. QUIZGEN_ENV=production switches
// to JSON output; anything else gets the development console encoder.
func newLogger() (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if os.Getenv("QUIZGEN_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}
