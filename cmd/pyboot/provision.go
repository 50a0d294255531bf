package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/pyboot/internal/config"
	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/finish"
	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	"github.com/alexisbeaulieu97/pyboot/internal/model"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
	"github.com/alexisbeaulieu97/pyboot/internal/python"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/app"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/deps"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/interp"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/nativelib"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/source"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/ui"
	"github.com/alexisbeaulieu97/pyboot/internal/steps/venv"
)

func runProvision(flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	logPath := logger.SessionLogPath(time.Now())
	log, err := logger.New(logger.Options{Level: level, FilePath: logPath, Console: os.Stdout})
	if err != nil {
		return err
	}
	defer log.Close() //nolint:errcheck

	execCtx, err := newExecutionContext(cfg, logPath, log)
	if err != nil {
		return err
	}

	selector := prompt.NewSelector(os.Stdin, os.Stdout, log)
	runner := engine.NewRunner(log)

	log.Info("starting provisioning run")

	code := 0
	results, err := runner.Run(context.Background(), execCtx, pipelineSteps(selector, log))
	logSummary(log, results)
	if err != nil {
		code = 1
	} else {
		log.Info(completeStyle.Render("provisioning complete"))
	}

	handler := finish.NewHandler(selector, log, logPath)
	if code = handler.Finish(code, cfg.WaitForKey); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

func newExecutionContext(cfg *config.Config, logPath string, log *logger.Logger) (*engine.ExecutionContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return &engine.ExecutionContext{
		WorkDir: wd,
		EnvDir:  filepath.Join(wd, cfg.EnvDir),
		LogPath: logPath,
		Config:  cfg,
		Logger:  log,
	}, nil
}

func logSummary(log *logger.Logger, results []model.StepResult) {
	counts := make(map[string]int, len(results))
	for _, res := range results {
		counts[res.Status]++
	}

	log.WithFields(map[string]any{
		"completed": counts[model.StatusSuccess],
		"skipped":   counts[model.StatusSkipped],
		"warned":    counts[model.StatusWarned],
		"failed":    counts[model.StatusFailed],
	}).Debug("run summary")
}

// pipelineSteps is the provisioning pipeline, in its fixed total order.
func pipelineSteps(selector *prompt.Selector, log *logger.Logger) []engine.Step {
	return []engine.Step{
		interp.New(python.NewLocator(log)),
		venv.New(),
		source.New(),
		nativelib.New(),
		deps.New(selector),
		app.New(),
		ui.New(selector),
	}
}
