package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pyboot/internal/config"
	"github.com/alexisbeaulieu97/pyboot/internal/engine"
	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	"github.com/alexisbeaulieu97/pyboot/internal/model"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
	"github.com/alexisbeaulieu97/pyboot/internal/python"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report each provisioning step's state without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	// Check mode is read-only: no session log file is written.
	log, err := logger.New(logger.Options{Level: level, Console: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	execCtx, err := newExecutionContext(cfg, "", log)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Locating the interpreter is itself read-only, and the native-library
	// predicate needs the interpreter version to find site-packages.
	if interp, err := python.NewLocator(log).Locate(ctx); err == nil {
		execCtx.Interpreter = interp
	}

	selector := prompt.NewSelector(os.Stdin, cmd.OutOrStdout(), log)
	results := engine.NewRunner(log).CheckOnly(ctx, execCtx, pipelineSteps(selector, log))

	for _, res := range results {
		style, ok := statusStyles[res.Status]
		if !ok {
			style = pendingStyle
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", style.Render(res.Status), res.Name, res.Message)
	}

	for _, res := range results {
		if res.Status == model.StatusFailed {
			return fmt.Errorf("check failed for step %s: %w", res.Name, res.Error)
		}
	}
	return nil
}
